// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package settings reads the .jslint.yaml configuration file.
package settings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mattn/go-zglob"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/jslint/analyzer"
)

// FileName is the name of the configuration file.
const FileName = ".jslint.yaml"

// DefaultMaxFileSize is the size from which files are skipped.
const DefaultMaxFileSize = 1 << 20

// Settings represents the configuration options of a linted tree.
type Settings struct {
	Bitwise           *bool `yaml:"bitwise"`
	Browser           *bool `yaml:"browser"`
	Convert           *bool `yaml:"convert"`
	Couch             *bool `yaml:"couch"`
	Debug             *bool `yaml:"debug"`
	Devel             *bool `yaml:"devel"`
	Eval              *bool `yaml:"eval"`
	For               *bool `yaml:"for"`
	Getset            *bool `yaml:"getset"`
	Long              *bool `yaml:"long"`
	Name              *bool `yaml:"name"`
	Node              *bool `yaml:"node"`
	Single            *bool `yaml:"single"`
	TestInternalError *bool `yaml:"test_internal_error"`
	This              *bool `yaml:"this"`
	Unordered         *bool `yaml:"unordered"`
	White             *bool `yaml:"white"`

	// Globals are predeclared names.
	Globals []string `yaml:"globals"`
	// Exclude lists glob patterns of files to skip, matched against the base
	// name and the path relative to the linted root.
	Exclude []string `yaml:"exclude"`
	// MaxFileSize skips files of this size or larger.
	MaxFileSize *int64 `yaml:"max-file-size"`
}

// Options converts [Settings] into a list of [analyzer.Option].
// It applies settings only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Bitwise, analyzer.WithBitwise)
	opts = appendOption(opts, s.Browser, analyzer.WithBrowser)
	opts = appendOption(opts, s.Convert, analyzer.WithConvert)
	opts = appendOption(opts, s.Couch, analyzer.WithCouch)
	opts = appendOption(opts, s.Debug, analyzer.WithDebug)
	opts = appendOption(opts, s.Devel, analyzer.WithDevel)
	opts = appendOption(opts, s.Eval, analyzer.WithEval)
	opts = appendOption(opts, s.For, analyzer.WithFor)
	opts = appendOption(opts, s.Getset, analyzer.WithGetset)
	opts = appendOption(opts, s.Long, analyzer.WithLong)
	opts = appendOption(opts, s.Name, analyzer.WithName)
	opts = appendOption(opts, s.Node, analyzer.WithNode)
	opts = appendOption(opts, s.Single, analyzer.WithSingle)
	opts = appendOption(opts, s.TestInternalError, analyzer.WithTestInternalError)
	opts = appendOption(opts, s.This, analyzer.WithThis)
	opts = appendOption(opts, s.Unordered, analyzer.WithUnordered)
	opts = appendOption(opts, s.White, analyzer.WithWhite)

	if len(s.Globals) > 0 {
		opts = append(opts, analyzer.WithGlobals(s.Globals...))
	}

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// Limit returns the configured file size limit.
func (s Settings) Limit() int64 {
	if s.MaxFileSize == nil {
		return DefaultMaxFileSize
	}

	return *s.MaxFileSize
}

// Excluded reports whether rel, a slash separated path relative to the
// linted root, matches an exclude pattern. Patterns without a slash match
// the base name at any depth, `**` matches any number of directories.
func (s Settings) Excluded(rel string) bool {
	base := path.Base(rel)

	for _, pattern := range s.Exclude {
		name := rel
		if !strings.Contains(pattern, "/") {
			name = base
		}

		if ok, _ := zglob.Match(pattern, name); ok {
			return true
		}
	}

	return false
}

// Decode reads settings from r, rejecting unknown keys. An empty document
// yields zero settings.
func Decode(r io.Reader) (Settings, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, err
	}

	return s, nil
}

// Load reads the settings file at path.
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Find returns the path of the configuration file in dir or its nearest
// ancestor.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		file := filepath.Join(dir, FileName)
		if info, err := os.Stat(file); err == nil && info.Mode().IsRegular() {
			return file, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}

		dir = parent
	}
}
