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

package config

// Standard lists the globals provided by the language standard.
var Standard = []string{
	"Array", "ArrayBuffer", "Boolean", "DataView", "Date", "Error",
	"EvalError",
	"Float32Array", "Float64Array", "Generator", "GeneratorFunction",
	"Int16Array", "Int32Array", "Int8Array", "Intl", "JSON", "Map", "Math",
	"Number", "Object", "Promise", "Proxy", "RangeError", "ReferenceError",
	"Reflect", "RegExp", "Set", "String", "Symbol", "SyntaxError", "System",
	"TypeError", "URIError", "Uint16Array", "Uint32Array", "Uint8Array",
	"Uint8ClampedArray", "WeakMap", "WeakSet", "decodeURI",
	"decodeURIComponent", "encodeURI", "encodeURIComponent", "globalThis",
	"import", "parseFloat", "parseInt",
}

var optionGlobals = map[Option][]string{
	Browser: {
		"caches", "CharacterData", "clearInterval", "clearTimeout",
		"document",
		"DocumentType", "DOMException", "Element", "Event", "event",
		"fetch",
		"FileReader", "FontFace", "FormData", "history",
		"IntersectionObserver",
		"localStorage", "location", "MutationObserver", "name", "navigator",
		"screen", "sessionStorage", "setInterval", "setTimeout", "Storage",
		"TextDecoder", "TextEncoder", "URL", "window", "Worker",
		"XMLHttpRequest",
	},
	Couch: {
		"emit", "getRow", "isArray", "log", "provides", "registerType",
		"require", "send", "start", "sum", "toJSON",
	},
	Devel: {
		"alert", "confirm", "console", "prompt",
	},
	Node: {
		"Buffer", "clearImmediate", "clearInterval", "clearTimeout",
		"console", "exports", "module", "process", "require",
		"setImmediate", "setInterval", "setTimeout", "TextDecoder",
		"TextEncoder", "URL", "URLSearchParams", "__dirname", "__filename",
	},
}

// Globals returns the globals predefined by an option, if any.
func (o Option) Globals() []string {
	return optionGlobals[o]
}
