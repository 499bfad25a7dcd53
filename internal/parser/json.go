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

package parser

import (
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/syntax"
)

// json parses a JSON value. Member values carry their name in Label.
func (p *parser) json() syntax.Index {
	switch next := p.next(); next.ID {
	case syntax.LBrace:
		return p.jsonObject()

	case syntax.LBracket:
		return p.jsonArray()

	case syntax.True, syntax.False, syntax.Null:
		p.advance()

		return p.now

	case syntax.Number:
		if !rxJSONNumber.MatchString(next.Value) {
			p.warn(report.UnexpectedA, p.nxt)
		}

		p.advance()

		return p.now

	case syntax.String:
		if next.Quote != `"` {
			p.warn(report.UnexpectedA, p.nxt, next.Quote)
		}

		p.advance()

		return p.now

	case syntax.Sub:
		negative := next
		negative.Arity = syntax.ArityUnary

		p.expect(syntax.Sub)
		p.expect(syntax.Number)

		if !rxJSONNumber.MatchString(p.current().Value) {
			p.warn(report.UnexpectedA, p.now)
		}

		negative.Expr = []syntax.Index{p.now}

		return negative.Nr

	default:
		return p.stop(report.UnexpectedA, p.nxt)
	}
}

func (p *parser) jsonObject() syntax.Index {
	brace := p.next()
	brace.Expr = nil

	p.expect(syntax.LBrace)

	if p.next().ID != syntax.RBrace {
		seen := make(map[string]bool)

		for {
			if q := p.next().Quote; q != `"` {
				p.warn(report.UnexpectedA, p.nxt, q)
			}

			name := p.nxt
			p.expect(syntax.String)

			switch key := p.current().Value; {
			case seen[key]:
				p.warn(report.DuplicateA, p.now)

			case key == "__proto__":
				p.warn(report.BadPropertyA, p.now)

			default:
				seen[key] = true
			}

			p.expect(syntax.Colon)

			value := p.json()
			p.tok(value).Label = name
			brace.Expr = append(brace.Expr, value)

			if p.next().ID != syntax.Comma {
				break
			}

			p.expect(syntax.Comma)
		}
	}

	p.expectFrom(syntax.RBrace, brace.Nr)

	return brace.Nr
}

func (p *parser) jsonArray() syntax.Index {
	bracket := p.next()
	bracket.Expr = nil

	p.expect(syntax.LBracket)

	if p.next().ID != syntax.RBracket {
		for {
			bracket.Expr = append(bracket.Expr, p.json())

			if p.next().ID != syntax.Comma {
				break
			}

			p.expect(syntax.Comma)
		}
	}

	p.expectFrom(syntax.RBracket, bracket.Nr)

	return bracket.Nr
}
