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

package report

//go:generate go tool stringer -type=Code -linecomment

// Code identifies a diagnostic. Its string form is the stable catalog key.
type Code uint8

const (
	And Code = iota         // and
	BadAssignmentA          // bad_assignment_a
	BadDirectiveA           // bad_directive_a
	BadGet                  // bad_get
	BadModuleNameA          // bad_module_name_a
	BadOptionA              // bad_option_a
	BadPropertyA            // bad_property_a
	BadSet                  // bad_set
	DuplicateA              // duplicate_a
	EmptyBlock              // empty_block
	ExpectedA               // expected_a
	ExpectedAAtBC           // expected_a_at_b_c
	ExpectedAB              // expected_a_b
	ExpectedABFromCD        // expected_a_b_from_c_d
	ExpectedABeforeB        // expected_a_before_b
	ExpectedDigitsAfterA    // expected_digits_after_a
	ExpectedFourDigits      // expected_four_digits
	ExpectedIdentifierA     // expected_identifier_a
	ExpectedLineBreakAB     // expected_line_break_a_b
	ExpectedRegexpFactorA   // expected_regexp_factor_a
	ExpectedSpaceAB         // expected_space_a_b
	ExpectedStatementsA     // expected_statements_a
	ExpectedStringA         // expected_string_a
	ExpectedTypeStringA     // expected_type_string_a
	FreezeExports           // freeze_exports
	FunctionInLoop          // function_in_loop
	InfixIn                 // infix_in
	LabelA                  // label_a
	MisplacedA              // misplaced_a
	MisplacedDirectiveA     // misplaced_directive_a
	MissingAwaitStatement   // missing_await_statement
	MissingBrowser          // missing_browser
	MissingM                // missing_m
	NakedBlock              // naked_block
	NestedComment           // nested_comment
	NotLabelA               // not_label_a
	NumberIsNaN             // number_isNaN
	OutOfScopeA             // out_of_scope_a
	RedefinitionAB          // redefinition_a_b
	RequiredAOptionalB      // required_a_optional_b
	ReservedA               // reserved_a
	SubscriptA              // subscript_a
	TodoComment             // todo_comment
	TooLong                 // too_long
	TooManyDigits           // too_many_digits
	UnclosedComment         // unclosed_comment
	UnclosedDisable         // unclosed_disable
	UnclosedMega            // unclosed_mega
	UnclosedString          // unclosed_string
	UndeclaredA             // undeclared_a
	UnexpectedA             // unexpected_a
	UnexpectedAAfterB       // unexpected_a_after_b
	UnexpectedABeforeB      // unexpected_a_before_b
	UnexpectedAtTopLevelA   // unexpected_at_top_level_a
	UnexpectedCharA         // unexpected_char_a
	UnexpectedComment       // unexpected_comment
	UnexpectedDirectiveA    // unexpected_directive_a
	UnexpectedExpressionA   // unexpected_expression_a
	UnexpectedLabelA        // unexpected_label_a
	UnexpectedParens        // unexpected_parens
	UnexpectedSpaceAB       // unexpected_space_a_b
	UnexpectedStatementA    // unexpected_statement_a
	UnexpectedTrailingSpace // unexpected_trailing_space
	UnexpectedTypeofA       // unexpected_typeof_a
	UninitializedA          // uninitialized_a
	UnopenedEnable          // unopened_enable
	UnreachableA            // unreachable_a
	UnregisteredPropertyA   // unregistered_property_a
	UnusedA                 // unused_a
	UseDouble               // use_double
	UseOpen                 // use_open
	UseSpaces               // use_spaces
	VarLoop                 // var_loop
	VarSwitch               // var_switch
	WeirdConditionA         // weird_condition_a
	WeirdExpressionA        // weird_expression_a
	WeirdLoop               // weird_loop
	WeirdRelationA          // weird_relation_a
	WrapCondition           // wrap_condition
	WrapImmediate           // wrap_immediate
	WrapParameter           // wrap_parameter
	WrapRegexp              // wrap_regexp
	WrapUnary               // wrap_unary
	InternalErrorCode       // internal_error

	NumCodes // (count)
)

var messages = [NumCodes]string{
	And:                     "The '&&' subexpression should be wrapped in parens.",
	BadAssignmentA:          "Bad assignment to '{a}'.",
	BadDirectiveA:           "Bad directive '{a}'.",
	BadGet:                  "A get function takes no parameters.",
	BadModuleNameA:          "Bad module name '{a}'.",
	BadOptionA:              "Bad option '{a}'.",
	BadPropertyA:            "Bad property name '{a}'.",
	BadSet:                  "A set function takes one parameter.",
	DuplicateA:              "Duplicate '{a}'.",
	EmptyBlock:              "Empty block.",
	ExpectedA:               "Expected '{a}'.",
	ExpectedAAtBC:           "Expected '{a}' at column {b}, not column {c}.",
	ExpectedAB:              "Expected '{a}' and instead saw '{b}'.",
	ExpectedABFromCD:        "Expected '{a}' to match '{b}' from line {c} and instead saw '{d}'.",
	ExpectedABeforeB:        "Expected '{a}' before '{b}'.",
	ExpectedDigitsAfterA:    "Expected digits after '{a}'.",
	ExpectedFourDigits:      "Expected four digits after '\\u'.",
	ExpectedIdentifierA:     "Expected an identifier and instead saw '{a}'.",
	ExpectedLineBreakAB:     "Expected a line break between '{a}' and '{b}'.",
	ExpectedRegexpFactorA:   "Expected a regexp factor and instead saw '{a}'.",
	ExpectedSpaceAB:         "Expected one space between '{a}' and '{b}'.",
	ExpectedStatementsA:     "Expected statements before '{a}'.",
	ExpectedStringA:         "Expected a string and instead saw '{a}'.",
	ExpectedTypeStringA:     "Expected a type string and instead saw '{a}'.",
	FreezeExports:           "Expected 'Object.freeze('. All export values should be frozen.",
	FunctionInLoop:          "Don't create functions within a loop.",
	InfixIn:                 "Unexpected 'in'. Compare with undefined, or use the hasOwnProperty method instead.",
	LabelA:                  "'{a}' is a statement label.",
	MisplacedA:              "Place '{a}' at the outermost level.",
	MisplacedDirectiveA:     "Place the '/*{a}*/' directive before the first statement.",
	MissingAwaitStatement:   "Expected await statement in async function.",
	MissingBrowser:          "/*global*/ requires the Assume a browser option.",
	MissingM:                "Expected 'm' flag on a multiline regular expression.",
	NakedBlock:              "Naked block.",
	NestedComment:           "Nested comment.",
	NotLabelA:               "'{a}' is not a label.",
	NumberIsNaN:             "Use Number.isNaN function to compare with NaN.",
	OutOfScopeA:             "'{a}' is out of scope.",
	RedefinitionAB:          "Redefinition of '{a}' from line {b}.",
	RequiredAOptionalB:      "Required parameter '{a}' after optional parameter '{b}'.",
	ReservedA:               "Reserved name '{a}'.",
	SubscriptA:              "['{a}'] is better written in dot notation.",
	TodoComment:             "Unexpected TODO comment.",
	TooLong:                 "Line is longer than 80 characters.",
	TooManyDigits:           "Too many digits.",
	UnclosedComment:         "Unclosed comment.",
	UnclosedDisable:         "Directive '/*jslint-disable*/' was not closed with '/*jslint-enable*/'.",
	UnclosedMega:            "Unclosed mega literal.",
	UnclosedString:          "Unclosed string.",
	UndeclaredA:             "Undeclared '{a}'.",
	UnexpectedA:             "Unexpected '{a}'.",
	UnexpectedAAfterB:       "Unexpected '{a}' after '{b}'.",
	UnexpectedABeforeB:      "Unexpected '{a}' before '{b}'.",
	UnexpectedAtTopLevelA:   "Expected '{a}' to be in a function.",
	UnexpectedCharA:         "Unexpected character '{a}'.",
	UnexpectedComment:       "Unexpected comment.",
	UnexpectedDirectiveA:    "When using modules, don't use directive '/*{a}'.",
	UnexpectedExpressionA:   "Unexpected expression '{a}' in statement position.",
	UnexpectedLabelA:        "Unexpected label '{a}'.",
	UnexpectedParens:        "Don't wrap function literals in parens.",
	UnexpectedSpaceAB:       "Unexpected space between '{a}' and '{b}'.",
	UnexpectedStatementA:    "Unexpected statement '{a}' in expression position.",
	UnexpectedTrailingSpace: "Unexpected trailing space.",
	UnexpectedTypeofA:       "Unexpected 'typeof'. Use '===' to compare directly with {a}.",
	UninitializedA:          "Uninitialized '{a}'.",
	UnopenedEnable:          "Directive '/*jslint-enable*/' was not opened with '/*jslint-disable*/'.",
	UnreachableA:            "Unreachable '{a}'.",
	UnregisteredPropertyA:   "Unregistered property name '{a}'.",
	UnusedA:                 "Unused '{a}'.",
	UseDouble:               "Use double quotes, not single quotes.",
	UseOpen:                 "Wrap a ternary expression in parens, with a line break after the left paren.",
	UseSpaces:               "Use spaces, not tabs.",
	VarLoop:                 "Don't declare variables in a loop.",
	VarSwitch:               "Don't declare variables in a switch.",
	WeirdConditionA:         "Weird condition '{a}'.",
	WeirdExpressionA:        "Weird expression '{a}'.",
	WeirdLoop:               "Weird loop.",
	WeirdRelationA:          "Weird relation '{a}'.",
	WrapCondition:           "Wrap the condition in parens.",
	WrapImmediate:           "Wrap an immediate function invocation in parentheses to assist the reader in understanding that the expression is the result of a function, and not the function itself.",
	WrapParameter:           "Wrap the parameter in parens.",
	WrapRegexp:              "Wrap this regexp in parens to avoid confusion.",
	WrapUnary:               "Wrap the unary expression in parens.",
	InternalErrorCode:       "{a}",
}

// Template returns the message template of the code, with placeholders {a} to {d}.
func (c Code) Template() string {
	if c >= NumCodes {
		return ""
	}

	return messages[c]
}

// MarshalText encodes the code as its catalog key.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

var codeNames = func() map[string]Code {
	m := make(map[string]Code, NumCodes)
	for c := range NumCodes {
		m[c.String()] = c
	}

	return m
}()

// ParseCode returns the code with the catalog key name.
func ParseCode(name string) (Code, bool) {
	c, ok := codeNames[name]

	return c, ok
}
