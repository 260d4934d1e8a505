// Copyright 2025 walteh LLC
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

package swap

import "regexp"

// 🔄 Rule defines a single word swap
type Rule struct {
	// Word is the base form to search for, matched case-insensitively
	Word string

	// Replacement is the base form inserted in place of Word
	Replacement string

	// CanBePlural also swaps the plural form of Word for the plural form of Replacement
	CanBePlural bool

	// CanBePossessive also swaps Word's into Replacement's
	CanBePossessive bool
}

// 🔤 Pluralizer converts words between singular and plural forms.
// Implementations return the input unchanged when no rule applies.
type Pluralizer interface {
	Pluralize(word string) string
	Singularize(word string) string
}

// 📊 Tally counts the matches one rule replaced, by form
type Tally struct {
	Rule       Rule
	Plural     int
	Possessive int
	Singular   int
}

// Total is the number of replacements made by the rule
func (t Tally) Total() int {
	return t.Plural + t.Possessive + t.Singular
}

// 📦 Result contains the outcome of a swap
type Result struct {
	// Original is the text before any swap
	Original string

	// Swapped is the text after all rules ran and the indicators were stripped
	Swapped string

	// WasModified indicates if any replacement was made
	WasModified bool

	// ReplacementCount is the number of replacements made across all rules
	ReplacementCount int

	// Tallies holds one entry per rule, in rule order
	Tallies []Tally
}

// ⚙️ Options configures a Swapper
type Options struct {
	// Indicator is appended to every inserted replacement while rules run.
	// When empty a private NUL-delimited marker is used instead.
	Indicator string

	// IndicatorPattern finds indicators, both to skip tagged words and to strip them at the end.
	// When nil it is derived from Indicator. It is ignored when Indicator is empty.
	IndicatorPattern *regexp.Regexp

	// Pluralizer computes plural forms. When nil the inflect default is used.
	Pluralizer Pluralizer
}
