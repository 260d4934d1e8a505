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

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/walteh/wordswap/pkg/inflect"
)

const (
	possessiveSuffix = "'s"

	// fallbackIndicator tags replacements when no indicator is configured.
	// NUL bytes do not occur in natural text.
	fallbackIndicator = "\x00wordswap\x00"
)

// 🔁 Swapper replaces words according to an ordered list of rules.
// It holds no mutable state and is safe for concurrent use.
type Swapper struct {
	indicator  string
	strip      *regexp.Regexp // every indicator occurrence
	tagged     *regexp.Regexp // indicator anchored at the start of the input
	pluralizer Pluralizer
}

// 🏭 New creates a Swapper
func New(opts Options) *Swapper {
	s := &Swapper{
		indicator:  opts.Indicator,
		strip:      opts.IndicatorPattern,
		pluralizer: opts.Pluralizer,
	}

	if s.indicator == "" {
		// replacements are always tagged, otherwise a later rule could swap them again
		s.indicator = fallbackIndicator
		s.strip = nil
	}
	if s.strip == nil {
		s.strip = regexp.MustCompile(regexp.QuoteMeta(s.indicator))
	}
	// a possessive replacement is tagged after its 's, so the bare word in front
	// of it counts as tagged too
	s.tagged = regexp.MustCompile(`^(?:` + regexp.QuoteMeta(possessiveSuffix) + `)?(?:` + s.strip.String() + `)`)
	if s.pluralizer == nil {
		s.pluralizer = inflect.Default()
	}

	return s
}

// Swap replaces every rule's word in text using the default pluralizer and returns the result
func Swap(text string, rules []Rule, indicator string, indicatorPattern *regexp.Regexp) string {
	return New(Options{Indicator: indicator, IndicatorPattern: indicatorPattern}).Swap(text, rules).Swapped
}

// Swap applies rules in order to text.
//
// Each inserted replacement is tagged with the indicator so that no later rule, nor a later
// pass of the same rule, matches it again. The tags are stripped before returning.
func (s *Swapper) Swap(text string, rules []Rule) *Result {
	result := &Result{
		Original: text,
		Tallies:  make([]Tally, 0, len(rules)),
	}

	current := text
	for _, rule := range rules {
		tally := Tally{Rule: rule}

		// Skip empty rules
		if rule.Word == "" {
			result.Tallies = append(result.Tallies, tally)
			continue
		}

		if rule.CanBePlural {
			// an uncountable word matches here too and takes the plural replacement
			current, tally.Plural = s.replaceWord(current, s.pluralizer.Pluralize(rule.Word), s.pluralizer.Pluralize(rule.Replacement))
		}

		if rule.CanBePossessive {
			current, tally.Possessive = s.replaceWord(current, rule.Word+possessiveSuffix, rule.Replacement+possessiveSuffix)
		}

		current, tally.Singular = s.replaceWord(current, rule.Word, rule.Replacement)

		result.ReplacementCount += tally.Total()
		result.Tallies = append(result.Tallies, tally)
	}

	current = s.strip.ReplaceAllString(current, "")

	result.Swapped = current
	result.WasModified = result.ReplacementCount > 0
	return result
}

// replaceWord swaps every whole-word, case-insensitive occurrence of word that is not
// already tagged with the indicator. It returns the new text and the number of swaps.
func (s *Swapper) replaceWord(text, word, replacement string) (string, int) {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(word))

	var b strings.Builder
	last, count := 0, 0
	for pos := 0; pos < len(text); {
		loc := re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]

		if !isBoundary(text, start) || !isBoundary(text, end) || s.isTagged(text[end:]) {
			// retry one rune further so overlapping candidates are not lost
			_, size := utf8.DecodeRuneInString(text[start:])
			pos = start + size
			continue
		}

		b.WriteString(text[last:start])
		b.WriteString(matchCase(text[start:end], replacement))
		b.WriteString(s.indicator)
		last, pos = end, end
		count++
	}

	if count == 0 {
		return text, 0
	}
	b.WriteString(text[last:])
	return b.String(), count
}

func (s *Swapper) isTagged(rest string) bool {
	return s.tagged.MatchString(rest)
}

// matchCase upper-cases the first rune of replacement when matched starts with an upper case rune
func matchCase(matched, replacement string) string {
	first, _ := utf8.DecodeRuneInString(matched)
	if !unicode.IsUpper(first) || replacement == "" {
		return replacement
	}
	r, size := utf8.DecodeRuneInString(replacement)
	return string(unicode.ToUpper(r)) + replacement[size:]
}

// isBoundary reports whether i sits on a word boundary, with the same meaning as \b
// but treating any Unicode letter or digit as a word rune
func isBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = isWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
