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

// Package inflect converts English words between singular and plural forms.
package inflect

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jinzhu/inflection"
)

// 🔤 Pluralizer converts words using custom overrides first, then the inflection rules
type Pluralizer struct {
	plural   map[string]string // lower singular -> plural
	singular map[string]string // lower plural -> singular
}

var defaultPluralizer = New(nil)

// Default returns a Pluralizer without overrides
func Default() *Pluralizer {
	return defaultPluralizer
}

// 🏭 New creates a Pluralizer. overrides maps singular forms to plural forms and is
// consulted in both directions before the inflection rules.
func New(overrides map[string]string) *Pluralizer {
	p := &Pluralizer{
		plural:   make(map[string]string, len(overrides)),
		singular: make(map[string]string, len(overrides)),
	}
	for one, many := range overrides {
		one, many = strings.TrimSpace(one), strings.TrimSpace(many)
		if one == "" || many == "" {
			continue
		}
		p.plural[strings.ToLower(one)] = strings.ToLower(many)
		p.singular[strings.ToLower(many)] = strings.ToLower(one)
	}
	return p
}

// Pluralize returns the plural form of word, or word itself when no rule applies
func (p *Pluralizer) Pluralize(word string) string {
	if word == "" {
		return word
	}
	if override, ok := p.plural[strings.ToLower(word)]; ok {
		return keepLeadingCase(word, override)
	}
	return inflection.Plural(word)
}

// Singularize returns the singular form of word, or word itself when no rule applies
func (p *Pluralizer) Singularize(word string) string {
	if word == "" {
		return word
	}
	if override, ok := p.singular[strings.ToLower(word)]; ok {
		return keepLeadingCase(word, override)
	}
	return inflection.Singular(word)
}

func keepLeadingCase(original, converted string) string {
	first, _ := utf8.DecodeRuneInString(original)
	if !unicode.IsUpper(first) {
		return converted
	}
	r, size := utf8.DecodeRuneInString(converted)
	return string(unicode.ToUpper(r)) + converted[size:]
}
