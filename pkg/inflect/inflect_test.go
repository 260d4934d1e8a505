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

package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralizer_Pluralize(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		word      string
		want      string
	}{
		{name: "regular", word: "cat", want: "cats"},
		{name: "es_suffix", word: "box", want: "boxes"},
		{name: "irregular", word: "person", want: "people"},
		{name: "uncountable", word: "sheep", want: "sheep"},
		{name: "empty", word: "", want: ""},
		{name: "override", overrides: map[string]string{"octopus": "octopodes"}, word: "octopus", want: "octopodes"},
		{name: "override_keeps_case", overrides: map[string]string{"octopus": "octopodes"}, word: "Octopus", want: "Octopodes"},
		{name: "blank_override_ignored", overrides: map[string]string{"cat": " "}, word: "cat", want: "cats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.overrides)
			assert.Equal(t, tt.want, p.Pluralize(tt.word), "plural form should match")
		})
	}
}

func TestPluralizer_Singularize(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		word      string
		want      string
	}{
		{name: "regular", word: "dogs", want: "dog"},
		{name: "irregular", word: "people", want: "person"},
		{name: "already_singular", word: "dog", want: "dog"},
		{name: "override_reverse", overrides: map[string]string{"octopus": "octopodes"}, word: "octopodes", want: "octopus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.overrides)
			assert.Equal(t, tt.want, p.Singularize(tt.word), "singular form should match")
		})
	}
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default(), "default pluralizer should be shared")
	assert.Equal(t, "mice", Default().Pluralize("mouse"))
}
