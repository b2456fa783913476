// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package folding_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-soundchange/internal/folding"
)

// TestTerm tests term folding.
func TestTerm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string

		expected string
	}{
		{
			name:  "empty",
			input: "",

			expected: "",
		},
		{
			name:  "unchanged",
			input: "kat",

			expected: "kat",
		},
		{
			name:  "leading whitespace",
			input: "  kat",

			expected: "kat",
		},
		{
			name:  "trailing whitespace",
			input: "kat \t ",

			expected: "kat",
		},
		{
			name:  "internal whitespace span",
			input: "kat \t  mus",

			expected: "kat mus",
		},
		{
			name:  "whitespace only",
			input: " \t\n ",

			expected: "",
		},
		{
			// U+0065 U+0301 composes to U+00E9 under NFC.
			name:  "decomposed accent",
			input: "é",

			expected: "é",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(folding.Term(), tc.input)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Term (-want, +got):\n%s", diff)
			}
		})
	}
}
