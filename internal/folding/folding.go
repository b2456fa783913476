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

// Package folding implements text folding for dictionary terms.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Term returns a transformer that normalizes a dictionary term: Unicode
// normalization form C followed by whitespace folding. Conlang data is
// routinely pasted from other tools, so composed and decomposed forms of
// the same word must fold to the same byte sequence before regex rules see
// them.
func Term() transform.Transformer {
	return transform.Chain(norm.NFC, &whitespaceFolder{})
}

// whitespaceFolder removes leading and trailing whitespace and replaces
// internal whitespace spans with a single ASCII space.
type whitespaceFolder struct {
	// wroteRune is true once a non-whitespace rune has been emitted.
	wroteRune bool

	// pendingSpace is true while inside an internal whitespace span.
	pendingSpace bool
}

// Transform implements [transform.Transformer.Transform].
func (f *whitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(r) {
			// Leading whitespace is dropped; internal whitespace opens a
			// span that is emitted lazily, so trailing whitespace is never
			// emitted.
			f.pendingSpace = f.wroteRune
			nSrc += size
			continue
		}

		if f.pendingSpace {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			f.pendingSpace = false
		}

		// NOTE: r could be utf8.RuneError with size 1, in which case the
		// encoded length is 3 and differs from size.
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		f.wroteRune = true
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *whitespaceFolder) Reset() {
	*f = whitespaceFolder{}
}
