// Copyright 2025 Mthuli Percival Buthelezi
// Copyright 2025 Sakhile Marcus Zungu
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package corpus

import (
	"strings"
	"unicode"
)

// Corpus is the ordered token sequence derived from one uploaded text.
// It is immutable after construction and owned exclusively by the
// analysis request that created it.
type Corpus []string

// TokenizeConf configures case folding and the word-character class.
type TokenizeConf struct {
	Lowercase bool
	Digits    bool
}

func isWordRune(r rune, digits bool) bool {
	return unicode.IsLetter(r) || r == '_' || (digits && unicode.IsDigit(r))
}

// Tokenize splits decoded text into maximal runs of word characters.
// Punctuation and whitespace act purely as separators and are dropped.
// Tokenization is total and deterministic; empty input yields an empty
// sequence.
func Tokenize(text string, conf TokenizeConf) Corpus {
	ans := make(Corpus, 0, len(text)/6)
	start := -1
	for i, r := range text {
		if isWordRune(r, conf.Digits) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			ans = append(ans, normalizeToken(text[start:i], conf))
			start = -1
		}
	}
	if start >= 0 {
		ans = append(ans, normalizeToken(text[start:], conf))
	}
	return ans
}

func normalizeToken(tk string, conf TokenizeConf) string {
	if conf.Lowercase {
		return strings.ToLower(tk)
	}
	return tk
}
