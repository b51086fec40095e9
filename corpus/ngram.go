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
	"fmt"
	"sort"
	"strings"
)

const (
	MinNGramSize = 1
	MaxNGramSize = 5
)

// NGramItem is an ordered tuple of tokens along with its number of
// occurrences across the corpus.
type NGramItem struct {
	Tokens []string `json:"tokens"`
	Freq   int64    `json:"freq"`
}

func (item *NGramItem) String() string {
	return strings.Join(item.Tokens, " ")
}

// ValidateNGramSize rejects out-of-range window sizes. It is intended
// to run before any tokenization work begins.
func ValidateNGramSize(size int) error {
	if size < MinNGramSize || size > MaxNGramSize {
		return &InvalidParameterError{
			Name:   "size",
			Reason: fmt.Sprintf("must be between %d and %d", MinNGramSize, MaxNGramSize),
		}
	}
	return nil
}

// NGrams slides a window of the configured size one token at a time
// across the corpus, with no sentence-boundary awareness. A corpus
// shorter than the window produces an empty result. The returned list
// is ranked by frequency descending, ties broken by the joined n-gram
// ascending.
func NGrams(c Corpus, size int) ([]*NGramItem, error) {
	if err := ValidateNGramSize(size); err != nil {
		return nil, err
	}
	counts := make(map[string]int64)
	for i := 0; i+size <= len(c); i++ {
		counts[strings.Join(c[i:i+size], " ")]++
	}
	ans := make([]*NGramItem, 0, len(counts))
	for gram, freq := range counts {
		ans = append(ans, &NGramItem{Tokens: strings.Split(gram, " "), Freq: freq})
	}
	sort.SliceStable(ans, func(i, j int) bool {
		if ans[i].Freq != ans[j].Freq {
			return ans[j].Freq < ans[i].Freq
		}
		return ans[i].String() < ans[j].String()
	})
	return ans, nil
}
