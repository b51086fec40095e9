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

// DefaultConcWindow is the number of context tokens collected on each
// side of a concordance match unless the request says otherwise.
const DefaultConcWindow = 5

// ConcLine is a single concordance hit: the matched token plus its
// surrounding context. Near corpus boundaries the context is truncated,
// never padded.
type ConcLine struct {
	Left  []string `json:"left"`
	Word  string   `json:"word"`
	Right []string `json:"right"`
}

// ValidateConcParams rejects an empty search word or a non-positive
// context window. It is intended to run before any tokenization work
// begins.
func ValidateConcParams(word string, window int) error {
	if word == "" {
		return &InvalidParameterError{Name: "word", Reason: "cannot be empty"}
	}
	if window < 1 {
		return &InvalidParameterError{Name: "window", Reason: "must be a positive number"}
	}
	return nil
}

// Concordance collects one ConcLine per occurrence of the search word,
// in document order. Matching is exact (case sensitivity is decided by
// how the corpus was tokenized). The number of produced lines always
// equals the frequency-table count of the word.
func Concordance(c Corpus, word string, window int) ([]*ConcLine, error) {
	if err := ValidateConcParams(word, window); err != nil {
		return nil, err
	}
	ans := make([]*ConcLine, 0)
	for i, tk := range c {
		if tk != word {
			continue
		}
		left := i - window
		if left < 0 {
			left = 0
		}
		right := i + 1 + window
		if right > len(c) {
			right = len(c)
		}
		ans = append(ans, &ConcLine{
			Left:  c[left:i],
			Word:  tk,
			Right: c[i+1 : right],
		})
	}
	return ans, nil
}
