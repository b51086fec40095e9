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
	"sort"
	"strings"
)

// FreqTable maps a token (or a letter) to its number of occurrences.
// The sum of all counts equals the length of the Corpus it was built
// from.
type FreqTable map[string]int64

// NewFreqTable counts token occurrences of the provided corpus.
func NewFreqTable(c Corpus) FreqTable {
	ans := make(FreqTable)
	for _, tk := range c {
		ans[tk]++
	}
	return ans
}

// Total returns the summed frequency, i.e. the size of the source
// corpus.
func (ft FreqTable) Total() int64 {
	var ans int64
	for _, freq := range ft {
		ans += freq
	}
	return ans
}

type FreqItem struct {
	Value string `json:"value"`
	Freq  int64  `json:"freq"`
}

type FreqItemList []*FreqItem

func (flist FreqItemList) Cut(maxItems int) FreqItemList {
	if maxItems > 0 && len(flist) > maxItems {
		return flist[:maxItems]
	}
	return flist
}

// SortedItems provides a ranked view of the table: frequency descending,
// ties broken by value ascending so repeated runs produce identical
// ordered output.
func (ft FreqTable) SortedItems() FreqItemList {
	ans := make(FreqItemList, 0, len(ft))
	for value, freq := range ft {
		ans = append(ans, &FreqItem{Value: value, Freq: freq})
	}
	sort.SliceStable(ans, func(i, j int) bool {
		if ans[i].Freq != ans[j].Freq {
			return ans[j].Freq < ans[i].Freq
		}
		return ans[i].Value < ans[j].Value
	})
	return ans
}

// LetterFreq flattens corpus tokens into single characters and counts
// per-character occurrence, case-folded on demand.
func LetterFreq(c Corpus, lowercase bool) FreqTable {
	ans := make(FreqTable)
	for _, tk := range c {
		if lowercase {
			tk = strings.ToLower(tk)
		}
		for _, r := range tk {
			ans[string(r)]++
		}
	}
	return ans
}
