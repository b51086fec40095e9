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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreqTableScenario(t *testing.T) {
	tokens := Tokenize("aa bb aa cc aa", TokenizeConf{Digits: true})
	ft := NewFreqTable(tokens)
	assert.Equal(t, FreqTable{"aa": 3, "bb": 1, "cc": 1}, ft)
	items := ft.SortedItems()
	assert.Equal(
		t,
		FreqItemList{
			{Value: "aa", Freq: 3},
			{Value: "bb", Freq: 1},
			{Value: "cc", Freq: 1},
		},
		items,
	)
}

func TestFreqTableTotalEqualsCorpusLength(t *testing.T) {
	tokens := Tokenize(
		"izolo nanamuhla nangomuso izolo nangomuso izolo",
		TokenizeConf{Digits: true},
	)
	ft := NewFreqTable(tokens)
	assert.Equal(t, int64(len(tokens)), ft.Total())
}

func TestFreqTableEmptyCorpus(t *testing.T) {
	ft := NewFreqTable(Corpus{})
	assert.Equal(t, int64(0), ft.Total())
	assert.Empty(t, ft.SortedItems())
}

func TestSortedItemsTieBreak(t *testing.T) {
	ft := FreqTable{"zz": 2, "aa": 2, "mm": 2, "bb": 5}
	items := ft.SortedItems()
	assert.Equal(
		t,
		FreqItemList{
			{Value: "bb", Freq: 5},
			{Value: "aa", Freq: 2},
			{Value: "mm", Freq: 2},
			{Value: "zz", Freq: 2},
		},
		items,
	)
}

func TestSortedItemsIdempotent(t *testing.T) {
	ft := NewFreqTable(Tokenize("cc aa bb aa cc dd", TokenizeConf{Digits: true}))
	assert.Equal(t, ft.SortedItems(), ft.SortedItems())
}

func TestFreqItemListCut(t *testing.T) {
	items := FreqItemList{
		{Value: "aa", Freq: 3},
		{Value: "bb", Freq: 2},
		{Value: "cc", Freq: 1},
	}
	assert.Len(t, items.Cut(2), 2)
	assert.Len(t, items.Cut(10), 3)
}

func TestLetterFreq(t *testing.T) {
	tokens := Tokenize("Abba ab", TokenizeConf{Digits: true})
	ft := LetterFreq(tokens, true)
	assert.Equal(t, FreqTable{"a": 3, "b": 3}, ft)
}

func TestLetterFreqCaseSensitive(t *testing.T) {
	tokens := Tokenize("Abba", TokenizeConf{Digits: true})
	ft := LetterFreq(tokens, false)
	assert.Equal(t, FreqTable{"A": 1, "a": 1, "b": 2}, ft)
}

func TestLetterFreqTotalEqualsRuneCount(t *testing.T) {
	tokens := Corpus{"café", "über"}
	ft := LetterFreq(tokens, true)
	assert.Equal(t, int64(8), ft.Total())
}
