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
	"github.com/stretchr/testify/require"
)

func findKeynessItem(items []*KeynessItem, word string) *KeynessItem {
	for _, item := range items {
		if item.Word == word {
			return item
		}
	}
	return nil
}

func TestKeynessOverrepresentedScenario(t *testing.T) {
	// "x" has 10% relative frequency in the study corpus vs. 1% in the
	// reference corpus
	study := FreqTable{"x": 10, "filler": 90}
	ref := FreqTable{"x": 10, "filler": 990}
	result, err := Keyness(study, ref)
	require.NoError(t, err)
	assert.False(t, result.Unavailable)
	assert.Equal(t, int64(100), result.StudySize)
	assert.Equal(t, int64(1000), result.RefSize)
	item := findKeynessItem(result.Items, "x")
	require.NotNil(t, item)
	assert.Greater(t, item.Score, 0.0)
	assert.Equal(t, int64(10), item.StudyFreq)
	assert.Equal(t, int64(10), item.RefFreq)
}

func TestKeynessSignSymmetry(t *testing.T) {
	study := FreqTable{"aa": 30, "bb": 10, "cc": 5}
	ref := FreqTable{"aa": 10, "bb": 40, "cc": 5, "dd": 20}
	forward, err := Keyness(study, ref)
	require.NoError(t, err)
	backward, err := Keyness(ref, study)
	require.NoError(t, err)
	for _, word := range []string{"aa", "bb", "cc"} {
		fw := findKeynessItem(forward.Items, word)
		bw := findKeynessItem(backward.Items, word)
		require.NotNil(t, fw)
		require.NotNil(t, bw)
		assert.InDelta(t, -fw.Score, bw.Score, 1e-9, "word %s", word)
	}
}

func TestKeynessStudyOnlyToken(t *testing.T) {
	study := FreqTable{"zz": 5, "filler": 95}
	ref := FreqTable{"filler": 100}
	result, err := Keyness(study, ref)
	require.NoError(t, err)
	item := findKeynessItem(result.Items, "zz")
	require.NotNil(t, item)
	assert.Greater(t, item.Score, 0.0)
	assert.Equal(t, int64(0), item.RefFreq)
}

func TestKeynessOnlyStudyTokensIncluded(t *testing.T) {
	study := FreqTable{"aa": 1}
	ref := FreqTable{"aa": 1, "bb": 10}
	result, err := Keyness(study, ref)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Nil(t, findKeynessItem(result.Items, "bb"))
}

func TestKeynessEmptyReference(t *testing.T) {
	study := FreqTable{"aa": 3, "bb": 1}
	result, err := Keyness(study, FreqTable{})
	require.NoError(t, err)
	assert.True(t, result.Unavailable)
	require.Len(t, result.Items, 2)
	for _, item := range result.Items {
		assert.Zero(t, item.Score)
	}
}

func TestKeynessMissingReference(t *testing.T) {
	_, err := Keyness(FreqTable{"aa": 1}, nil)
	var refErr *InvalidReferenceError
	assert.ErrorAs(t, err, &refErr)
}

func TestKeynessRankedByAbsScore(t *testing.T) {
	study := FreqTable{"hot": 50, "cold": 1, "warm": 25, "mild": 24}
	ref := FreqTable{"hot": 1, "cold": 50, "warm": 25, "mild": 24}
	result, err := Keyness(study, ref)
	require.NoError(t, err)
	for i := 1; i < len(result.Items); i++ {
		prev := result.Items[i-1].Score
		cur := result.Items[i].Score
		assert.GreaterOrEqual(t, abs(prev), abs(cur))
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestLogLikelihoodZeroTermConvention(t *testing.T) {
	// a == 0 must contribute zero, not NaN
	v := logLikelihood(0, 10, 100, 100)
	assert.False(t, v != v, "NaN produced")
}
