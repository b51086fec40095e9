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
	"math"
	"sort"
)

// KeynessItem carries the signed log-likelihood score of a single study
// corpus token. A positive score means the token is overrepresented in
// the study corpus relative to the reference.
type KeynessItem struct {
	Word      string  `json:"word"`
	Score     float64 `json:"score"`
	StudyFreq int64   `json:"studyFreq"`
	RefFreq   int64   `json:"refFreq"`
}

type KeynessResult struct {

	// Unavailable is set when the reference corpus is empty; scores are
	// zero in such case as no comparison can be made.
	Unavailable bool `json:"comparisonUnavailable"`

	StudySize int64          `json:"studySize"`
	RefSize   int64          `json:"refSize"`
	Items     []*KeynessItem `json:"items"`
}

// logLikelihood calculates log-likelihood (G²) for a 2x2 contingency
// table.
//
// a: frequency of the term in the study corpus
// b: frequency of the term in the reference corpus
// n1: total tokens in the study corpus
// n2: total tokens in the reference corpus
//
// Expected counts under the null hypothesis of equal relative frequency
// are e1 = n1*(a+b)/(n1+n2) and e2 = n2*(a+b)/(n1+n2). A term with zero
// observed count contributes zero (avoids 0*ln(0)).
func logLikelihood(a, b, n1, n2 float64) float64 {
	e1 := n1 * (a + b) / (n1 + n2)
	e2 := n2 * (a + b) / (n1 + n2)

	var g2a, g2b float64
	if a > 0 {
		g2a = a * math.Log(a/e1)
	}
	if b > 0 {
		g2b = b * math.Log(b/e2)
	}
	return 2 * (g2a + g2b)
}

// Keyness computes a signed G² score for every token present in the
// study table. G² itself is non-negative; the score is negated when the
// token's relative frequency in the study corpus is below the one in
// the reference, so swapping the corpora negates every score. Items are
// ranked by |score| descending, ties broken by word ascending. An empty
// reference corpus yields a result marked unavailable rather than a
// division by zero; a missing reference table is an error.
func Keyness(study, ref FreqTable) (*KeynessResult, error) {
	if ref == nil {
		return nil, &InvalidReferenceError{Reason: "no reference corpus supplied"}
	}
	n1 := study.Total()
	n2 := ref.Total()
	ans := &KeynessResult{
		StudySize: n1,
		RefSize:   n2,
		Items:     make([]*KeynessItem, 0, len(study)),
	}
	if n2 == 0 {
		ans.Unavailable = true
		for word, a := range study {
			ans.Items = append(ans.Items, &KeynessItem{Word: word, StudyFreq: a})
		}
		sortKeynessItems(ans.Items)
		return ans, nil
	}
	for word, a := range study {
		b := ref[word]
		score := logLikelihood(float64(a), float64(b), float64(n1), float64(n2))
		if a*n2 < b*n1 {
			score = -score
		}
		ans.Items = append(ans.Items, &KeynessItem{
			Word:      word,
			Score:     score,
			StudyFreq: a,
			RefFreq:   b,
		})
	}
	sortKeynessItems(ans.Items)
	return ans, nil
}

func sortKeynessItems(items []*KeynessItem) {
	sort.SliceStable(items, func(i, j int) bool {
		si, sj := math.Abs(items[i].Score), math.Abs(items[j].Score)
		if si != sj {
			return sj < si
		}
		return items[i].Word < items[j].Word
	})
}
