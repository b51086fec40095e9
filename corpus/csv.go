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
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// CSV serialization of the analysis results. Each writer emits a header
// row followed by one row per entity, in the same deterministic order
// the corresponding builder produced.

func WriteFreqCSV(w io.Writer, valueHeader string, items FreqItemList) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{valueHeader, "freq"}); err != nil {
		return err
	}
	for _, item := range items {
		err := cw.Write([]string{item.Value, strconv.FormatInt(item.Freq, 10)})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteNGramCSV(w io.Writer, items []*NGramItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ngram", "freq"}); err != nil {
		return err
	}
	for _, item := range items {
		err := cw.Write([]string{item.String(), strconv.FormatInt(item.Freq, 10)})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteConcordanceCSV(w io.Writer, lines []*ConcLine) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"left", "word", "right"}); err != nil {
		return err
	}
	for _, line := range lines {
		err := cw.Write([]string{
			strings.Join(line.Left, " "),
			line.Word,
			strings.Join(line.Right, " "),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteKeynessCSV(w io.Writer, result *KeynessResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"word", "logLikelihood", "studyFreq", "refFreq"}); err != nil {
		return err
	}
	for _, item := range result.Items {
		score := strconv.FormatFloat(item.Score, 'f', 4, 64)
		if result.Unavailable {
			score = "unavailable"
		}
		err := cw.Write([]string{
			item.Word,
			score,
			strconv.FormatInt(item.StudyFreq, 10),
			strconv.FormatInt(item.RefFreq, 10),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
