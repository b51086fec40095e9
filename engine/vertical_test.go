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

package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomachalek/vertigo/v5"

	"github.com/mthulib/uhlumagama/corpus"
)

func TestVertProcessorCountsWords(t *testing.T) {
	proc := &VertProcessor{
		TkConf: corpus.TokenizeConf{Lowercase: true, Digits: true},
		Table:  make(corpus.FreqTable),
	}
	for i, w := range []string{"Amanzi", "amanzi", "ayimpilo", "."} {
		err := proc.ProcToken(&vertigo.Token{Word: w}, i+1, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, corpus.FreqTable{"amanzi": 2, "ayimpilo": 1}, proc.Table)
}

func TestVertProcessorDropsPunctuationTokens(t *testing.T) {
	proc := &VertProcessor{
		TkConf: corpus.TokenizeConf{Digits: true},
		Table:  make(corpus.FreqTable),
	}
	for i, w := range []string{",", "!", "...", "(", ")"} {
		err := proc.ProcToken(&vertigo.Token{Word: w}, i+1, nil)
		require.NoError(t, err)
	}
	assert.Empty(t, proc.Table)
}

func TestVertProcessorPropagatesParserError(t *testing.T) {
	proc := &VertProcessor{
		TkConf: corpus.TokenizeConf{Digits: true},
		Table:  make(corpus.FreqTable),
	}
	parserErr := fmt.Errorf("malformed line")
	err := proc.ProcToken(nil, 1, parserErr)
	assert.ErrorIs(t, err, parserErr)
}
