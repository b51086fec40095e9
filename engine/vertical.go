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
	"github.com/tomachalek/vertigo/v5"

	"github.com/mthulib/uhlumagama/corpus"
)

// VertProcessor accumulates a word frequency table from a corpus
// vertical file. Only the word column is used; positional attributes
// are ignored. Punctuation tokens are dropped by running each vertical
// token through the same tokenizer the analysis core applies to plain
// text.
type VertProcessor struct {
	TkConf corpus.TokenizeConf
	Table  corpus.FreqTable
}

func (vp *VertProcessor) ProcToken(token *vertigo.Token, line int, err error) error {
	if err != nil {
		return err
	}
	for _, tk := range corpus.Tokenize(token.Word, vp.TkConf) {
		vp.Table[tk]++
	}
	return nil
}

func (vp *VertProcessor) ProcStruct(strc *vertigo.Structure, line int, err error) error {
	return nil
}

func (vp *VertProcessor) ProcStructClose(strc *vertigo.StructureClose, line int, err error) error {
	return nil
}

// ParseVerticalFreq builds a frequency table out of a vertical file.
func ParseVerticalFreq(vertPath string, tkConf corpus.TokenizeConf) (corpus.FreqTable, error) {
	pc := &vertigo.ParserConf{
		InputFilePath:         vertPath,
		Encoding:              "utf-8",
		StructAttrAccumulator: "comb",
	}
	proc := &VertProcessor{
		TkConf: tkConf,
		Table:  make(corpus.FreqTable),
	}
	if err := vertigo.ParseVerticalFile(pc, proc); err != nil {
		return nil, err
	}
	return proc.Table, nil
}
