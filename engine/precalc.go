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
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/mthulib/uhlumagama/corpus"
)

// RunImport precalculates a reference corpus frequency table from
// either a plain text file or a corpus vertical file (.vert) and stores
// it in the registry under the provided name. The keyness endpoint can
// then refer to the corpus by name instead of requiring an upload.
func RunImport(db *pgx.Conn, name, path string, tkConf corpus.TokenizeConf) error {
	if name == "" {
		return fmt.Errorf("missing reference corpus name")
	}
	var ft corpus.FreqTable
	if strings.HasSuffix(path, ".vert") || strings.HasSuffix(path, ".vert.gz") {
		var err error
		ft, err = ParseVerticalFreq(path, tkConf)
		if err != nil {
			return fmt.Errorf("failed to parse vertical file %s: %w", path, err)
		}

	} else {
		rawData, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read corpus file %s: %w", path, err)
		}
		text, charset, err := corpus.Decode(rawData)
		if err != nil {
			return err
		}
		log.Info().Str("charset", charset).Msg("decoded corpus file")
		ft = corpus.NewFreqTable(corpus.Tokenize(text, tkConf))
	}
	log.Info().
		Str("corpus", name).
		Int64("size", ft.Total()).
		Int("numTypes", len(ft)).
		Msg("frequency table done")
	return NewRefCorpusDatabase(db).ImportFreqTable(name, ft)
}
