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
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/mthulib/uhlumagama/corpus"
)

const bulkInsertChunkSize = 500

var ErrCorpusNotFound = errors.New("reference corpus not found")

// RefCorpusInfo describes one installed reference corpus.
type RefCorpusInfo struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	NumTypes int64  `json:"numTypes"`
}

// RefCorpusDatabase provides access to precalculated reference corpus
// frequency tables.
// note: the lifecycle of the instance is "per request"
type RefCorpusDatabase struct {
	db  *pgx.Conn
	ctx context.Context
}

func NewRefCorpusDatabase(db *pgx.Conn) *RefCorpusDatabase {
	return &RefCorpusDatabase{
		db:  db,
		ctx: context.Background(),
	}
}

// InitializeDB creates the registry tables. With force, any existing
// tables (and their data) are dropped first.
func (rdb *RefCorpusDatabase) InitializeDB(force bool) error {
	tx, err := rdb.db.Begin(rdb.ctx)
	if err != nil {
		return err
	}
	if force {
		log.Info().Msg("dropping existing tables (requested by the -f arg.)")
		_, err = tx.Exec(rdb.ctx, `DROP TABLE IF EXISTS refcorpus_words`)
		if err != nil {
			tx.Rollback(rdb.ctx)
			return err
		}
		_, err = tx.Exec(rdb.ctx, `DROP TABLE IF EXISTS refcorpora`)
		if err != nil {
			tx.Rollback(rdb.ctx)
			return err
		}
	}
	log.Info().Msg("creating tables")
	_, err = tx.Exec(rdb.ctx, `CREATE TABLE IF NOT EXISTS refcorpora (
		name varchar(100) NOT NULL,
		size bigint NOT NULL,
		num_types bigint NOT NULL,
		created timestamptz NOT NULL,
		PRIMARY KEY (name)
	)`)
	if err != nil {
		tx.Rollback(rdb.ctx)
		return err
	}
	_, err = tx.Exec(rdb.ctx, `CREATE TABLE IF NOT EXISTS refcorpus_words (
		corpus_name varchar(100) NOT NULL REFERENCES refcorpora(name) ON DELETE CASCADE,
		word varchar(300) NOT NULL,
		freq bigint NOT NULL,
		PRIMARY KEY (corpus_name, word)
	)`)
	if err != nil {
		tx.Rollback(rdb.ctx)
		return err
	}
	return tx.Commit(rdb.ctx)
}

// ImportFreqTable stores a reference corpus frequency table under the
// provided name, replacing any previous corpus of the same name.
func (rdb *RefCorpusDatabase) ImportFreqTable(name string, ft corpus.FreqTable) error {
	tx, err := rdb.db.Begin(rdb.ctx)
	if err != nil {
		return err
	}
	_, err = tx.Exec(rdb.ctx, "DELETE FROM refcorpora WHERE name = $1", name)
	if err != nil {
		tx.Rollback(rdb.ctx)
		return err
	}
	_, err = tx.Exec(
		rdb.ctx,
		"INSERT INTO refcorpora (name, size, num_types, created) VALUES ($1, $2, $3, $4)",
		name, ft.Total(), len(ft), time.Now(),
	)
	if err != nil {
		tx.Rollback(rdb.ctx)
		return err
	}

	log.Info().Str("corpus", name).Int("numTypes", len(ft)).Msg("writing data into database")
	t0 := time.Now()
	cols := []string{"corpus_name", "word", "freq"}
	args := make([][]any, 0, bulkInsertChunkSize)
	for word, freq := range ft {
		if len(args) == bulkInsertChunkSize {
			copyCount, err := tx.CopyFrom(
				rdb.ctx,
				pgx.Identifier{"refcorpus_words"},
				cols,
				pgx.CopyFromRows(args),
			)
			if err != nil {
				tx.Rollback(rdb.ctx)
				return err
			}
			args = args[:0]
			log.Debug().Int64("items", copyCount).Msg("written bulk into database")
		}
		args = append(args, []any{name, word, freq})
	}
	if len(args) > 0 {
		copyCount, err := tx.CopyFrom(
			rdb.ctx,
			pgx.Identifier{"refcorpus_words"},
			cols,
			pgx.CopyFromRows(args),
		)
		if err != nil {
			tx.Rollback(rdb.ctx)
			return err
		}
		log.Debug().Int64("items", copyCount).Msg("written bulk into database")
	}
	err = tx.Commit(rdb.ctx)
	log.Info().Float64("durationSec", time.Since(t0).Seconds()).Msg("...writing done")
	return err
}

// GetFreqTable loads the frequency table of a named reference corpus.
func (rdb *RefCorpusDatabase) GetFreqTable(name string) (corpus.FreqTable, error) {
	var numTypes int64
	row := rdb.db.QueryRow(rdb.ctx, "SELECT num_types FROM refcorpora WHERE name = $1", name)
	err := row.Scan(&numTypes)
	if err == pgx.ErrNoRows {
		return nil, ErrCorpusNotFound
	} else if err != nil {
		return nil, err
	}
	t0 := time.Now()
	rows, err := rdb.db.Query(
		rdb.ctx, "SELECT word, freq FROM refcorpus_words WHERE corpus_name = $1", name)
	if err != nil {
		return nil, err
	}
	ans := make(corpus.FreqTable, numTypes)
	for rows.Next() {
		var word string
		var freq int64
		if err := rows.Scan(&word, &freq); err != nil {
			return nil, err
		}
		ans[word] = freq
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Debug().
		Str("corpus", name).
		Float64("proctime", time.Since(t0).Seconds()).
		Msg("loaded reference frequency table")
	return ans, nil
}

// ListCorpora lists installed reference corpora, sorted by name.
func (rdb *RefCorpusDatabase) ListCorpora() ([]*RefCorpusInfo, error) {
	rows, err := rdb.db.Query(
		rdb.ctx, "SELECT name, size, num_types FROM refcorpora ORDER BY name")
	if err != nil {
		return nil, err
	}
	ans := make([]*RefCorpusInfo, 0, 10)
	for rows.Next() {
		item := &RefCorpusInfo{}
		if err := rows.Scan(&item.Name, &item.Size, &item.NumTypes); err != nil {
			return nil, err
		}
		ans = append(ans, item)
	}
	return ans, rows.Err()
}
