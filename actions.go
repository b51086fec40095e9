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

package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/mthulib/uhlumagama/corpus"
	"github.com/mthulib/uhlumagama/engine"
)

type freqResponse struct {
	CorpusSize int64               `json:"corpusSize"`
	Charset    string              `json:"charset"`
	Freqs      corpus.FreqItemList `json:"freqs"`
}

type ngramResponse struct {
	CorpusSize int64               `json:"corpusSize"`
	Size       int                 `json:"size"`
	Ngrams     []*corpus.NGramItem `json:"ngrams"`
}

type concResponse struct {
	CorpusSize int64              `json:"corpusSize"`
	Word       string             `json:"word"`
	Matches    int                `json:"matches"`
	Lines      []*corpus.ConcLine `json:"lines"`
}

type wordCountResponse struct {
	CorpusSize int64  `json:"corpusSize"`
	NumTypes   int    `json:"numTypes"`
	Charset    string `json:"charset"`
}

type refCorporaResponse struct {
	Corpora []*engine.RefCorpusInfo `json:"corpora"`
}

type Actions struct {
	db             *pgx.Conn
	maxUploadBytes int64
}

// mapCoreError translates the analysis core error taxonomy onto HTTP
// statuses. Parameter and reference problems are client errors; decode
// failures ask the user to re-save the file in a supported encoding.
func (a *Actions) mapCoreError(ctx *gin.Context, err error) {
	var paramErr *corpus.InvalidParameterError
	var refErr *corpus.InvalidReferenceError
	var decodeErr *corpus.DecodeError
	switch {
	case errors.As(err, &paramErr), errors.As(err, &refErr):
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
	case errors.As(err, &decodeErr):
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
	default:
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
	}
}

func (a *Actions) tokenizeConf(ctx *gin.Context) corpus.TokenizeConf {
	return corpus.TokenizeConf{
		Lowercase: ctx.Query("lowercase") == "1",
		Digits:    ctx.DefaultQuery("digits", "1") == "1",
	}
}

// uploadedText reads and decodes one uploaded file of a multipart
// request. On failure it responds and returns ok = false.
func (a *Actions) uploadedText(ctx *gin.Context, field string) (text, charset string, ok bool) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		uniresp.RespondWithErrorJSON(
			ctx,
			uniresp.NewActionError("missing uploaded file `%s`", field),
			http.StatusBadRequest,
		)
		return "", "", false
	}
	if fileHeader.Size > a.maxUploadBytes {
		uniresp.RespondWithErrorJSON(
			ctx,
			uniresp.NewActionError(
				"uploaded file `%s` exceeds the %d bytes limit", field, a.maxUploadBytes),
			http.StatusRequestEntityTooLarge,
		)
		return "", "", false
	}
	file, err := fileHeader.Open()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return "", "", false
	}
	defer file.Close()
	rawData, err := io.ReadAll(file)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return "", "", false
	}
	text, charset, err = corpus.Decode(rawData)
	if err != nil {
		a.mapCoreError(ctx, err)
		return "", "", false
	}
	return text, charset, true
}

func (a *Actions) uploadedCorpus(ctx *gin.Context, field string) (corpus.Corpus, string, bool) {
	text, charset, ok := a.uploadedText(ctx, field)
	if !ok {
		return nil, "", false
	}
	return corpus.Tokenize(text, a.tokenizeConf(ctx)), charset, true
}

func csvRequested(ctx *gin.Context) bool {
	return ctx.Query("format") == "csv"
}

func writeCSVResponse(ctx *gin.Context, filename string, fn func(w io.Writer) error) {
	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	ctx.Status(http.StatusOK)
	if err := fn(ctx.Writer); err != nil {
		log.Error().Err(err).Msg("failed to write CSV response")
	}
}

// WordFreq provides the ranked word frequency list of an uploaded
// corpus ("uhlumagama").
func (a *Actions) WordFreq(ctx *gin.Context) {
	tokens, charset, ok := a.uploadedCorpus(ctx, "corpus")
	if !ok {
		return
	}
	ft := corpus.NewFreqTable(tokens)
	items := ft.SortedItems()
	if csvRequested(ctx) {
		writeCSVResponse(ctx, "word_list.csv", func(w io.Writer) error {
			return corpus.WriteFreqCSV(w, "word", items)
		})
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		freqResponse{CorpusSize: ft.Total(), Charset: charset, Freqs: items},
	)
}

// LetterFreq provides per-character counts over all corpus tokens
// ("isibalo sezinhlamvu zamagama").
func (a *Actions) LetterFreq(ctx *gin.Context) {
	tokens, charset, ok := a.uploadedCorpus(ctx, "corpus")
	if !ok {
		return
	}
	ft := corpus.LetterFreq(tokens, ctx.DefaultQuery("lowercase", "1") == "1")
	items := ft.SortedItems()
	if csvRequested(ctx) {
		writeCSVResponse(ctx, "letter_freq.csv", func(w io.Writer) error {
			return corpus.WriteFreqCSV(w, "letter", items)
		})
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		freqResponse{CorpusSize: ft.Total(), Charset: charset, Freqs: items},
	)
}

// WordCount provides the corpus size ("isibalo samagama").
func (a *Actions) WordCount(ctx *gin.Context) {
	tokens, charset, ok := a.uploadedCorpus(ctx, "corpus")
	if !ok {
		return
	}
	ft := corpus.NewFreqTable(tokens)
	uniresp.WriteJSONResponse(
		ctx.Writer,
		wordCountResponse{
			CorpusSize: int64(len(tokens)),
			NumTypes:   len(ft),
			Charset:    charset,
		},
	)
}

// NGrams provides the ranked n-gram list ("onhlamvunye") for a window
// size between 1 and 5.
func (a *Actions) NGrams(ctx *gin.Context) {
	size, ok := unireq.GetURLIntArgOrFail(ctx, "size", 2)
	if !ok {
		return
	}
	if err := corpus.ValidateNGramSize(size); err != nil {
		a.mapCoreError(ctx, err)
		return
	}
	tokens, _, ok := a.uploadedCorpus(ctx, "corpus")
	if !ok {
		return
	}
	items, err := corpus.NGrams(tokens, size)
	if err != nil {
		a.mapCoreError(ctx, err)
		return
	}
	if csvRequested(ctx) {
		writeCSVResponse(ctx, "ngrams.csv", func(w io.Writer) error {
			return corpus.WriteNGramCSV(w, items)
		})
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		ngramResponse{CorpusSize: int64(len(tokens)), Size: size, Ngrams: items},
	)
}

// Concordance provides context windows around every occurrence of the
// search word ("imvumelwanomagama").
func (a *Actions) Concordance(ctx *gin.Context) {
	word := ctx.Query("word")
	window, ok := unireq.GetURLIntArgOrFail(ctx, "window", corpus.DefaultConcWindow)
	if !ok {
		return
	}
	if err := corpus.ValidateConcParams(word, window); err != nil {
		a.mapCoreError(ctx, err)
		return
	}
	tokens, _, ok := a.uploadedCorpus(ctx, "corpus")
	if !ok {
		return
	}
	lines, err := corpus.Concordance(tokens, word, window)
	if err != nil {
		a.mapCoreError(ctx, err)
		return
	}
	if csvRequested(ctx) {
		writeCSVResponse(ctx, "concordance.csv", func(w io.Writer) error {
			return corpus.WriteConcordanceCSV(w, lines)
		})
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		concResponse{
			CorpusSize: int64(len(tokens)),
			Word:       word,
			Matches:    len(lines),
			Lines:      lines,
		},
	)
}

// referenceFreqTable obtains the keyness reference table, either from
// a named precalculated corpus or from a second uploaded file.
func (a *Actions) referenceFreqTable(ctx *gin.Context) (corpus.FreqTable, error) {
	if refName := ctx.Query("refCorpus"); refName != "" {
		if a.db == nil {
			return nil, &corpus.InvalidReferenceError{
				Reason: "reference corpus registry not configured"}
		}
		ft, err := engine.NewRefCorpusDatabase(a.db).GetFreqTable(refName)
		if err == engine.ErrCorpusNotFound {
			return nil, &corpus.InvalidReferenceError{
				Reason: fmt.Sprintf("reference corpus %s not installed", refName)}
		}
		return ft, err
	}
	fileHeader, err := ctx.FormFile("reference")
	if err != nil {
		return nil, &corpus.InvalidReferenceError{
			Reason: "neither a `reference` file nor a `refCorpus` name provided"}
	}
	if fileHeader.Size > a.maxUploadBytes {
		return nil, &corpus.InvalidReferenceError{
			Reason: fmt.Sprintf("reference file exceeds the %d bytes limit", a.maxUploadBytes)}
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	rawData, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	text, _, err := corpus.Decode(rawData)
	if err != nil {
		return nil, err
	}
	return corpus.NewFreqTable(corpus.Tokenize(text, a.tokenizeConf(ctx))), nil
}

// Keyness compares an uploaded study corpus against a reference corpus
// via per-token log-likelihood ("ubungqikithimagama").
func (a *Actions) Keyness(ctx *gin.Context) {
	tokens, _, ok := a.uploadedCorpus(ctx, "corpus")
	if !ok {
		return
	}
	refTable, err := a.referenceFreqTable(ctx)
	if err != nil {
		a.mapCoreError(ctx, err)
		return
	}
	result, err := corpus.Keyness(corpus.NewFreqTable(tokens), refTable)
	if err != nil {
		a.mapCoreError(ctx, err)
		return
	}
	if csvRequested(ctx) {
		writeCSVResponse(ctx, "keyness.csv", func(w io.Writer) error {
			return corpus.WriteKeynessCSV(w, result)
		})
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}

// Wordcloud provides the top ranked tokens as a rendering source for
// word-cloud images ("amafumagama"). The rendering itself is left to
// the client.
func (a *Actions) Wordcloud(ctx *gin.Context) {
	maxItems, ok := unireq.GetURLIntArgOrFail(ctx, "maxItems", 100)
	if !ok {
		return
	}
	tokens, charset, ok := a.uploadedCorpus(ctx, "corpus")
	if !ok {
		return
	}
	ft := corpus.NewFreqTable(tokens)
	items := ft.SortedItems().Cut(maxItems)
	if csvRequested(ctx) {
		writeCSVResponse(ctx, "wordcloud.csv", func(w io.Writer) error {
			return corpus.WriteFreqCSV(w, "word", items)
		})
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		freqResponse{CorpusSize: ft.Total(), Charset: charset, Freqs: items},
	)
}

// RefCorpora lists reference corpora installed in the registry.
func (a *Actions) RefCorpora(ctx *gin.Context) {
	if a.db == nil {
		uniresp.RespondWithErrorJSON(
			ctx,
			uniresp.NewActionError("reference corpus registry not configured"),
			http.StatusNotFound,
		)
		return
	}
	corpora, err := engine.NewRefCorpusDatabase(a.db).ListCorpora()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, refCorporaResponse{Corpora: corpora})
}

func NewActions(db *pgx.Conn, maxUploadBytes int64) *Actions {
	return &Actions{
		db:             db,
		maxUploadBytes: maxUploadBytes,
	}
}
