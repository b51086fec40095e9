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
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/cors"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/mthulib/uhlumagama/cnf"
	"github.com/mthulib/uhlumagama/corpus"
	"github.com/mthulib/uhlumagama/engine"
)

var (
	version   string
	buildDate string
	gitCommit string
)

// VersionInfo provides a detailed information about the actual build
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

func runApiServer(
	conf *cnf.Conf,
	syscallChan chan os.Signal,
	exitEvent chan os.Signal,
	sqlDB *pgx.Conn,
) {
	if !conf.LogLevel.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.GinMiddleware())
	router.Use(uniresp.AlwaysJSONContentType())
	router.Use(cors.CORSMiddleware(conf.CorsAllowedOrigins))
	router.NoMethod(uniresp.NoMethodHandler)
	router.NoRoute(uniresp.NotFoundHandler)

	analysisActions := NewActions(sqlDB, conf.MaxUploadSizeMB*1024*1024)

	router.POST("/analysis/word-freq", analysisActions.WordFreq)
	router.POST("/analysis/letter-freq", analysisActions.LetterFreq)
	router.POST("/analysis/word-count", analysisActions.WordCount)
	router.POST("/analysis/ngrams", analysisActions.NGrams)
	router.POST("/analysis/concordance", analysisActions.Concordance)
	router.POST("/analysis/keyness", analysisActions.Keyness)
	router.POST("/analysis/wordcloud", analysisActions.Wordcloud)
	router.GET("/refcorpora", analysisActions.RefCorpora)

	log.Info().Msgf("starting to listen at %s:%d", conf.ListenAddress, conf.ListenPort)
	srv := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort),
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		err := srv.ListenAndServe()
		if err != nil {
			log.Error().Err(err).Msg("")
		}
		syscallChan <- syscall.SIGTERM
	}()

	select {
	case <-exitEvent:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := srv.Shutdown(ctx)
		if err != nil {
			log.Info().Err(err).Msg("Shutdown request error")
		}
	}
}

func main() {
	version := VersionInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	lowercase := flag.Bool(
		"lowercase", false, "case-fold tokens when importing a reference corpus")
	noDigits := flag.Bool(
		"no-digits", false, "exclude digits from the word-character class on import")
	force := flag.Bool(
		"f", false, "force recreating of database tables (refcorp-init)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "UHLUMAGAMA - an IsiZulu corpus analysis server\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] start [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] refcorp-init [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] refcorp-import [config.json] [name] [path]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("uhlumagama %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return
	}
	conf := cnf.LoadConfig(flag.Arg(1))

	if action == "test" {
		cnf.ValidateAndDefaults(conf)
		log.Info().Msg("config OK")
		return

	} else {
		logging.SetupLogging(conf.LogFile, conf.LogLevel)
	}
	log.Info().Msg("Starting Uhlumagama")
	cnf.ValidateAndDefaults(conf)
	syscallChan := make(chan os.Signal, 1)
	signal.Notify(syscallChan, os.Interrupt)
	signal.Notify(syscallChan, syscall.SIGTERM)
	exitEvent := make(chan os.Signal)

	go func() {
		evt := <-syscallChan
		exitEvent <- evt
		close(exitEvent)
	}()

	ctx := context.Background()
	var pgDB *pgx.Conn
	if conf.DB != nil {
		var err error
		pgDB, err = engine.OpenConnection(conf.DB, ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open database connection")
		}
	}

	switch action {
	case "start":
		runApiServer(conf, syscallChan, exitEvent, pgDB)
	case "refcorp-init":
		if pgDB == nil {
			log.Fatal().Msg("no db configured")
			return
		}
		err := engine.NewRefCorpusDatabase(pgDB).InitializeDB(*force)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize registry")
		}
	case "refcorp-import":
		if pgDB == nil {
			log.Fatal().Msg("no db configured")
			return
		}
		tkConf := corpus.TokenizeConf{Lowercase: *lowercase, Digits: !*noDigits}
		err := engine.RunImport(pgDB, flag.Arg(2), flag.Arg(3), tkConf)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to import reference corpus")
		}
	default:
		log.Fatal().Msgf("Unknown action %s", action)
	}
}
