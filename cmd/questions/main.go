package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/knowledge-engine/questions/internal/api"
	"github.com/knowledge-engine/questions/internal/config"
	"github.com/knowledge-engine/questions/internal/corpus"
	"github.com/knowledge-engine/questions/internal/engine"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.Load()

	flagSet := pflag.NewFlagSet("questions", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.IntVarP(&cfg.Retrieval.FileMatches, "files", "f", cfg.Retrieval.FileMatches, "number of top files to search for sentences")
	flagSet.IntVarP(&cfg.Retrieval.SentenceMatches, "sentences", "s", cfg.Retrieval.SentenceMatches, "number of top sentences to print")
	flagSet.StringVar(&cfg.API.Addr, "listen", cfg.API.Addr, "serve the HTTP query API on this address instead of prompting")
	flagSet.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level (debug, info, warn, error)")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		printUsage(stderr, flagSet)
		return 1
	}
	if flagSet.NArg() != 1 {
		printUsage(stderr, flagSet)
		return 1
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	entry := logger.WithField("service", "questions")

	files, err := corpus.NewLoader(entry).Load(flagSet.Arg(0))
	if err != nil {
		entry.WithError(err).Error("Failed to load corpus")
		return 1
	}

	eng, err := engine.NewEngine(cfg, entry, files)
	if err != nil {
		entry.WithError(err).Error("Failed to initialize engine")
		return 1
	}

	if cfg.API.Addr != "" {
		if err := api.NewServer(eng, entry).Start(cfg.API.Addr); err != nil {
			entry.WithError(err).Error("API server stopped")
			return 1
		}
		return 0
	}

	fmt.Fprint(stdout, "Query: ")
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		entry.WithError(err).Error("Failed to read query")
		return 1
	}

	answer, err := eng.Query(line)
	if err != nil {
		entry.WithError(err).Error("Query failed")
		return 1
	}
	for _, sentence := range answer.Sentences {
		fmt.Fprintln(stdout, sentence)
	}
	return 0
}

func newLogger(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	if cfg.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: questions [flags] corpus\n\nFlags:\n")
	fmt.Fprint(w, flagSet.FlagUsages())
}
