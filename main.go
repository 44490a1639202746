package main

import (
	"fmt"
	"os"
	"slices"

	flag "github.com/spf13/pflag"

	"wordfreq/internal"
	_ "wordfreq/pkg/compressfile"
	"wordfreq/pkg/logger"
	_ "wordfreq/pkg/office"
	_ "wordfreq/pkg/plaintext"
	"wordfreq/pkg/search/index"
	"wordfreq/pkg/search/query"
	"wordfreq/pkg/search/tokenize"
)

var (
	InputFiles    []string
	FileType      int
	Words         []string
	Demo          bool
	Lookups       []string
	Prefixes      []string
	QueryFile     string
	FoldCase      bool
	MinLength     int
	Verbose       bool
	DetailVerbose bool
)

var demoWords = []string{"test", "testament", "testing", "ping", "pin", "pink", "pine", "pint", "testing", "pinetree"}

func main() {
	flag.StringSliceVarP(&InputFiles, "input", "i", nil, "input file, repeatable")
	flag.IntVarP(&FileType, "type", "t", 0, "force file type for all inputs")
	flag.StringSliceVarP(&Words, "word", "w", nil, "index a literal word, repeatable")
	flag.BoolVar(&Demo, "demo", false, "index the built-in sample word list")
	flag.StringSliceVarP(&Lookups, "lookup", "l", nil, "exact frequency query, repeatable")
	flag.StringSliceVarP(&Prefixes, "prefix", "p", nil, "completion query, repeatable")
	flag.StringVarP(&QueryFile, "queries", "q", "", "yaml file with lookup/complete lists")
	flag.BoolVar(&FoldCase, "fold", false, "case-fold words and queries")
	flag.IntVar(&MinLength, "min-length", 0, "drop extracted words shorter than this")
	flag.BoolVarP(&Verbose, "verbose", "v", false, "verbose")
	flag.BoolVar(&DetailVerbose, "vv", false, "detail verbose")
	flag.Parse()

	if len(InputFiles) == 0 && len(Words) == 0 && !Demo {
		flag.Usage()
		return
	}

	if DetailVerbose {
		logger.Enable(os.Stderr, true)
	} else if Verbose {
		logger.Enable(os.Stderr, false)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var tokOpts []tokenize.Option
	if FoldCase {
		tokOpts = append(tokOpts, tokenize.WithCaseFold())
	}
	if MinLength > 0 {
		tokOpts = append(tokOpts, tokenize.WithMinLength(MinLength))
	}
	opts := []index.Option{index.WithTokenizer(tokenize.New(tokOpts...))}
	if FileType != 0 {
		opts = append(opts, index.WithResolver(func(string) (internal.FileParser, error) {
			return internal.GetParser(FileType)
		}))
	}
	idx := index.New(opts...)

	words := Words
	if Demo {
		words = slices.Concat(demoWords, Words)
	}
	for _, w := range words {
		if err := idx.Add(w); err != nil {
			return err
		}
	}
	for _, f := range InputFiles {
		if _, err := idx.AddFile(f); err != nil {
			return err
		}
	}

	batch := &query.Batch{Lookup: Lookups, Complete: Prefixes}
	if QueryFile != "" {
		fromFile, err := query.Load(QueryFile)
		if err != nil {
			return err
		}
		batch.Merge(fromFile)
	}

	if !batch.Empty() {
		report, err := query.Run(idx, batch)
		if err != nil {
			return err
		}
		if err := report.Write(os.Stdout); err != nil {
			return err
		}
	}

	s := idx.Stats()
	fmt.Printf("files[%d] tokens[%d] words[%d] nodes[%d]\n", s.Files, s.Tokens, s.Words, s.Nodes)
	return nil
}
