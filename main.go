package main

import (
	goerrors "errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/prepor/Eden/errors"
	"github.com/prepor/Eden/internal/dump"
	"github.com/prepor/Eden/lexer"
)

var (
	format    = kingpin.Flag("format", "Output format, either text or json").Short('f').Default("text").Enum("text", "json")
	locations = kingpin.Flag("locations", "Include the line and column of every token").Default("true").Bool()
	check     = kingpin.Flag("check", "Only report lexical errors, don't print tokens").Short('c').Bool()
	stats     = kingpin.Flag("stats", "Print per-type token counts after each file").Short('s').Bool()
	watch     = kingpin.Flag("watch", "Watch files for changes and re-tokenize automatically").Short('w').Bool()
	files     = kingpin.Arg("files", "List of EDN files to tokenize").Required().ExistingFiles()
)

func main() {
	kingpin.Parse()

	if *watch {
		err := watchFiles()
		if err != nil {
			kingpin.Fatalf("failed to watch files: %s", err)
		}
		return
	}

	failed := false

	for _, fname := range *files {
		if err := processFile(fname); err != nil {
			reportError(fname, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

func processFile(fname string) error {
	contents, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var opts []lexer.Option
	if *locations {
		opts = append(opts, lexer.WithLocations())
	}

	tokens, err := lexer.Tokenize(contents, fname, opts...)
	if err != nil {
		return fmt.Errorf("tokenize file: %w", err)
	}

	w := dump.NewWriter(os.Stdout)

	if !*check {
		switch *format {
		case "json":
			err = w.JSON(tokens)
		default:
			err = w.Text(tokens)
		}
		if err != nil {
			return fmt.Errorf("write tokens: %w", err)
		}
	}

	if *stats {
		if err := w.Stats(tokens); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
	}

	return nil
}

func reportError(fname string, err error) {
	var situated errors.SituatedErr

	if goerrors.As(err, &situated) {
		at := situated.At()
		fmt.Fprintf(os.Stderr, "%s: %s\n", &at, situated.Unwrap())
	} else {
		fmt.Fprintf(os.Stderr, "%s: %s\n", fname, err)
	}
}

func watchFiles() error {
	watcher, err := NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	for _, fname := range *files {
		if err := processFile(fname); err != nil {
			reportError(fname, err)
		}

		err = watcher.WatchFile(fname)
		if err != nil {
			return fmt.Errorf("watch file %q: %w", fname, err)
		}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	log.Println("watching files for changes...")

	<-ch
	return nil
}
