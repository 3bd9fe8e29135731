// Entry point for the nutricorpus CLI — builds a filtered chunk corpus from
// a YAML manifest of nutrition guideline PDFs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/nutriguide/nutricorpus/corpus"
	"github.com/nutriguide/nutricorpus/dbopen"
	"github.com/nutriguide/nutricorpus/observability"
	_ "modernc.org/sqlite"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "process":
		cmdProcess(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `nutricorpus — build a filtered nutrition guideline corpus

usage:
  nutricorpus process [-v] [-audit-db path] <manifest.yaml>

process   Extracts, filters and classifies every document in the manifest,
          then prints a corpus report. With -audit-db, every run and event
          is recorded in a SQLite audit database.
`)
}

func cmdProcess(args []string) {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	verbose := fs.Bool("v", false, "debug logging")
	auditDB := fs.String("audit-db", "", "path to the SQLite audit database (optional)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "process requires a manifest path")
		os.Exit(1)
	}
	manifestPath := fs.Arg(0)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := observability.NewLogger(os.Stderr, level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := corpus.Config{Logger: logger}

	var events *observability.EventLogger
	if *auditDB != "" {
		db, err := dbopen.Open(*auditDB, dbopen.WithMkdirAll(), dbopen.WithSchema(observability.Schema))
		if err != nil {
			logger.Error("audit db open failed", "path", *auditDB, "error", err)
			os.Exit(1)
		}
		defer db.Close()

		events, err = observability.NewEventLogger(ctx, db, logger, manifestPath)
		if err != nil {
			logger.Error("audit run open failed", "error", err)
			os.Exit(1)
		}
		cfg.Events = events
		logger.Info("audit trail enabled", "path", *auditDB, "run_id", events.RunID())
	}

	chunks, report, err := corpus.NewLoader(cfg).Load(ctx, manifestPath)
	if events != nil && report != nil {
		events.Finish(ctx, observability.RunSummary{
			DocumentsOK:     report.DocumentsOK,
			DocumentsFailed: report.DocumentsFailed,
			ChunksTotal:     report.ChunksBeforeValidation,
			ChunksRemoved:   report.ChunksRemoved,
		})
	}
	if err != nil {
		if errors.Is(err, corpus.ErrAllChunksRemoved) {
			logger.Error("corpus build failed: every chunk was removed, inputs need manual review")
		} else {
			logger.Error("corpus build failed", "error", err)
		}
		os.Exit(1)
	}

	printReport(chunks, report)
}

func printReport(chunks []corpus.Chunk, report *corpus.Report) {
	fmt.Printf("\ncorpus built: %d chunks\n", len(chunks))
	fmt.Printf("  documents ok:     %d\n", report.DocumentsOK)
	fmt.Printf("  documents failed: %d\n", report.DocumentsFailed)
	fmt.Printf("  chunks removed:   %d of %d\n", report.ChunksRemoved, report.ChunksBeforeValidation)

	for _, f := range report.Failures {
		fmt.Printf("  failed: %s: %v\n", f.SourceID, f.Err)
	}

	byType := make(map[string]int)
	withTables := 0
	for _, c := range chunks {
		byType[string(c.DocumentType)]++
		if c.ContainsTables {
			withTables++
		}
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Println("\ndocument types:")
	for _, t := range types {
		fmt.Printf("  %-20s %d\n", t, byType[t])
	}
	fmt.Printf("chunks with nutrient tables: %d\n", withTables)

	if len(chunks) > 0 {
		c := chunks[0]
		content := c.Content
		if len(content) > 200 {
			content = content[:200] + "..."
		}
		fmt.Println("\nsample chunk:")
		fmt.Printf("  source: %s page %d\n", c.SourceID, c.PageNumber)
		fmt.Printf("  type=%s safety=%s stages=%v\n", c.DocumentType, c.SafetyLevel, c.LifeStages)
		fmt.Printf("  %s\n", content)
	}
}
