package importer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mmo-importer/internal/adapter/export"
	"github.com/heartmarshall/mmo-importer/internal/app/resolver"
	"github.com/heartmarshall/mmo-importer/internal/config"
	"github.com/heartmarshall/mmo-importer/internal/domain"
	"github.com/heartmarshall/mmo-importer/internal/idalloc"
	"github.com/heartmarshall/mmo-importer/internal/legacy"
)

// Options controls one import run.
type Options struct {
	// Acknowledged confirms that the output replaces the downstream
	// dictionary store. Run refuses to start without it.
	Acknowledged bool
	// DryRun converts and encodes everything but writes no files.
	DryRun bool
}

// ResolveSummary counts the outcome of the optional resolve pass.
type ResolveSummary struct {
	Links      int
	Resolved   int
	Unresolved int
}

// Result holds import statistics.
type Result struct {
	RunID         uuid.UUID
	DryRun        bool
	Survey        Survey
	Stats         Stats
	FirstID       int
	NextID        int
	EntriesPath   string
	LeftoversPath string
	ReportPath    string
	Resolve       *ResolveSummary
	Duration      time.Duration
}

// Transform converts every lexeme in order, drawing ids from ids. The
// lexemes are consumed in place and hold only unmapped fields afterwards.
// The first error aborts the whole transform.
func Transform(ids *idalloc.Allocator, lexemes []*legacy.Object, log *slog.Logger) ([]domain.Entry, Stats, error) {
	first := ids.Peek()
	conv := NewConverter(ids, log)
	entries := make([]domain.Entry, 0, len(lexemes))
	for _, lex := range lexemes {
		entry, err := conv.Lexeme(lex)
		if err != nil {
			return nil, conv.Stats(), fmt.Errorf("convert %s: %w", lex.Path(), err)
		}
		entries = append(entries, entry)
	}
	if err := checkIDs(entries, first, ids.Peek()); err != nil {
		return nil, conv.Stats(), err
	}
	return entries, conv.Stats(), nil
}

// checkIDs verifies that every id in [first, next) is carried by exactly one
// output record and that no record carries an id outside that range.
func checkIDs(entries []domain.Entry, first, next int) error {
	seen := make(map[int]struct{}, next-first)
	for _, e := range entries {
		for _, id := range e.IDs() {
			if id < first || id >= next {
				return fmt.Errorf("entry %d: id %d outside allocated range %d..%d", e.EntryID, id, first, next-1)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("entry %d: id %d assigned twice", e.EntryID, id)
			}
			seen[id] = struct{}{}
		}
	}
	if len(seen) != next-first {
		return fmt.Errorf("%d ids allocated but %d emitted", next-first, len(seen))
	}
	return nil
}

// Run loads the legacy export at cfg.InputPath, validates and converts it,
// then writes the entries and leftovers files. Every output is encoded in
// memory first, so a failing run writes nothing.
func Run(cfg config.ImportConfig, opts Options, log *slog.Logger) (Result, error) {
	if !opts.Acknowledged && !opts.DryRun {
		return Result{}, domain.ErrNotAcknowledged
	}

	start := time.Now()
	result := Result{
		RunID:         uuid.New(),
		DryRun:        opts.DryRun,
		FirstID:       cfg.FirstID,
		EntriesPath:   cfg.EntriesPath(),
		LeftoversPath: cfg.LeftoversPath(),
		ReportPath:    cfg.ResolveReportPath(),
	}
	log = log.With(slog.String("run_id", result.RunID.String()))

	entriesFormat, err := export.ParseFormat(cfg.EntriesFormat)
	if err != nil {
		return result, fmt.Errorf("entries format: %w", err)
	}
	leftoversFormat, err := export.ParseFormat(cfg.LeftoversFormat)
	if err != nil {
		return result, fmt.Errorf("leftovers format: %w", err)
	}

	doc, err := legacy.Load(cfg.InputPath)
	if err != nil {
		return result, err
	}
	log.Info("legacy export loaded",
		slog.String("path", cfg.InputPath),
		slog.Int("lexemes", len(doc.Lexemes)),
	)

	result.Survey, err = Validate(doc.Lexemes, log)
	if err != nil {
		return result, fmt.Errorf("validate: %w", err)
	}

	ids := idalloc.New(cfg.FirstID)
	entries, stats, err := Transform(ids, doc.Lexemes, log)
	result.Stats = stats
	if err != nil {
		return result, fmt.Errorf("transform: %w", err)
	}
	result.NextID = ids.Peek()

	entriesData, err := export.EncodeEntries(entriesFormat, entries)
	if err != nil {
		return result, err
	}
	leftoversData, err := export.EncodeLeftovers(leftoversFormat, doc.Lexemes)
	if err != nil {
		return result, err
	}

	var reportData []byte
	if result.ReportPath != "" {
		report := resolver.Resolve(entries, resolver.BuildIndex(entries, log), log)
		result.Resolve = &ResolveSummary{
			Links:      len(report.Links),
			Resolved:   report.Resolved,
			Unresolved: report.Unresolved,
		}
		reportData, err = export.Encode(export.FormatFromPath(result.ReportPath), report)
		if err != nil {
			return result, fmt.Errorf("resolve report: %w", err)
		}
	}

	if opts.DryRun {
		result.Duration = time.Since(start)
		log.Info("dry run complete, no files written",
			slog.Int("entries", stats.Entries),
			slog.Int("subentries", stats.Subentries),
		)
		return result, nil
	}

	if err := export.WriteFile(result.EntriesPath, entriesData); err != nil {
		return result, err
	}
	if err := export.WriteFile(result.LeftoversPath, leftoversData); err != nil {
		return result, err
	}
	if reportData != nil {
		if err := export.WriteFile(result.ReportPath, reportData); err != nil {
			return result, err
		}
	}

	result.Duration = time.Since(start)
	log.Info("mmo-import complete",
		slog.Int("lexemes", result.Survey.Lexemes),
		slog.Int("multi_pos_lexemes", result.Survey.MultiPOSLexemes),
		slog.Int("entries", stats.Entries),
		slog.Int("subentries", stats.Subentries),
		slog.Int("ids_allocated", ids.Allocated()),
		slog.Int("dropped_recordings", stats.DroppedRecordings),
		slog.Int("recording_warnings", stats.RecordingWarnings),
		slog.String("entries_path", result.EntriesPath),
		slog.String("leftovers_path", result.LeftoversPath),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}
