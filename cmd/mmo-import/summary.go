package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/heartmarshall/mmo-importer/internal/app/importer"
	"github.com/heartmarshall/mmo-importer/internal/app/resolver"
)

func renderRunSummary(res importer.Result) string {
	written := func(path string) string {
		if res.DryRun {
			return path + " (dry run, not written)"
		}
		return path
	}

	metrics := []metric{
		{"Run ID", res.RunID.String()},
		{"Lexemes", strconv.Itoa(res.Survey.Lexemes)},
		{"Multi-POS lexemes", strconv.Itoa(res.Survey.MultiPOSLexemes)},
		{"Entries", strconv.Itoa(res.Stats.Entries)},
		{"Subentries", strconv.Itoa(res.Stats.Subentries)},
		{"Identifiers", idRange(res.FirstID, res.NextID)},
		{"Dropped recordings", strconv.Itoa(res.Stats.DroppedRecordings)},
		{"Normalized recordings", strconv.Itoa(res.Stats.NormalizedRecordings)},
		{"Recording warnings", strconv.Itoa(res.Stats.RecordingWarnings)},
		{"Entries file", written(res.EntriesPath)},
		{"Leftovers file", written(res.LeftoversPath)},
	}
	if res.Resolve != nil {
		metrics = append(metrics,
			metric{"Resolve report", written(res.ReportPath)},
			metric{"Links resolved", fmt.Sprintf("%d of %d", res.Resolve.Resolved, res.Resolve.Links)},
		)
	}
	metrics = append(metrics, metric{"Duration", res.Duration.Round(time.Millisecond).String()})

	return renderMetrics(metrics)
}

func renderResolveSummary(entriesPath, outPath string, report resolver.Report) string {
	return renderMetrics([]metric{
		{"Entries file", entriesPath},
		{"Report", outPath},
		{"Links", strconv.Itoa(len(report.Links))},
		{"Resolved", strconv.Itoa(report.Resolved)},
		{"Unresolved", strconv.Itoa(report.Unresolved)},
	})
}

func idRange(first, next int) string {
	if next <= first {
		return "none"
	}
	return fmt.Sprintf("%d..%d (%d)", first, next-1, next-first)
}
