// Package export serializes import results to stable, human-diffable files.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/mmo-importer/internal/domain"
	"github.com/heartmarshall/mmo-importer/internal/legacy"
)

// Format is an output serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat parses a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	}
	return "", fmt.Errorf("export: unknown format %q", s)
}

// FormatFromPath infers the format from a file extension; unknown extensions read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	}
	return FormatJSON
}

// tomlEntries wraps entries because a TOML document cannot be a bare array.
type tomlEntries struct {
	Entry []domain.Entry `toml:"entry"`
}

// EncodeEntries serializes converted entries, keeping struct field order.
func EncodeEntries(f Format, entries []domain.Entry) ([]byte, error) {
	if entries == nil {
		entries = []domain.Entry{}
	}
	if f == FormatTOML {
		return Encode(f, tomlEntries{Entry: entries})
	}
	return Encode(f, entries)
}

// Encode serializes v in format f. TOML needs v to be a struct or map.
func Encode(f Format, v any) ([]byte, error) {
	switch f {
	case FormatJSON:
		return EncodeJSON(v)
	case FormatYAML:
		return encodeYAML(v)
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("export: encode toml: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("export: unknown format %q", f)
}

// DecodeEntries parses entries previously written by EncodeEntries.
func DecodeEntries(f Format, data []byte) ([]domain.Entry, error) {
	var entries []domain.Entry
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("export: decode json entries: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("export: decode yaml entries: %w", err)
		}
	case FormatTOML:
		var doc tomlEntries
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("export: decode toml entries: %w", err)
		}
		entries = doc.Entry
	default:
		return nil, fmt.Errorf("export: unknown format %q", f)
	}
	if err := checkVariants(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func checkVariants(entries []domain.Entry) error {
	check := func(entryID int, record string, v domain.OrthographyVariant) error {
		if !v.IsValid() {
			return fmt.Errorf("export: entry %d: %s has unknown orthography variant %q", entryID, record, v)
		}
		return nil
	}
	for _, e := range entries {
		for _, sp := range e.Spelling {
			if err := check(e.EntryID, "spelling", sp.Variant); err != nil {
				return err
			}
		}
		for _, st := range e.Status {
			if err := check(e.EntryID, "status", st.Variant); err != nil {
				return err
			}
		}
		for _, sub := range e.Subentry {
			for _, pg := range sub.PronunciationGuide {
				if err := check(e.EntryID, "pronunciation_guide", pg.Variant); err != nil {
					return err
				}
			}
			for _, ex := range sub.Example {
				for _, et := range ex.ExampleText {
					if err := check(e.EntryID, "example_text", et.Variant); err != nil {
						return err
					}
				}
			}
			for _, af := range sub.AlternateGrammaticalForm {
				for _, at := range af.AlternateFormText {
					if err := check(e.EntryID, "alternate_form_text", at.Variant); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// EncodeLeftovers serializes the consumed legacy lexemes in source key order.
// TOML is rejected because it cannot represent an ordered top-level list.
func EncodeLeftovers(f Format, lexemes []*legacy.Object) ([]byte, error) {
	if lexemes == nil {
		lexemes = []*legacy.Object{}
	}
	switch f {
	case FormatJSON:
		return EncodeJSON(lexemes)
	case FormatYAML:
		return encodeYAML(lexemes)
	}
	return nil, fmt.Errorf("export: leftovers cannot be written as %q", f)
}

// EncodeJSON writes v with two-space indentation, non-ASCII text kept as is
// and no HTML escaping.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("export: encode json: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("export: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("export: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}
