package importer

import (
	"log/slog"
	"strings"

	"github.com/heartmarshall/mmo-importer/internal/legacy"
)

const (
	mediaPrefix       = "media/"
	legacyMediaPrefix = "mediae/"
)

// NormalizeRecordingPath rewrites the legacy "mediae/" prefix to "media/".
// ok is false when the result still lacks the "media/" prefix; the path is
// then returned unchanged.
func NormalizeRecordingPath(filename string) (path string, ok bool) {
	if rest, found := strings.CutPrefix(filename, legacyMediaPrefix); found {
		filename = mediaPrefix + rest
	}
	return filename, strings.HasPrefix(filename, mediaPrefix)
}

// convertRecordings builds one record per legacy recording with a non-empty
// filename. Recording items are read, not consumed.
func convertRecordings[T any](c *Converter, lexeme string, items []*legacy.Object, build func(id int, path, speaker string) T) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		filename, err := item.GetString("filename")
		if err != nil {
			return nil, err
		}
		if filename == "" {
			c.stats.DroppedRecordings++
			continue
		}
		speaker, err := item.GetString("recordedBy")
		if err != nil {
			return nil, err
		}

		id := c.ids.Next()
		path, ok := NormalizeRecordingPath(filename)
		if path != filename {
			c.stats.NormalizedRecordings++
		}
		if !ok {
			c.stats.RecordingWarnings++
			c.log.Warn("invalid media filename",
				slog.String("lexeme", lexeme),
				slog.String("filename", filename),
			)
		}
		out = append(out, build(id, path, speaker))
	}
	return out, nil
}
