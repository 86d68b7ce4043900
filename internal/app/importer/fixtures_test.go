package importer

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/mmo-importer/internal/legacy"
)

// fullLexeme exercises every mapped legacy field. "rank" is never mapped.
const fullLexeme = `{
  "date": "2019-03-14",
  "name": "ma'qamigeg",
  "id": "ma_qamigeg",
  "note": "checked with elders",
  "picture": "",
  "status": "done",
  "explicitSfGloss": false,
  "rank": 7,
  "watsonSpelling": "",
  "subentries": [{
    "borrowedWord": "",
    "label": "",
    "phoneticForm": "ma-qa-mi-geg",
    "recordings": [
      {"filename": "mediae/mmo/a.mp3", "recordedBy": "E. M."},
      {"filename": "", "recordedBy": "x"}
    ],
    "partsOfSpeech": [{
      "label": "noun inanimate",
      "senses": [
        {
          "crossRef": "foo, bar and baz.",
          "definition": "ground; earth",
          "notes": [{"text": "sense note"}],
          "picture": "pics/earth.jpg",
          "scientificName": "",
          "table": "",
          "literally": "the land",
          "examples": [{
            "exampleSentence": "ma'qamigeg",
            "exampleSf": "ma'qamigek",
            "exampleEnglish": "the ground",
            "recordings": [{"filename": "media/ex.mp3", "recordedBy": "E. M."}]
          }],
          "glosses": [{"text": "ground"}],
          "lexicalFunctions": [{"gloss": "on the ground", "label": "loc", "lexeme": "ma'qamigewe'g", "sfGloss": ""}],
          "semanticDomains": ["nature"],
          "variantForms": [{"label": "megamigeg"}]
        },
        {
          "crossRef": "",
          "definition": "soil",
          "notes": [],
          "picture": "",
          "scientificName": "Terra",
          "table": "",
          "literally": "",
          "examples": [],
          "glosses": [],
          "lexicalFunctions": [],
          "semanticDomains": [],
          "variantForms": []
        }
      ]
    }]
  }]
}`

const simpleSense = `{"crossRef": "", "definition": "to be", "notes": [], "picture": "", "scientificName": "", "table": "", "literally": "", "examples": [], "glosses": [], "lexicalFunctions": [], "semanticDomains": [], "variantForms": []}`

// simpleLexeme builds a minimal valid lexeme with one sense per part of speech.
func simpleLexeme(name, id, status string, partsOfSpeech ...string) string {
	parts := make([]string, 0, len(partsOfSpeech))
	for _, p := range partsOfSpeech {
		parts = append(parts, fmt.Sprintf(`{"label": %q, "senses": [%s]}`, p, simpleSense))
	}
	return fmt.Sprintf(`{"date": "2020-02-02", "name": %q, "id": %q, "note": "", "picture": "", "status": %q, `+
		`"explicitSfGloss": false, "watsonSpelling": "", "subentries": [{"borrowedWord": "", "label": "", `+
		`"phoneticForm": "", "recordings": [], "partsOfSpeech": [%s]}]}`,
		name, id, status, strings.Join(parts, ", "))
}

func exportJSON(lexemes ...string) string {
	return `{"lexemes": [` + strings.Join(lexemes, ",\n") + `]}`
}

func parseLexemes(t *testing.T, lexemes ...string) []*legacy.Object {
	t.Helper()
	doc, err := legacy.Parse([]byte(exportJSON(lexemes...)))
	require.NoError(t, err)
	return doc.Lexemes
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
