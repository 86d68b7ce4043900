package importer

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mmo-importer/internal/domain"
	"github.com/heartmarshall/mmo-importer/internal/legacy"
)

// MaxPartsOfSpeech is the largest number of parts of speech a lexeme may carry.
const MaxPartsOfSpeech = 3

// Survey summarizes a validated legacy export.
type Survey struct {
	Lexemes         int
	MultiPOSLexemes int
}

// Validate checks the structural invariants of every lexeme before any
// conversion starts. Fields are read, never consumed. The first violation
// is returned as a *domain.InvariantError (or a legacy shape error).
// Lexemes with more than one part of speech are reported, not rejected.
func Validate(lexemes []*legacy.Object, log *slog.Logger) (Survey, error) {
	survey := Survey{Lexemes: len(lexemes)}

	for _, lex := range lexemes {
		name, err := lex.GetString("name")
		if err != nil {
			return survey, err
		}
		id, err := lex.GetString("id")
		if err != nil {
			return survey, err
		}
		if err := checkSlug(name, id); err != nil {
			return survey, err
		}
		if v, ok := lex.Get("explicitSfGloss"); ok && legacy.Truthy(v) {
			return survey, errExplicitSfGloss(name)
		}

		subentries, err := lex.GetObjects("subentries")
		if err != nil {
			return survey, fmt.Errorf("lexeme %q: %w", name, err)
		}
		if len(subentries) != 1 {
			return survey, errSubentryCount(name, len(subentries))
		}
		subentry := subentries[0]
		if v, ok := subentry.Get("label"); ok && legacy.Truthy(v) {
			return survey, errSubentryLabel(name)
		}

		parts, err := subentry.GetObjects("partsOfSpeech")
		if err != nil {
			return survey, fmt.Errorf("lexeme %q: %w", name, err)
		}
		if len(parts) != 1 {
			log.Warn("lexeme has multiple parts of speech",
				slog.String("lexeme", id),
				slog.Int("parts_of_speech", len(parts)),
			)
			if err := checkPartsOfSpeech(name, len(parts)); err != nil {
				return survey, err
			}
			survey.MultiPOSLexemes++
		}
	}

	log.Info("legacy export validated",
		slog.Int("lexemes", survey.Lexemes),
		slog.Int("multi_pos_lexemes", survey.MultiPOSLexemes),
	)
	return survey, nil
}

func checkSlug(name, id string) error {
	if want := domain.Slugify(name); id != want {
		return domain.NewInvariantError(name, "id",
			fmt.Sprintf("id rederivation inconsistency: slug of name is %q, legacy id is %q", want, id))
	}
	return nil
}

func checkPartsOfSpeech(name string, n int) error {
	switch {
	case n == 0:
		return domain.NewInvariantError(name, "partsOfSpeech", "lexeme has no parts of speech")
	case n > MaxPartsOfSpeech:
		return domain.NewInvariantError(name, "partsOfSpeech",
			fmt.Sprintf("no more than %d parts of speech supported, got %d", MaxPartsOfSpeech, n))
	}
	return nil
}

func errSubentryCount(name string, n int) error {
	return domain.NewInvariantError(name, "subentries",
		fmt.Sprintf("only one subentry per lexeme supported, got %d", n))
}

func errExplicitSfGloss(name string) error {
	return domain.NewInvariantError(name, "explicitSfGloss", "explicit secondary-orthography gloss is not supported")
}

func errSubentryLabel(name string) error {
	return domain.NewInvariantError(name, "subentries[0].label", "borrowed-word label must be unset")
}
