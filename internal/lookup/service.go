// Package lookup implements the dictionary lookup flow: try the word as
// given, and when the dictionary has no entry for it, lemmatize and try
// the base form.
package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexicon-tools/logeion/internal/dictionary"
	"github.com/lexicon-tools/logeion/internal/lemma"
)

// Method tags how a lookup result was produced.
type Method string

const (
	// MethodExactMatch means the word matched a headword as given.
	MethodExactMatch Method = "exact_match"
	// MethodLemmatized means the word itself matched nothing but its
	// lemma did.
	MethodLemmatized Method = "lemmatized"
	// MethodNone means neither the word nor its lemma matched and no
	// failure occurred.
	MethodNone Method = "none"
	// MethodError means the database or the lemmatizer failed.
	MethodError Method = "error"
)

// Result is the outcome of a single lookup. It is always well formed:
// Success is true exactly when Method is exact_match or lemmatized and
// Results is non-empty. Failures are carried in Error, never raised past
// the service boundary.
type Result struct {
	Success bool               `json:"success"`
	Word    string             `json:"word"`
	Lemma   string             `json:"lemma,omitempty"`
	Results []dictionary.Entry `json:"results,omitempty"`
	Method  Method             `json:"method"`
	Error   string             `json:"error,omitempty"`
}

// Service resolves words against the dictionary relation with a
// lemmatization fallback. Both collaborators are injected so tests can
// substitute fakes.
type Service struct {
	entries    dictionary.EntryRepository
	lemmatizer lemma.Lemmatizer
}

func NewService(entries dictionary.EntryRepository, lemmatizer lemma.Lemmatizer) *Service {
	return &Service{
		entries:    entries,
		lemmatizer: lemmatizer,
	}
}

// Lookup returns the dictionary entries for word. The word is matched
// verbatim first; on a miss it is lemmatized and the lemma is matched.
// All failures from the collaborators are converted into a Result with
// method "error" — this method never returns an error because the tool
// boundary expects a structured result, not a fault.
func (s *Service) Lookup(ctx context.Context, word string) Result {
	word = strings.TrimSpace(word)

	entries, err := s.entries.FindByHead(ctx, word)
	if err != nil {
		return errorResult(word, fmt.Errorf("entries.FindByHead(%q) > %w", word, err))
	}
	if len(entries) > 0 {
		return Result{
			Success: true,
			Word:    word,
			Results: entries,
			Method:  MethodExactMatch,
		}
	}

	lemmatized, err := s.lemmatizer.Lemmatize(ctx, word)
	if err != nil {
		return errorResult(word, fmt.Errorf("lemmatizer.Lemmatize(%q) > %w", word, err))
	}

	// The retry runs even when the lemma equals the word: the query is
	// cheap and skipping it would only duplicate the miss above.
	entries, err = s.entries.FindByHead(ctx, lemmatized)
	if err != nil {
		return errorResult(word, fmt.Errorf("entries.FindByHead(%q) > %w", lemmatized, err))
	}
	if len(entries) > 0 {
		return Result{
			Success: true,
			Word:    word,
			Lemma:   lemmatized,
			Results: entries,
			Method:  MethodLemmatized,
		}
	}

	return Result{
		Success: false,
		Word:    word,
		Method:  MethodNone,
		Error:   fmt.Sprintf("No results found for '%s' or its lemma", word),
	}
}

func errorResult(word string, err error) Result {
	return Result{
		Success: false,
		Word:    word,
		Method:  MethodError,
		Error:   err.Error(),
	}
}
