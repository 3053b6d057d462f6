package lemma

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/lemma/mock_lemmatizer.go -package=mock_lemma

// Lemmatizer interface defines the methods for lemmatization operations
type Lemmatizer interface {
	// Lemmatize returns the dictionary base form of a single word. For
	// degenerate input the model cannot lemmatize (punctuation, digits),
	// implementations return the input unchanged rather than failing.
	Lemmatize(ctx context.Context, word string) (string, error)

	// Ready reports whether the underlying annotation model is loaded
	// and able to serve requests.
	Ready(ctx context.Context) error

	// Model returns the identifier of the loaded model package.
	Model() string
}

// Token represents a single annotated token from the model pipeline
type Token struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	Pos   string `json:"pos,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

const (
	// DefaultReadyAttempts bounds the startup probe of the annotation
	// service. The model takes a while to load on a cold container.
	DefaultReadyAttempts = 5
)
