package parsing

import (
	"context"

	"github.com/jordan/career-compass/internal/types"
)

// Partial is the output contract shared by extraction backends. Empty
// fields mean the backend had nothing to say; the selector patches them
// from the deterministic extractors.
type Partial struct {
	Name      string
	Email     string
	Phone     string
	Skills    []string
	Education []types.EducationEntry
}

// Backend extracts a partial résumé from raw text. Implementations are
// best-effort: a backend that cannot produce anything useful should
// return an error and let the selector fall back, not fabricate fields.
type Backend interface {
	TryExtract(ctx context.Context, text string) (*Partial, error)
}

// DeterministicBackend is the always-available heuristic backend built
// from the section extractors. It never fails.
type DeterministicBackend struct {
	Keywords Keywords
}

// NewDeterministicBackend returns a deterministic backend using the given
// keyword tables.
func NewDeterministicBackend(kw Keywords) *DeterministicBackend {
	return &DeterministicBackend{Keywords: kw}
}

// TryExtract runs the heuristic extractors over the text. The error is
// always nil; it exists to satisfy the Backend contract.
func (b *DeterministicBackend) TryExtract(_ context.Context, text string) (*Partial, error) {
	contact := ExtractContact(text)
	return &Partial{
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Skills:    ExtractSkills(text, b.Keywords),
		Education: ExtractEducation(text, b.Keywords),
	}, nil
}
