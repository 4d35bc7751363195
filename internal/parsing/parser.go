package parsing

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jordan/career-compass/internal/types"
)

// TextSource decodes a file into plain text plus a page count. Decode
// failure is the only error a parse surfaces.
type TextSource interface {
	Extract(path string) (text string, pageCount int, err error)
}

// DefaultBackendTimeout bounds the optional backend call. The
// deterministic path is pure CPU work and needs no timeout.
const DefaultBackendTimeout = 30 * time.Second

// Parser assembles the structured résumé document. The deterministic
// heuristic backend is always available; an optional best-effort backend
// may be tried first, with gaps and failures patched deterministically so
// callers never observe which backend supplied a field.
type Parser struct {
	source   TextSource
	optional Backend
	keywords Keywords
	timeout  time.Duration
}

// Option configures a Parser.
type Option func(*Parser)

// WithOptionalBackend installs a best-effort backend tried ahead of the
// deterministic extractors.
func WithOptionalBackend(b Backend) Option {
	return func(p *Parser) { p.optional = b }
}

// WithKeywords overrides the default keyword tables.
func WithKeywords(kw Keywords) Option {
	return func(p *Parser) { p.keywords = kw }
}

// WithBackendTimeout overrides the optional-backend timeout.
func WithBackendTimeout(d time.Duration) Option {
	return func(p *Parser) { p.timeout = d }
}

// NewParser creates a Parser reading input through the given text source.
func NewParser(source TextSource, opts ...Option) *Parser {
	p := &Parser{
		source:   source,
		keywords: DefaultKeywords(),
		timeout:  DefaultBackendTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse decodes the file and extracts the structured résumé. The only
// error it returns is a *DecodeError from the text source; every
// heuristic degrades to empty fields instead of failing.
func (p *Parser) Parse(ctx context.Context, path string) (*types.ParsedResume, error) {
	text, pages, err := p.source.Extract(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Cause: err}
	}

	resume := p.ParseText(ctx, text)
	resume.PageCount = pages
	return resume, nil
}

// ParseToRecord parses the file and returns the result as a key/value
// tree for interchange serialization.
func (p *Parser) ParseToRecord(ctx context.Context, path string) (map[string]any, error) {
	resume, err := p.Parse(ctx, path)
	if err != nil {
		return nil, err
	}
	return resume.ToRecord(), nil
}

// ParseText extracts a structured résumé from already-decoded text. It is
// a pure function of the input: identical text yields structurally
// identical results, and it never fails.
func (p *Parser) ParseText(ctx context.Context, text string) *types.ParsedResume {
	partial := p.selectBackend(ctx, text)

	contact := ExtractContact(text)
	resume := &types.ParsedResume{
		Contact: types.ContactInfo{
			Name:     partial.Name,
			Email:    partial.Email,
			Phone:    partial.Phone,
			LinkedIn: contact.LinkedIn,
			GitHub:   contact.GitHub,
			Location: contact.Location,
		},
		Skills:    partial.Skills,
		Education: partial.Education,
		// The optional backend never supplies experience; the
		// deterministic extractor runs unconditionally.
		Experience: ExtractExperience(text, p.keywords),
		RawText:    text,
	}

	if len(resume.Skills) == 0 {
		resume.Skills = ExtractSkills(text, p.keywords)
	}
	if len(resume.Education) == 0 {
		resume.Education = ExtractEducation(text, p.keywords)
	}
	if resume.Skills == nil {
		resume.Skills = []string{}
	}
	if resume.Education == nil {
		resume.Education = []types.EducationEntry{}
	}

	return resume
}

// selectBackend tries the optional backend first and falls back to a full
// deterministic extraction when it is absent, fails, or times out.
// Failures are recovered here and never surfaced to the caller.
func (p *Parser) selectBackend(ctx context.Context, text string) *Partial {
	deterministic := NewDeterministicBackend(p.keywords)

	if p.optional != nil {
		backendCtx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()

		partial, err := p.optional.TryExtract(backendCtx, text)
		if err == nil && partial != nil {
			return partial
		}
		if err != nil {
			log.Debug().Err(err).Msg("optional backend failed, using deterministic extractors")
		}
	}

	partial, _ := deterministic.TryExtract(ctx, text)
	return partial
}
