// resume.go implements the optional NLP résumé backend on top of the
// Gemini client. It is strictly best-effort: any API error, malformed
// response, or empty result is reported as an error so the caller can
// fall back to the deterministic extractors.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jordan/career-compass/internal/parsing"
	"github.com/jordan/career-compass/internal/prompts"
	"github.com/jordan/career-compass/internal/types"
)

// ResumeBackend extracts a partial résumé using a generative model. It
// supplies name/email/phone, a naive skill list, and degree-only
// education hints; it never supplies experience.
type ResumeBackend struct {
	client Client
}

// NewResumeBackend wraps a client as a résumé extraction backend.
func NewResumeBackend(client Client) *ResumeBackend {
	return &ResumeBackend{client: client}
}

// nlpResult is the wire shape the model is asked to return.
type nlpResult struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Skills       []string `json:"skills"`
	Degrees      []string `json:"degrees"`
	Institutions []string `json:"institutions"`
}

// TryExtract asks the model for the partial résumé fields. The returned
// education hints pair each degree with the institution at the same
// position, when one exists.
func (b *ResumeBackend) TryExtract(ctx context.Context, text string) (*parsing.Partial, error) {
	raw, err := b.client.GenerateJSON(ctx, buildResumePrompt(text))
	if err != nil {
		return nil, fmt.Errorf("resume extraction call failed: %w", err)
	}

	var result nlpResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("resume extraction returned malformed JSON: %w", err)
	}

	partial := &parsing.Partial{
		Name:      strings.TrimSpace(result.Name),
		Email:     strings.TrimSpace(result.Email),
		Phone:     strings.TrimSpace(result.Phone),
		Skills:    trimAll(result.Skills),
		Education: zipEducation(result.Degrees, result.Institutions),
	}

	if partial.Name == "" && partial.Email == "" && partial.Phone == "" &&
		len(partial.Skills) == 0 && len(partial.Education) == 0 {
		return nil, fmt.Errorf("resume extraction produced an empty result")
	}
	return partial, nil
}

// buildResumePrompt fills the extraction prompt template.
func buildResumePrompt(text string) string {
	template := prompts.MustGet("resume.json", "extract-fields")
	return prompts.Format(template, map[string]string{"ResumeText": text})
}

// zipEducation pairs degrees with institutions by index. A degree past
// the end of the institution list still yields an entry; the deterministic
// extractor only replaces education when this list comes back empty.
func zipEducation(degrees, institutions []string) []types.EducationEntry {
	var entries []types.EducationEntry
	for i, degree := range degrees {
		degree = strings.TrimSpace(degree)
		if degree == "" {
			continue
		}
		entry := types.EducationEntry{Degree: degree}
		if i < len(institutions) {
			entry.Institution = strings.TrimSpace(institutions[i])
		}
		entries = append(entries, entry)
	}
	return entries
}

func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
