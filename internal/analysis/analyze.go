// Package analysis turns a parsed résumé plus a scraped employer profile
// into career-fit advice using the LLM client.
package analysis

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jordan/career-compass/internal/llm"
	"github.com/jordan/career-compass/internal/prompts"
	"github.com/jordan/career-compass/internal/types"
)

// Result is the outcome of one analysis run.
type Result struct {
	Text        string `json:"result"`
	ResumeName  string `json:"resume_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

// Analyzer runs career-fit analysis against a generative model.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer builds an Analyzer on the given client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze formats both documents, sends the combined question to the
// model, and returns its advice.
func (a *Analyzer) Analyze(ctx context.Context, resume *types.ParsedResume, employer *types.EmployerProfile) (*Result, error) {
	if resume == nil {
		return nil, &AnalysisError{Message: "no parsed resume available"}
	}
	if employer == nil {
		return nil, &AnalysisError{Message: "no employer profile available"}
	}

	text, err := a.AnalyzeTexts(ctx, FormatResume(resume), FormatCompany(employer))
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:        text,
		ResumeName:  resume.Contact.Name,
		CompanyName: employer.CompanyName,
	}, nil
}

// AnalyzeTexts runs the analysis over already-formatted document blocks.
// The server uses this path when it replays stored text artifacts.
func (a *Analyzer) AnalyzeTexts(ctx context.Context, resumeText, companyText string) (string, error) {
	question := BuildQuestion(resumeText, companyText)

	log.Debug().
		Int("question_chars", len(question)).
		Msg("starting analysis")

	text, err := a.client.GenerateContent(ctx, question)
	if err != nil {
		return "", &AnalysisError{Message: "model call failed", Cause: err}
	}
	return text, nil
}

// BuildQuestion glues the response-format instructions to the two
// formatted document blocks.
func BuildQuestion(resumeText, companyText string) string {
	format := prompts.MustGet("analysis.json", "response-format")
	return format +
		"\n\n\nThis is my resume: \n" + resumeText +
		"\n\n\nThese are the company information: \n" + companyText
}
