package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/career-compass/internal/types"
)

type stubClient struct {
	lastPrompt string
	response   string
	err        error
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return s.GenerateContent(ctx, prompt)
}

func (s *stubClient) Close() error { return nil }

func sampleResume() *types.ParsedResume {
	return &types.ParsedResume{
		Contact: types.ContactInfo{
			Name:     "Jordan Smith",
			Email:    "jordan@example.com",
			Location: "Austin, TX",
		},
		Skills: []string{"Go", "Python", "SQL"},
		Education: []types.EducationEntry{
			{Degree: "BS: Computer Science", Institution: "Texas A&M University", Year: "May 2025"},
		},
		Experience: []types.ExperienceEntry{
			{
				Title:    "Software Engineering Intern",
				Company:  "Acme Robotics",
				Duration: "May 2024 - August 2024",
				Description: []string{
					"Built a telemetry pipeline.",
					"Cut query latency by 40%.",
					"Wrote integration tests.",
					"Presented results to leadership.",
				},
			},
		},
	}
}

func sampleEmployer() *types.EmployerProfile {
	return &types.EmployerProfile{
		CompanyName:     "Acme Robotics",
		About:           "Acme builds warehouse robots.",
		WeAreLookingFor: "Software engineers with Go experience.",
		Industry:        "Robotics",
		PositionTypes:   []string{"Internship", "Full-Time"},
	}
}

func TestFormatResume(t *testing.T) {
	text := FormatResume(sampleResume())

	assert.Contains(t, text, "RESUME INFORMATION")
	assert.Contains(t, text, "Name: Jordan Smith\n")
	assert.Contains(t, text, "Phone: N/A\n")
	assert.Contains(t, text, "Location: Austin, TX\n")
	assert.NotContains(t, text, "LinkedIn:")
	assert.Contains(t, text, "SKILLS:\nGo, Python, SQL\n")
	assert.Contains(t, text, "- BS: Computer Science\n  Texas A&M University\n  May 2025\n")
	assert.Contains(t, text, "- Software Engineering Intern at Acme Robotics\n")

	// Only the first three bullets survive formatting.
	assert.Contains(t, text, "• Wrote integration tests.")
	assert.NotContains(t, text, "Presented results to leadership.")
}

func TestFormatResumeEmpty(t *testing.T) {
	text := FormatResume(&types.ParsedResume{})

	assert.Contains(t, text, "Name: N/A\n")
	assert.NotContains(t, text, "SKILLS:")
	assert.NotContains(t, text, "EDUCATION:")
	assert.NotContains(t, text, "EXPERIENCE:")
}

func TestFormatCompany(t *testing.T) {
	text := FormatCompany(sampleEmployer())

	assert.Contains(t, text, "COMPANY INFORMATION")
	assert.Contains(t, text, "Company Name: Acme Robotics\n")
	assert.Contains(t, text, "About:\nAcme builds warehouse robots.\n")
	assert.Contains(t, text, "We Are Looking For:\nSoftware engineers with Go experience.\n")
	assert.Contains(t, text, "Position Types: Internship, Full-Time\n")
	assert.NotContains(t, text, "Website:")
	assert.NotContains(t, text, "Majors Recruited:")
}

func TestAnalyze(t *testing.T) {
	client := &stubClient{response: "## Fit Summary\nStrong match."}
	analyzer := NewAnalyzer(client)

	result, err := analyzer.Analyze(context.Background(), sampleResume(), sampleEmployer())
	require.NoError(t, err)

	assert.Equal(t, "## Fit Summary\nStrong match.", result.Text)
	assert.Equal(t, "Jordan Smith", result.ResumeName)
	assert.Equal(t, "Acme Robotics", result.CompanyName)

	// The question carries the format instructions plus both documents.
	assert.Contains(t, client.lastPrompt, "career advisor")
	assert.Contains(t, client.lastPrompt, "This is my resume: \nRESUME INFORMATION")
	assert.Contains(t, client.lastPrompt, "These are the company information: \nCOMPANY INFORMATION")
}

func TestAnalyzeMissingInputs(t *testing.T) {
	analyzer := NewAnalyzer(&stubClient{})

	_, err := analyzer.Analyze(context.Background(), nil, sampleEmployer())
	require.Error(t, err)
	var analysisErr *AnalysisError
	assert.True(t, errors.As(err, &analysisErr))

	_, err = analyzer.Analyze(context.Background(), sampleResume(), nil)
	assert.Error(t, err)
}

func TestAnalyzeModelFailure(t *testing.T) {
	client := &stubClient{err: errors.New("all models failed")}
	analyzer := NewAnalyzer(client)

	_, err := analyzer.Analyze(context.Background(), sampleResume(), sampleEmployer())
	require.Error(t, err)

	var analysisErr *AnalysisError
	require.True(t, errors.As(err, &analysisErr))
	assert.ErrorContains(t, err, "model call failed")
}
