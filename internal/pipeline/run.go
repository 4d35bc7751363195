// Package pipeline provides the high-level orchestration for a full
// career-fair preparation run: parse the résumé, scrape the employer
// page, then analyze the pair.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jordan/career-compass/internal/analysis"
	"github.com/jordan/career-compass/internal/db"
	"github.com/jordan/career-compass/internal/fetch"
	"github.com/jordan/career-compass/internal/llm"
	"github.com/jordan/career-compass/internal/observability"
	"github.com/jordan/career-compass/internal/parsing"
	"github.com/jordan/career-compass/internal/pdftext"
	"github.com/jordan/career-compass/internal/scraping"
	"github.com/jordan/career-compass/internal/types"
)

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Step      string `json:"step"`
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ProgressCallback is called when run progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for a full run
type RunOptions struct {
	ResumePath   string
	EmployerURL  string
	OutputDir    string
	APIKey       string
	Models       []string
	UseBrowser   bool
	UseNLP       bool
	Verbose      bool
	DatabaseURL  string
	FetchTimeout time.Duration
	OnProgress   ProgressCallback
}

// Outcome aggregates everything a run produced.
type Outcome struct {
	SessionID uuid.UUID              `json:"session_id,omitempty"`
	Resume    *types.ParsedResume    `json:"resume"`
	Employer  *types.EmployerProfile `json:"employer"`
	Analysis  *analysis.Result       `json:"analysis"`
}

func emitProgress(opts *RunOptions, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message})
	}
}

// Run orchestrates the full preparation pipeline. The résumé and
// employer branches execute in parallel; the analysis step needs both.
func Run(ctx context.Context, opts RunOptions) (*Outcome, error) {
	printer := observability.NewPrinter(os.Stdout)

	modelConfig := llm.DefaultConfig()
	if len(opts.Models) > 0 {
		modelConfig = modelConfig.WithModels(opts.Models...)
	}

	client, err := llm.NewClient(ctx, modelConfig, opts.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}
	defer client.Close()

	// Database persistence is best-effort: a local run without Postgres
	// still writes its file artifacts.
	var database *db.DB
	var sessionID uuid.UUID
	if opts.DatabaseURL != "" {
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("database unavailable, continuing without persistence")
			database = nil
		} else {
			defer database.Close()
			if err := database.EnsureSchema(ctx); err != nil {
				return nil, err
			}
			sessionID, err = database.CreateSession(ctx)
			if err != nil {
				return nil, err
			}
			log.Debug().Stringer("session_id", sessionID).Msg("created session")
		}
	}

	parser := buildParser(client, opts.UseNLP)

	fmt.Printf("Step 1/3: Parsing resume and scraping employer page...\n")
	g, gCtx := errgroup.WithContext(ctx)

	var resume *types.ParsedResume
	var employer *types.EmployerProfile

	g.Go(func() error {
		r, err := parser.Parse(gCtx, opts.ResumePath)
		if err != nil {
			return fmt.Errorf("resume parsing failed: %w", err)
		}
		resume = r
		emitProgress(&opts, db.KindResume, "Parsed resume")
		return nil
	})

	g.Go(func() error {
		fetchOpts := fetch.DefaultOptions()
		fetchOpts.UseBrowser = opts.UseBrowser
		if opts.FetchTimeout > 0 {
			fetchOpts.Timeout = opts.FetchTimeout
		}
		e, err := scraping.Scrape(gCtx, opts.EmployerURL, fetchOpts)
		if err != nil {
			return fmt.Errorf("employer scraping failed: %w", err)
		}
		employer = e
		emitProgress(&opts, db.KindEmployer, "Scraped employer page")
		return nil
	})

	if err := g.Wait(); err != nil {
		if database != nil && sessionID != uuid.Nil {
			_ = database.CompleteSession(ctx, sessionID, db.StatusFailed)
		}
		return nil, err
	}

	if opts.Verbose {
		printer.PrintResume(resume)
		printer.PrintEmployer(employer)
	}

	resumeText := analysis.FormatResume(resume)
	employerText := analysis.FormatCompany(employer)

	if database != nil && sessionID != uuid.Nil {
		_ = database.SaveArtifact(ctx, sessionID, db.KindResume, resume.ToRecord())
		_ = database.SaveTextArtifact(ctx, sessionID, db.KindResumeText, resumeText)
		_ = database.SaveArtifact(ctx, sessionID, db.KindEmployer, employer)
		_ = database.SaveTextArtifact(ctx, sessionID, db.KindEmployerText, employerText)
		_ = database.SetSessionNames(ctx, sessionID, resume.Contact.Name, employer.CompanyName)
	}

	fmt.Printf("Step 2/3: Running career-fit analysis...\n")
	analyzer := analysis.NewAnalyzer(client)
	result, err := analyzer.Analyze(ctx, resume, employer)
	if err != nil {
		if database != nil && sessionID != uuid.Nil {
			_ = database.CompleteSession(ctx, sessionID, db.StatusFailed)
		}
		return nil, err
	}
	emitProgress(&opts, db.KindAnalysis, "Analysis complete")

	if opts.Verbose {
		printer.PrintAnalysis(result.Text)
	}

	if database != nil && sessionID != uuid.Nil {
		_ = database.SaveTextArtifact(ctx, sessionID, db.KindAnalysis, result.Text)
		_ = database.CompleteSession(ctx, sessionID, db.StatusCompleted)
	}

	fmt.Printf("Step 3/3: Writing artifacts...\n")
	outcome := &Outcome{
		SessionID: sessionID,
		Resume:    resume,
		Employer:  employer,
		Analysis:  result,
	}
	if err := writeArtifacts(opts.OutputDir, outcome, resumeText, employerText); err != nil {
		return nil, err
	}

	return outcome, nil
}

// buildParser assembles the résumé parser, attaching the model-backed
// extraction pass when requested.
func buildParser(client llm.Client, useNLP bool) *parsing.Parser {
	source := pdftext.NewSource()
	if useNLP {
		return parsing.NewParser(source, parsing.WithOptionalBackend(llm.NewResumeBackend(client)))
	}
	return parsing.NewParser(source)
}

// Artifact file names written to the output directory.
const (
	ResumeJSONFile   = "resume_information.json"
	ResumeTextFile   = "resume_information.txt"
	EmployerJSONFile = "company_information.json"
	EmployerTextFile = "company_information.txt"
	AnalysisFile     = "analysis.md"
)

func writeArtifacts(dir string, outcome *Outcome, resumeText, employerText string) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := map[string][]byte{
		ResumeTextFile:   []byte(resumeText),
		EmployerTextFile: []byte(employerText),
		AnalysisFile:     []byte(outcome.Analysis.Text),
	}

	resumeJSON, err := json.MarshalIndent(outcome.Resume.ToRecord(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume record: %w", err)
	}
	files[ResumeJSONFile] = resumeJSON

	employerJSON, err := json.MarshalIndent(outcome.Employer, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal employer profile: %w", err)
	}
	files[EmployerJSONFile] = employerJSON

	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
