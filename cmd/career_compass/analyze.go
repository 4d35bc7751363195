package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jordan/career-compass/internal/analysis"
	"github.com/jordan/career-compass/internal/db"
	"github.com/jordan/career-compass/internal/llm"
	"github.com/jordan/career-compass/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the career-fit analysis over saved artifacts",
	Long: `Generate talking points from a previously parsed résumé and scraped company profile.

Reads the formatted text artifacts written by 'run' (or by the server), or replays a persisted session with --session-id.`,
	RunE: runAnalyze,
}

var (
	analyzeResumeText  string
	analyzeCompanyText string
	analyzeOutputFile  string
	analyzeSessionID   string
	analyzeDatabaseURL string
	analyzeAPIKey      string
	analyzeModels      []string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumeText, "resume-text", pipeline.ResumeTextFile, "Path to the formatted resume text artifact")
	analyzeCmd.Flags().StringVar(&analyzeCompanyText, "company-text", pipeline.EmployerTextFile, "Path to the formatted company text artifact")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output markdown file (default: print to stdout)")
	analyzeCmd.Flags().StringVar(&analyzeSessionID, "session-id", "", "Persisted session to replay (requires a database)")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (required with --session-id, defaults to DATABASE_URL env var)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringSliceVar(&analyzeModels, "model", nil, "Model to use, repeatable; the first available wins")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	apiKey := analyzeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()

	var resumeText, companyText string
	if analyzeSessionID != "" {
		sessionID, err := uuid.Parse(analyzeSessionID)
		if err != nil {
			return fmt.Errorf("invalid session-id: %w", err)
		}

		dbURL := analyzeDatabaseURL
		if dbURL == "" {
			dbURL = os.Getenv("DATABASE_URL")
		}
		if dbURL == "" {
			return fmt.Errorf("DATABASE_URL required when using --session-id")
		}

		database, err := db.Connect(ctx, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		session, err := database.GetSession(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}
		if session == nil {
			return fmt.Errorf("session not found: %s", sessionID)
		}

		if resumeText, err = database.GetTextArtifact(ctx, sessionID, db.KindResumeText); err != nil {
			return fmt.Errorf("failed to get resume text: %w", err)
		}
		if companyText, err = database.GetTextArtifact(ctx, sessionID, db.KindEmployerText); err != nil {
			return fmt.Errorf("failed to get company text: %w", err)
		}
	} else {
		resumeBytes, err := os.ReadFile(analyzeResumeText)
		if err != nil {
			return fmt.Errorf("failed to read resume text: %w", err)
		}
		companyBytes, err := os.ReadFile(analyzeCompanyText)
		if err != nil {
			return fmt.Errorf("failed to read company text: %w", err)
		}
		resumeText, companyText = string(resumeBytes), string(companyBytes)
	}

	if resumeText == "" || companyText == "" {
		return fmt.Errorf("both the resume and the company text are required; run 'parse' and 'scrape' first")
	}

	modelConfig := llm.DefaultConfig()
	if len(analyzeModels) > 0 {
		modelConfig = modelConfig.WithModels(analyzeModels...)
	}
	client, err := llm.NewClient(ctx, modelConfig, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer client.Close()

	result, err := analysis.NewAnalyzer(client).AnalyzeTexts(ctx, resumeText, companyText)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, result)
		return nil
	}
	if err := os.WriteFile(analyzeOutputFile, []byte(result), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", analyzeOutputFile)
	return nil
}
