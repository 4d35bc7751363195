package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jordan/career-compass/internal/config"
	"github.com/jordan/career-compass/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full preparation pipeline end-to-end",
	Long: `Parses the résumé and scrapes the employer page in parallel, then runs the career-fit analysis and writes all artifacts to the output directory.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath   string
	runResume       string
	runEmployerURL  string
	runOutput       string
	runAPIKey       string
	runModels       []string
	runUseBrowser   bool
	runUseNLP       bool
	runVerbose      bool
	runFetchTimeout int
	runDatabaseURL  string
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to résumé PDF")
	runCommand.Flags().StringVarP(&runEmployerURL, "url", "u", "", "Career-fair employer page URL")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Directory for written artifacts (default: current directory)")
	runCommand.Flags().StringSliceVar(&runModels, "model", nil, "Model to use, repeatable; the first available wins")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for JS-rendered pages (requires Chrome)")
	runCommand.Flags().BoolVar(&runUseNLP, "use-nlp", false, "Enable the model-backed extraction pass on top of the heuristics")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")
	runCommand.Flags().IntVar(&runFetchTimeout, "timeout", 0, "Fetch timeout in seconds")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = runResume
	}
	if cmd.Flags().Changed("url") {
		cfg.EmployerURL = runEmployerURL
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("model") {
		cfg.Models = runModels
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("use-nlp") {
		cfg.UseNLP = runUseNLP
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("timeout") {
		cfg.FetchTimeout = runFetchTimeout
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}

	// Step 3: Fill remaining gaps from the environment, then defaults
	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Config{Output: "."})

	// Step 4: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.EmployerURL == "" {
		return fmt.Errorf("--url is required (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	if cfg.Verbose {
		zerologVerbose()
	}

	opts := pipeline.RunOptions{
		ResumePath:   cfg.Resume,
		EmployerURL:  cfg.EmployerURL,
		OutputDir:    cfg.Output,
		APIKey:       cfg.APIKey,
		Models:       cfg.Models,
		UseBrowser:   cfg.UseBrowser,
		UseNLP:       cfg.UseNLP,
		Verbose:      cfg.Verbose,
		DatabaseURL:  cfg.DatabaseURL,
		FetchTimeout: time.Duration(cfg.FetchTimeout) * time.Second,
	}

	outcome, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Done. Artifacts written to: %s\n", cfg.Output)
	if outcome.Employer != nil && outcome.Employer.CompanyName != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Company analyzed: %s\n", outcome.Employer.CompanyName)
	}
	return nil
}
