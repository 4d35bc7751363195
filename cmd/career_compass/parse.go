package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jordan/career-compass/internal/llm"
	"github.com/jordan/career-compass/internal/observability"
	"github.com/jordan/career-compass/internal/parsing"
	"github.com/jordan/career-compass/internal/pdftext"
	"github.com/jordan/career-compass/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a résumé PDF into structured JSON",
	Long:  "Parse a résumé PDF with the heuristic extractor and write the structured record as JSON that validates against the parsed_resume schema.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseUseNLP     bool
	parseAPIKey     string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to résumé PDF (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: <in>_parsed.json)")
	parseCmd.Flags().BoolVar(&parseUseNLP, "use-nlp", false, "Enable the model-backed extraction pass on top of the heuristics")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key, only used with --use-nlp (overrides GEMINI_API_KEY env var)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print the parsed résumé summary")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	if parseInputFile == "" {
		return fmt.Errorf("--in is required")
	}
	outPath := parseOutputFile
	if outPath == "" {
		outPath = strings.TrimSuffix(parseInputFile, ".pdf") + "_parsed.json"
	}

	ctx := context.Background()

	parser := parsing.NewParser(pdftext.NewSource())
	if parseUseNLP {
		apiKey := parseAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("--use-nlp requires an API key (set GEMINI_API_KEY environment variable or use --api-key flag)")
		}
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create model client: %w", err)
		}
		defer client.Close()
		parser = parsing.NewParser(pdftext.NewSource(),
			parsing.WithOptionalBackend(llm.NewResumeBackend(client)))
	}

	resume, err := parser.Parse(ctx, parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(resume.ToRecord(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	// Validate the written record against the schema
	if err := schemas.ValidateResumeFile(outPath); err != nil {
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		} else {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
	}

	if parseVerbose {
		observability.NewPrinter(os.Stdout).PrintResume(resume)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed resume\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outPath)
	return nil
}
