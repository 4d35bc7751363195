package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordan/career-compass/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a parsed résumé JSON file against the schema",
	RunE:  runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to parsed résumé JSON file (required)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if validateInputFile == "" {
		return fmt.Errorf("--in is required")
	}

	if err := schemas.ValidateResumeFile(validateInputFile); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Valid: %s\n", validateInputFile)
	return nil
}
