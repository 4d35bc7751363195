// Package main provides the Career Compass CLI: résumé parsing,
// career-fair employer scraping, and model-backed fit analysis.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_compass",
	Short: "Career fair preparation toolkit",
	Long:  "Career Compass parses a résumé PDF, scrapes a career-fair employer page, and generates tailored talking points for the conversation at the booth.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// zerologVerbose drops the global log level to debug for --verbose runs.
func zerologVerbose() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}
