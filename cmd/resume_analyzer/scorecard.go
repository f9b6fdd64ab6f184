package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/applytrack/resume-analyzer/internal/analyzer"
	"github.com/applytrack/resume-analyzer/internal/ingestion"
	"github.com/applytrack/resume-analyzer/internal/types"
)

var scorecardCmd = &cobra.Command{
	Use:   "scorecard",
	Short: "Score a resume against the fixed rubric",
	Long:  "Compute the 100-point rubric score card from either a parsed resume JSON file or a plain-text resume file.",
	RunE:  runScorecard,
}

var (
	scorecardParsedFile string
	scorecardTextFile   string
	scorecardOutputFile string
)

func init() {
	scorecardCmd.Flags().StringVar(&scorecardParsedFile, "parsed", "", "Path to a parsed resume JSON file")
	scorecardCmd.Flags().StringVar(&scorecardTextFile, "text", "", "Path to a plain-text resume file")
	scorecardCmd.Flags().StringVarP(&scorecardOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(scorecardCmd)
}

func runScorecard(_ *cobra.Command, _ []string) error {
	if (scorecardParsedFile == "") == (scorecardTextFile == "") {
		return fmt.Errorf("provide exactly one of --parsed or --text")
	}

	var parsed *types.ParsedResume
	if scorecardParsedFile != "" {
		data, err := os.ReadFile(scorecardParsedFile)
		if err != nil {
			return fmt.Errorf("failed to read parsed resume: %w", err)
		}
		record := types.NewParsedResume()
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("failed to parse resume JSON: %w", err)
		}
		parsed = record
	} else {
		text, _, err := ingestion.IngestFromFile(scorecardTextFile)
		if err != nil {
			return err
		}
		parsed, err = analyzer.ParseResumeText(text)
		if err != nil {
			return err
		}
	}

	score := analyzer.ScoreRubric(parsed)
	jsonBytes, err := json.MarshalIndent(score, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score card: %w", err)
	}

	if scorecardOutputFile == "" {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(scorecardOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Score: %d/100 (%s)\nOutput: %s\n", score.Score, score.Rating, scorecardOutputFile)
	return nil
}
