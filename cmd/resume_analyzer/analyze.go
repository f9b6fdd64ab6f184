package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/applytrack/resume-analyzer/internal/analyzer"
	"github.com/applytrack/resume-analyzer/internal/config"
	"github.com/applytrack/resume-analyzer/internal/ingestion"
	"github.com/applytrack/resume-analyzer/internal/schemas"
	"github.com/applytrack/resume-analyzer/internal/sections"
	"github.com/applytrack/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze plain-text resume files",
	Long:  "Parse one or more plain-text resume files, run keyword and structural analysis, and write one JSON report per input file.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeOutDir      string
	analyzeConfigFile  string
	analyzeMerge       string
	analyzeValidate    bool
	analyzeConcurrency int
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutDir, "out-dir", "o", ".", "Directory for output JSON reports")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeMerge, "merge", "", "Duplicate-section strategy: first-match or merge")
	analyzeCmd.Flags().BoolVar(&analyzeValidate, "validate", false, "Validate written reports against the JSON schemas")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 4, "Number of files analyzed in parallel")

	rootCmd.AddCommand(analyzeCmd)
}

// analysisReport is the per-file artifact written by the analyze command.
type analysisReport struct {
	Metadata *ingestion.Metadata `json:"metadata"`
	Parsed   *types.ParsedResume `json:"parsed"`
	Analysis *types.ATSAnalysis  `json:"analysis"`
	Rubric   *types.RubricScore  `json:"rubric"`
}

func runAnalyze(_ *cobra.Command, args []string) error {
	cfg, err := analyzeConfig()
	if err != nil {
		return err
	}

	a := analyzer.New(analyzer.Config{
		MergeStrategy: sections.MergeStrategy(cfg.MergeStrategy),
		MaxInputBytes: cfg.MaxInputBytes,
	})

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(analyzeConcurrency)

	for _, path := range args {
		g.Go(func() error {
			outPath, err := analyzeFile(a, path, cfg.OutDir, cfg.ValidateOutput)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintf(os.Stdout, "%s -> %s\n", path, outPath)
			return nil
		})
	}

	return g.Wait()
}

// analyzeConfig merges the config file (when given) with command-line flags.
// Flags win over file values.
func analyzeConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if analyzeConfigFile != "" {
		loaded, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if analyzeMerge != "" {
		cfg.MergeStrategy = analyzeMerge
	}
	if analyzeOutDir != "." || cfg.OutDir == "" {
		cfg.OutDir = analyzeOutDir
	}
	if analyzeValidate {
		cfg.ValidateOutput = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// analyzeFile runs the pipeline on one file and writes its JSON report.
func analyzeFile(a *analyzer.Analyzer, path, outDir string, validateOut bool) (string, error) {
	text, meta, err := ingestion.IngestFromFile(path)
	if err != nil {
		return "", err
	}

	parsed, analysis, err := a.Analyze(text)
	if err != nil {
		return "", err
	}

	report := analysisReport{
		Metadata: meta,
		Parsed:   parsed,
		Analysis: analysis,
		Rubric:   a.Scorecard(parsed),
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outDir, base+".analysis.json")
	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	if validateOut {
		if err := validateReport(report); err != nil {
			return "", err
		}
	}

	return outPath, nil
}

// validateReport schema-checks each artifact in the report. Schema load
// problems are downgraded to warnings so a moved schemas/ directory does not
// fail the run; actual validation failures are errors.
func validateReport(report analysisReport) error {
	checks := []struct {
		schema string
		value  any
	}{
		{schemas.ParsedResumeSchema, report.Parsed},
		{schemas.ATSAnalysisSchema, report.Analysis},
		{schemas.RubricScoreSchema, report.Rubric},
	}

	for _, check := range checks {
		if err := schemas.ValidateArtifact(check.schema, check.value); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("report does not validate against %s: %w", check.schema, err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate against %s: %v\n", check.schema, err)
		}
	}
	return nil
}
