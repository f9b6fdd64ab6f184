// Package analyzer wires the resume analysis pipeline together: text
// normalization, section extraction, field parsing, keyword matching, and
// scoring. It is the only package callers need to import.
//
// The whole pipeline is synchronous and stateless; an Analyzer is safe for
// concurrent use and callers parallelize batch work by invoking it from
// multiple goroutines.
package analyzer

import (
	"github.com/applytrack/resume-analyzer/internal/ingestion"
	"github.com/applytrack/resume-analyzer/internal/keywords"
	"github.com/applytrack/resume-analyzer/internal/parsing"
	"github.com/applytrack/resume-analyzer/internal/scoring"
	"github.com/applytrack/resume-analyzer/internal/sections"
	"github.com/applytrack/resume-analyzer/internal/types"
)

// DefaultMaxInputBytes bounds input size so pathological inputs cannot run
// up regex cost. Real resume text is single-digit kilobytes.
const DefaultMaxInputBytes = 2 << 20

// Config holds analyzer options. The zero value uses defaults.
type Config struct {
	// MergeStrategy controls duplicate section-heading handling.
	// Defaults to sections.FirstMatch.
	MergeStrategy sections.MergeStrategy
	// MaxInputBytes caps accepted input size. Defaults to
	// DefaultMaxInputBytes.
	MaxInputBytes int
}

// Analyzer runs the analysis pipeline. Stateless between calls.
type Analyzer struct {
	merge    sections.MergeStrategy
	maxBytes int
}

// New creates an Analyzer, applying defaults for unset config fields.
func New(cfg Config) *Analyzer {
	if cfg.MergeStrategy == "" {
		cfg.MergeStrategy = sections.FirstMatch
	}
	if cfg.MaxInputBytes <= 0 {
		cfg.MaxInputBytes = DefaultMaxInputBytes
	}
	return &Analyzer{merge: cfg.MergeStrategy, maxBytes: cfg.MaxInputBytes}
}

// Parse extracts the structured resume record from raw text. Parsing never
// fails on content: missing structure produces empty fields. The only errors
// are boundary rejections (input too large).
func (a *Analyzer) Parse(text string) (*types.ParsedResume, error) {
	if len(text) > a.maxBytes {
		return nil, &InputError{Reason: "input too large", Size: len(text), Limit: a.maxBytes}
	}

	clean := ingestion.CleanText(text)
	parsed := types.NewParsedResume()
	if clean == "" {
		return parsed, nil
	}

	parsed.ContactInfo = parsing.ParseContact(clean)

	secs := sections.Extract(clean, a.merge)
	parsed.Summary = parsing.ParseSummary(secs[sections.Summary])
	parsed.Skills = parsing.ParseSkills(secs[sections.Skills])
	parsed.Experience = parsing.ParseExperience(secs[sections.Experience])
	parsed.Education = parsing.ParseEducation(secs[sections.Education])
	parsed.Projects = parsing.ParseProjects(secs[sections.Projects])
	parsed.Certifications = parsing.ParseCertifications(secs[sections.Certifications])

	return parsed, nil
}

// Analyze runs the full keyword/structural analysis on raw text and returns
// the merged result: parsed record, category coverage, and scoring.
func (a *Analyzer) Analyze(text string) (*types.ParsedResume, *types.ATSAnalysis, error) {
	parsed, err := a.Parse(text)
	if err != nil {
		return nil, nil, err
	}

	clean := ingestion.CleanText(text)
	results := keywords.MatchCategories(clean)
	flags := scoring.BuildFlags(parsed, clean)

	return parsed, scoring.Analyze(parsed, results, flags), nil
}

// Scorecard computes the fixed-rubric score card from a structured record.
func (a *Analyzer) Scorecard(parsed *types.ParsedResume) *types.RubricScore {
	return scoring.ScoreRubric(parsed)
}

// ParseResumeText parses raw resume text with default options.
func ParseResumeText(text string) (*types.ParsedResume, error) {
	return New(Config{}).Parse(text)
}

// AnalyzeText runs the keyword/structural analysis with default options.
func AnalyzeText(text string) (*types.ParsedResume, *types.ATSAnalysis, error) {
	return New(Config{}).Analyze(text)
}

// ScoreRubric computes the rubric score card with default options.
func ScoreRubric(parsed *types.ParsedResume) *types.RubricScore {
	return New(Config{}).Scorecard(parsed)
}
