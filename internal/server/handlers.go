package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/applytrack/resume-analyzer/internal/analyzer"
	"github.com/applytrack/resume-analyzer/internal/ingestion"
	"github.com/applytrack/resume-analyzer/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// analyzeRequest is the body for POST /analyze. Text may be empty; an empty
// resume is valid input that scores zero. UserID is only needed when the
// result should be persisted.
type analyzeRequest struct {
	Text   string `json:"text"`
	UserID string `json:"user_id,omitempty" validate:"omitempty,uuid4"`
}

// analyzeResponse is the merged result returned by POST /analyze.
type analyzeResponse struct {
	ID       string              `json:"id,omitempty"` // set when persisted
	Parsed   *types.ParsedResume `json:"parsed"`
	Analysis *types.ATSAnalysis  `json:"analysis"`
	Rubric   *types.RubricScore  `json:"rubric"`
}

// scorecardRequest is the body for POST /scorecard: either a structured
// record or raw text to parse first.
type scorecardRequest struct {
	Parsed *types.ParsedResume `json:"parsed,omitempty"`
	Text   string              `json:"text,omitempty"`
}

// handleAnalyze runs the full analysis pipeline on submitted text.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	parsed, analysis, err := s.analyzer.Analyze(req.Text)
	if err != nil {
		var inputErr *analyzer.InputError
		if errors.As(err, &inputErr) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, inputErr.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := analyzeResponse{
		Parsed:   parsed,
		Analysis: analysis,
		Rubric:   s.analyzer.Scorecard(parsed),
	}

	if s.db != nil && req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid user_id")
			return
		}
		meta := ingestion.NewMetadata(ingestion.CleanText(req.Text), "")
		id, err := s.db.SaveAnalysis(r.Context(), userID, meta.Hash, resp.Parsed, resp.Analysis, resp.Rubric)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.ID = id.String()
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleScorecard computes the rubric score card from a structured record,
// parsing raw text first when that is what was submitted.
func (s *Server) handleScorecard(w http.ResponseWriter, r *http.Request) {
	var req scorecardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	parsed := req.Parsed
	if parsed == nil {
		var err error
		parsed, err = s.analyzer.Parse(req.Text)
		if err != nil {
			var inputErr *analyzer.InputError
			if errors.As(err, &inputErr) {
				s.errorResponse(w, http.StatusRequestEntityTooLarge, inputErr.Error())
				return
			}
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, s.analyzer.Scorecard(parsed))
}

// handleListAnalyses lists a user's stored analyses, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid user id")
		return
	}

	summaries, err := s.db.ListAnalyses(r.Context(), userID, 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": summaries})
}

// handleGetAnalysis returns one stored analysis with its JSON payloads.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis id")
		return
	}

	stored, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if stored == nil {
		s.errorResponse(w, http.StatusNotFound, "analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":           stored.ID,
		"user_id":      stored.UserID,
		"content_hash": stored.ContentHash,
		"parsed":       json.RawMessage(stored.Parsed),
		"analysis":     json.RawMessage(stored.Analysis),
		"rubric":       json.RawMessage(stored.Rubric),
		"created_at":   stored.CreatedAt,
	})
}

// handleDeleteAnalysis removes one stored analysis.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis id")
		return
	}

	if err := s.db.DeleteAnalysis(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
