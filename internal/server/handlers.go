package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-fit/internal/db"
	"github.com/jonathan/candidate-fit/internal/fetch"
	"github.com/jonathan/candidate-fit/internal/ingestion"
)

// AnalyzeRequest is the request body for POST /api/analyze. Exactly one
// of JobText and JobURL must be provided.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	JobText    string `json:"job_text" validate:"required_without=JobURL,excluded_with=JobURL"`
	JobURL     string `json:"job_url" validate:"omitempty,url"`
	UseBrowser bool   `json:"use_browser"`
}

// TrainResponse is the response body for POST /api/train.
type TrainResponse struct {
	TrainAccuracy float64  `json:"train_accuracy"`
	TestAccuracy  float64  `json:"test_accuracy"`
	NumSamples    int      `json:"num_samples"`
	Classes       []string `json:"classes"`
	Persisted     bool     `json:"persisted"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":   "ok",
		"database": s.db != nil,
	}
	respondJSON(w, http.StatusOK, status)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	jobText := req.JobText
	jobSource := "inline"
	if req.JobURL != "" {
		content, err := s.fetchJobPosting(r.Context(), req.JobURL, req.UseBrowser)
		if err != nil {
			respondError(w, http.StatusBadGateway, fmt.Sprintf("failed to fetch job posting: %v", err))
			return
		}
		jobText = content
		jobSource = req.JobURL
	}

	resumeText := ingestion.CleanText(req.ResumeText)
	jobText = ingestion.CleanText(jobText)

	var analysisID uuid.UUID
	if s.db != nil {
		id, err := s.db.CreateAnalysis(r.Context(), "api", jobSource)
		if err != nil {
			s.log.Warn("failed to record analysis", zap.Error(err))
		} else {
			analysisID = id
		}
	}

	report, err := s.analyzer.Analyze(r.Context(), resumeText, jobText)
	if err != nil {
		if s.db != nil && analysisID != uuid.Nil {
			if dbErr := s.db.FailAnalysis(r.Context(), analysisID, err.Error()); dbErr != nil {
				s.log.Warn("failed to mark analysis failed", zap.Error(dbErr))
			}
		}
		respondError(w, HTTPStatus(err), fmt.Sprintf("analysis failed: %v", err))
		return
	}

	if s.db != nil && analysisID != uuid.Nil {
		report.RunID = analysisID.String()
		if err := s.db.CompleteAnalysis(r.Context(), analysisID, report); err != nil {
			s.log.Warn("failed to persist analysis", zap.Error(err))
		}
	}

	respondJSON(w, http.StatusOK, report)
}

// fetchJobPosting resolves a job URL to cleaned text. Static pages go
// through the database-backed page cache; the browser path and thin
// results fall back to a full uncached ingestion.
func (s *Server) fetchJobPosting(ctx context.Context, jobURL string, useBrowser bool) (string, error) {
	if s.db != nil && !useBrowser {
		result, err := s.fetcher.Fetch(ctx, jobURL)
		if err == nil && !fetch.ShouldUseBrowser(result.Text) {
			return ingestion.CleanText(result.Text), nil
		}
	}

	content, _, err := ingestion.IngestFromURL(ctx, jobURL, useBrowser, false)
	if err != nil {
		return "", err
	}
	return content, nil
}

func (s *Server) handleTrain(w http.ResponseWriter, r *http.Request) {
	result, err := s.classifier.Train()
	if err != nil {
		respondError(w, HTTPStatus(err), fmt.Sprintf("training failed: %v", err))
		return
	}

	resp := TrainResponse{
		TrainAccuracy: result.TrainAccuracy,
		TestAccuracy:  result.TestAccuracy,
		NumSamples:    result.NumSamples,
		Classes:       result.Classes,
	}

	if s.db != nil {
		payload, err := os.ReadFile(s.modelPath)
		if err != nil {
			s.log.Warn("failed to read model artifact", zap.Error(err))
		} else if err := s.db.SaveModelArtifact(r.Context(), "skill_gap_classifier", 1, payload); err != nil {
			s.log.Warn("failed to persist model artifact", zap.Error(err))
		} else {
			resp.Persisted = true
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		respondError(w, HTTPStatus(ErrDatabaseUnavailable), ErrDatabaseUnavailable.Error())
		return
	}

	filters := db.AnalysisFilters{
		Status:         r.URL.Query().Get("status"),
		Recommendation: r.URL.Query().Get("recommendation"),
	}
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "min_score must be a number")
			return
		}
		filters.MinScore = score
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		filters.Limit = limit
	}

	runs, err := s.db.ListAnalyses(r.Context(), filters)
	if err != nil {
		s.log.Error("failed to list analyses", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if runs == nil {
		runs = []db.AnalysisRun{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"analyses": runs,
		"count":    len(runs),
	})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		respondError(w, HTTPStatus(ErrDatabaseUnavailable), ErrDatabaseUnavailable.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid analysis id")
		return
	}

	run, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.log.Error("failed to get analysis", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to get analysis")
		return
	}
	if run == nil {
		respondError(w, HTTPStatus(ErrAnalysisNotFound), ErrAnalysisNotFound.Error())
		return
	}

	respondJSON(w, http.StatusOK, run)
}

func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		respondError(w, HTTPStatus(ErrDatabaseUnavailable), ErrDatabaseUnavailable.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid analysis id")
		return
	}

	if err := s.db.DeleteAnalysis(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			respondError(w, HTTPStatus(ErrAnalysisNotFound), ErrAnalysisNotFound.Error())
			return
		}
		s.log.Error("failed to delete analysis", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to delete analysis")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // status line is already written
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
