package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jordan/career-compass/internal/analysis"
	"github.com/jordan/career-compass/internal/db"
	"github.com/jordan/career-compass/internal/fetch"
	"github.com/jordan/career-compass/internal/schemas"
)

// maxUploadBytes caps résumé uploads at 16 MiB.
const maxUploadBytes = 16 << 20

var validate = validator.New()

// ScrapeRequest represents the request body for /scrape-companies
type ScrapeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// AnalyzeRequest represents the request body for /api/analyze
type AnalyzeRequest struct {
	SessionID string `json:"session_id,omitempty"`
}

// handleUpload accepts a résumé PDF, parses it, and stores the result
// as the active session's résumé.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		s.errorResponse(w, http.StatusBadRequest, "only PDF files are supported")
		return
	}

	// The PDF reader wants a file on disk; the temp copy is removed as
	// soon as parsing finishes.
	tmp, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		s.errorResponse(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	tmp.Close()

	resume, err := s.parser.Parse(r.Context(), tmpPath)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "failed to parse resume: "+err.Error())
		return
	}

	record := resume.ToRecord()
	recordJSON, err := json.Marshal(record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to serialize resume")
		return
	}
	if err := schemas.ValidateResumeRecord(string(recordJSON)); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "parsed resume failed validation: "+err.Error())
		return
	}

	resumeText := analysis.FormatResume(resume)

	s.session.mu.Lock()
	s.session.resume = resume
	s.session.resumeText = resumeText
	s.session.mu.Unlock()

	if s.db != nil {
		sessionID, err := s.ensureSession(r)
		if err != nil {
			log.Warn().Err(err).Msg("failed to create session, skipping persistence")
		} else {
			ctx := r.Context()
			_ = s.db.SaveArtifact(ctx, sessionID, db.KindResume, record)
			_ = s.db.SaveTextArtifact(ctx, sessionID, db.KindResumeText, resumeText)
			_ = s.db.SetSessionNames(ctx, sessionID, resume.Contact.Name, "")
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Resume uploaded and parsed successfully",
		"resume":  record,
	})
}

// handleScrapeCompanies scrapes one employer page and stores the
// profile as the active session's company data.
func (s *Server) handleScrapeCompanies(w http.ResponseWriter, r *http.Request) {
	var req ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	opts := fetch.DefaultOptions()
	opts.UseBrowser = s.useBrowser

	employer, err := s.scrape(r.Context(), req.URL, opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "scraping failed: "+err.Error())
		return
	}

	employerText := analysis.FormatCompany(employer)

	s.session.mu.Lock()
	s.session.employer = employer
	s.session.employerText = employerText
	s.session.mu.Unlock()

	if s.db != nil {
		sessionID, err := s.ensureSession(r)
		if err != nil {
			log.Warn().Err(err).Msg("failed to create session, skipping persistence")
		} else {
			ctx := r.Context()
			_ = s.db.SaveArtifact(ctx, sessionID, db.KindEmployer, employer)
			_ = s.db.SaveTextArtifact(ctx, sessionID, db.KindEmployerText, employerText)
			_ = s.db.SetSessionNames(ctx, sessionID, "", employer.CompanyName)
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      "Company data scraped successfully",
		"company_data": employer,
	})
}

// handleAnalyze runs the career-fit analysis over the stored résumé and
// company texts. With a session_id and a database it replays stored
// artifacts; otherwise it uses the active in-memory session.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if r.Body != nil {
		// The body is optional; a missing or empty one means the
		// active session.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	var resumeText, companyText, resumeName, companyName string

	if req.SessionID != "" {
		if s.db == nil {
			s.errorResponse(w, http.StatusServiceUnavailable, "database not configured")
			return
		}
		sessionID, err := uuid.Parse(req.SessionID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid session_id")
			return
		}
		ctx := r.Context()
		session, err := s.db.GetSession(ctx, sessionID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		if session == nil {
			s.errorResponse(w, http.StatusNotFound, "session not found")
			return
		}
		resumeName, companyName = session.ResumeName, session.CompanyName
		if resumeText, err = s.db.GetTextArtifact(ctx, sessionID, db.KindResumeText); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		if companyText, err = s.db.GetTextArtifact(ctx, sessionID, db.KindEmployerText); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
	} else {
		s.session.mu.RLock()
		resumeText, companyText = s.session.resumeText, s.session.employerText
		if s.session.resume != nil {
			resumeName = s.session.resume.Contact.Name
		}
		if s.session.employer != nil {
			companyName = s.session.employer.CompanyName
		}
		s.session.mu.RUnlock()
	}

	if resumeText == "" || companyText == "" {
		s.errorResponse(w, http.StatusNotFound,
			"resume and company data are both required; upload a resume and scrape a company first")
		return
	}

	result, err := s.advisor.AnalyzeTexts(r.Context(), resumeText, companyText)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed: "+err.Error())
		return
	}

	s.session.mu.Lock()
	s.session.analysis = result
	sessionID := s.session.sessionID
	s.session.mu.Unlock()

	if s.db != nil && sessionID != uuid.Nil {
		_ = s.db.SaveTextArtifact(r.Context(), sessionID, db.KindAnalysis, result)
		_ = s.db.CompleteSession(r.Context(), sessionID, db.StatusCompleted)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":      true,
		"result":       result,
		"resume_name":  resumeName,
		"company_name": companyName,
	})
}

// handleGetSessionData reports what the active session already holds,
// so the UI can decide which step comes next.
func (s *Server) handleGetSessionData(w http.ResponseWriter, _ *http.Request) {
	s.session.mu.RLock()
	defer s.session.mu.RUnlock()

	var resumeName, companyName any
	if s.session.resume != nil && s.session.resume.Contact.Name != "" {
		resumeName = s.session.resume.Contact.Name
	}
	if s.session.employer != nil && s.session.employer.CompanyName != "" {
		companyName = s.session.employer.CompanyName
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"has_resume":    s.session.resume != nil,
		"has_companies": s.session.employer != nil,
		"has_analysis":  s.session.analysis != "",
		"resume_name":   resumeName,
		"company_name":  companyName,
	})
}

// handleListSessions lists recent persisted sessions.
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "database not configured")
		return
	}

	sessions, err := s.db.ListSessions(r.Context(), 20)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"sessions": sessions})
}

// handleGetSession returns one persisted session with its artifacts.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "database not configured")
		return
	}

	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid session id")
		return
	}

	session, err := s.db.GetSession(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if session == nil {
		s.errorResponse(w, http.StatusNotFound, "session not found")
		return
	}

	artifacts, err := s.db.ListArtifacts(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"session":   session,
		"artifacts": artifacts,
	})
}

// ensureSession returns the active persisted session, creating one on
// first use.
func (s *Server) ensureSession(r *http.Request) (uuid.UUID, error) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	if s.session.sessionID != uuid.Nil {
		return s.session.sessionID, nil
	}
	id, err := s.db.CreateSession(r.Context())
	if err != nil {
		return uuid.Nil, err
	}
	s.session.sessionID = id
	return id, nil
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
