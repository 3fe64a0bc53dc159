package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/ppiankov/clariscan/internal/model"
	"github.com/ppiankov/clariscan/internal/pipeline"
	"github.com/ppiankov/clariscan/internal/source"
	"github.com/ppiankov/clariscan/internal/store"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type analyzeResponse struct {
	DocumentID   *int64        `json:"document_id"`
	Filename     string        `json:"filename"`
	TotalClauses int           `json:"total_clauses"`
	Report       *model.Report `json:"report"`
}

type textRequest struct {
	Text string `json:"text"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: RequestIDFrom(r.Context())})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "ClariScan AI",
		"engine":  "deterministic-rule-engine",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	cat := s.pipeline.Analyzer().Catalog()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"rules":       cat.Len(),
		"terms":       len(cat.Terms()),
		"persistence": s.store != nil,
	})
}

// handleAnalyze accepts a multipart "file" field or a raw body
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	filename, contentType, data, err := s.readUpload(w, r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
			return
		}
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.pipeline.AnalyzeBytes(r.Context(), filename, contentType, data)
	switch {
	case errors.Is(err, pipeline.ErrTooShort), errors.Is(err, source.ErrNoText):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, pipeline.ErrExtract):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.logger.Error("analyze failed", "filename", filename, "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, r, http.StatusInternalServerError, "analysis failed")
		return
	}
	s.metrics.ObserveReport(report)

	resp := analyzeResponse{Filename: filename, TotalClauses: report.TotalClauses, Report: report}
	if s.store != nil {
		doc, err := s.store.CreateDocument(r.Context(), filename, report)
		if err != nil {
			s.logger.Error("persist failed", "filename", filename, "error", err)
			writeError(w, r, http.StatusInternalServerError, "could not save document")
			return
		}
		resp.DocumentID = &doc.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (filename, contentType string, data []byte, err error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(min(s.cfg.MaxUploadBytes, 32<<20)); err != nil {
			return "", "", nil, err
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", "", nil, errors.New("missing multipart field \"file\"")
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", "", nil, err
		}
		return filepath.Base(header.Filename), header.Header.Get("Content-Type"), data, nil
	}

	data, err = io.ReadAll(r.Body)
	if err != nil {
		return "", "", nil, err
	}
	filename = r.URL.Query().Get("filename")
	if filename == "" {
		filename = "document.txt"
	}
	return filepath.Base(filename), r.Header.Get("Content-Type"), data, nil
}

func (s *Server) decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return "", false
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, r, http.StatusBadRequest, "text is required")
		return "", false
	}
	return req.Text, true
}

func (s *Server) handleClause(w http.ResponseWriter, r *http.Request) {
	text, ok := s.decodeText(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.pipeline.Analyzer().AnalyzeClause(text))
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	text, ok := s.decodeText(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.pipeline.Detector().Detect(text))
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	cat := s.pipeline.Analyzer().Catalog()
	rules := cat.Rules()
	if level := r.URL.Query().Get("risk_level"); level != "" {
		want, err := model.ParseRiskLevel(level)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		filtered := rules[:0]
		for _, rule := range rules {
			if rule.RiskLevel == want {
				filtered = append(filtered, rule)
			}
		}
		rules = filtered
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(rules),
		"rules": rules,
		"terms": cat.Terms(),
	})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, r, http.StatusServiceUnavailable, "persistence is disabled")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	docs, err := s.store.ListDocuments(r.Context(), limit)
	if err != nil {
		s.logger.Error("list documents failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "could not list documents")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, r, http.StatusServiceUnavailable, "persistence is disabled")
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid document id")
		return
	}

	doc, err := s.store.GetDocument(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case err != nil:
		s.logger.Error("get document failed", "id", id, "error", err)
		writeError(w, r, http.StatusInternalServerError, "could not load document")
	default:
		writeJSON(w, http.StatusOK, doc)
	}
}
