package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/clariscan/internal/logging"
	"github.com/ppiankov/clariscan/internal/model"
	"github.com/ppiankov/clariscan/internal/pipeline"
	"github.com/ppiankov/clariscan/internal/store"
)

const contractText = "SERVICES AGREEMENT. This Agreement is made between the parties named below and sets out their obligations. " +
	"1. Termination. Either party may terminate this agreement at any time without cause upon 5 days written notice to the other party. " +
	"2. Payment. The customer shall pay every invoice within 30 days. Late payments incur a penalty of 2% per month until paid in full. " +
	"3. Governing Law. This agreement is governed by the laws of the State of New York and disputes go to its courts."

const resumeText = "Jane Doe. Curriculum vitae. Education: University of Somewhere, bachelor of science, GPA 3.9. " +
	"Skills: proficient in Go and SQL. Work experience: internship at a data company. Hobbies: climbing. References available on request."

func newTestServer(t *testing.T, withStore bool) *Server {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.HTTP.RespectRobots = false

	p, err := pipeline.NewPipeline(cfg)
	require.NoError(t, err)

	var st *store.Store
	if withStore {
		st, err = store.Open(context.Background(), ":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = st.Close() })
	}
	return New(p, st, cfg.Server)
}

func do(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func multipartUpload(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestRoot(t *testing.T) {
	s := newTestServer(t, false)
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]string](t, rec)
	assert.Equal(t, map[string]string{
		"status":  "ok",
		"service": "ClariScan AI",
		"engine":  "deterministic-rule-engine",
	}, got)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDPropagated(t *testing.T) {
	s := newTestServer(t, false)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-123")

	rec := do(t, s, req)
	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
}

func TestAnalyzeMultipartPersists(t *testing.T) {
	s := newTestServer(t, true)

	rec := do(t, s, multipartUpload(t, "msa.txt", contractText))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[analyzeResponse](t, rec)
	require.NotNil(t, resp.DocumentID)
	assert.Equal(t, "msa.txt", resp.Filename)
	assert.Equal(t, 4, resp.TotalClauses)
	require.NotNil(t, resp.Report)
	assert.Equal(t, model.StatusAnalyzed, resp.Report.Status)

	rec = do(t, s, httptest.NewRequest(http.MethodGet, "/documents/"+strconv.FormatInt(*resp.DocumentID, 10), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode[store.Document](t, rec)
	assert.Equal(t, "msa.txt", doc.Filename)
	assert.Len(t, doc.Clauses, 4)

	rec = do(t, s, httptest.NewRequest(http.MethodGet, "/documents", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[map[string][]store.Document](t, rec)
	assert.Len(t, list["documents"], 1)
}

func TestAnalyzeRawBodyWithoutStore(t *testing.T) {
	s := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodPost, "/analyze?filename=terms.txt", strings.NewReader(contractText))
	req.Header.Set("Content-Type", "text/plain")
	rec := do(t, s, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[analyzeResponse](t, rec)
	assert.Nil(t, resp.DocumentID)
	assert.Equal(t, "terms.txt", resp.Filename)
}

func TestAnalyzeNonContract(t *testing.T) {
	s := newTestServer(t, false)

	rec := do(t, s, multipartUpload(t, "cv.txt", resumeText))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[analyzeResponse](t, rec)
	assert.Equal(t, model.StatusNonContract, resp.Report.Status)
	assert.Equal(t, model.NonContractMessage, resp.Report.Message)
	assert.Zero(t, resp.TotalClauses)
}

func TestAnalyzeErrors(t *testing.T) {
	s := newTestServer(t, false)

	rec := do(t, s, multipartUpload(t, "short.txt", "This agreement is short."))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotEmpty(t, decode[errorResponse](t, rec).RequestID)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("x"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=nothing")
	rec = do(t, s, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, multipartUpload(t, "broken.pdf", "%PDF-1.4 not really"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeTooLarge(t *testing.T) {
	s := newTestServer(t, false)
	s.cfg.MaxUploadBytes = 64

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(contractText))
	req.Header.Set("Content-Type", "text/plain")
	rec := do(t, s, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestAnalyzeClause(t *testing.T) {
	s := newTestServer(t, false)

	body := `{"text": "Either party may terminate this agreement at any time without cause upon 5 days written notice."}`
	rec := do(t, s, httptest.NewRequest(http.MethodPost, "/analyze/clause", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[model.ClauseResult](t, rec)
	assert.Equal(t, "UNILATERAL_TERMINATION", res.RuleID)
	assert.Equal(t, model.RiskHigh, res.RiskLevel)

	rec = do(t, s, httptest.NewRequest(http.MethodPost, "/analyze/clause", strings.NewReader(`{"text": "  "}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, httptest.NewRequest(http.MethodPost, "/analyze/clause", strings.NewReader(`not json`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDetect(t *testing.T) {
	s := newTestServer(t, false)

	body, _ := json.Marshal(map[string]string{"text": contractText})
	rec := do(t, s, httptest.NewRequest(http.MethodPost, "/detect", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.TypeContract, decode[model.Detection](t, rec).DocumentType)
}

func TestRules(t *testing.T) {
	s := newTestServer(t, false)

	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/rules", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[struct {
		Count int          `json:"count"`
		Rules []model.Rule `json:"rules"`
	}](t, rec)
	assert.Equal(t, s.pipeline.Analyzer().Catalog().Len(), all.Count)

	rec = do(t, s, httptest.NewRequest(http.MethodGet, "/rules?risk_level=high", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	high := decode[struct {
		Count int          `json:"count"`
		Rules []model.Rule `json:"rules"`
	}](t, rec)
	assert.Less(t, high.Count, all.Count)
	for _, r := range high.Rules {
		assert.Equal(t, model.RiskHigh, r.RiskLevel)
	}

	rec = do(t, s, httptest.NewRequest(http.MethodGet, "/rules?risk_level=extreme", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocumentsWithoutStore(t *testing.T) {
	s := newTestServer(t, false)

	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/documents", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	rec = do(t, s, httptest.NewRequest(http.MethodGet, "/documents/1", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDocumentNotFound(t *testing.T) {
	s := newTestServer(t, true)

	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/documents/42", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := do(t, s, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = do(t, s, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t, false)

	do(t, s, multipartUpload(t, "msa.txt", contractText))
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `clariscan_http_requests_total{code="200",method="POST",route="/analyze"} 1`)
	assert.Contains(t, body, `clariscan_analyses_total{overall_risk=`)
	assert.Contains(t, body, `clariscan_findings_total{risk_level="High"}`)
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(logging.New("test"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t, false)
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
