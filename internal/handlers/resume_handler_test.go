package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"seekr/backend/internal/models"
	"seekr/backend/internal/services"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(content []byte, mediaType services.MediaType) (string, error) {
	return s.text, s.err
}

type stubStrategy struct {
	fields models.ResumeFields
	err    error
	calls  int
}

func (s *stubStrategy) ExtractFields(_ context.Context, text string) (models.ResumeFields, error) {
	s.calls++
	return s.fields, s.err
}

func newResumeApp(extractor services.TextExtractor, heuristic, assisted services.ExtractionStrategy, maxSize int64) *fiber.App {
	handler := NewResumeHandler(extractor, heuristic, assisted, maxSize, zap.NewNop())

	app := fiber.New()
	app.Post("/parse-resume", handler.HandleParseResume)
	return app
}

func resumeRequest(t *testing.T, filename, contentType, fileBody, useAI string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="resume"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = io.Copy(part, strings.NewReader(fileBody))
		require.NoError(t, err)
	}

	if useAI != "" {
		require.NoError(t, writer.WriteField("useAI", useAI))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/parse-resume", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestParseResumeNoFile(t *testing.T) {
	app := newResumeApp(&stubExtractor{}, &stubStrategy{}, &stubStrategy{}, 1024)

	resp, err := app.Test(resumeRequest(t, "", "", "", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, gjson.Get(body, "error").String(), "No file uploaded")
}

func TestParseResumeFileTooLarge(t *testing.T) {
	app := newResumeApp(&stubExtractor{}, &stubStrategy{}, &stubStrategy{}, 8)

	resp, err := app.Test(resumeRequest(t, "resume.pdf", "application/pdf", "more than eight bytes of content", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, gjson.Get(body, "error").String(), "too large")
}

func TestParseResumeUnsupportedType(t *testing.T) {
	app := newResumeApp(&stubExtractor{}, &stubStrategy{}, &stubStrategy{}, 1024)

	resp, err := app.Test(resumeRequest(t, "resume.txt", "text/plain", "hello", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, gjson.Get(body, "error").String(), "PDF")
}

func TestParseResumeEmptyDocument(t *testing.T) {
	extractor := &stubExtractor{err: services.NewEmptyDocumentError()}
	app := newResumeApp(extractor, &stubStrategy{}, &stubStrategy{}, 1024)

	resp, err := app.Test(resumeRequest(t, "resume.pdf", "application/pdf", "pdf bytes", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := readBody(t, resp)
	assert.Equal(t, string(services.KindEmptyDocument), gjson.Get(body, "details").String())
}

func TestParseResumeCorruptDocument(t *testing.T) {
	extractor := &stubExtractor{err: services.NewCorruptDocumentError(errors.New("bad xref"))}
	app := newResumeApp(extractor, &stubStrategy{}, &stubStrategy{}, 1024)

	resp, err := app.Test(resumeRequest(t, "resume.pdf", "application/pdf", "pdf bytes", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := readBody(t, resp)
	assert.Equal(t, "Failed to parse resume", gjson.Get(body, "error").String())
}

func TestParseResumeHeuristicSuccess(t *testing.T) {
	extractor := &stubExtractor{text: "resume full text"}
	heuristic := &stubStrategy{fields: models.ResumeFields{FullName: "Aditya Kumar", GPA: "3.85"}}
	assisted := &stubStrategy{}

	app := newResumeApp(extractor, heuristic, assisted, 1024)

	resp, err := app.Test(resumeRequest(t, "resume.pdf", "application/pdf", "pdf bytes", "false"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.ParseResumeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.True(t, result.Success)
	assert.Equal(t, "Aditya Kumar", result.Data.FullName)
	assert.Equal(t, "3.85", result.Data.GPA)
	assert.Equal(t, "resume full text", result.Data.Text)

	assert.Equal(t, 1, heuristic.calls)
	assert.Equal(t, 0, assisted.calls, "rule-based mode must not call the model")
}

func TestParseResumeAssistedSuccess(t *testing.T) {
	extractor := &stubExtractor{text: "resume full text"}
	heuristic := &stubStrategy{}
	assisted := &stubStrategy{fields: models.ResumeFields{FullName: "Jane Doe", Summary: "Strong candidate."}}

	app := newResumeApp(extractor, heuristic, assisted, 1024)

	resp, err := app.Test(resumeRequest(t, "resume.pdf", "application/pdf", "pdf bytes", "true"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.ParseResumeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, "Jane Doe", result.Data.FullName)
	assert.Equal(t, 1, assisted.calls)
	assert.Equal(t, 0, heuristic.calls)
}

func TestParseResumeAssistedFailureDoesNotFallBack(t *testing.T) {
	extractor := &stubExtractor{text: "resume full text"}
	heuristic := &stubStrategy{fields: models.ResumeFields{FullName: "Should Not Appear"}}
	assisted := &stubStrategy{err: services.NewUpstreamUnavailableError(errors.New("timeout"))}

	app := newResumeApp(extractor, heuristic, assisted, 1024)

	resp, err := app.Test(resumeRequest(t, "resume.pdf", "application/pdf", "pdf bytes", "true"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	assert.Equal(t, 0, heuristic.calls, "assisted failures must surface, not fall back")
}
