package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksn/sertika/internal/dcc"
	"github.com/wicaksn/sertika/internal/payload"
	"github.com/wicaksn/sertika/internal/testutil"
)

func TestGeneratePreview(t *testing.T) {
	var gotPath string
	var gotBody payload.Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{
			"pdf_url": "/preview/42.pdf",
			"xml_url": "/preview/42.xml",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	artifacts, err := c.GeneratePreview(context.Background(), payload.Preview(testutil.CompleteDocument()))
	require.NoError(t, err)

	assert.Equal(t, "/generate-preview/", gotPath)
	assert.Equal(t, "SNSU-2026-0042", gotBody.Administrative.CertificateNumber)
	assert.Equal(t, "/preview/42.pdf", artifacts.PDFURL)
	assert.Equal(t, "/preview/42.xml", artifacts.XMLURL)
}

func TestGeneratePreview_SurfacesBackendDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"detail": "db unreachable"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GeneratePreview(context.Background(), &payload.Payload{})
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	// The backend's own words, verbatim.
	assert.Equal(t, "db unreachable", apiErr.Detail)
}

func TestDecodeError_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded\n"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GeneratePreview(context.Background(), &payload.Payload{})
	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "upstream exploded", apiErr.Detail)
}

func TestCreateCertificate_MultipartAndMilestones(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "setup.png")
	require.NoError(t, os.WriteFile(imgPath, []byte("png-bytes"), 0o644))

	var gotPayload payload.Payload
	var gotParts map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("payload")), &gotPayload))

		gotParts = map[string]string{}
		for field := range r.MultipartForm.Value {
			if field != "payload" {
				gotParts[field] = r.FormValue(field)
			}
		}
		file, header, err := r.FormFile("methods[0].image.gambar")
		require.NoError(t, err)
		defer file.Close()
		gotParts["methods[0].image.gambar"] = header.Filename

		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"download_link": "/dcc/42.pdf"})
	}))
	defer srv.Close()

	doc := testutil.CompleteDocument()
	doc.Methods[0].HasImage = true
	doc.Methods[0].Image = &dcc.Image{
		MimeType: "image/png",
		Pending:  &dcc.LocalFile{Name: "setup.png", Path: imgPath},
	}

	var milestones []int
	c := New(srv.URL, WithToken("tok-123"))
	result, err := c.CreateCertificate(context.Background(), payload.Submit(doc), func(m Milestone) {
		milestones = append(milestones, m.Percent)
	})
	require.NoError(t, err)

	assert.Equal(t, "/dcc/42.pdf", result.DownloadLink)
	assert.Equal(t, "SNSU-2026-0042", gotPayload.Administrative.CertificateNumber)
	assert.Equal(t, "setup.png", gotParts["methods[0].image.gambar"])
	assert.Equal(t, "image/png", gotParts["methods[0].image.mimeType"])
	assert.Equal(t, "setup.png", gotParts["methods[0].image.fileName"])
	assert.Equal(t, []int{10, 30, 60, 90, 100}, milestones)
}

func TestCreateCertificate_InlineDocumentResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.CreateCertificate(context.Background(), payload.Submit(testutil.CompleteDocument()), nil)
	require.NoError(t, err)

	assert.Empty(t, result.DownloadLink)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, []byte("%PDF-1.7 fake"), result.Document)
}

func TestCreateCertificate_FailureStopsMilestones(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"detail": "payload rejected"})
	}))
	defer srv.Close()

	var milestones []int
	c := New(srv.URL)
	_, err := c.CreateCertificate(context.Background(), payload.Submit(testutil.CompleteDocument()), func(m Milestone) {
		milestones = append(milestones, m.Percent)
	})
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "payload rejected", apiErr.Detail)
	// Never reaches finalizing or done.
	assert.Equal(t, []int{10, 30, 60}, milestones)
}

func TestUploadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.pdf")
	require.NoError(t, os.WriteFile(path, []byte("pdf-bytes"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "note.pdf", header.Filename)
		json.NewEncoder(w).Encode(UploadResult{Filename: "uploads/note.pdf", MimeType: "application/pdf"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.UploadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "uploads/note.pdf", result.Filename)
	assert.Equal(t, "application/pdf", result.MimeType)
}

func TestUpdateStatus(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.UpdateStatus(context.Background(), "abc-42", dcc.StatusApproved))
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/dcc/abc-42/status", gotPath)
	assert.Equal(t, map[string]string{"status": "approved"}, gotBody)

	err := c.UpdateStatus(context.Background(), "abc-42", "maybe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c := New("http://example.test/")
	assert.Equal(t, "http://example.test", c.baseURL)

	c = New("")
	assert.Equal(t, DefaultBaseURL, c.baseURL)
}
