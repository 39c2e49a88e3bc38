package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wicaksn/sertika/internal/dcc"
	"github.com/wicaksn/sertika/internal/payload"
)

// DefaultBaseURL is the backend assumed during local development.
const DefaultBaseURL = "http://127.0.0.1:8000"

// Client is the certificate backend API client.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithToken sets the bearer token sent on authenticated requests.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithLogger sets the logger. Defaults to zap.NewNop.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a client for the backend at baseURL. An empty baseURL
// selects DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 2 * time.Minute},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, e.g. after login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-2xx backend response. Detail carries the backend's
// message verbatim when one was provided.
type APIError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// IsAPIError extracts an APIError from err, if present.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// PreviewArtifacts are the rendered artifact links returned by a
// successful preview.
type PreviewArtifacts struct {
	PDFURL string `json:"pdf_url"`
	XMLURL string `json:"xml_url"`
}

// GeneratePreview posts the preview payload and returns the artifact
// links.
func (c *Client) GeneratePreview(ctx context.Context, p *payload.Payload) (*PreviewArtifacts, error) {
	var artifacts PreviewArtifacts
	if err := c.postJSON(ctx, "/generate-preview/", p, &artifacts); err != nil {
		return nil, fmt.Errorf("generate preview: %w", err)
	}
	return &artifacts, nil
}

// CreateResult is the outcome of a successful submission: either a
// download link or the document bytes themselves, depending on how the
// backend chose to respond.
type CreateResult struct {
	DownloadLink string
	Document     []byte
	ContentType  string
}

// CreateCertificate submits the final payload. The progress callback,
// if non-nil, receives the fixed submission milestones; percentages are
// checkpoints for user feedback, not measured transfer progress.
func (c *Client) CreateCertificate(ctx context.Context, sub *payload.Submission, progress func(Milestone)) (*CreateResult, error) {
	report := func(m Milestone) {
		if progress != nil {
			progress(m)
		}
	}
	report(MilestonePreparing)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	payloadJSON, err := json.Marshal(sub.Payload)
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}
	if err := mw.WriteField("payload", string(payloadJSON)); err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}

	report(MilestoneProcessingFiles)
	for _, part := range sub.Files {
		if err := writeFilePart(mw, part); err != nil {
			return nil, fmt.Errorf("create certificate: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}

	report(MilestoneGenerating)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/create-dcc/", body)
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("create certificate: %w", decodeError(resp))
	}

	report(MilestoneFinalizing)
	result := &CreateResult{ContentType: resp.Header.Get("Content-Type")}
	if strings.HasPrefix(result.ContentType, "application/json") {
		var linked struct {
			DownloadLink string `json:"download_link"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&linked); err != nil {
			return nil, fmt.Errorf("create certificate: decode response: %w", err)
		}
		result.DownloadLink = linked.DownloadLink
	} else {
		blob, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("create certificate: read document: %w", err)
		}
		result.Document = blob
	}

	report(MilestoneDone)
	return result, nil
}

// writeFilePart streams one attachment under the submission's
// three-field convention: <field>.gambar (bytes), <field>.mimeType,
// <field>.fileName.
func writeFilePart(mw *multipart.Writer, part payload.FilePart) error {
	f, err := os.Open(part.Path)
	if err != nil {
		return fmt.Errorf("attachment %s: %w", part.Field, err)
	}
	defer f.Close()

	fw, err := mw.CreateFormFile(part.Field+".gambar", part.FileName)
	if err != nil {
		return fmt.Errorf("attachment %s: %w", part.Field, err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		return fmt.Errorf("attachment %s: %w", part.Field, err)
	}
	if err := mw.WriteField(part.Field+".mimeType", part.MimeType); err != nil {
		return fmt.Errorf("attachment %s: %w", part.Field, err)
	}
	if err := mw.WriteField(part.Field+".fileName", part.FileName); err != nil {
		return fmt.Errorf("attachment %s: %w", part.Field, err)
	}
	return nil
}

// UploadResult is the backend's identification of an uploaded file,
// used to populate comment-attachment metadata.
type UploadResult struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
}

// UploadFile uploads a single file and returns the backend's metadata
// for it.
func (c *Client) UploadFile(ctx context.Context, path string) (*UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}
	defer f.Close()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-file/", body)
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upload file: %w", decodeError(resp))
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("upload file: decode response: %w", err)
	}
	return &result, nil
}

// UpdateStatus sets a submitted certificate's review status. Director
// only; the backend enforces the role.
func (c *Client) UpdateStatus(ctx context.Context, id string, status dcc.CertificateStatus) error {
	if !status.Valid() {
		return fmt.Errorf("update status: invalid status %q", status)
	}
	body, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+"/api/dcc/"+id+"/status", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("update status: %w", decodeError(resp))
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// decodeError turns a non-2xx response into an APIError, preferring the
// JSON "detail" field, then the raw body text.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &detail); err == nil && detail.Detail != "" {
		return &APIError{StatusCode: resp.StatusCode, Detail: detail.Detail}
	}
	return &APIError{StatusCode: resp.StatusCode, Detail: strings.TrimSpace(string(raw))}
}
