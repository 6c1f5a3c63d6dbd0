// Package client is the transfer adapter for a remote flat file store.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/filebrowser/api/src/domain/files"
	"github.com/sirupsen/logrus"
)

const (
	// UploadField is the multipart field the store reads uploads from
	UploadField = "files"

	msgInvalidListing  = "Invalid format of response"
	msgInvalidEnvelope = "Invalid response format"

	// maxErrorBody bounds how much of a non-200 body becomes the error message
	maxErrorBody = 64 << 10
)

// Adapter talks to one store over HTTP. It holds only fixed configuration
// and is safe for concurrent use.
type Adapter struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *logrus.Logger
}

// Option configures an Adapter
type Option func(*Adapter)

// WithHTTPClient replaces the default HTTP client. WithTimeout is ignored when set.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Adapter) {
		a.httpClient = c
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(a *Adapter) {
		a.timeout = d
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *logrus.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// New creates an adapter for the store at baseURL, e.g. "http://localhost:8080"
func New(baseURL string, opts ...Option) (*Adapter, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid remote url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid remote url %q: scheme must be http or https", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid remote url %q: missing host", baseURL)
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""

	a := &Adapter{
		baseURL: strings.TrimRight(parsed.String(), "/"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.httpClient == nil {
		a.httpClient = newHTTPClient(a.timeout)
	}
	if a.logger == nil {
		a.logger = logrus.New()
		a.logger.SetOutput(io.Discard)
	}

	return a, nil
}

// BaseURL returns the remote store address
func (a *Adapter) BaseURL() string {
	return a.baseURL
}

// ListFiles returns the names held by the remote store
func (a *Adapter) ListFiles(ctx context.Context) files.Result[[]string] {
	resp, fail := a.get(ctx, "/files")
	if fail != nil {
		return files.Failure[[]string](fail)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return files.Failure[[]string](a.statusError(resp))
	}

	var names []string
	if err := json.NewDecoder(resp.Body).Decode(&names); err != nil || names == nil {
		return files.FailureWith[[]string](files.KindInvalidFormat, msgInvalidListing)
	}

	return files.Success(names)
}

// wireEnvelope distinguishes absent fields from empty ones
type wireEnvelope struct {
	Content  *string `json:"content"`
	Filename *string `json:"filename"`
}

// GetFile fetches one file through the base64 envelope endpoint
func (a *Adapter) GetFile(ctx context.Context, name string) files.Result[files.FileRecord] {
	resp, fail := a.get(ctx, "/files/"+url.PathEscape(name))
	if fail != nil {
		return files.Failure[files.FileRecord](fail)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return files.Failure[files.FileRecord](a.statusError(resp))
	}

	var envelope *wireEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope == nil || envelope.Content == nil {
		return files.FailureWith[files.FileRecord](files.KindInvalidFormat, msgInvalidEnvelope)
	}

	content, err := files.DecodeContent(*envelope.Content)
	if err != nil {
		return files.FailureWith[files.FileRecord](files.KindInvalidFormat, msgInvalidEnvelope)
	}

	recordName := name
	if envelope.Filename != nil && *envelope.Filename != "" {
		recordName = *envelope.Filename
	}

	return files.Success(files.FileRecord{
		Name:        recordName,
		Content:     content,
		ContentType: files.ContentTypeFor(recordName),
	})
}

// GetRawFile fetches one file as raw bytes
func (a *Adapter) GetRawFile(ctx context.Context, name string) files.Result[files.FileRecord] {
	resp, fail := a.get(ctx, "/files/raw/"+url.PathEscape(name))
	if fail != nil {
		return files.Failure[files.FileRecord](fail)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return files.Failure[files.FileRecord](a.statusError(resp))
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return files.Failure[files.FileRecord](a.transportError(http.MethodGet, "/files/raw/", err))
	}

	recordName := name
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		if filename := params["filename"]; filename != "" {
			recordName = filename
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = files.ContentTypeFor(recordName)
	}

	return files.Success(files.FileRecord{
		Name:        recordName,
		Content:     content,
		ContentType: contentType,
	})
}

// SendFile streams content to the store as a single multipart part named name.
// The upload is not retried; a failed transfer must be restarted by the caller.
func (a *Adapter) SendFile(ctx context.Context, content io.Reader, name string) files.Result[struct{}] {
	if _, err := files.Basename(name); err != nil {
		return files.Failure[struct{}](err)
	}

	pr, pw := io.Pipe()
	defer pr.Close()

	form := multipart.NewWriter(pw)
	go func() {
		part, err := form.CreateFormFile(UploadField, name)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, content); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(form.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/files", pr)
	if err != nil {
		return files.Failure[struct{}](files.NewError(files.KindTransport, err.Error()))
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, fail := a.execute(req)
	if fail != nil {
		return files.Failure[struct{}](fail)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return files.Failure[struct{}](a.statusError(resp))
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return files.Success(struct{}{})
}

func (a *Adapter) get(ctx context.Context, path string) (*http.Response, *files.Error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return nil, files.NewError(files.KindTransport, err.Error())
	}
	return a.execute(req)
}

func (a *Adapter) execute(req *http.Request) (*http.Response, *files.Error) {
	start := time.Now()
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, a.transportError(req.Method, req.URL.Path, err)
	}

	a.logger.WithFields(logrus.Fields{
		"method":      req.Method,
		"path":        req.URL.Path,
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Remote request completed")

	return resp, nil
}

func (a *Adapter) transportError(method, path string, err error) *files.Error {
	classified := classifyError(err)
	a.logger.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"class":  failureClass(classified),
		"error":  err.Error(),
	}).Warn("Remote request failed")

	return files.NewError(files.KindTransport, err.Error())
}

// statusError turns a non-200 response into a failure carrying the body verbatim
func (a *Adapter) statusError(resp *http.Response) *files.Error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	message := string(body)
	if err != nil || message == "" {
		message = resp.Status
	}

	a.logger.WithFields(logrus.Fields{
		"path":        resp.Request.URL.Path,
		"status_code": resp.StatusCode,
	}).Debug("Remote returned an error status")

	return files.NewError(files.KindTransport, message)
}
