package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

// Client is an authenticated client for the Appcircle REST API. It maps HTTP
// failures to typed errors (see errors.go) and otherwise passes response
// bodies through untouched.
type Client struct {
	host   string
	token  string
	client *http.Client
	log    logr.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

func NewClient(host, token string, log logr.Logger, opts ...Option) *Client {
	c := &Client{
		host:  strings.TrimSuffix(host, "/"),
		token: token,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) newRequest(method, path string, body io.Reader, contentType string) (*http.Request, error) {
	if c.token == "" {
		return nil, &Error{
			Kind:       KindAuthentication,
			StatusCode: http.StatusUnauthorized,
			Message:    "access token is required but not configured, run 'appcircle login' first",
		}
	}
	url := c.host + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// do issues the request and decodes a JSON response body into out when out is
// non-nil. 204 and empty bodies are treated as success with no result.
func (c *Client) do(method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := c.newRequest(method, path, body, contentType)
	if err != nil {
		return err
	}
	c.log.V(7).Info("sending request", "method", method, "path", path)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	c.log.V(7).Info("received response", "status", resp.StatusCode, "bytes", len(data))

	if resp.StatusCode >= 400 {
		return responseError(resp.StatusCode, data)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", req.URL, err)
	}
	return nil
}

// responseError maps an HTTP status to the error taxonomy. The server reports
// failures as {"message": "..."}; absent that, the raw body is used.
func responseError(status int, body []byte) *Error {
	message := strings.TrimSpace(string(body))
	var errBody struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Message != "" {
		message = errBody.Message
	}

	kind := KindAPI
	switch status {
	case http.StatusUnauthorized:
		kind = KindAuthentication
		if message == "" {
			message = "authentication failed"
		}
	case http.StatusTooManyRequests:
		kind = KindRateLimit
		if message == "" {
			message = "rate limit exceeded"
		}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = KindValidation
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}
	return &Error{Kind: kind, StatusCode: status, Message: message}
}

func (c *Client) Get(path string, out interface{}) error {
	return c.do(http.MethodGet, path, nil, "", out)
}

func (c *Client) Post(path string, body, out interface{}) error {
	data, err := marshalBody(body)
	if err != nil {
		return err
	}
	return c.do(http.MethodPost, path, data, "application/json", out)
}

// PostForm sends an empty form-encoded body. The start-build endpoint rejects
// JSON bodies and expects exactly this shape.
func (c *Client) PostForm(path string, out interface{}) error {
	return c.do(http.MethodPost, path, strings.NewReader("{}"), "application/x-www-form-urlencoded", out)
}

func (c *Client) Put(path string, body, out interface{}) error {
	data, err := marshalBody(body)
	if err != nil {
		return err
	}
	return c.do(http.MethodPut, path, data, "application/json", out)
}

func (c *Client) Patch(path string, body, out interface{}) error {
	data, err := marshalBody(body)
	if err != nil {
		return err
	}
	return c.do(http.MethodPatch, path, data, "application/json", out)
}

func (c *Client) Delete(path string, body, out interface{}) error {
	data, err := marshalBody(body)
	if err != nil {
		return err
	}
	contentType := ""
	if data != nil {
		contentType = "application/json"
	}
	return c.do(http.MethodDelete, path, data, contentType, out)
}

func marshalBody(body interface{}) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return bytes.NewReader(data), nil
}

// Download streams the response body for path into outputPath.
func (c *Client) Download(path, outputPath string) error {
	req, err := c.newRequest(http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	c.log.V(7).Info("downloading", "path", path, "output", outputPath)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return responseError(resp.StatusCode, body)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write to output file: %w", err)
	}
	c.log.V(7).Info("download complete", "path", outputPath)
	return nil
}

// Upload sends filePath as a multipart form file under fileField together
// with any additional form fields.
func (c *Client) Upload(path, fileField, filePath string, fields map[string]string, out interface{}) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fileField, filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return c.do(http.MethodPost, path, &buf, writer.FormDataContentType(), out)
}
