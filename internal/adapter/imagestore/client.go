package imagestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"time"
)

// ErrUploadRejected indicates the image service refused the payload.
var ErrUploadRejected = errors.New("upload rejected")

// Client exposes operations against the external image storage service.
// Deposit bill photos and catalog artwork are kept there; the shop only
// stores the returned URL.
type Client interface {
	Upload(ctx context.Context, objectName string, content io.Reader) (string, error)
	Delete(ctx context.Context, objectName string) error
}

// HTTPClient implements Client via HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// uploadResponse mirrors JSON payload from the image service.
type uploadResponse struct {
	URL string `json:"url"`
}

// NewHTTPClient creates HTTP image store client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse image store url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("image store url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Upload streams content to the image service and returns the public URL.
func (c *HTTPClient) Upload(ctx context.Context, objectName string, content io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", objectName)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/images")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		var data uploadResponse
		if err := json.Unmarshal(raw, &data); err != nil {
			return "", err
		}
		if data.URL == "" {
			return "", fmt.Errorf("image store returned empty url")
		}
		return data.URL, nil
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return "", ErrUploadRejected
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("image upload failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return "", fmt.Errorf("image store error: %s", resp.Status)
	}
}

// Delete removes an object from the image service. Missing objects are fine.
func (c *HTTPClient) Delete(ctx context.Context, objectName string) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/images/", objectName)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint.String(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("image delete failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return fmt.Errorf("image store error: %s", resp.Status)
	}
}
