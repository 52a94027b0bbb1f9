package client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// UploadClient posts bundle documents to a target FHIR endpoint with
// bounded retries on transient failures.
type UploadClient struct {
	target     string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewUploadClient creates a client for the given endpoint URL.
func NewUploadClient(target string, log zerolog.Logger) *UploadClient {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.Logger = nil
	retryClient.HTTPClient = &http.Client{
		Timeout: 60 * time.Second,
	}

	return &UploadClient{
		target:     target,
		httpClient: retryClient.StandardClient(),
		log:        log,
	}
}

// PushFile uploads the JSON document at path to the target endpoint.
func (c *UploadClient) PushFile(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return c.Push(payload)
}

// Push uploads an already-encoded JSON document.
func (c *UploadClient) Push(payload []byte) error {
	req, err := http.NewRequest(http.MethodPost, c.target, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/fhir+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post bundle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("endpoint returned %s: %s", resp.Status, string(body))
	}

	c.log.Info().
		Str("target", c.target).
		Int("bytes", len(payload)).
		Msg("Pushed bundle")
	return nil
}
