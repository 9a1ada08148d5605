package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"
)

const uploadTimeout = 30 * time.Second

// MediaClient uploads rasterized artifacts to the media endpoint
// Implements MediaClientInterface
type MediaClient struct {
	uploadURL  string
	httpClient *http.Client
}

// NewMediaClient creates a new MediaClient posting to the given endpoint
func NewMediaClient(uploadURL string) *MediaClient {
	return &MediaClient{
		uploadURL: uploadURL,
		httpClient: &http.Client{
			Timeout: uploadTimeout,
		},
	}
}

// Ensure MediaClient implements MediaClientInterface
var _ MediaClientInterface = (*MediaClient)(nil)

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload POSTs the image as multipart form data (field "image") and returns
// the public URL from the endpoint's JSON response. Non-2xx status, timeout,
// network error, or a response without a url field are all errors; callers
// convert them to a missing artifact, never a hard failure.
func (c *MediaClient) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute upload: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("upload failed: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var result uploadResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w, body: %s", err, string(respBody))
	}
	if result.URL == "" {
		return "", fmt.Errorf("upload response missing url field: %s", string(respBody))
	}

	log.Printf("✓ Artifact uploaded: %s (%d bytes)", filename, len(data))
	return result.URL, nil
}
