// Package codec talks to the external code-image service. The ledger never
// touches pixels itself: it hands the claim-check text to encode and gets
// image bytes back, or hands image bytes to decode and gets text back.
package codec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Codec interface {
	Encode(ctx context.Context, payload string) ([]byte, error)
	Decode(ctx context.Context, image []byte) (string, error)
}

type httpCodec struct {
	baseURL string
	client  *http.Client
}

func NewHTTPCodec(baseURL string, timeout time.Duration) Codec {
	return &httpCodec{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Encode posts the payload text and returns the rendered image bytes (PNG).
func (c *httpCodec) Encode(ctx context.Context, payload string) ([]byte, error) {
	body, err := json.Marshal(map[string]string{"data": payload})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/encode", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("codec encode call failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("codec encode returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Decode posts image bytes and returns the embedded text. An image with no
// readable code comes back as an empty string with no error, matching the
// scanner's "found nothing" result.
func (c *httpCodec) Decode(ctx context.Context, image []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/decode", bytes.NewReader(image))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("codec decode call failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("codec decode returned status %d", resp.StatusCode)
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("codec decode response: %w", err)
	}
	return out.Text, nil
}
