package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"
)

// ImageAnalysis is the inference service's answer to an uploaded frame.
// The session id correlates follow-up questions with this analysis.
type ImageAnalysis struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
}

type chatRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id,omitempty"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type inferenceError struct {
	Detail string `json:"detail"`
}

// Client talks to the external image/chat inference service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// UploadImage sends one captured JPEG frame for analysis.
func (c *Client) UploadImage(ctx context.Context, image []byte) (*ImageAnalysis, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="capture.jpg"`)
	h.Set("Content-Type", "image/jpeg")

	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, err
	}

	if _, err := part.Write(image); err != nil {
		return nil, err
	}

	writer.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/upload_image", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serviceError("upload_image", resp)
	}

	var analysis ImageAnalysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		return nil, err
	}

	return &analysis, nil
}

// Chat sends a follow-up question, optionally bound to an image session.
func (c *Client) Chat(ctx context.Context, question, sessionID string) (string, error) {
	payload, err := json.Marshal(chatRequest{Question: question, SessionID: sessionID})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", serviceError("chat", resp)
	}

	var answer chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return "", err
	}

	return answer.Response, nil
}

func serviceError(op string, resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var detail inferenceError
	if err := json.Unmarshal(data, &detail); err == nil && detail.Detail != "" {
		return fmt.Errorf("inference %s failed: %s", op, detail.Detail)
	}
	return fmt.Errorf("inference %s failed with status %d: %s", op, resp.StatusCode, string(data))
}
