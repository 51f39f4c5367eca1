package imagekit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Uploader pushes design artwork to ImageKit and returns the hosted URL.
type Uploader struct {
	privateKey string
	client     *http.Client
	baseURL    string
}

func NewUploader(privateKey, baseURL string) (*Uploader, error) {
	if privateKey == "" {
		return nil, errors.New("imagekit private key not set")
	}
	if baseURL == "" {
		baseURL = "https://upload.imagekit.io/api/v1"
	}
	return &Uploader{
		privateKey: privateKey,
		client:     &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}, nil
}

type uploadResponse struct {
	URL    string `json:"url"`
	FileID string `json:"fileId"`
}

func (u *Uploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(data); err != nil {
		return "", err
	}
	// unique name so customer uploads never collide
	if err := mw.WriteField("fileName", uuid.NewString()+"-"+filename); err != nil {
		return "", err
	}
	if err := mw.WriteField("folder", "/designs"); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+"/files/upload", &buf)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(u.privateKey, "")
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("imagekit upload failed: %s: %s", resp.Status, body)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", errors.New("imagekit response missing url")
	}
	return out.URL, nil
}
