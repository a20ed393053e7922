// file: internals/client/upload.go
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"classboard_backend/internals/configs"
)

/* =========================
   Upload collaborator

   The blob endpoint is external; it takes one multipart file (field
   "file") and answers with a public URL. The canonical contract is
   {"url": "..."} — the other shapes are only tolerated here, as a
   compatibility adapter at the boundary.
   ========================= */

type Uploader struct {
	Endpoint string
	HTTP     *http.Client
}

func NewUploader(endpoint string) *Uploader {
	return &Uploader{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: 30 * time.Second},
	}
}

// NewDefaultUploader points at the UPLOAD_ENDPOINT from the environment.
func NewDefaultUploader() *Uploader {
	return NewUploader(configs.UploadEndpoint)
}

// UploadAll sends files one by one and collects the returned URLs. It
// stops at the first failure; already-uploaded blobs stay behind (no
// compensation), same as the original form.
func (u *Uploader) UploadAll(ctx context.Context, files []PickedFile) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := u.UploadOne(ctx, f)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (u *Uploader) UploadOne(ctx context.Context, f PickedFile) (string, error) {
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", f.Name)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(f.Data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.Endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	res, err := u.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode >= 300 {
		return "", fmt.Errorf("upload failed: %d %s", res.StatusCode, bytes.TrimSpace(raw))
	}

	return extractUploadURL(raw)
}

// extractUploadURL accepts {url}, {blob:{url}}, {data:{url}} and
// {result:{url}}.
func extractUploadURL(raw []byte) (string, error) {
	var shape struct {
		URL  string `json:"url"`
		Blob struct {
			URL string `json:"url"`
		} `json:"blob"`
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
		Result struct {
			URL string `json:"url"`
		} `json:"result"`
	}
	if err := sonic.Unmarshal(raw, &shape); err != nil {
		return "", fmt.Errorf("upload response not JSON: %w", err)
	}
	for _, u := range []string{shape.URL, shape.Blob.URL, shape.Data.URL, shape.Result.URL} {
		if u != "" {
			return u, nil
		}
	}
	return "", fmt.Errorf("upload response missing url")
}
