package imagehost

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

type uploadResponse struct {
	URL string `json:"url"`
}

type Uploader struct {
	client *resty.Client
}

func NewUploader(uploadURL string) *Uploader {
	return &Uploader{
		client: resty.New().SetBaseURL(uploadURL),
	}
}

// Upload posts the PNG as a multipart form and returns the hosted URL.
func (u *Uploader) Upload(ctx context.Context, png []byte) (string, error) {
	var result uploadResponse
	resp, err := u.client.R().
		SetContext(ctx).
		SetFileReader("file", "qris.png", bytes.NewReader(png)).
		SetResult(&result).
		Post("")
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("image host returned status %d", resp.StatusCode())
	}
	if result.URL == "" {
		return "", fmt.Errorf("image host returned no url")
	}
	return result.URL, nil
}
