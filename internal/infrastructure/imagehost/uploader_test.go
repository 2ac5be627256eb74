package imagehost_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AllxdDev-Hosting/Rest-Api/internal/infrastructure/imagehost"
)

func TestUploader_Upload_Success(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "qris.png", header.Filename)
		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, png, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url": "https://img.example/abc.png"}`))
	}))
	defer srv.Close()

	uploader := imagehost.NewUploader(srv.URL)
	url, err := uploader.Upload(context.Background(), png)

	require.NoError(t, err)
	assert.Equal(t, "https://img.example/abc.png", url)
}

func TestUploader_Upload_HostError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	uploader := imagehost.NewUploader(srv.URL)
	_, err := uploader.Upload(context.Background(), []byte("png"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestUploader_Upload_MissingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	uploader := imagehost.NewUploader(srv.URL)
	_, err := uploader.Upload(context.Background(), []byte("png"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no url")
}
