package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"collegehub/internal/backend"
	"collegehub/internal/media"
	"collegehub/internal/server"
)

type stubUploader struct {
	lastOpts media.UploadOptions
	result   *media.Result
	err      error
}

func (s *stubUploader) Upload(_ context.Context, _ string, opts media.UploadOptions) (*media.Result, error) {
	s.lastOpts = opts
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newUploadServer(t *testing.T, uploader media.Uploader) http.Handler {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	srv := server.New(backend.New("http://127.0.0.1:1"), uploader, "secret-reset", logger)
	return srv.RegisterRoutes()
}

func multipartUpload(t *testing.T, filename, folder string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte("file-bytes"))
	if folder != "" {
		mw.WriteField("folder", folder)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestUpload_MissingBearerRejectedBeforeHandler(t *testing.T) {
	uploader := &stubUploader{result: &media.Result{URL: "https://cdn.example/x"}}
	handler := newUploadServer(t, uploader)

	body, contentType := multipartUpload(t, "pic.png", "")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if uploader.lastOpts != (media.UploadOptions{}) {
		t.Error("uploader was called without authorization")
	}
}

func TestUpload_NoFileReturns400(t *testing.T) {
	handler := newUploadServer(t, &stubUploader{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("folder", "somewhere")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "No file uploaded") {
		t.Errorf("body = %q, want no-file error", rec.Body.String())
	}
}

func TestUpload_UnconfiguredMediaReturns500(t *testing.T) {
	handler := newUploadServer(t, nil)

	body, contentType := multipartUpload(t, "pic.png", "")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rec.Body.String(), "Cloudinary not configured") {
		t.Errorf("body = %q, want configuration error", rec.Body.String())
	}
}

func TestUpload_SuccessReturnsAssetMetadata(t *testing.T) {
	uploader := &stubUploader{result: &media.Result{
		URL:      "https://res.cloudinary.com/demo/image/upload/v1/clubs/abc.png",
		PublicID: "clubs/abc",
		Width:    640,
		Height:   480,
		Bytes:    2048,
		Format:   "png",
	}}
	handler := newUploadServer(t, uploader)

	body, contentType := multipartUpload(t, "logo.final.png", "clubs")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if uploader.lastOpts.Folder != "clubs" {
		t.Errorf("folder = %q, want %q", uploader.lastOpts.Folder, "clubs")
	}
	if uploader.lastOpts.DisplayName != "logo" {
		t.Errorf("display name = %q, want %q", uploader.lastOpts.DisplayName, "logo")
	}

	var got struct {
		Success  bool   `json:"success"`
		URL      string `json:"url"`
		PublicID string `json:"publicId"`
		Width    int    `json:"width"`
		Height   int    `json:"height"`
		Size     int    `json:"size"`
		Format   string `json:"format"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !got.Success {
		t.Error("success = false, want true")
	}
	if got.URL != uploader.result.URL {
		t.Errorf("url = %q, want %q", got.URL, uploader.result.URL)
	}
	if got.PublicID != "clubs/abc" || got.Width != 640 || got.Height != 480 || got.Size != 2048 || got.Format != "png" {
		t.Errorf("metadata = %+v, want stub values", got)
	}
}

func TestUpload_DefaultFolder(t *testing.T) {
	uploader := &stubUploader{result: &media.Result{URL: "https://cdn.example/x", Format: "png"}}
	handler := newUploadServer(t, uploader)

	body, contentType := multipartUpload(t, "pic.png", "")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if uploader.lastOpts.Folder != "Cloudy" {
		t.Errorf("folder = %q, want default %q", uploader.lastOpts.Folder, "Cloudy")
	}
}
