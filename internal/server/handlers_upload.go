package server

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"collegehub/internal/media"
	"collegehub/internal/models"
	"collegehub/internal/utils"
)

// HandlerUpload streams one multipart file to the media host and answers
// with the hosted asset's metadata. The incoming file is buffered in a temp
// file that is removed regardless of outcome.
func (s *Server) HandlerUpload(c echo.Context) error {
	resp := make(map[string]any)

	file, err := c.FormFile("file")
	if err != nil {
		resp["error"] = "No file uploaded"
		return c.JSON(http.StatusBadRequest, resp)
	}

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "Cloudy"
	}

	if s.media == nil {
		s.log.Error("upload requested but cloudinary is not configured")
		resp["error"] = "Cloudinary not configured"
		resp["details"] = "Missing CLOUDINARY_* environment variables"
		return c.JSON(http.StatusInternalServerError, resp)
	}

	src, err := file.Open()
	if err != nil {
		resp["error"] = "Upload failed"
		resp["message"] = err.Error()
		return c.JSON(http.StatusInternalServerError, resp)
	}
	defer src.Close()

	randID, err := utils.GenerateRandomID(10)
	if err != nil {
		resp["error"] = "Upload failed"
		resp["message"] = err.Error()
		return c.JSON(http.StatusInternalServerError, resp)
	}
	tmpPath := filepath.Join(os.TempDir(), randID+"-"+filepath.Base(file.Filename))

	tmp, err := os.Create(tmpPath)
	if err != nil {
		resp["error"] = "Upload failed"
		resp["message"] = err.Error()
		return c.JSON(http.StatusInternalServerError, resp)
	}
	defer os.Remove(tmpPath)

	_, err = io.Copy(tmp, src)
	tmp.Close()
	if err != nil {
		resp["error"] = "Upload failed"
		resp["message"] = err.Error()
		return c.JSON(http.StatusInternalServerError, resp)
	}

	result, err := s.media.Upload(c.Request().Context(), tmpPath, media.UploadOptions{
		Folder:      folder,
		DisplayName: strings.SplitN(file.Filename, ".", 2)[0],
	})
	if err != nil {
		s.log.WithError(err).Error("media upload failed")
		resp["error"] = "Upload failed"
		resp["message"] = err.Error()
		return c.JSON(http.StatusInternalServerError, resp)
	}

	s.log.WithField("public_id", result.PublicID).Info("file uploaded")

	return c.JSON(http.StatusOK, models.UploadResult{
		Success:  true,
		URL:      result.URL,
		PublicID: result.PublicID,
		Width:    result.Width,
		Height:   result.Height,
		Size:     result.Bytes,
		Format:   result.Format,
	})
}
