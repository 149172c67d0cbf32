package apistub

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/random"

	"github.com/interiorpro/adminconsole/internal/assets"
)

// upload accepts one multipart file field named "file", stores it
// under the upload directory with a random name, and returns the
// public path. Mirrors the {success, filePath, error} contract the
// console expects.
func (s *Server) upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return uploadFail(c, http.StatusBadRequest, "File field is required")
	}
	if fileHeader.Size > assets.MaxUploadBytes {
		return uploadFail(c, http.StatusBadRequest, "File size too large. Maximum size is 50MB.")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return uploadFail(c, http.StatusInternalServerError, "Could not read file")
	}
	defer src.Close()

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return uploadFail(c, http.StatusInternalServerError, "Could not save file")
	}
	name := random.String(16) + filepath.Ext(fileHeader.Filename)
	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return uploadFail(c, http.StatusInternalServerError, "Could not save file")
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return uploadFail(c, http.StatusInternalServerError, "Could not save file")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"filePath": "/uploads/" + name,
	})
}

// probeUpload answers the reachability check against stored assets.
func (s *Server) probeUpload(c echo.Context) error {
	name := filepath.Base(c.Param("*"))
	if _, err := os.Stat(filepath.Join(s.uploadDir, name)); err != nil {
		return fail(c, http.StatusNotFound, "File not found")
	}
	return c.NoContent(http.StatusOK)
}

func uploadFail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{
		"success": false,
		"error":   message,
	})
}
