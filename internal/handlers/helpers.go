package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"estate-backend/internal/repository"
	"estate-backend/internal/storage"
)

const requestTimeout = 5 * time.Second

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

func respondValidationError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			field := lowerCamel(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				details = append(details, fmt.Sprintf("%s is required", field))
			default:
				details = append(details, fmt.Sprintf("%s is invalid", field))
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": details,
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "details": err.Error()})
}

func lowerCamel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// respondNotFoundOrError maps repository.ErrNotFound to 404 and anything else
// to a 500 with a generic body.
func respondNotFoundOrError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
}

// parseEntityPart decodes the JSON payload carried in a named multipart form
// field (the "apartment"/"floor" part of a mixed entity+model request).
func parseEntityPart(c *gin.Context, part string, out interface{}) error {
	payload := c.PostForm(part)
	if strings.TrimSpace(payload) == "" {
		return fmt.Errorf("%s part is required", part)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("invalid %s payload: %w", part, err)
	}
	return nil
}

// optionalFilePart reads a named multipart file if present. Absence is not an
// error.
func optionalFilePart(c *gin.Context, name string) (*storage.UploadedFile, error) {
	header, err := c.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || strings.Contains(err.Error(), "no such file") {
			return nil, nil
		}
		return nil, err
	}
	return readUploadedFile(header)
}

func readUploadedFile(header *multipart.FileHeader) (*storage.UploadedFile, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("opening upload %s: %w", header.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading upload %s: %w", header.Filename, err)
	}

	return &storage.UploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func readUploadedFiles(headers []*multipart.FileHeader) ([]storage.UploadedFile, error) {
	files := make([]storage.UploadedFile, 0, len(headers))
	for _, header := range headers {
		file, err := readUploadedFile(header)
		if err != nil {
			return nil, err
		}
		files = append(files, *file)
	}
	return files, nil
}
