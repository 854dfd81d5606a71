package uploads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/coachshot/internal/auth"
	"github.com/2beens/coachshot/internal/extraction"
	"github.com/2beens/coachshot/internal/quota"
	"github.com/2beens/coachshot/internal/telemetry/tracing"
	"github.com/2beens/coachshot/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	maxUploadSize = 64 << 20 // whole multipart body
	maxFiles      = 20
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=uploads_test

type uploader interface {
	Upload(ctx context.Context, userID string, req Request) (*Result, error)
}

type Handler struct {
	uploader     uploader
	mergeDefault bool
}

func NewHandler(uploader uploader, mergeDefault bool) *Handler {
	return &Handler{
		uploader:     uploader,
		mergeDefault: mergeDefault,
	}
}

// HandleUpload accepts multipart form data with one or more "files", an
// optional "date" (YYYY-MM-DD) and an optional "merge" flag.
func (handler *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.uploads.upload")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Errorf("upload, parse multipart form: %s", err)
		http.Error(w, "invalid form data or files too big", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Warnf("upload, remove multipart temp files: %s", err)
		}
	}()

	req := Request{
		Date:  strings.TrimSpace(r.FormValue("date")),
		Merge: handler.mergeDefault,
	}
	if mergeStr := r.FormValue("merge"); mergeStr != "" {
		merge, err := strconv.ParseBool(mergeStr)
		if err != nil {
			http.Error(w, "invalid merge flag", http.StatusBadRequest)
			return
		}
		req.Merge = merge
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		http.Error(w, "no files uploaded", http.StatusBadRequest)
		return
	}
	if len(fileHeaders) > maxFiles {
		http.Error(w, fmt.Sprintf("too many files, max %d", maxFiles), http.StatusBadRequest)
		return
	}

	for _, fileHeader := range fileHeaders {
		log.Tracef("upload: reading file %s, size %d", fileHeader.Filename, fileHeader.Size)
		file, err := fileHeader.Open()
		if err != nil {
			log.Errorf("upload: open file %s: %s", fileHeader.Filename, err)
			http.Error(w, "failed to read uploaded file", http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(file)
		if closeErr := file.Close(); closeErr != nil {
			log.Errorf("failed to close file properly [%s]: %s", fileHeader.Filename, closeErr)
		}
		if err != nil {
			log.Errorf("upload: read file %s: %s", fileHeader.Filename, err)
			http.Error(w, "failed to read uploaded file", http.StatusBadRequest)
			return
		}
		req.Files = append(req.Files, File{
			Name: fileHeader.Filename,
			Data: data,
		})
	}

	result, err := handler.uploader.Upload(ctx, userID, req)
	if err != nil {
		if errors.Is(err, ErrNoFiles) || errors.Is(err, ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("upload for user [%s] failed: %s", userID, err)
		http.Error(w, extraction.MsgFailedToProcessImg, http.StatusInternalServerError)
		return
	}

	status := http.StatusCreated
	if len(result.Workouts) == 0 && len(result.Failures) > 0 {
		status = failureStatus(result.Failures[0].Err())
	}

	respJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("marshal upload result error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}

func failureStatus(err error) int {
	switch {
	case errors.Is(err, extraction.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, quota.ErrQuotaExceeded), errors.Is(err, extraction.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, extraction.ErrNotConfigured):
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}
