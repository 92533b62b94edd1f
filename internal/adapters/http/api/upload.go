// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/dexterix/rosterd/internal/adapters/decode"
)

// RosterHandler handles roster upload requests.
type RosterHandler struct {
	deps     Dependencies
	maxBytes int64
}

// NewRosterHandler creates a new roster upload handler.
func NewRosterHandler(deps Dependencies, maxBytes int64) *RosterHandler {
	return &RosterHandler{deps: deps, maxBytes: maxBytes}
}

// HandleUploadRoster handles POST /admin/roster multipart uploads.
func (h *RosterHandler) HandleUploadRoster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	data, kind, err := readUpload(r, h.maxBytes)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	report, err := h.deps.ImportRoster(r.Context(), data, kind)
	if err != nil {
		if isBadUpload(err) {
			writeError(w, http.StatusBadRequest, "bad_file", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// ScoresHandler handles score sheet upload requests.
type ScoresHandler struct {
	deps     Dependencies
	maxBytes int64
}

// NewScoresHandler creates a new score upload handler.
func NewScoresHandler(deps Dependencies, maxBytes int64) *ScoresHandler {
	return &ScoresHandler{deps: deps, maxBytes: maxBytes}
}

// HandleUploadScores handles POST /admin/scores multipart uploads.
func (h *ScoresHandler) HandleUploadScores(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	data, kind, err := readUpload(r, h.maxBytes)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	report, err := h.deps.ReconcileScores(r.Context(), data, kind)
	if err != nil {
		if isBadUpload(err) {
			writeError(w, http.StatusBadRequest, "bad_file", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// readUpload extracts the "file" part of a multipart form, bounded by
// maxBytes, and infers the table kind from the filename.
func readUpload(r *http.Request, maxBytes int64) ([]byte, decode.Kind, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, "", ErrBadRequest
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", ErrMissingFile
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", ErrBadRequest
	}
	return data, decode.KindFromFilename(header.Filename), nil
}
