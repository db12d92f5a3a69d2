package api

import (
	"net/http"
	"path"
	"strings"
)

const maxUploadBytes = 10 << 20 // 10 MiB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadMedia accepts a multipart image upload and returns the stored
// path plus the URL it is served under.
func (h *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_UPLOAD", "expected a multipart form with a file field")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_UPLOAD", "file field is missing")
		return
	}
	defer file.Close()

	ext := strings.ToLower(path.Ext(header.Filename))
	if !allowedImageExts[ext] {
		h.writeError(w, http.StatusBadRequest, "UNSUPPORTED_TYPE", "only image uploads are accepted")
		return
	}

	key, err := h.media.Save(r.Context(), "uploads", header.Filename, file)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "UPLOAD_FAILED", "failed to store the file")
		return
	}

	h.writeJSON(w, http.StatusCreated, MediaResponse{
		Path: key,
		URL:  h.config.Media.BaseURL + "/" + key,
	})
}
