package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/galleryd-dev/galleryd/internal/domain"
	"github.com/galleryd-dev/galleryd/internal/validation"
	"github.com/go-chi/chi/v5"
)

type createPostResponse struct {
	Status    string `json:"status"`
	MediaPath string `json:"mediaPath,omitempty"`
}

// CreatePost accepts a multipart form with an identifier, optional text and
// an optional single media file.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	maxRequestSize := validation.CalculateMaxRequestSize(h.cfg.Public.MaxMediaSizeBytes, 1<<20)
	if err := validation.ValidateAndParseMultipart(r, w, maxRequestSize); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	owner := r.FormValue("identifier")
	if owner == "" {
		writeErrorJSON(w, "Identifier is required", http.StatusBadRequest)
		return
	}

	var upload *domain.PendingUpload
	file, header, err := r.FormFile("mediaFile")
	switch {
	case err == nil:
		defer file.Close()
		upload = &domain.PendingUpload{
			Filename:  header.Filename,
			SizeBytes: header.Size,
			Data:      file,
		}
	case errors.Is(err, http.ErrMissingFile):
		// text-only post
	default:
		writeErrorJSON(w, "Invalid media file", http.StatusBadRequest)
		return
	}

	post, err := h.post.Create(owner, r.FormValue("textContent"), upload)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, createPostResponse{Status: "success", MediaPath: post.MediaPath})
}

// ListPosts returns the complete set of posts for one identifier.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("identifier")
	if owner == "" {
		writeErrorJSON(w, "Identifier is required", http.StatusBadRequest)
		return
	}

	posts, err := h.post.List(owner)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, posts)
}

// DeletePost removes a post and, once the record is gone, its media file.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErrorJSON(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.post.Delete(id); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, map[string]bool{"success": true})
}
