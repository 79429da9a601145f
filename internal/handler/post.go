package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"threadboard/internal/httputil"
	"threadboard/internal/model"
	"threadboard/internal/service"
)

type PostHandler struct {
	postService *service.PostService
	validate    *validator.Validate
}

func NewPostHandler(postService *service.PostService, validate *validator.Validate) *PostHandler {
	return &PostHandler{
		postService: postService,
		validate:    validate,
	}
}

// Create handles POST /posts
// The post number is assigned atomically; a request that keeps losing the
// assignment race gets a retryable 409.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request: "+err.Error())
		return
	}

	post, err := h.postService.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrPostNumberConflict) {
			httputil.WriteConflict(w, "Post number conflict, retry the request")
			return
		}
		log.Printf("[ERROR] Create post handler: user=%s err=%v", req.UserID, err)
		httputil.WriteInternalError(w, "Failed to create post")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, post)
}

// GetByID handles GET /posts/{id}
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	postID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	post, err := h.postService.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		log.Printf("[ERROR] Get post handler: post=%s err=%v", postID, err)
		httputil.WriteInternalError(w, "Failed to get post")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, post)
}

// Update handles PUT /posts/{id}
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	postID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	var req model.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request: "+err.Error())
		return
	}

	post, err := h.postService.Update(r.Context(), postID, req)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		log.Printf("[ERROR] Update post handler: post=%s err=%v", postID, err)
		httputil.WriteInternalError(w, "Failed to update post")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /posts/{id}
// Physical delete; comments and likes cascade.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	if err := h.postService.Delete(r.Context(), postID); err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		log.Printf("[ERROR] Delete post handler: post=%s err=%v", postID, err)
		httputil.WriteInternalError(w, "Failed to delete post")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Post deleted successfully",
	})
}
