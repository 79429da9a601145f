package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"threadboard/internal/httputil"
	"threadboard/internal/model"
	"threadboard/internal/service"
)

type CommentLikeHandler struct {
	likeService *service.CommentLikeService
	validate    *validator.Validate
}

func NewCommentLikeHandler(likeService *service.CommentLikeService, validate *validator.Validate) *CommentLikeHandler {
	return &CommentLikeHandler{
		likeService: likeService,
		validate:    validate,
	}
}

// Add handles POST /comment-likes
// A duplicate (comment, user) pair is a conflict, never a second row.
func (h *CommentLikeHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.AddCommentLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request: "+err.Error())
		return
	}

	commentID, _ := uuid.Parse(req.CommentID)
	userID, _ := uuid.Parse(req.UserID)

	like, err := h.likeService.Add(r.Context(), commentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCommentNotFound):
			httputil.WriteNotFound(w, "Comment not found")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteBadRequest(w, "User reference does not resolve")
		case errors.Is(err, model.ErrAlreadyLiked):
			httputil.WriteConflict(w, "User already liked this comment")
		default:
			log.Printf("[ERROR] Add comment like handler: comment=%s user=%s err=%v", commentID, userID, err)
			httputil.WriteInternalError(w, "Failed to add like")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, like)
}

// Remove handles DELETE /comment-likes/remove_like?comment_id=&user_id=
func (h *CommentLikeHandler) Remove(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(r.URL.Query().Get("comment_id"))
	if err != nil {
		httputil.WriteBadRequest(w, "Both comment_id and user_id parameters required")
		return
	}
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		httputil.WriteBadRequest(w, "Both comment_id and user_id parameters required")
		return
	}

	if err := h.likeService.Remove(r.Context(), commentID, userID); err != nil {
		if errors.Is(err, model.ErrLikeNotFound) {
			httputil.WriteNotFound(w, "Like not found")
			return
		}
		log.Printf("[ERROR] Remove comment like handler: comment=%s user=%s err=%v", commentID, userID, err)
		httputil.WriteInternalError(w, "Failed to remove like")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Like removed successfully",
	})
}

// Likes handles GET /comment-likes/comment_likes?comment_id=
// Live count plus liker identities, no caching.
func (h *CommentLikeHandler) Likes(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(r.URL.Query().Get("comment_id"))
	if err != nil {
		httputil.WriteBadRequest(w, "comment_id parameter required")
		return
	}

	likes, err := h.likeService.Likes(r.Context(), commentID)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			httputil.WriteNotFound(w, "Comment not found")
			return
		}
		log.Printf("[ERROR] Comment likes handler: comment=%s err=%v", commentID, err)
		httputil.WriteInternalError(w, "Failed to get likes")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, likes)
}

type PostLikeHandler struct {
	likeService *service.PostLikeService
	validate    *validator.Validate
}

func NewPostLikeHandler(likeService *service.PostLikeService, validate *validator.Validate) *PostLikeHandler {
	return &PostLikeHandler{
		likeService: likeService,
		validate:    validate,
	}
}

// Add handles POST /post-likes
func (h *PostLikeHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.AddPostLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request: "+err.Error())
		return
	}

	postID, _ := uuid.Parse(req.PostID)
	userID, _ := uuid.Parse(req.UserID)

	like, err := h.likeService.Add(r.Context(), postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteBadRequest(w, "User reference does not resolve")
		case errors.Is(err, model.ErrAlreadyLiked):
			httputil.WriteConflict(w, "User already liked this post")
		default:
			log.Printf("[ERROR] Add post like handler: post=%s user=%s err=%v", postID, userID, err)
			httputil.WriteInternalError(w, "Failed to add like")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, like)
}

// Remove handles DELETE /post-likes/remove_like?post_id=&user_id=
func (h *PostLikeHandler) Remove(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(r.URL.Query().Get("post_id"))
	if err != nil {
		httputil.WriteBadRequest(w, "Both post_id and user_id parameters required")
		return
	}
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		httputil.WriteBadRequest(w, "Both post_id and user_id parameters required")
		return
	}

	if err := h.likeService.Remove(r.Context(), postID, userID); err != nil {
		if errors.Is(err, model.ErrLikeNotFound) {
			httputil.WriteNotFound(w, "Like not found")
			return
		}
		log.Printf("[ERROR] Remove post like handler: post=%s user=%s err=%v", postID, userID, err)
		httputil.WriteInternalError(w, "Failed to remove like")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Like removed successfully",
	})
}

// Likes handles GET /post-likes/post_likes?post_id=
func (h *PostLikeHandler) Likes(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(r.URL.Query().Get("post_id"))
	if err != nil {
		httputil.WriteBadRequest(w, "post_id parameter required")
		return
	}

	likes, err := h.likeService.Likes(r.Context(), postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		log.Printf("[ERROR] Post likes handler: post=%s err=%v", postID, err)
		httputil.WriteInternalError(w, "Failed to get likes")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, likes)
}
