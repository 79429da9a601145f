package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"threadboard/internal/httputil"
	"threadboard/internal/model"
	"threadboard/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
	validate       *validator.Validate
}

func NewCommentHandler(commentService *service.CommentService, validate *validator.Validate) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		validate:       validate,
	}
}

// parseUUIDParam parses a UUID path parameter.
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// Create handles POST /comments
// Creates a top-level comment, or a reply when parent_comment_id is set.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCommentRequest
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
	var parentID *uuid.UUID
	if req.ParentCommentID != nil {
		id, _ := uuid.Parse(*req.ParentCommentID)
		parentID = &id
	}

	comment, err := h.commentService.Create(r.Context(), postID, userID, req.Content, parentID)
	if err != nil {
		h.writeCreateError(w, err, postID)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, comment)
}

// Reply handles POST /comments/{id}/reply
// Creates a reply under the addressed comment; the post is taken from the
// parent.
func (h *CommentHandler) Reply(w http.ResponseWriter, r *http.Request) {
	parentID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid comment ID")
		return
	}

	var req model.ReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request: "+err.Error())
		return
	}

	parent, err := h.commentService.GetByID(r.Context(), parentID)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			httputil.WriteNotFound(w, "Parent comment not found")
			return
		}
		log.Printf("[ERROR] Reply handler: parent=%s err=%v", parentID, err)
		httputil.WriteInternalError(w, "Failed to create reply")
		return
	}

	userID, _ := uuid.Parse(req.UserID)
	comment, err := h.commentService.Create(r.Context(), parent.PostID, userID, req.Content, &parentID)
	if err != nil {
		h.writeCreateError(w, err, parent.PostID)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, comment)
}

// writeCreateError maps comment creation failures. Unresolved post/user
// references are validation errors (400); a missing parent comment is 404.
func (h *CommentHandler) writeCreateError(w http.ResponseWriter, err error, postID uuid.UUID) {
	switch {
	case errors.Is(err, model.ErrContentRequired):
		httputil.WriteBadRequest(w, "Comment content is required")
	case errors.Is(err, model.ErrContentTooLong):
		httputil.WriteBadRequest(w, "Comment content too long")
	case errors.Is(err, model.ErrPostNotFound):
		httputil.WriteBadRequest(w, "Post reference does not resolve")
	case errors.Is(err, model.ErrUserNotFound):
		httputil.WriteBadRequest(w, "User reference does not resolve")
	case errors.Is(err, model.ErrCommentNotFound):
		httputil.WriteNotFound(w, "Parent comment not found")
	case errors.Is(err, model.ErrParentPostMismatch):
		httputil.WriteBadRequest(w, "Parent comment belongs to a different post")
	case errors.Is(err, model.ErrReplyDepthExceeded):
		httputil.WriteBadRequestWithCode(w, httputil.ErrCodeDepthExceeded, "Maximum reply depth exceeded")
	case errors.Is(err, model.ErrCommentLimitReached):
		httputil.WriteBadRequest(w, "Comment limit for this post reached")
	default:
		log.Printf("[ERROR] Create comment handler: post=%s err=%v", postID, err)
		httputil.WriteInternalError(w, "Failed to create comment")
	}
}

// Edit handles PUT /comments/{id}/edit
func (h *CommentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	commentID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid comment ID")
		return
	}

	var req model.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request: "+err.Error())
		return
	}

	comment, err := h.commentService.Edit(r.Context(), commentID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCommentNotFound):
			httputil.WriteNotFound(w, "Comment not found")
		case errors.Is(err, model.ErrCommentDeleted):
			httputil.WriteConflict(w, "Comment is deleted")
		case errors.Is(err, model.ErrContentRequired):
			httputil.WriteBadRequest(w, "Comment content is required")
		case errors.Is(err, model.ErrContentTooLong):
			httputil.WriteBadRequest(w, "Comment content too long")
		default:
			log.Printf("[ERROR] Edit comment handler: comment=%s err=%v", commentID, err)
			httputil.WriteInternalError(w, "Failed to edit comment")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, comment)
}

// SoftDelete handles DELETE /comments/{id}/soft_delete
// Idempotent: soft-deleting an already deleted comment succeeds.
func (h *CommentHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	commentID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid comment ID")
		return
	}

	if err := h.commentService.SoftDelete(r.Context(), commentID); err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			httputil.WriteNotFound(w, "Comment not found")
			return
		}
		log.Printf("[ERROR] Soft delete handler: comment=%s err=%v", commentID, err)
		httputil.WriteInternalError(w, "Failed to delete comment")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Comment soft deleted successfully",
	})
}

// GetByID handles GET /comments/{id}
// Direct lookup stays possible for soft-deleted comments.
func (h *CommentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	commentID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid comment ID")
		return
	}

	comment, err := h.commentService.GetByID(r.Context(), commentID)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			httputil.WriteNotFound(w, "Comment not found")
			return
		}
		log.Printf("[ERROR] Get comment handler: comment=%s err=%v", commentID, err)
		httputil.WriteInternalError(w, "Failed to get comment")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, comment)
}

// ListThread handles GET /posts/{id}/comments
// Returns the ordered comment forest for a post.
func (h *CommentHandler) ListThread(w http.ResponseWriter, r *http.Request) {
	postID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	thread, err := h.commentService.ListThread(r.Context(), postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		log.Printf("[ERROR] List thread handler: post=%s err=%v", postID, err)
		httputil.WriteInternalError(w, "Failed to list thread")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, thread)
}

// ListReplies handles GET /comments/{id}/replies
func (h *CommentHandler) ListReplies(w http.ResponseWriter, r *http.Request) {
	commentID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid comment ID")
		return
	}

	replies, err := h.commentService.ListReplies(r.Context(), commentID)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			httputil.WriteNotFound(w, "Comment not found")
			return
		}
		log.Printf("[ERROR] List replies handler: comment=%s err=%v", commentID, err)
		httputil.WriteInternalError(w, "Failed to list replies")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, replies)
}

// ListByUser handles GET /users/{id}/comments
func (h *CommentHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	comments, err := h.commentService.ListByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] List user comments handler: user=%s err=%v", userID, err)
		httputil.WriteInternalError(w, "Failed to list comments")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, comments)
}
