package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"threadboard/internal/handler"
	"threadboard/internal/httputil"
	authmw "threadboard/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	UserHandler        *handler.UserHandler
	PostHandler        *handler.PostHandler
	CommentHandler     *handler.CommentHandler
	CommentLikeHandler *handler.CommentLikeHandler
	PostLikeHandler    *handler.PostLikeHandler
	AnalyticsHandler   *handler.AnalyticsHandler
	JWTSecret          string
}

// NewRouter creates and configures a new Chi router with all route groups.
// Reads are public; every mutating route requires a verified delegation
// token.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public reads
	r.Get("/users/{id}", cfg.UserHandler.GetByID)
	r.Get("/users/{id}/comments", cfg.CommentHandler.ListByUser)
	r.Get("/posts/{id}", cfg.PostHandler.GetByID)
	r.Get("/posts/{id}/comments", cfg.CommentHandler.ListThread)
	r.Get("/comments/analytics", cfg.AnalyticsHandler.Overview)
	r.Get("/comments/{id}", cfg.CommentHandler.GetByID)
	r.Get("/comments/{id}/replies", cfg.CommentHandler.ListReplies)
	r.Get("/comment-likes/comment_likes", cfg.CommentLikeHandler.Likes)
	r.Get("/post-likes/post_likes", cfg.PostLikeHandler.Likes)

	// Protected routes - require a verified token
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		r.Post("/users", cfg.UserHandler.Provision)

		r.Post("/posts", cfg.PostHandler.Create)
		r.Put("/posts/{id}", cfg.PostHandler.Update)
		r.Delete("/posts/{id}", cfg.PostHandler.Delete)

		r.Post("/comments", cfg.CommentHandler.Create)
		r.Post("/comments/{id}/reply", cfg.CommentHandler.Reply)
		r.Put("/comments/{id}/edit", cfg.CommentHandler.Edit)
		r.Delete("/comments/{id}/soft_delete", cfg.CommentHandler.SoftDelete)

		r.Post("/comment-likes", cfg.CommentLikeHandler.Add)
		r.Delete("/comment-likes/remove_like", cfg.CommentLikeHandler.Remove)

		r.Post("/post-likes", cfg.PostLikeHandler.Add)
		r.Delete("/post-likes/remove_like", cfg.PostLikeHandler.Remove)
	})

	return r
}
