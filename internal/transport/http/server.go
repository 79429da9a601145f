package http

import (
	"fmt"
	"log"
	stdhttp "net/http"

	"github.com/go-playground/validator/v10"

	"threadboard/internal/config"
	"threadboard/internal/database"
	"threadboard/internal/handler"
	"threadboard/internal/repository"
	"threadboard/internal/service"
)

func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	commentLikeRepo := repository.NewCommentLikeRepository(db)
	postLikeRepo := repository.NewPostLikeRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo, commentLikeRepo, postRepo, userRepo, cfg.Comment)
	commentLikeService := service.NewCommentLikeService(commentLikeRepo, commentRepo, userRepo)
	postLikeService := service.NewPostLikeService(postLikeRepo, postRepo, userRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	validate := validator.New()

	router := NewRouter(RouterConfig{
		UserHandler:        handler.NewUserHandler(userService, validate),
		PostHandler:        handler.NewPostHandler(postService, validate),
		CommentHandler:     handler.NewCommentHandler(commentService, validate),
		CommentLikeHandler: handler.NewCommentLikeHandler(commentLikeService, validate),
		PostLikeHandler:    handler.NewPostLikeHandler(postLikeService, validate),
		AnalyticsHandler:   handler.NewAnalyticsHandler(analyticsService),
		JWTSecret:          cfg.JWTSecret,
	})

	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s", addr)
	return stdhttp.ListenAndServe(addr, router)
}
