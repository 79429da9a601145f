package service

import (
	"context"

	"github.com/google/uuid"

	"threadboard/internal/model"
)

// Func-field mocks: each test swaps in exactly the behavior it needs.
// Defaults resolve mirror references successfully and report empty data, so
// tests only override what they exercise.

type mockCommentRepository struct {
	createFn      func(ctx context.Context, postID, userID uuid.UUID, content string, parentID *uuid.UUID) (*model.Comment, error)
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	updateFn      func(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error)
	softDeleteFn  func(ctx context.Context, id uuid.UUID) error
	listByPostFn  func(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)
	listRepliesFn func(ctx context.Context, parentID uuid.UUID) ([]model.Comment, error)
	listByUserFn  func(ctx context.Context, userID uuid.UUID) ([]model.Comment, error)
	countByPostFn func(ctx context.Context, postID uuid.UUID) (int, error)

	createCalls     int
	softDeleteCalls int
}

func (m *mockCommentRepository) Create(ctx context.Context, postID, userID uuid.UUID, content string, parentID *uuid.UUID) (*model.Comment, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, postID, userID, content, parentID)
	}
	return &model.Comment{
		ID:              uuid.New(),
		PostID:          postID,
		UserID:          userID,
		Content:         content,
		ParentCommentID: parentID,
	}, nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrCommentNotFound
}

func (m *mockCommentRepository) Update(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, content)
	}
	return nil, model.ErrCommentNotFound
}

func (m *mockCommentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	m.softDeleteCalls++
	if m.softDeleteFn != nil {
		return m.softDeleteFn(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	if m.listByPostFn != nil {
		return m.listByPostFn(ctx, postID)
	}
	return []model.Comment{}, nil
}

func (m *mockCommentRepository) ListReplies(ctx context.Context, parentID uuid.UUID) ([]model.Comment, error) {
	if m.listRepliesFn != nil {
		return m.listRepliesFn(ctx, parentID)
	}
	return []model.Comment{}, nil
}

func (m *mockCommentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Comment, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return []model.Comment{}, nil
}

func (m *mockCommentRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	if m.countByPostFn != nil {
		return m.countByPostFn(ctx, postID)
	}
	return 0, nil
}

type mockPostRepository struct {
	createFn   func(ctx context.Context, userID, description string) (*model.Post, error)
	getByIDFn  func(ctx context.Context, id uuid.UUID) (*model.Post, error)
	updateFn   func(ctx context.Context, id uuid.UUID, description string) (*model.Post, error)
	deleteFn   func(ctx context.Context, id uuid.UUID) error
	existsFn   func(ctx context.Context, id uuid.UUID) (bool, error)
	createCall int
}

func (m *mockPostRepository) Create(ctx context.Context, userID, description string) (*model.Post, error) {
	m.createCall++
	if m.createFn != nil {
		return m.createFn(ctx, userID, description)
	}
	return &model.Post{ID: uuid.New(), UserID: userID, Description: description, PostNumber: 1}, nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*model.Post, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, description)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return model.ErrPostNotFound
}

func (m *mockPostRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return true, nil
}

type mockUserRepository struct {
	createFn      func(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*model.User, error)
	getByUserIDFn func(ctx context.Context, userID string) (*model.User, error)
	existsFn      func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &model.User{ID: uuid.New(), UserID: req.UserID, Username: req.Username, Email: req.Email}, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByUserID(ctx context.Context, userID string) (*model.User, error) {
	if m.getByUserIDFn != nil {
		return m.getByUserIDFn(ctx, userID)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return true, nil
}

type mockCommentLikeRepository struct {
	createFn              func(ctx context.Context, commentID, userID uuid.UUID) (*model.CommentLike, error)
	deleteFn              func(ctx context.Context, commentID, userID uuid.UUID) error
	countByCommentFn      func(ctx context.Context, commentID uuid.UUID) (int, error)
	getLikersFn           func(ctx context.Context, commentID uuid.UUID) ([]model.User, error)
	countByPostCommentsFn func(ctx context.Context, postID uuid.UUID) (map[uuid.UUID]int, error)
}

func (m *mockCommentLikeRepository) Create(ctx context.Context, commentID, userID uuid.UUID) (*model.CommentLike, error) {
	if m.createFn != nil {
		return m.createFn(ctx, commentID, userID)
	}
	return &model.CommentLike{ID: uuid.New(), CommentID: commentID, UserID: userID}, nil
}

func (m *mockCommentLikeRepository) Delete(ctx context.Context, commentID, userID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, commentID, userID)
	}
	return model.ErrLikeNotFound
}

func (m *mockCommentLikeRepository) CountByComment(ctx context.Context, commentID uuid.UUID) (int, error) {
	if m.countByCommentFn != nil {
		return m.countByCommentFn(ctx, commentID)
	}
	return 0, nil
}

func (m *mockCommentLikeRepository) GetLikers(ctx context.Context, commentID uuid.UUID) ([]model.User, error) {
	if m.getLikersFn != nil {
		return m.getLikersFn(ctx, commentID)
	}
	return []model.User{}, nil
}

func (m *mockCommentLikeRepository) CountByPostComments(ctx context.Context, postID uuid.UUID) (map[uuid.UUID]int, error) {
	if m.countByPostCommentsFn != nil {
		return m.countByPostCommentsFn(ctx, postID)
	}
	return map[uuid.UUID]int{}, nil
}

type mockPostLikeRepository struct {
	createFn      func(ctx context.Context, postID, userID uuid.UUID) (*model.PostLike, error)
	deleteFn      func(ctx context.Context, postID, userID uuid.UUID) error
	countByPostFn func(ctx context.Context, postID uuid.UUID) (int, error)
	getLikersFn   func(ctx context.Context, postID uuid.UUID) ([]model.User, error)
}

func (m *mockPostLikeRepository) Create(ctx context.Context, postID, userID uuid.UUID) (*model.PostLike, error) {
	if m.createFn != nil {
		return m.createFn(ctx, postID, userID)
	}
	return &model.PostLike{ID: uuid.New(), PostID: postID, UserID: userID}, nil
}

func (m *mockPostLikeRepository) Delete(ctx context.Context, postID, userID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID, userID)
	}
	return model.ErrLikeNotFound
}

func (m *mockPostLikeRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	if m.countByPostFn != nil {
		return m.countByPostFn(ctx, postID)
	}
	return 0, nil
}

func (m *mockPostLikeRepository) GetLikers(ctx context.Context, postID uuid.UUID) ([]model.User, error) {
	if m.getLikersFn != nil {
		return m.getLikersFn(ctx, postID)
	}
	return []model.User{}, nil
}

type mockAnalyticsRepository struct {
	countersFn func(ctx context.Context) (*model.CommentCounters, error)
	topPostsFn func(ctx context.Context, n int) ([]model.PostCommentCount, error)
	topUsersFn func(ctx context.Context, n int) ([]model.UserCommentCount, error)
}

func (m *mockAnalyticsRepository) Counters(ctx context.Context) (*model.CommentCounters, error) {
	if m.countersFn != nil {
		return m.countersFn(ctx)
	}
	return &model.CommentCounters{}, nil
}

func (m *mockAnalyticsRepository) TopPostsByCommentCount(ctx context.Context, n int) ([]model.PostCommentCount, error) {
	if m.topPostsFn != nil {
		return m.topPostsFn(ctx, n)
	}
	return []model.PostCommentCount{}, nil
}

func (m *mockAnalyticsRepository) TopUsersByCommentCount(ctx context.Context, n int) ([]model.UserCommentCount, error) {
	if m.topUsersFn != nil {
		return m.topUsersFn(ctx, n)
	}
	return []model.UserCommentCount{}, nil
}
