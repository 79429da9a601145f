package http

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"threadboard/internal/model"
)

// memStore is an in-memory stand-in for the Postgres repositories, shared by
// the per-interface adapters below. Mutations hold the lock for the whole
// operation, so the uniqueness checks behave like the real constraints.
type memStore struct {
	mu    sync.Mutex
	clock time.Time

	users        map[uuid.UUID]*model.User
	posts        map[uuid.UUID]*model.Post
	comments     map[uuid.UUID]*model.Comment
	commentOrder []uuid.UUID
	commentLikes map[uuid.UUID]map[uuid.UUID]time.Time
	postLikes    map[uuid.UUID]map[uuid.UUID]time.Time

	nextPostNumber int64
}

func newMemStore() *memStore {
	return &memStore{
		clock:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		users:          make(map[uuid.UUID]*model.User),
		posts:          make(map[uuid.UUID]*model.Post),
		comments:       make(map[uuid.UUID]*model.Comment),
		commentLikes:   make(map[uuid.UUID]map[uuid.UUID]time.Time),
		postLikes:      make(map[uuid.UUID]map[uuid.UUID]time.Time),
		nextPostNumber: 1,
	}
}

// tick advances the fake clock so creation order is always strict.
func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func uuidLess(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.UserID == req.UserID || u.Username == req.Username || u.Email == req.Email {
			return nil, model.ErrUserExists
		}
	}
	user := &model.User{
		ID:        uuid.New(),
		UserID:    req.UserID,
		Username:  req.Username,
		Email:     req.Email,
		CreatedAt: r.s.tick(),
	}
	r.s.users[user.ID] = user
	return user, nil
}

func (r memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, model.ErrUserNotFound
}

func (r memUserRepo) GetByUserID(ctx context.Context, userID string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.UserID == userID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r memUserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.users[id]
	return ok, nil
}

type memPostRepo struct{ s *memStore }

func (r memPostRepo) Create(ctx context.Context, userID, description string) (*model.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.tick()
	post := &model.Post{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		PostNumber:  r.s.nextPostNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.s.nextPostNumber++
	r.s.posts[post.ID] = post
	return post, nil
}

func (r memPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.posts[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, model.ErrPostNotFound
}

func (r memPostRepo) UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*model.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, model.ErrPostNotFound
	}
	p.Description = description
	p.UpdatedAt = r.s.tick()
	copied := *p
	return &copied, nil
}

func (r memPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return model.ErrPostNotFound
	}
	delete(r.s.posts, id)
	kept := r.s.commentOrder[:0]
	for _, cid := range r.s.commentOrder {
		if r.s.comments[cid].PostID == id {
			delete(r.s.commentLikes, cid)
			delete(r.s.comments, cid)
			continue
		}
		kept = append(kept, cid)
	}
	r.s.commentOrder = kept
	delete(r.s.postLikes, id)
	return nil
}

func (r memPostRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.posts[id]
	return ok, nil
}

type memCommentRepo struct{ s *memStore }

func (r memCommentRepo) Create(ctx context.Context, postID, userID uuid.UUID, content string, parentID *uuid.UUID) (*model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.tick()
	comment := &model.Comment{
		ID:              uuid.New(),
		PostID:          postID,
		UserID:          userID,
		ParentCommentID: parentID,
		Content:         content,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.s.comments[comment.ID] = comment
	r.s.commentOrder = append(r.s.commentOrder, comment.ID)
	copied := *comment
	return &copied, nil
}

func (r memCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.comments[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, model.ErrCommentNotFound
}

func (r memCommentRepo) Update(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[id]
	if !ok {
		return nil, model.ErrCommentNotFound
	}
	c.Content = content
	c.IsEdited = true
	c.UpdatedAt = r.s.tick()
	copied := *c
	return &copied, nil
}

func (r memCommentRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[id]
	if !ok {
		return model.ErrCommentNotFound
	}
	c.IsDeleted = true
	c.UpdatedAt = r.s.tick()
	return nil
}

func (r memCommentRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	comments := []model.Comment{}
	for _, id := range r.s.commentOrder {
		if c := r.s.comments[id]; c.PostID == postID {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

func (r memCommentRepo) ListReplies(ctx context.Context, parentID uuid.UUID) ([]model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	replies := []model.Comment{}
	for _, id := range r.s.commentOrder {
		c := r.s.comments[id]
		if c.ParentCommentID != nil && *c.ParentCommentID == parentID && !c.IsDeleted {
			replies = append(replies, *c)
		}
	}
	return replies, nil
}

func (r memCommentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	comments := []model.Comment{}
	for i := len(r.s.commentOrder) - 1; i >= 0; i-- {
		c := r.s.comments[r.s.commentOrder[i]]
		if c.UserID == userID && !c.IsDeleted {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

func (r memCommentRepo) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, c := range r.s.comments {
		if c.PostID == postID && !c.IsDeleted {
			count++
		}
	}
	return count, nil
}

type memCommentLikeRepo struct{ s *memStore }

func (r memCommentLikeRepo) Create(ctx context.Context, commentID, userID uuid.UUID) (*model.CommentLike, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	likes := r.s.commentLikes[commentID]
	if likes == nil {
		likes = make(map[uuid.UUID]time.Time)
		r.s.commentLikes[commentID] = likes
	}
	if _, ok := likes[userID]; ok {
		return nil, model.ErrAlreadyLiked
	}
	now := r.s.tick()
	likes[userID] = now
	return &model.CommentLike{ID: uuid.New(), CommentID: commentID, UserID: userID, CreatedAt: now}, nil
}

func (r memCommentLikeRepo) Delete(ctx context.Context, commentID, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.commentLikes[commentID][userID]; !ok {
		return model.ErrLikeNotFound
	}
	delete(r.s.commentLikes[commentID], userID)
	return nil
}

func (r memCommentLikeRepo) CountByComment(ctx context.Context, commentID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.commentLikes[commentID]), nil
}

func (r memCommentLikeRepo) GetLikers(ctx context.Context, commentID uuid.UUID) ([]model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := []model.User{}
	for userID := range r.s.commentLikes[commentID] {
		if u, ok := r.s.users[userID]; ok {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return uuidLess(users[i].ID, users[j].ID) })
	return users, nil
}

func (r memCommentLikeRepo) CountByPostComments(ctx context.Context, postID uuid.UUID) (map[uuid.UUID]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := make(map[uuid.UUID]int)
	for commentID, likes := range r.s.commentLikes {
		if c, ok := r.s.comments[commentID]; ok && c.PostID == postID && len(likes) > 0 {
			counts[commentID] = len(likes)
		}
	}
	return counts, nil
}

type memPostLikeRepo struct{ s *memStore }

func (r memPostLikeRepo) Create(ctx context.Context, postID, userID uuid.UUID) (*model.PostLike, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	likes := r.s.postLikes[postID]
	if likes == nil {
		likes = make(map[uuid.UUID]time.Time)
		r.s.postLikes[postID] = likes
	}
	if _, ok := likes[userID]; ok {
		return nil, model.ErrAlreadyLiked
	}
	now := r.s.tick()
	likes[userID] = now
	return &model.PostLike{ID: uuid.New(), PostID: postID, UserID: userID, CreatedAt: now}, nil
}

func (r memPostLikeRepo) Delete(ctx context.Context, postID, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.postLikes[postID][userID]; !ok {
		return model.ErrLikeNotFound
	}
	delete(r.s.postLikes[postID], userID)
	return nil
}

func (r memPostLikeRepo) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.postLikes[postID]), nil
}

func (r memPostLikeRepo) GetLikers(ctx context.Context, postID uuid.UUID) ([]model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := []model.User{}
	for userID := range r.s.postLikes[postID] {
		if u, ok := r.s.users[userID]; ok {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return uuidLess(users[i].ID, users[j].ID) })
	return users, nil
}

type memAnalyticsRepo struct{ s *memStore }

func (r memAnalyticsRepo) Counters(ctx context.Context) (*model.CommentCounters, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var counters model.CommentCounters
	for _, c := range r.s.comments {
		if c.IsDeleted {
			continue
		}
		counters.TotalComments++
		if c.ParentCommentID != nil {
			counters.TotalReplies++
		} else {
			counters.TotalTopLevel++
		}
	}
	return &counters, nil
}

func (r memAnalyticsRepo) TopPostsByCommentCount(ctx context.Context, n int) ([]model.PostCommentCount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ranked := []model.PostCommentCount{}
	for _, p := range r.s.posts {
		entry := model.PostCommentCount{PostID: p.ID, PostNumber: p.PostNumber, Description: p.Description}
		for _, c := range r.s.comments {
			if c.PostID == p.ID && !c.IsDeleted {
				entry.CommentCount++
			}
		}
		ranked = append(ranked, entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].CommentCount != ranked[j].CommentCount {
			return ranked[i].CommentCount > ranked[j].CommentCount
		}
		return uuidLess(ranked[i].PostID, ranked[j].PostID)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

func (r memAnalyticsRepo) TopUsersByCommentCount(ctx context.Context, n int) ([]model.UserCommentCount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ranked := []model.UserCommentCount{}
	for _, u := range r.s.users {
		entry := model.UserCommentCount{UserID: u.ID, Username: u.Username}
		for _, c := range r.s.comments {
			if c.UserID == u.ID && !c.IsDeleted {
				entry.CommentCount++
			}
		}
		ranked = append(ranked, entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].CommentCount != ranked[j].CommentCount {
			return ranked[i].CommentCount > ranked[j].CommentCount
		}
		return uuidLess(ranked[i].UserID, ranked[j].UserID)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}
