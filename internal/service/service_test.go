package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/cache"
	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// env bundles everything a service test needs: repos over an in-memory
// sqlite db and a page cache over miniredis.
type env struct {
	db          *gorm.DB
	mr          *miniredis.Miniredis
	userRepo    repository.UserRepository
	groupRepo   repository.GroupRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	followRepo  repository.FollowRepository
	pageCache   *cache.PageCache
	feed        FeedService
	rel         RelationshipService
	posts       PostService
	comments    CommentService
	groups      GroupService
	users       UserService
}

func setup(t *testing.T) *env {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{},
	))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	e := &env{
		db:          db,
		mr:          mr,
		userRepo:    repository.NewUserRepository(db),
		groupRepo:   repository.NewGroupRepository(db),
		postRepo:    repository.NewPostRepository(db),
		commentRepo: repository.NewCommentRepository(db),
		followRepo:  repository.NewFollowRepository(db),
		pageCache:   cache.NewPageCache(client, 20*time.Second),
	}
	e.feed = NewFeedService(e.postRepo, e.groupRepo, e.userRepo, e.followRepo, e.commentRepo, e.pageCache)
	e.rel = NewRelationshipService(e.followRepo, e.userRepo)
	e.posts = NewPostService(e.postRepo, e.groupRepo)
	e.comments = NewCommentService(e.commentRepo, e.postRepo)
	e.groups = NewGroupService(e.groupRepo)
	e.users = NewUserService(e.userRepo)
	return e
}

func (e *env) user(t *testing.T, username string) *model.User {
	t.Helper()
	u := &model.User{ID: uuid.NewString(), Username: username, Email: username + "@example.com", PasswordHash: "x"}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *env) group(t *testing.T, slug string) *model.Group {
	t.Helper()
	g := &model.Group{ID: uuid.NewString(), Title: slug, Slug: slug}
	require.NoError(t, e.db.Create(g).Error)
	return g
}

func (e *env) post(t *testing.T, authorID string, groupID *string, text string, createdAt time.Time) *model.Post {
	t.Helper()
	p := &model.Post{ID: uuid.NewString(), Text: text, AuthorID: authorID, GroupID: groupID, CreatedAt: createdAt}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

// postSeries creates n posts with strictly increasing timestamps.
func (e *env) postSeries(t *testing.T, authorID string, groupID *string, n int) []*model.Post {
	t.Helper()
	base := time.Now()
	out := make([]*model.Post, n)
	for i := 0; i < n; i++ {
		out[i] = e.post(t, authorID, groupID, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Second))
	}
	return out
}

func ctxb() context.Context { return context.Background() }
