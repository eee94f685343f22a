package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/d60-Lab/microblog/internal/cache"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/pkg/pagination"
)

// PostPage is one page of denormalized posts plus paging metadata.
type PostPage struct {
	Posts []repository.PostRow `json:"posts"`
	Page  pagination.Page      `json:"page"`
}

// GroupPage is a group listing with the group header for display.
type GroupPage struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	PostPage
}

// ProfilePage is an author listing plus the profile side-channel data: the
// author's full post count and whether the viewer follows them.
type ProfilePage struct {
	Author    string `json:"author"`
	PostCount int64  `json:"post_count"`
	Following bool   `json:"following"`
	PostPage
}

// PostDetail is a single post with its comments and the author's post count.
type PostDetail struct {
	Post            repository.PostRow      `json:"post"`
	AuthorPostCount int64                   `json:"author_post_count"`
	Comments        []repository.CommentRow `json:"comments"`
}

// FeedService composes the four listing views. Every view is ordered
// newest-first and paginated at pagination.DefaultPageSize.
type FeedService interface {
	// Index is ListAll behind the page cache; it returns the rendered JSON
	// bytes so cache hits are byte-identical to the response that set them.
	Index(ctx context.Context, page int) ([]byte, error)
	ListAll(ctx context.Context, page int) (*PostPage, error)
	ListByGroup(ctx context.Context, slug string, page int) (*GroupPage, error)
	// viewerID may be empty (anonymous): Following is then always false.
	ListByAuthor(ctx context.Context, username, viewerID string, page int) (*ProfilePage, error)
	// ListFollowed requires an authenticated caller. Following nobody is an
	// empty page, not an error. Never cached.
	ListFollowed(ctx context.Context, userID string, page int) (*PostPage, error)
	GetPostDetail(ctx context.Context, postID string) (*PostDetail, error)
	ClearCache(ctx context.Context) error
}

type feedService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	userRepo    repository.UserRepository
	followRepo  repository.FollowRepository
	commentRepo repository.CommentRepository
	pageCache   *cache.PageCache
	pageSize    int
}

func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	commentRepo repository.CommentRepository,
	pageCache *cache.PageCache,
) FeedService {
	return &feedService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		followRepo:  followRepo,
		commentRepo: commentRepo,
		pageCache:   pageCache,
		pageSize:    pagination.DefaultPageSize,
	}
}

func (s *feedService) Index(ctx context.Context, page int) ([]byte, error) {
	if payload, ok := s.pageCache.Get(ctx, page); ok {
		return payload, nil
	}
	view, err := s.ListAll(ctx, page)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf("render index page: %w", err)
	}
	s.pageCache.Set(ctx, page, payload)
	return payload, nil
}

func (s *feedService) ClearCache(ctx context.Context) error {
	return s.pageCache.Clear(ctx)
}

func (s *feedService) ListAll(ctx context.Context, page int) (*PostPage, error) {
	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	pg := pagination.Paginate(total, page, s.pageSize)
	rows, err := s.postRepo.ListAll(ctx, pg.Offset, pg.Limit)
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: rows, Page: pg}, nil
}

func (s *feedService) ListByGroup(ctx context.Context, slug string, page int) (*GroupPage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, fmt.Errorf("group %q: %w", slug, ErrNotFound)
	}
	total, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	pg := pagination.Paginate(total, page, s.pageSize)
	rows, err := s.postRepo.ListByGroup(ctx, group.ID, pg.Offset, pg.Limit)
	if err != nil {
		return nil, err
	}
	return &GroupPage{
		Title:       group.Title,
		Slug:        group.Slug,
		Description: group.Description,
		PostPage:    PostPage{Posts: rows, Page: pg},
	}, nil
}

func (s *feedService) ListByAuthor(ctx context.Context, username, viewerID string, page int) (*ProfilePage, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	// the profile count is the author's full total, not the page size
	total, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	pg := pagination.Paginate(total, page, s.pageSize)
	rows, err := s.postRepo.ListByAuthor(ctx, author.ID, pg.Offset, pg.Limit)
	if err != nil {
		return nil, err
	}
	following := false
	if viewerID != "" {
		following, err = s.followRepo.Exists(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}
	return &ProfilePage{
		Author:    author.Username,
		PostCount: total,
		Following: following,
		PostPage:  PostPage{Posts: rows, Page: pg},
	}, nil
}

func (s *feedService) ListFollowed(ctx context.Context, userID string, page int) (*PostPage, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	authorIDs, err := s.followRepo.ListAuthorIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	total, err := s.postRepo.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	pg := pagination.Paginate(total, page, s.pageSize)
	rows, err := s.postRepo.ListByAuthors(ctx, authorIDs, pg.Offset, pg.Limit)
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: rows, Page: pg}, nil
}

func (s *feedService) GetPostDetail(ctx context.Context, postID string) (*PostDetail, error) {
	row, err := s.postRepo.GetRowByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("post %q: %w", postID, ErrNotFound)
	}
	count, err := s.postRepo.CountByAuthor(ctx, row.AuthorID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &PostDetail{Post: *row, AuthorPostCount: count, Comments: comments}, nil
}
