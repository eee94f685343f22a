package service

import (
	"context"
	"fmt"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// PostService owns the post write paths. Reads live on FeedService.
type PostService interface {
	// Create publishes a post. groupSlug may be empty (no group).
	Create(ctx context.Context, authorID, text, groupSlug, imagePath string) (*model.Post, error)
	// Update edits text/group/image; only the author may edit.
	Update(ctx context.Context, postID, editorID, text, groupSlug, imagePath string) error
	// Delete removes the post and its comments; only the author may delete.
	Delete(ctx context.Context, postID, editorID string) error
}

type postService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) PostService {
	return &postService{postRepo: postRepo, groupRepo: groupRepo}
}

func (s *postService) resolveGroup(ctx context.Context, slug string) (*string, error) {
	if slug == "" {
		return nil, nil
	}
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, fmt.Errorf("group %q: %w", slug, ErrNotFound)
	}
	return &group.ID, nil
}

func (s *postService) Create(ctx context.Context, authorID, text, groupSlug, imagePath string) (*model.Post, error) {
	if authorID == "" {
		return nil, ErrUnauthorized
	}
	groupID, err := s.resolveGroup(ctx, groupSlug)
	if err != nil {
		return nil, err
	}
	return s.postRepo.Create(ctx, authorID, text, groupID, imagePath)
}

func (s *postService) Update(ctx context.Context, postID, editorID, text, groupSlug, imagePath string) error {
	post, err := s.ownedPost(ctx, postID, editorID)
	if err != nil {
		return err
	}
	groupID, err := s.resolveGroup(ctx, groupSlug)
	if err != nil {
		return err
	}
	return s.postRepo.Update(ctx, post.ID, text, groupID, imagePath)
}

func (s *postService) Delete(ctx context.Context, postID, editorID string) error {
	post, err := s.ownedPost(ctx, postID, editorID)
	if err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, post.ID)
}

func (s *postService) ownedPost(ctx context.Context, postID, editorID string) (*model.Post, error) {
	if editorID == "" {
		return nil, ErrUnauthorized
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %q: %w", postID, ErrNotFound)
	}
	if post.AuthorID != editorID {
		return nil, ErrForbidden
	}
	return post, nil
}
