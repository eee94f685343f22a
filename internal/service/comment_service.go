package service

import (
	"context"
	"fmt"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

type CommentService interface {
	Add(ctx context.Context, postID, authorID, text string) (*model.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *commentService) Add(ctx context.Context, postID, authorID, text string) (*model.Comment, error) {
	if authorID == "" {
		return nil, ErrUnauthorized
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %q: %w", postID, ErrNotFound)
	}
	return s.commentRepo.Create(ctx, post.ID, authorID, text)
}
