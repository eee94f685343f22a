package service

import (
	"context"
	"fmt"

	"github.com/d60-Lab/microblog/internal/repository"
)

// RelationshipService maintains the directed follow graph.
type RelationshipService interface {
	Follow(ctx context.Context, userID, authorUsername string) error
	Unfollow(ctx context.Context, userID, authorUsername string) error
	IsFollowing(ctx context.Context, userID, authorID string) (bool, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewRelationshipService(followRepo repository.FollowRepository, userRepo repository.UserRepository) RelationshipService {
	return &relationshipService{followRepo: followRepo, userRepo: userRepo}
}

func (s *relationshipService) Follow(ctx context.Context, userID, authorUsername string) error {
	if userID == "" {
		return ErrUnauthorized
	}
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}
	if author == nil {
		return fmt.Errorf("user %q: %w", authorUsername, ErrNotFound)
	}
	if userID == author.ID {
		return ErrFollowSelf
	}
	// repeated follows are a no-op, the repository swallows the conflict
	return s.followRepo.Create(ctx, userID, author.ID)
}

func (s *relationshipService) Unfollow(ctx context.Context, userID, authorUsername string) error {
	if userID == "" {
		return ErrUnauthorized
	}
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}
	if author == nil {
		return fmt.Errorf("user %q: %w", authorUsername, ErrNotFound)
	}
	found, err := s.followRepo.Delete(ctx, userID, author.ID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFollowing
	}
	return nil
}

func (s *relationshipService) IsFollowing(ctx context.Context, userID, authorID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.followRepo.Exists(ctx, userID, authorID)
}
