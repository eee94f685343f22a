package service

import (
	"context"
	"fmt"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

type GroupService interface {
	Create(ctx context.Context, title, slug, description string) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	// Delete removes the group; its posts stay, with group set to null.
	Delete(ctx context.Context, slug string) error
}

type groupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) Create(ctx context.Context, title, slug, description string) (*model.Group, error) {
	return s.groupRepo.Create(ctx, title, slug, description)
}

func (s *groupService) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, fmt.Errorf("group %q: %w", slug, ErrNotFound)
	}
	return group, nil
}

func (s *groupService) Delete(ctx context.Context, slug string) error {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if group == nil {
		return fmt.Errorf("group %q: %w", slug, ErrNotFound)
	}
	return s.groupRepo.Delete(ctx, group.ID)
}
