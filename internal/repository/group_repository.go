package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

type GroupRepository interface {
	Create(ctx context.Context, title, slug, description string) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	// Delete removes the group and nulls group_id on its posts (the posts
	// themselves survive).
	Delete(ctx context.Context, id string) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository { return &groupRepository{db: db} }

func (r *groupRepository) Create(ctx context.Context, title, slug, description string) (*model.Group, error) {
	g := &model.Group{
		ID:          uuid.New().String(),
		Title:       title,
		Slug:        slug,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	var g model.Group
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *groupRepository) Delete(ctx context.Context, id string) error {
	// set-null first so the posts never dangle, even mid-transaction
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).Where("group_id = ?", id).Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Group{}).Error
	})
}
