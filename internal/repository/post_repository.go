package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

// PostRow is a post denormalized with the author/group columns the feed
// pages render. Joined eagerly so a page is a single round-trip.
type PostRow struct {
	ID             string    `json:"id"`
	Text           string    `json:"text"`
	AuthorID       string    `json:"-"`
	AuthorUsername string    `json:"author"`
	GroupSlug      *string   `json:"group,omitempty"`
	ImagePath      string    `json:"image,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type PostRepository interface {
	Create(ctx context.Context, authorID, text string, groupID *string, imagePath string) (*model.Post, error)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	GetRowByID(ctx context.Context, id string) (*PostRow, error)
	Update(ctx context.Context, id, text string, groupID *string, imagePath string) error
	// Delete removes the post and its comments.
	Delete(ctx context.Context, id string) error

	CountAll(ctx context.Context) (int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]PostRow, error)
	CountByGroup(ctx context.Context, groupID string) (int64, error)
	ListByGroup(ctx context.Context, groupID string, offset, limit int) ([]PostRow, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
	ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]PostRow, error)
	CountByAuthors(ctx context.Context, authorIDs []string) (int64, error)
	ListByAuthors(ctx context.Context, authorIDs []string, offset, limit int) ([]PostRow, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, authorID, text string, groupID *string, imagePath string) (*model.Post, error) {
	now := time.Now()
	p := &model.Post{
		ID:        uuid.New().String(),
		Text:      text,
		AuthorID:  authorID,
		GroupID:   groupID,
		ImagePath: imagePath,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) GetRowByID(ctx context.Context, id string) (*PostRow, error) {
	rows, err := r.listRows(ctx, r.db.WithContext(ctx).Where("posts.id = ?", id), 0, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *postRepository) Update(ctx context.Context, id, text string, groupID *string, imagePath string) error {
	// created_at is immutable; only the editable columns are touched
	return r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		Updates(map[string]any{
			"text":       text,
			"group_id":   groupID,
			"image_path": imagePath,
			"updated_at": time.Now(),
		}).Error
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Post{}).Error
	})
}

func (r *postRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) ListAll(ctx context.Context, offset, limit int) ([]PostRow, error) {
	return r.listRows(ctx, r.db.WithContext(ctx), offset, limit)
}

func (r *postRepository) CountByGroup(ctx context.Context, groupID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("group_id = ?", groupID).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID string, offset, limit int) ([]PostRow, error) {
	return r.listRows(ctx, r.db.WithContext(ctx).Where("posts.group_id = ?", groupID), offset, limit)
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("author_id = ?", authorID).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]PostRow, error) {
	return r.listRows(ctx, r.db.WithContext(ctx).Where("posts.author_id = ?", authorID), offset, limit)
}

func (r *postRepository) CountByAuthors(ctx context.Context, authorIDs []string) (int64, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("author_id IN ?", authorIDs).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []string, offset, limit int) ([]PostRow, error) {
	if len(authorIDs) == 0 {
		return []PostRow{}, nil
	}
	return r.listRows(ctx, r.db.WithContext(ctx).Where("posts.author_id IN ?", authorIDs), offset, limit)
}

func (r *postRepository) listRows(ctx context.Context, q *gorm.DB, offset, limit int) ([]PostRow, error) {
	rows := []PostRow{}
	err := q.Table("posts").
		Select("posts.id", "posts.text", "posts.author_id", "users.username AS author_username",
			"groups.slug AS group_slug", "posts.image_path", "posts.created_at").
		Joins("JOIN users ON users.id = posts.author_id").
		Joins("LEFT JOIN groups ON groups.id = posts.group_id").
		Order("posts.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
