package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

// CommentRow is a comment with the author's username joined in.
type CommentRow struct {
	ID             string    `json:"id"`
	PostID         string    `json:"-"`
	AuthorUsername string    `json:"author"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

type CommentRepository interface {
	Create(ctx context.Context, postID, authorID, text string) (*model.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]CommentRow, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, postID, authorID, text string) (*model.Comment, error) {
	c := &model.Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]CommentRow, error) {
	rows := []CommentRow{}
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id", "comments.post_id", "users.username AS author_username",
			"comments.text", "comments.created_at").
		Joins("JOIN users ON users.id = comments.author_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
