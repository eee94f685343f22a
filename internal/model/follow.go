package model

import "time"

// Follow is a directed edge: UserID follows AuthorID.
type Follow struct {
	ID       string `gorm:"primaryKey;type:varchar(36)"`
	UserID   string `gorm:"type:varchar(36);index:idx_follow_user;index:idx_follow_pair,unique;not null"`
	AuthorID string `gorm:"type:varchar(36);not null;index:idx_follow_pair,unique"`
	// idx_follow_pair = (user_id, author_id), so a repeated follow
	// can never create a second edge.
	CreatedAt time.Time
}

func (Follow) TableName() string { return "follows" }
