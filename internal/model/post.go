package model

import "time"

// Post is the content unit. GroupID is nullable: a post survives its group
// with the reference set to null. CreatedAt is assigned once and drives the
// newest-first ordering of every listing.
type Post struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Text      string    `gorm:"type:text;not null"`
	AuthorID  string    `gorm:"type:varchar(36);index:idx_post_author;not null"`
	GroupID   *string   `gorm:"type:varchar(36);index:idx_post_group"`
	ImagePath string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"index:idx_post_created"`
	UpdatedAt time.Time
}

func (Post) TableName() string { return "posts" }
