package model

import "time"

// Group is a community posts can be tagged with. Referenced, never owned,
// by Post: deleting a group keeps its posts.
type Group struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	Title       string `gorm:"type:varchar(200);not null"`
	Slug        string `gorm:"type:varchar(20);uniqueIndex;not null"`
	Description string `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Group) TableName() string { return "groups" }
