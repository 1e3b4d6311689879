package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogPost struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title            string    `gorm:"type:varchar(300);not null"`
	Slug             string    `gorm:"type:varchar(300);uniqueIndex;not null"`
	Excerpt          *string   `gorm:"type:varchar(500)"`
	Content          string    `gorm:"type:text;not null"`
	FeaturedImageURL *string   `gorm:"type:varchar(500)"`
	Category         *string   `gorm:"type:varchar(100);index"`
	Tags             *string   `gorm:"type:varchar(500)"`
	ReadTimeMinutes  int       `gorm:"not null;default:0"`
	Status           string    `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	ViewsCount       int64     `gorm:"not null;default:0"`
	PublishedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
