package models

import "gorm.io/gorm"

// Category groups courses in the catalog
type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
}

// Course represents a learning course
type Course struct {
	gorm.Model
	Title        string  `json:"title" gorm:"not null"`
	Description  string  `json:"description" gorm:"type:text"`
	CategoryID   uint    `json:"category" gorm:"index;not null"`
	Price        float64 `json:"price" gorm:"default:0"`
	ThumbnailURL string  `json:"thumbnail_url"`
	IsPublished  bool    `json:"is_published" gorm:"default:false"`

	Modules []Module       `json:"modules,omitempty" gorm:"foreignKey:CourseID"`
	Reviews []CourseReview `json:"reviews,omitempty" gorm:"foreignKey:CourseID"`
}

// CourseReview is a user's rating and comment on a course.
// Rating is constrained to 1..5 at the validation layer.
type CourseReview struct {
	gorm.Model
	CourseID uint   `json:"course" gorm:"index;not null"`
	UserID   uint   `json:"user" gorm:"index;not null"`
	Rating   int    `json:"rating" gorm:"not null"`
	Comment  string `json:"comment" gorm:"type:text"`
}
