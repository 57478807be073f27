package models

import "gorm.io/gorm"

// Module represents a section within a course
type Module struct {
	gorm.Model
	CourseID   uint   `json:"course" gorm:"index;not null"`
	Title      string `json:"title" gorm:"not null"`
	OrderIndex int    `json:"order_index" gorm:"default:0"` // Module order in course

	Lessons []Lesson `json:"lessons,omitempty" gorm:"foreignKey:ModuleID"`
}

// Lesson represents a unit of content within a module
type Lesson struct {
	gorm.Model
	ModuleID   uint   `json:"module" gorm:"index;not null"`
	Title      string `json:"title" gorm:"not null"`
	OrderIndex int    `json:"order_index" gorm:"default:0"` // Lesson order in module
	Content    string `json:"content" gorm:"type:text"`

	Videos []Video `json:"videos,omitempty" gorm:"foreignKey:LessonID"`
}

// Video holds the media reference for a lesson
type Video struct {
	gorm.Model
	LessonID uint   `json:"lesson" gorm:"index;not null"`
	Title    string `json:"title"`
	MediaURL string `json:"media_url" gorm:"not null"`
	Duration int64  `json:"duration" gorm:"default:0"` // seconds
}

// CourseProgress tracks a user's completion state per lesson
type CourseProgress struct {
	gorm.Model
	UserID    uint `json:"user" gorm:"index;not null"`
	LessonID  uint `json:"lesson" gorm:"index;not null"`
	Completed bool `json:"completed" gorm:"default:false"`
}
