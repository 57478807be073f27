package courseDetailsValidator

import (
	"edtechbackend/crud"
	"edtechbackend/models"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ModuleSchema validates module payloads.
type ModuleSchema struct {
	Course     *uint   `json:"course"`
	Title      *string `json:"title"`
	OrderIndex *int    `json:"order_index"`
}

func (s *ModuleSchema) Validate(partial bool) []crud.FieldError {
	var errs []crud.FieldError
	if s.Course == nil {
		if !partial {
			errs = append(errs, crud.FieldError{Field: "course", Message: "Course is empty"})
		}
	} else if *s.Course == 0 {
		errs = append(errs, crud.FieldError{Field: "course", Message: "Course is empty"})
	}
	if s.Title == nil || strings.TrimSpace(*s.Title) == "" {
		if !partial || s.Title != nil {
			errs = append(errs, crud.FieldError{Field: "title", Message: "Title is empty"})
		}
	}
	if s.OrderIndex != nil {
		if err := validate.Var(*s.OrderIndex, "gte=0"); err != nil {
			errs = append(errs, crud.FieldError{Field: "order_index", Message: "Order index must not be negative"})
		}
	}
	return errs
}

func (s *ModuleSchema) Fill(m *models.Module) {
	if s.Course != nil {
		m.CourseID = *s.Course
	}
	if s.Title != nil {
		m.Title = strings.TrimSpace(*s.Title)
	}
	if s.OrderIndex != nil {
		m.OrderIndex = *s.OrderIndex
	}
}

// LessonSchema validates lesson payloads.
type LessonSchema struct {
	Module     *uint   `json:"module"`
	Title      *string `json:"title"`
	OrderIndex *int    `json:"order_index"`
	Content    *string `json:"content"`
}

func (s *LessonSchema) Validate(partial bool) []crud.FieldError {
	var errs []crud.FieldError
	if s.Module == nil {
		if !partial {
			errs = append(errs, crud.FieldError{Field: "module", Message: "Module is empty"})
		}
	} else if *s.Module == 0 {
		errs = append(errs, crud.FieldError{Field: "module", Message: "Module is empty"})
	}
	if s.Title == nil || strings.TrimSpace(*s.Title) == "" {
		if !partial || s.Title != nil {
			errs = append(errs, crud.FieldError{Field: "title", Message: "Title is empty"})
		}
	}
	if s.OrderIndex != nil {
		if err := validate.Var(*s.OrderIndex, "gte=0"); err != nil {
			errs = append(errs, crud.FieldError{Field: "order_index", Message: "Order index must not be negative"})
		}
	}
	return errs
}

func (s *LessonSchema) Fill(m *models.Lesson) {
	if s.Module != nil {
		m.ModuleID = *s.Module
	}
	if s.Title != nil {
		m.Title = strings.TrimSpace(*s.Title)
	}
	if s.OrderIndex != nil {
		m.OrderIndex = *s.OrderIndex
	}
	if s.Content != nil {
		m.Content = *s.Content
	}
}

// VideoSchema validates video payloads.
type VideoSchema struct {
	Lesson   *uint   `json:"lesson"`
	Title    *string `json:"title"`
	MediaURL *string `json:"media_url"`
	Duration *int64  `json:"duration"`
}

func (s *VideoSchema) Validate(partial bool) []crud.FieldError {
	var errs []crud.FieldError
	if s.Lesson == nil {
		if !partial {
			errs = append(errs, crud.FieldError{Field: "lesson", Message: "Lesson is empty"})
		}
	} else if *s.Lesson == 0 {
		errs = append(errs, crud.FieldError{Field: "lesson", Message: "Lesson is empty"})
	}
	if s.MediaURL == nil {
		if !partial {
			errs = append(errs, crud.FieldError{Field: "media_url", Message: "Media URL is empty"})
		}
	} else if err := validate.Var(*s.MediaURL, "required,url"); err != nil {
		errs = append(errs, crud.FieldError{Field: "media_url", Message: "Media URL must be a valid URL"})
	}
	if s.Duration != nil {
		if err := validate.Var(*s.Duration, "gte=0"); err != nil {
			errs = append(errs, crud.FieldError{Field: "duration", Message: "Duration must not be negative"})
		}
	}
	return errs
}

func (s *VideoSchema) Fill(m *models.Video) {
	if s.Lesson != nil {
		m.LessonID = *s.Lesson
	}
	if s.Title != nil {
		m.Title = *s.Title
	}
	if s.MediaURL != nil {
		m.MediaURL = *s.MediaURL
	}
	if s.Duration != nil {
		m.Duration = *s.Duration
	}
}

// ProgressSchema validates course progress payloads.
type ProgressSchema struct {
	User      *uint `json:"user"`
	Lesson    *uint `json:"lesson"`
	Completed *bool `json:"completed"`
}

func (s *ProgressSchema) Validate(partial bool) []crud.FieldError {
	var errs []crud.FieldError
	if s.User == nil {
		if !partial {
			errs = append(errs, crud.FieldError{Field: "user", Message: "User is empty"})
		}
	} else if *s.User == 0 {
		errs = append(errs, crud.FieldError{Field: "user", Message: "User is empty"})
	}
	if s.Lesson == nil {
		if !partial {
			errs = append(errs, crud.FieldError{Field: "lesson", Message: "Lesson is empty"})
		}
	} else if *s.Lesson == 0 {
		errs = append(errs, crud.FieldError{Field: "lesson", Message: "Lesson is empty"})
	}
	return errs
}

func (s *ProgressSchema) Fill(m *models.CourseProgress) {
	if s.User != nil {
		m.UserID = *s.User
	}
	if s.Lesson != nil {
		m.LessonID = *s.Lesson
	}
	if s.Completed != nil {
		m.Completed = *s.Completed
	}
}
