package courseValidator

import (
	"edtechbackend/crud"
	"edtechbackend/models"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CategorySchema validates category payloads.
type CategorySchema struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *CategorySchema) Validate(partial bool) []crud.FieldError {
	var errs []crud.FieldError
	if s.Name == nil || strings.TrimSpace(*s.Name) == "" {
		if !partial || s.Name != nil {
			errs = append(errs, crud.FieldError{Field: "name", Message: "Name is empty"})
		}
	}
	return errs
}

func (s *CategorySchema) Fill(m *models.Category) {
	if s.Name != nil {
		m.Name = strings.TrimSpace(*s.Name)
	}
	if s.Description != nil {
		m.Description = *s.Description
	}
}

// CourseSchema validates course payloads.
type CourseSchema struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Category     *uint    `json:"category"`
	Price        *float64 `json:"price"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	IsPublished  *bool    `json:"is_published"`
}

func (s *CourseSchema) Validate(partial bool) []crud.FieldError {
	var errs []crud.FieldError
	if s.Title == nil || strings.TrimSpace(*s.Title) == "" {
		if !partial || s.Title != nil {
			errs = append(errs, crud.FieldError{Field: "title", Message: "Title is empty"})
		}
	}
	if s.Category == nil {
		if !partial {
			errs = append(errs, crud.FieldError{Field: "category", Message: "Category is empty"})
		}
	} else if *s.Category == 0 {
		errs = append(errs, crud.FieldError{Field: "category", Message: "Category is empty"})
	}
	if s.Price != nil {
		if err := validate.Var(*s.Price, "gte=0"); err != nil {
			errs = append(errs, crud.FieldError{Field: "price", Message: "Price must not be negative"})
		}
	}
	if s.ThumbnailURL != nil && *s.ThumbnailURL != "" {
		if err := validate.Var(*s.ThumbnailURL, "url"); err != nil {
			errs = append(errs, crud.FieldError{Field: "thumbnail_url", Message: "Thumbnail URL must be a valid URL"})
		}
	}
	return errs
}

func (s *CourseSchema) Fill(m *models.Course) {
	if s.Title != nil {
		m.Title = strings.TrimSpace(*s.Title)
	}
	if s.Description != nil {
		m.Description = *s.Description
	}
	if s.Category != nil {
		m.CategoryID = *s.Category
	}
	if s.Price != nil {
		m.Price = *s.Price
	}
	if s.ThumbnailURL != nil {
		m.ThumbnailURL = *s.ThumbnailURL
	}
	if s.IsPublished != nil {
		m.IsPublished = *s.IsPublished
	}
}

// ReviewSchema validates course review payloads. Rating is
// constrained to 1..5.
type ReviewSchema struct {
	Course  *uint   `json:"course"`
	User    *uint   `json:"user"`
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

func (s *ReviewSchema) Validate(partial bool) []crud.FieldError {
	var errs []crud.FieldError
	if s.Course == nil {
		if !partial {
			errs = append(errs, crud.FieldError{Field: "course", Message: "Course is empty"})
		}
	} else if *s.Course == 0 {
		errs = append(errs, crud.FieldError{Field: "course", Message: "Course is empty"})
	}
	if s.User == nil {
		if !partial {
			errs = append(errs, crud.FieldError{Field: "user", Message: "User is empty"})
		}
	} else if *s.User == 0 {
		errs = append(errs, crud.FieldError{Field: "user", Message: "User is empty"})
	}
	if s.Rating == nil {
		if !partial {
			errs = append(errs, crud.FieldError{Field: "rating", Message: "Rating is empty"})
		}
	} else if err := validate.Var(*s.Rating, "gte=1,lte=5"); err != nil {
		errs = append(errs, crud.FieldError{Field: "rating", Message: "Rating must be between 1 and 5"})
	}
	if s.Comment == nil || strings.TrimSpace(*s.Comment) == "" {
		if !partial || s.Comment != nil {
			errs = append(errs, crud.FieldError{Field: "comment", Message: "Comment is empty"})
		}
	}
	return errs
}

func (s *ReviewSchema) Fill(m *models.CourseReview) {
	if s.Course != nil {
		m.CourseID = *s.Course
	}
	if s.User != nil {
		m.UserID = *s.User
	}
	if s.Rating != nil {
		m.Rating = *s.Rating
	}
	if s.Comment != nil {
		m.Comment = *s.Comment
	}
}
