package courseValidator

import (
	"testing"

	"edtechbackend/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string     { return &s }
func uintPtr(v uint) *uint        { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestCourseSchemaFullModeOrderedErrors(t *testing.T) {
	s := &CourseSchema{}
	errs := s.Validate(false)
	// Declaration order: title first, then category
	assert.Len(t, errs, 2)
	assert.Equal(t, "title", errs[0].Field)
	assert.Equal(t, "Title is empty", errs[0].Message)
	assert.Equal(t, "category", errs[1].Field)
}

func TestCourseSchemaPartialModeSkipsAbsentFields(t *testing.T) {
	s := &CourseSchema{Price: floatPtr(12.5)}
	assert.Empty(t, s.Validate(true))

	// A supplied but invalid field still fails in partial mode
	s = &CourseSchema{Price: floatPtr(-1)}
	errs := s.Validate(true)
	assert.Len(t, errs, 1)
	assert.Equal(t, "price", errs[0].Field)

	// An explicitly blank required field fails too
	s = &CourseSchema{Title: strPtr("   ")}
	errs = s.Validate(true)
	assert.Len(t, errs, 1)
	assert.Equal(t, "Title is empty", errs[0].Message)
}

func TestReviewSchemaRatingBounds(t *testing.T) {
	base := func(rating int) *ReviewSchema {
		return &ReviewSchema{
			Course:  uintPtr(1),
			User:    uintPtr(1),
			Rating:  intPtr(rating),
			Comment: strPtr("solid course"),
		}
	}

	for _, rating := range []int{1, 2, 3, 4, 5} {
		assert.Empty(t, base(rating).Validate(false), "rating %d should pass", rating)
	}
	for _, rating := range []int{0, 6, -3} {
		errs := base(rating).Validate(false)
		assert.Len(t, errs, 1, "rating %d should fail", rating)
		assert.Equal(t, "Rating must be between 1 and 5", errs[0].Message)
	}
}

func TestCourseSchemaFillLeavesAbsentFields(t *testing.T) {
	s := &CourseSchema{Title: strPtr("New title")}

	course := models.Course{Title: "Old title", Description: "keep me", CategoryID: 7}
	s.Fill(&course)
	assert.Equal(t, "New title", course.Title)
	assert.Equal(t, "keep me", course.Description)
	assert.Equal(t, uint(7), course.CategoryID)
}
