package consultationValidator

import (
	"edtechbackend/crud"
	"edtechbackend/models"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ConsultationSchema validates consultation request payloads.
type ConsultationSchema struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Topic   *string `json:"topic"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

func (s *ConsultationSchema) Validate(partial bool) []crud.FieldError {
	var errs []crud.FieldError
	if s.Name == nil || strings.TrimSpace(*s.Name) == "" {
		if !partial || s.Name != nil {
			errs = append(errs, crud.FieldError{Field: "name", Message: "Name is empty"})
		}
	}
	if s.Email == nil {
		if !partial {
			errs = append(errs, crud.FieldError{Field: "email", Message: "Email is empty"})
		}
	} else if err := validate.Var(*s.Email, "required,email"); err != nil {
		errs = append(errs, crud.FieldError{Field: "email", Message: "Email must be a valid email address"})
	}
	if s.Topic == nil || strings.TrimSpace(*s.Topic) == "" {
		if !partial || s.Topic != nil {
			errs = append(errs, crud.FieldError{Field: "topic", Message: "Topic is empty"})
		}
	}
	if s.Status != nil {
		if err := validate.Var(*s.Status, "oneof=pending scheduled closed"); err != nil {
			errs = append(errs, crud.FieldError{Field: "status", Message: "Status must be one of pending, scheduled or closed"})
		}
	}
	return errs
}

func (s *ConsultationSchema) Fill(m *models.Consultation) {
	if s.Name != nil {
		m.Name = strings.TrimSpace(*s.Name)
	}
	if s.Email != nil {
		m.Email = strings.TrimSpace(*s.Email)
	}
	if s.Phone != nil {
		m.Phone = *s.Phone
	}
	if s.Topic != nil {
		m.Topic = strings.TrimSpace(*s.Topic)
	}
	if s.Message != nil {
		m.Message = *s.Message
	}
	if s.Status != nil {
		m.Status = *s.Status
	}
}
