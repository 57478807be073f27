package models

import "gorm.io/gorm"

// Transaction statuses as reported by the payment gateway.
const (
	TxnPending = "pending"
	TxnSuccess = "success"
	TxnFailed  = "failed"
)

// Transaction records a payment attempt for an enrollment
type Transaction struct {
	gorm.Model
	Reference string  `json:"reference" gorm:"uniqueIndex;not null"`
	Amount    float64 `json:"amount" gorm:"default:0"`
	Status    string  `json:"status" gorm:"default:'pending'"` // pending, success, failed
}

// Enrollment ties a user to a course through a payment transaction.
// A transaction with status "success" is the sole precondition for
// paid access to the course content.
type Enrollment struct {
	gorm.Model
	UserID        uint `json:"user" gorm:"index;not null"`
	CourseID      uint `json:"course" gorm:"index;not null"`
	TransactionID uint `json:"transaction" gorm:"index;not null"`

	Transaction Transaction `json:"transaction_detail,omitempty" gorm:"foreignKey:TransactionID"`
	Course      Course      `json:"course_detail,omitempty" gorm:"foreignKey:CourseID"`
}
