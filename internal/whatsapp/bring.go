package whatsapp

import (
	"errors"
	"strings"
)

var (
	ErrMissingFields = errors.New("please enter your name and phone number")
	ErrInvalidPhone  = errors.New("invalid phone format: enter a number starting with +90 or 0, or a plain 10-digit number")
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 13
)

// ValidatePhone accepts 10 to 13 digits once every non-digit is dropped.
func ValidatePhone(input string) bool {
	n := len(digits(input))
	return n >= minPhoneDigits && n <= maxPhoneDigits
}

// BringRequest is a "bring your own model" submission.
type BringRequest struct {
	FullName string `form:"fullName"`
	Phone    string `form:"phone"`
	Notes    string `form:"notes"`
}

func (r *BringRequest) trim() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Notes = strings.TrimSpace(r.Notes)
}

// Validate trims the fields and checks that name and phone are usable.
func (r *BringRequest) Validate() error {
	r.trim()
	if r.FullName == "" || r.Phone == "" {
		return ErrMissingFields
	}
	if !ValidatePhone(r.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

// Message is the chat text for the submission.
func (r BringRequest) Message() string {
	lines := []string{
		"Hello, I would like to hand over my model.",
		"",
		"Full name: " + r.FullName,
		"Phone (WhatsApp): " + r.Phone,
	}
	if r.Notes != "" {
		lines = append(lines, "", "Note: "+r.Notes)
	}
	lines = append(lines, "", "Note: I will deliver the model file by appointment or in person.")
	return strings.Join(lines, "\n")
}

// Link is the number-less compose link carrying the message.
func (r BringRequest) Link() string {
	return Link("", r.Message())
}
