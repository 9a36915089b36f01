package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FieldError reports a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the result of validating one input shape. A nil/empty Errors
// means the input is valid.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RegisterInput is the body of POST /register.
type RegisterInput struct {
	DoctorName    string `json:"doctorName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Qualification string `json:"qualification"`
}

// Normalize trims the doctor name and lowercases the email before
// validation and persistence.
func (in *RegisterInput) Normalize() {
	in.DoctorName = strings.TrimSpace(in.DoctorName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func (in *RegisterInput) Validate() Errors {
	var errs Errors
	if in.DoctorName == "" {
		errs = append(errs, FieldError{"doctorName", "is required"})
	}
	if in.Email == "" {
		errs = append(errs, FieldError{"email", "is required"})
	} else if !emailPattern.MatchString(in.Email) {
		errs = append(errs, FieldError{"email", "must be a valid email address"})
	}
	if in.Password == "" {
		errs = append(errs, FieldError{"password", "is required"})
	} else if len(in.Password) < 4 {
		errs = append(errs, FieldError{"password", "must be at least 4 characters"})
	}
	if in.Qualification == "" {
		errs = append(errs, FieldError{"qualification", "is required"})
	}
	return errs
}

// LoginInput is the body of POST /login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *LoginInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func (in *LoginInput) Validate() Errors {
	var errs Errors
	if in.Email == "" {
		errs = append(errs, FieldError{"email", "is required"})
	}
	if in.Password == "" {
		errs = append(errs, FieldError{"password", "is required"})
	}
	return errs
}

// HistoryEntryInput is one medical-history entry as submitted by a client.
// The date must parse as RFC3339 or as a plain YYYY-MM-DD day.
type HistoryEntryInput struct {
	Disease     string `json:"disease"`
	Medications string `json:"medications"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func (in *HistoryEntryInput) Validate() Errors {
	var errs Errors
	if in.Disease == "" {
		errs = append(errs, FieldError{"disease", "is required"})
	}
	if in.Medications == "" {
		errs = append(errs, FieldError{"medications", "is required"})
	}
	if in.Description == "" {
		errs = append(errs, FieldError{"description", "is required"})
	}
	if in.Date == "" {
		errs = append(errs, FieldError{"date", "is required"})
	} else if _, err := ParseDate(in.Date); err != nil {
		errs = append(errs, FieldError{"date", "must be an RFC3339 timestamp or YYYY-MM-DD"})
	}
	return errs
}

// AddPatientInput is the body of POST /add-patient. The new patient's
// history is seeded with the embedded entry. The owning doctor is never part
// of the input; it comes from the authenticated identity.
type AddPatientInput struct {
	PatientName string `json:"patientName"`
	Age         int    `json:"age"`
	HistoryEntryInput
}

func (in *AddPatientInput) Validate() Errors {
	var errs Errors
	if in.PatientName == "" {
		errs = append(errs, FieldError{"patientName", "is required"})
	}
	if in.Age <= 0 {
		errs = append(errs, FieldError{"age", "must be a positive number"})
	}
	return append(errs, in.HistoryEntryInput.Validate()...)
}

// ParseDate accepts the two supported wire formats for history dates.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
