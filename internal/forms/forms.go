// Package forms validates user-entered sign-in, sign-up and event forms.
// Every function is pure and total: expected failures come back as field
// messages, never as errors or panics.
package forms

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/daygrid/calendar-backend/internal/calendar"
	"github.com/daygrid/calendar-backend/internal/model"
	"github.com/daygrid/calendar-backend/internal/pkg/validator"
)

// emailPattern is deliberately RFC-lite: no whitespace, exactly one @, and a
// dot somewhere after it.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailError returns a message for a malformed or missing email, or "".
func EmailError(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(email) {
		return "Please enter a valid email address"
	}

	return ""
}

// PasswordError applies the light sign-in policy: present and at least 6
// characters.
func PasswordError(password string) string {
	if password == "" {
		return "Password is required"
	}
	if len(password) < 6 {
		return "Password must be at least 6 characters"
	}

	return ""
}

// PasswordIssues lists every unmet requirement of the strong policy, in
// checklist order. An empty result means the password qualifies.
func PasswordIssues(password string) []string {
	var issues []string

	if len(password) < 8 {
		issues = append(issues, "Password must be at least 8 characters")
	}
	if !containsFunc(password, unicode.IsUpper) {
		issues = append(issues, "Password must contain an uppercase letter")
	}
	if !containsFunc(password, unicode.IsLower) {
		issues = append(issues, "Password must contain a lowercase letter")
	}
	if !containsFunc(password, unicode.IsDigit) {
		issues = append(issues, "Password must contain a number")
	}

	return issues
}

// StrongPassword reports whether the password meets the sign-up policy.
func StrongPassword(password string) bool {
	return len(PasswordIssues(password)) == 0
}

// StrongPasswordError returns the first unmet strong-policy requirement,
// or "".
func StrongPasswordError(password string) string {
	if password == "" {
		return "Password is required"
	}
	if issues := PasswordIssues(password); len(issues) != 0 {
		return issues[0]
	}

	return ""
}

// ConfirmPasswordError checks the confirmation field against the password.
func ConfirmPasswordError(password, confirm string) string {
	if confirm == "" {
		return "Please confirm your password"
	}
	if password != confirm {
		return "Passwords do not match"
	}

	return ""
}

// RequiredError returns "{label} is required" when the value is empty after
// trimming, or "".
func RequiredError(value, label string) string {
	if strings.TrimSpace(value) == "" {
		return label + " is required"
	}

	return ""
}

// ValidateSignIn checks a sign-in form.
func ValidateSignIn(email, password string) *validator.Validator {
	v := validator.New()

	if msg := EmailError(email); msg != "" {
		v.AddError("email", msg)
	}
	if password == "" {
		v.AddError("password", "Password is required")
	}

	return v
}

// ValidateSignUp checks a sign-up form, applying the strong password policy.
func ValidateSignUp(email, password, confirm string) *validator.Validator {
	v := validator.New()

	if msg := EmailError(email); msg != "" {
		v.AddError("email", msg)
	}
	if msg := StrongPasswordError(password); msg != "" {
		v.AddError("password", msg)
	}
	if msg := ConfirmPasswordError(password, confirm); msg != "" {
		v.AddError("confirm_password", msg)
	}

	return v
}

// EventForm holds the raw values of an event create/edit form.
type EventForm struct {
	Title       string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	Color       string
}

// ValidateEventForm checks an event form: required title/date/times, length
// limits, time syntax, strict start-before-end ordering (equal times are
// rejected), and the optional color. Errors land on the offending field; the
// ordering error lands on end_time.
func ValidateEventForm(f EventForm) *validator.Validator {
	v := validator.New()

	if msg := RequiredError(f.Title, "Title"); msg != "" {
		v.AddError("title", msg)
	} else {
		v.Check(utf8.RuneCountInString(f.Title) <= 100, "title", "Title must be less than 100 characters")
	}

	v.Check(utf8.RuneCountInString(f.Description) <= 500, "description", "Description must be less than 500 characters")

	if msg := RequiredError(f.Date, "Date"); msg != "" {
		v.AddError("date", msg)
	} else if _, err := calendar.ParseDateKey(f.Date); err != nil {
		v.AddError("date", "Invalid date format")
	}

	if msg := RequiredError(f.StartTime, "Start time"); msg != "" {
		v.AddError("start_time", msg)
	} else {
		v.Check(calendar.ValidTime(f.StartTime), "start_time", "Invalid start time format")
	}

	if msg := RequiredError(f.EndTime, "End time"); msg != "" {
		v.AddError("end_time", msg)
	} else {
		v.Check(calendar.ValidTime(f.EndTime), "end_time", "Invalid end time format")
	}

	if calendar.ValidTime(f.StartTime) && calendar.ValidTime(f.EndTime) {
		v.Check(calendar.CompareTimes(f.StartTime, f.EndTime) < 0, "end_time", "End time must be after start time")
	}

	if f.Color != "" {
		if _, err := model.NormalizeColor(f.Color); err != nil {
			v.AddError("color", "Invalid color format")
		}
	}

	return v
}

// ValidateEventsFilter checks the optional date bounds of an event list
// query. Empty values are fine; anything present must be a YYYY-MM-DD date.
func ValidateEventsFilter(from, to, date string) *validator.Validator {
	v := validator.New()

	for key, value := range map[string]string{"from": from, "to": to, "date": date} {
		if value == "" {
			continue
		}
		if _, err := calendar.ParseDateKey(value); err != nil {
			v.AddError(key, "Invalid date format")
		}
	}

	return v
}

// SanitizeInput trims surrounding whitespace and strips angle brackets. This
// neutralizes only the crudest HTML injection; it is not an XSS defense and
// output encoding still belongs to the presentation layer.
func SanitizeInput(s string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(strings.TrimSpace(s))
}

func containsFunc(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}

	return false
}
