package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Email is required", EmailError(""))
	assert.Equal(t, "Email is required", EmailError("   "))
	assert.Equal(t, "Please enter a valid email address", EmailError("bad@"))
	assert.Equal(t, "Please enter a valid email address", EmailError("no-at-sign"))
	assert.Equal(t, "Please enter a valid email address", EmailError("two@@example.com"))
	assert.Equal(t, "Please enter a valid email address", EmailError("spa ce@example.com"))
	assert.Equal(t, "", EmailError("user@example.com"))
	assert.Equal(t, "", EmailError("first.last+tag@sub.example.org"))
}

func TestPasswordError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Password is required", PasswordError(""))
	assert.Equal(t, "Password must be at least 6 characters", PasswordError("abc12"))
	assert.Equal(t, "", PasswordError("abc123"))
}

func TestPasswordIssues(t *testing.T) {
	t.Parallel()

	issues := PasswordIssues("")
	require.Len(t, issues, 4)
	assert.Equal(t, "Password must be at least 8 characters", issues[0])
	assert.Equal(t, "Password must contain an uppercase letter", issues[1])
	assert.Equal(t, "Password must contain a lowercase letter", issues[2])
	assert.Equal(t, "Password must contain a number", issues[3])

	assert.Equal(t, []string{"Password must contain a number"}, PasswordIssues("Abcdefgh"))
	assert.Equal(t, []string{"Password must contain an uppercase letter"}, PasswordIssues("abcdefg1"))
	assert.Empty(t, PasswordIssues("Abcdefg1"))
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	assert.True(t, StrongPassword("Abcdefg1"))
	assert.False(t, StrongPassword("abcdefg1"))
	assert.False(t, StrongPassword("Abc1"))
}

func TestConfirmPasswordError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Please confirm your password", ConfirmPasswordError("Abcdefg1", ""))
	assert.Equal(t, "Passwords do not match", ConfirmPasswordError("Abcdefg1", "Abcdefg2"))
	assert.Equal(t, "", ConfirmPasswordError("Abcdefg1", "Abcdefg1"))
}

func TestValidateSignIn(t *testing.T) {
	t.Parallel()

	v := ValidateSignIn("user@example.com", "secret1")
	assert.True(t, v.Valid())

	v = ValidateSignIn("", "")
	require.False(t, v.Valid())
	assert.Equal(t, "Email is required", v.Errors["email"])
	assert.Equal(t, "Password is required", v.Errors["password"])

	// Sign-in applies the light policy: no length requirement beyond presence.
	v = ValidateSignIn("user@example.com", "x")
	assert.True(t, v.Valid())
}

func TestValidateSignUp(t *testing.T) {
	t.Parallel()

	v := ValidateSignUp("user@example.com", "Abcdefg1", "Abcdefg1")
	assert.True(t, v.Valid())

	v = ValidateSignUp("bad@", "abcdefg1", "different")
	require.False(t, v.Valid())
	assert.Equal(t, "Please enter a valid email address", v.Errors["email"])
	assert.Equal(t, "Password must contain an uppercase letter", v.Errors["password"])
	assert.Equal(t, "Passwords do not match", v.Errors["confirm_password"])

	v = ValidateSignUp("user@example.com", "short", "")
	require.False(t, v.Valid())
	assert.Equal(t, "Password must be at least 8 characters", v.Errors["password"])
	assert.Equal(t, "Please confirm your password", v.Errors["confirm_password"])
}

func TestValidateEventForm_Empty(t *testing.T) {
	t.Parallel()

	v := ValidateEventForm(EventForm{})
	require.False(t, v.Valid())
	require.Len(t, v.Errors, 4)
	assert.Equal(t, "Title is required", v.Errors["title"])
	assert.Equal(t, "Date is required", v.Errors["date"])
	assert.Equal(t, "Start time is required", v.Errors["start_time"])
	assert.Equal(t, "End time is required", v.Errors["end_time"])
}

func TestValidateEventForm_Valid(t *testing.T) {
	t.Parallel()

	v := ValidateEventForm(EventForm{
		Title:       "Team sync",
		Description: "Weekly status round",
		Date:        "2024-01-15",
		StartTime:   "09:00",
		EndTime:     "09:30",
	})
	assert.True(t, v.Valid())
	assert.Empty(t, v.Errors)
}

func TestValidateEventForm_TimeOrdering(t *testing.T) {
	t.Parallel()

	form := EventForm{Title: "x", Date: "2024-01-15", StartTime: "14:00", EndTime: "13:00"}
	v := ValidateEventForm(form)
	require.False(t, v.Valid())
	assert.Equal(t, "End time must be after start time", v.Errors["end_time"])

	// Equal times are rejected too.
	form.EndTime = "14:00"
	v = ValidateEventForm(form)
	require.False(t, v.Valid())
	assert.Equal(t, "End time must be after start time", v.Errors["end_time"])
}

func TestValidateEventForm_Formats(t *testing.T) {
	t.Parallel()

	v := ValidateEventForm(EventForm{
		Title:     "x",
		Date:      "15/01/2024",
		StartTime: "9am",
		EndTime:   "25:00",
	})
	require.False(t, v.Valid())
	assert.Equal(t, "Invalid date format", v.Errors["date"])
	assert.Equal(t, "Invalid start time format", v.Errors["start_time"])
	assert.Equal(t, "Invalid end time format", v.Errors["end_time"])
}

func TestValidateEventForm_Lengths(t *testing.T) {
	t.Parallel()

	v := ValidateEventForm(EventForm{
		Title:       strings.Repeat("a", 101),
		Description: strings.Repeat("b", 501),
		Date:        "2024-01-15",
		StartTime:   "09:00",
		EndTime:     "10:00",
	})
	require.False(t, v.Valid())
	assert.Equal(t, "Title must be less than 100 characters", v.Errors["title"])
	assert.Equal(t, "Description must be less than 500 characters", v.Errors["description"])

	// Exactly at the limits passes.
	v = ValidateEventForm(EventForm{
		Title:       strings.Repeat("a", 100),
		Description: strings.Repeat("b", 500),
		Date:        "2024-01-15",
		StartTime:   "09:00",
		EndTime:     "10:00",
	})
	assert.True(t, v.Valid())

	// Limits count characters, not bytes.
	v = ValidateEventForm(EventForm{
		Title:       strings.Repeat("é", 100),
		Description: strings.Repeat("日", 500),
		Date:        "2024-01-15",
		StartTime:   "09:00",
		EndTime:     "10:00",
	})
	assert.True(t, v.Valid())
}

func TestValidateEventForm_Color(t *testing.T) {
	t.Parallel()

	base := EventForm{Title: "x", Date: "2024-01-15", StartTime: "09:00", EndTime: "10:00"}

	// No color is fine; one gets assigned later.
	v := ValidateEventForm(base)
	assert.True(t, v.Valid())

	base.Color = "#FF6B6B"
	v = ValidateEventForm(base)
	assert.True(t, v.Valid())

	base.Color = "chartreuse-ish"
	v = ValidateEventForm(base)
	require.False(t, v.Valid())
	assert.Equal(t, "Invalid color format", v.Errors["color"])
}

func TestValidateEventsFilter(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidateEventsFilter("", "", "").Valid())
	assert.True(t, ValidateEventsFilter("2024-01-01", "2024-01-31", "").Valid())
	assert.True(t, ValidateEventsFilter("", "", "2024-01-15").Valid())

	v := ValidateEventsFilter("garbage", "2024-01-31", "")
	require.False(t, v.Valid())
	assert.Equal(t, "Invalid date format", v.Errors["from"])
	assert.Empty(t, v.Errors["to"])

	v = ValidateEventsFilter("", "15/01/2024", "not-a-date")
	require.False(t, v.Valid())
	assert.Equal(t, "Invalid date format", v.Errors["to"])
	assert.Equal(t, "Invalid date format", v.Errors["date"])
}

func TestSanitizeInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", SanitizeInput("  hello  "))
	assert.Equal(t, "scriptalert(1)/script", SanitizeInput("<script>alert(1)</script>"))
	assert.Equal(t, "", SanitizeInput("   "))
	assert.Equal(t, "a b", SanitizeInput("a b"))
}
