package validator

import "testing"

func TestValidator(t *testing.T) {
	t.Parallel()

	v := New()
	if !v.Valid() {
		t.Error("new validator should be valid")
	}

	v.Check(true, "field", "should not be recorded")
	if !v.Valid() {
		t.Error("passing check should keep validator valid")
	}

	v.Check(false, "field", "first message")
	v.Check(false, "field", "second message")
	if v.Valid() {
		t.Error("failing check should invalidate")
	}
	if got := v.Errors["field"]; got != "first message" {
		t.Errorf("Errors[\"field\"] = %q, want the first recorded message", got)
	}

	v.AddError("other", "other message")
	if len(v.Errors) != 2 {
		t.Errorf("got %d errors, want 2", len(v.Errors))
	}
}
