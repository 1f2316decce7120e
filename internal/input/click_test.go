package input

import (
	"strings"
	"testing"
)

func TestDispatchErrorMessage(t *testing.T) {
	err := &DispatchError{X: 120, Y: 340, Reason: "permissions denied"}

	msg := err.Error()
	if !strings.Contains(msg, "(120,340)") {
		t.Errorf("message should include the coordinate, got %q", msg)
	}
	if !strings.Contains(msg, "permissions denied") {
		t.Errorf("message should include the reason, got %q", msg)
	}
}
