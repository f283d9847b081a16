package domain

import (
	"testing"
)

func TestNewPosition(t *testing.T) {
	t.Run("creates position", func(t *testing.T) {
		pos := NewPosition(250, 5)

		if pos.X != 250 {
			t.Errorf("expected X=250, got %f", pos.X)
		}
		if pos.Y != 5 {
			t.Errorf("expected Y=5, got %f", pos.Y)
		}
	})

	t.Run("creates position with negative coordinates", func(t *testing.T) {
		pos := NewPosition(-50.5, -100.5)

		if pos.X != -50.5 {
			t.Errorf("expected X=-50.5, got %f", pos.X)
		}
		if pos.Y != -100.5 {
			t.Errorf("expected Y=-100.5, got %f", pos.Y)
		}
	})
}
