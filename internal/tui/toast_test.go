package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestToastController_Push(t *testing.T) {
	c := NewToastController()

	c.Push(ToastInfo, "hello")

	assert.True(t, c.HasToasts())
	assert.Equal(t, []string{"hello"}, c.Messages())
	assert.Equal(t, defaultToastTTL, c.toasts[0].remaining)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController()

	for i := range defaultMaxToasts + 2 {
		c.Push(ToastInfo, time.Duration(i).String())
	}

	assert.Len(t, c.Messages(), defaultMaxToasts)
	assert.Equal(t, "2ns", c.Messages()[0])
}

func TestToastController_Tick_removes_expired(t *testing.T) {
	c := NewToastController()
	c.Push(ToastInfo, "expires")
	c.Push(ToastInfo, "survives")

	c.toasts[0].remaining = 50 * time.Millisecond
	c.Tick(100 * time.Millisecond)

	assert.Equal(t, []string{"survives"}, c.Messages())
	assert.Equal(t, defaultToastTTL-100*time.Millisecond, c.toasts[0].remaining)
}

func TestToastController_Dismiss(t *testing.T) {
	c := NewToastController()
	c.Push(ToastInfo, "first")
	c.Push(ToastError, "second")

	c.Dismiss()
	assert.Equal(t, []string{"first"}, c.Messages())

	c.Dismiss()
	c.Dismiss()
	assert.False(t, c.HasToasts())
}

func TestToastController_View(t *testing.T) {
	c := NewToastController()
	assert.Empty(t, c.View())

	c.Push(ToastWarning, "careful")
	c.Push(ToastError, "broken")

	out := ansi.Strip(c.View())
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "broken")
	assert.Less(t, strings.Index(out, "careful"), strings.Index(out, "broken"), "oldest renders first")
}
