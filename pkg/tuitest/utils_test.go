package tuitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mtitle\x1b[0m   \nrow  \n\n"
	assert.Equal(t, "title\nrow", StripANSI(in))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "x", KeyPress('x').String())
	assert.Equal(t, "enter", Key(tea.KeyEnter).String())
	assert.Equal(t, tea.WindowSizeMsg{Width: 80, Height: 24}, WindowSize(80, 24))
}
