package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func render(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func TestWindow(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{1, 1, "1"},
		{1, 2, "1 2"},
		{2, 2, "1 2"},
		{1, 5, "1 2 5"},
		{3, 5, "1 2 3 4 5"},
		{1, 7, "1 2 7"},
		{4, 7, "1 3 4 5 7"},
		{5, 7, "1 4 5 6 7"},
		{1, 10, "1 2 … 10"},
		{4, 10, "1 3 4 5 … 10"},
		{5, 10, "1 … 4 5 6 … 10"},
		{7, 10, "1 … 6 7 8 10"},
		{10, 10, "1 … 9 10"},
	}

	for _, tt := range tests {
		got := Window(tt.current, tt.total)
		assert.Equal(t, tt.want, render(got), "Window(%d, %d)", tt.current, tt.total)
	}
}

func TestWindow_ClampsInput(t *testing.T) {
	assert.Equal(t, "1", render(Window(0, 0)))
	assert.Equal(t, "1 2 3", render(Window(-4, 3)))
	assert.Equal(t, "1 2 3", render(Window(99, 3)))
}

func TestWindow_Invariants(t *testing.T) {
	for total := 1; total <= 25; total++ {
		for current := 1; current <= total; current++ {
			tokens := Window(current, total)

			assert.Equal(t, 1, tokens[0].Page, "first token is page 1")
			if total > 1 {
				assert.Equal(t, total, tokens[len(tokens)-1].Page, "last token is the last page")
			}

			last := 0
			for i, tok := range tokens {
				if tok.IsEllipsis() {
					assert.False(t, i > 0 && tokens[i-1].IsEllipsis(), "adjacent ellipsis at (%d, %d)", current, total)
					continue
				}
				assert.Greater(t, tok.Page, last, "ascending at (%d, %d)", current, total)
				last = tok.Page
			}

			assert.Equal(t, tokens, Window(current, total), "deterministic")
		}
	}
}

func TestPagination_Normalize(t *testing.T) {
	assert.Equal(t, Pagination{CurrentPage: 1, TotalPages: 1}, Pagination{}.Normalize())
	assert.Equal(t, Pagination{CurrentPage: 3, TotalPages: 3}, Pagination{CurrentPage: 9, TotalPages: 3}.Normalize())
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, PageCount(0, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 2, PageCount(11, 10))
	assert.Equal(t, 1, PageCount(50, 0))
}
