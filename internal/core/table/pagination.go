package table

import "strconv"

// collapseThreshold is the page count above which the window collapses
// distant pages into ellipsis markers.
const collapseThreshold = 7

// Token is one entry of a pagination window: a page number, or an ellipsis
// when Page is zero.
type Token struct {
	Page int
}

// Ellipsis is the marker standing in for a run of hidden pages.
var Ellipsis = Token{}

// IsEllipsis reports whether t is the ellipsis marker.
func (t Token) IsEllipsis() bool {
	return t.Page == 0
}

func (t Token) String() string {
	if t.IsEllipsis() {
		return "…"
	}
	return strconv.Itoa(t.Page)
}

// MarshalText implements encoding.TextMarshaler.
func (t Token) MarshalText() ([]byte, error) {
	if t.IsEllipsis() {
		return []byte("..."), nil
	}
	return []byte(t.String()), nil
}

// Pagination is the footer state. Use Normalize before trusting values that
// came from the caller.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// Normalize clamps TotalPages to at least 1 and CurrentPage into
// [1, TotalPages].
func (p Pagination) Normalize() Pagination {
	p.TotalPages = max(p.TotalPages, 1)
	p.CurrentPage = min(max(p.CurrentPage, 1), p.TotalPages)
	return p
}

// Window computes the pagination window for p after normalizing it.
func (p Pagination) Window() []Token {
	n := p.Normalize()
	return Window(n.CurrentPage, n.TotalPages)
}

// Window returns the ordered page tokens shown in the footer: page 1, the
// neighbours of current, the last page, and ellipsis markers where pages
// are hidden. Out-of-range input is clamped first.
func Window(current, total int) []Token {
	total = max(total, 1)
	current = min(max(current, 1), total)

	tokens := []Token{{Page: 1}}

	collapse := total > collapseThreshold
	if collapse && current > 4 {
		tokens = append(tokens, Ellipsis)
	}

	for page := max(2, current-1); page <= min(total-1, current+1); page++ {
		tokens = append(tokens, Token{Page: page})
	}

	if collapse && current < total-3 {
		tokens = append(tokens, Ellipsis)
	}

	if total > 1 {
		tokens = append(tokens, Token{Page: total})
	}

	return tokens
}

// PageCount returns how many pages of size pageSize hold n rows. There is
// always at least one page.
func PageCount(n, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	return max((n+pageSize-1)/pageSize, 1)
}
