package domain

// Page is an offset/limit slice of an ordered result set. A zero Size yields
// an empty page; an offset past the end yields an empty page, not an error.
type Page struct {
	From int
	Size int
}

// NewPage creates a Page starting at the given offset with the given size.
func NewPage(from, size int) Page {
	return Page{From: from, Size: size}
}
