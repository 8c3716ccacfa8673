package repository

// MaxPageSize caps the number of rows any listing query may return.
const MaxPageSize = 100

// Page is an offset/limit window over a listing query.
type Page struct {
	Offset int
	Limit  int
}

// Normalize clamps the window to sane bounds: negative offsets become zero and
// the limit is forced into 1..MaxPageSize.
func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 || p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}

	return p
}
