package shared

// Pagination bounds shared by all list endpoints
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// Page holds limit/offset pagination parameters
type Page struct {
	Limit  int
	Offset int
}

// DefaultPage returns pagination with default bounds
func DefaultPage() Page {
	return Page{Limit: DefaultPageLimit, Offset: 0}
}

// Normalize clamps the page to valid bounds: limit defaults to 50 and is
// capped at 100, offset floors at zero. Out-of-range values are clamped
// rather than rejected.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
