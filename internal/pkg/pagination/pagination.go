// Package pagination holds the page window used by the information listing.
package pagination

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Params is a normalized page request. Use NewParams to build one.
type Params struct {
	Page    int
	PerPage int
}

func NewParams(page, perPage int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return Params{
		Page:    page,
		PerPage: min(perPage, MaxPerPage),
	}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Params) Limit() int {
	return p.PerPage
}

// Info describes the page a listing returned relative to the full result set.
func (p Params) Info(totalItems int) *Info {
	return NewInfo(p.Page, p.PerPage, totalItems)
}

type Info struct {
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// NewInfo always reports at least one page, even for an empty listing.
func NewInfo(page, perPage, totalItems int) *Info {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := max((totalItems+perPage-1)/perPage, 1)

	return &Info{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
