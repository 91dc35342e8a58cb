package model

// MaxPageLimit bounds the page size an admin caller may request.
const MaxPageLimit = 100

// DefaultPageLimit is used when the caller does not specify a limit.
const DefaultPageLimit = 10

// PageRequest is a sanitized pagination request. Construct with
// NewPageRequest so the invariants (page >= 1, 1 <= limit <= MaxPageLimit)
// always hold.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest clamps raw page/limit values into a valid PageRequest.
// Zero or negative inputs fall back to the defaults.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// Skip returns the number of records to skip for this page.
func (p PageRequest) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// PageMeta describes the pagination of a returned page. Key names are part
// of the wire contract and must not change.
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPageMeta computes the page metadata for a request and a total count.
// TotalPages is 0 when total is 0. Page is reported as requested even when
// it lies beyond the last page; out-of-range pages yield empty results, not
// errors.
func NewPageMeta(req PageRequest, total int64) PageMeta {
	var pages int64
	if total > 0 {
		pages = (total + int64(req.Limit) - 1) / int64(req.Limit)
	}
	return PageMeta{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: pages,
	}
}
