package application

import (
	"context"

	admindomain "github.com/sngm3741/liff-survey/api/internal/admin/domain"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// ResponseRepository exposes read access to every stored response.
type ResponseRepository interface {
	// ListRecent は createdAt の降順で offset 件読み飛ばした後、最大 limit 件を返す。
	ListRecent(ctx context.Context, paging Paging) ([]admindomain.Response, error)
}

// Paging controls pagination.
type Paging struct {
	Limit  int
	Offset int
}

// NewPaging は負数や 0 を既定値に寄せ、limit を上限で切り詰める。
func NewPaging(limit, offset int) Paging {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Paging{Limit: limit, Offset: offset}
}

// ResultsPage is one page of responses plus the statistics computed over it.
type ResultsPage struct {
	Responses  []admindomain.Response
	Statistics admindomain.Statistics
	Paging     Paging
}

// ResultsService describes admin result browsing use-cases.
type ResultsService interface {
	Results(ctx context.Context, paging Paging) (*ResultsPage, error)
}
