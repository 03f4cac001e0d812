package gopaginator

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"strconv"

	"gorm.io/gorm"
)

var _encoder = base64.RawURLEncoding

// PageQuery selects one page of a dataset with LIMIT/OFFSET. It is the
// dataset side of a Paginator: the page number it carries is the paginator's
// current page.
type PageQuery struct {
	page int
	size int
	sort Orderings
}

// NewPageQuery returns a query for page with a normalized page size.
func NewPageQuery(page, size int) *PageQuery {
	return &PageQuery{
		page: page,
		size: NormalizePageSize(size),
	}
}

// ForPaginator returns a query for the paginator's current page.
func ForPaginator(p *Paginator, size int) *PageQuery {
	return NewPageQuery(p.CurrentPage(), size)
}

// DecodePageToken parses a token produced by PageQuery.Token. An empty token
// selects the first page.
func DecodePageToken(token string, size int) (*PageQuery, error) {
	if len(token) == 0 {
		return NewPageQuery(DefaultPage, size), nil
	}

	pageBytes, err := _encoder.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 encoded page token: %w", err)
	}

	page, err := strconv.Atoi(string(pageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode page token value: %w", err)
	}
	if page < 1 {
		return nil, fmt.Errorf("page token points to page %d", page)
	}

	q := NewPageQuery(page, size)
	if q.offsetOverflows() {
		return nil, fmt.Errorf("page token points to page %d, whose row offset overflows", page)
	}

	return q, nil
}

// Token returns the base64 form of the page number. The first page has an
// empty token.
func (q *PageQuery) Token() string {
	if q == nil || q.page <= DefaultPage {
		return ""
	}

	return _encoder.EncodeToString([]byte(strconv.Itoa(q.page)))
}

// Page returns the selected page.
func (q *PageQuery) Page() int {
	if q == nil {
		return DefaultPage
	}

	return q.page
}

// Size returns the page size.
func (q *PageQuery) Size() int {
	if q == nil {
		return DefaultPageSize
	}

	return q.size
}

// Offset returns the number of rows preceding the page. Pages whose offset
// does not fit an int are rejected by Apply.
func (q *PageQuery) Offset() int {
	if q.offsetOverflows() {
		return math.MaxInt
	}

	return max(0, (q.Page()-1)*q.Size())
}

func (q *PageQuery) offsetOverflows() bool {
	return q.Page() > 1 && q.Page()-1 > math.MaxInt/q.Size()
}

// Sort returns the orderings applied to the dataset.
func (q *PageQuery) Sort() Orderings {
	if q == nil {
		return nil
	}

	return q.sort
}

// WithSort appends orderings. Repeating a column moves it to the end with the
// new direction.
func (q *PageQuery) WithSort(orderBy ...OrderBy) *PageQuery {
	if q == nil {
		q = NewPageQuery(DefaultPage, DefaultPageSize)
	}

	q.sort = q.sort.with(orderBy...)

	return q
}

// Apply restricts db to the page. OFFSET pagination needs a deterministic
// order, so at least one ordering is required.
func (q *PageQuery) Apply(db *gorm.DB) (*gorm.DB, error) {
	if q == nil {
		return nil, fmt.Errorf("cannot apply page query: page query is nil")
	}
	if q.page < 1 {
		return nil, fmt.Errorf("cannot apply page query: invalid page %d", q.page)
	}
	if q.offsetOverflows() {
		return nil, fmt.Errorf("cannot apply page query: page %d overflows the row offset", q.page)
	}
	if err := q.sort.validate(); err != nil {
		return nil, fmt.Errorf("cannot apply page query: %w", err)
	}

	db = q.sort.Apply(db).Limit(q.size)
	if offset := q.Offset(); offset > 0 {
		db = db.Offset(offset)
	}

	return db, nil
}

// CountPages counts the rows selected by db and returns the number of pages
// of the given size.
func CountPages(ctx context.Context, db *gorm.DB, size int) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("cannot count rows: %w", err)
	}

	return TotalPagesFor(count, size), nil
}

// SyncTotalPages sets the paginator's page count from the rows selected by db.
func SyncTotalPages(ctx context.Context, p *Paginator, db *gorm.DB, size int) error {
	total, err := CountPages(ctx, db, size)
	if err != nil {
		return err
	}

	p.UpdateTotalPages(total)

	return nil
}
