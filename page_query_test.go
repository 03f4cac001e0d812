package gopaginator

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

var _dialects = []string{"mysql", "postgres"}

func Test_DecodePageToken(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedPage int
		expectError  bool
	}{
		{"empty selects first page", "", 1, false},
		{"encoded page", base64.RawURLEncoding.EncodeToString([]byte("15")), 15, false},
		{"not base64", "%%%", 0, true},
		{"not a number", base64.RawURLEncoding.EncodeToString([]byte("abc")), 0, true},
		{"zero page", base64.RawURLEncoding.EncodeToString([]byte("0")), 0, true},
		{"offset overflows", base64.RawURLEncoding.EncodeToString([]byte(strconv.Itoa(math.MaxInt))), 0, true},
		{"last addressable page", base64.RawURLEncoding.EncodeToString([]byte(strconv.Itoa(math.MaxInt/20 + 1))), math.MaxInt/20 + 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := DecodePageToken(tt.input, 20)
			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expectedPage, q.Page())
			require.Equal(t, 20, q.Size())
		})
	}
}

func Test_PageQuery_Token_RoundTrip(t *testing.T) {
	require.Empty(t, NewPageQuery(1, 10).Token())
	require.Empty(t, (*PageQuery)(nil).Token())

	token := NewPageQuery(7, 10).Token()
	require.NotEmpty(t, token)

	q, err := DecodePageToken(token, 10)
	require.NoError(t, err)
	require.Equal(t, 7, q.Page())
}

func Test_PageQuery_Offset(t *testing.T) {
	tests := []struct {
		name string
		page int
		size int
		want int
	}{
		{"first page", 1, 10, 0},
		{"third page", 3, 25, 50},
		{"size normalized", 2, 0, DefaultPageSize},
		{"size clamped", 2, 1000, MaxPageSize},
		{"invalid page never negative", 0, 10, 0},
		{"overflow saturates", math.MaxInt, 10, math.MaxInt},
		{"single row pages", math.MaxInt, 1, math.MaxInt - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPageQuery(tt.page, tt.size).Offset(); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}

func Test_PageQuery_NilDefaults(t *testing.T) {
	var q *PageQuery
	require.Equal(t, DefaultPage, q.Page())
	require.Equal(t, DefaultPageSize, q.Size())
	require.Nil(t, q.Sort())

	q = q.WithSort(OrderBy{Column: "id", Direction: DirectionASC})
	require.NotNil(t, q)
	require.Equal(t, Orderings{{Column: "id", Direction: DirectionASC}}, q.Sort())
}

func Test_PageQuery_Apply(t *testing.T) {
	type tUser struct {
		ID   uint
		Name string
	}

	tests := []struct {
		name          string
		page          int
		size          int
		sort          Orderings
		expectedQuery string
	}{
		{
			name:          "first page has no offset",
			page:          1,
			size:          5,
			sort:          Orderings{{Column: "id", Direction: DirectionASC}},
			expectedQuery: "^SELECT \\* FROM [`'\"]users[`'\"] WHERE name = ['\"]lol['\"] ORDER BY id ASC LIMIT 5$",
		},
		{
			name:          "third page skips two pages",
			page:          3,
			size:          4,
			sort:          Orderings{{Column: "id", Direction: DirectionASC}},
			expectedQuery: "^SELECT \\* FROM [`'\"]users[`'\"] WHERE name = ['\"]lol['\"] ORDER BY id ASC LIMIT 4 OFFSET 8$",
		},
		{
			name: "multiple orderings",
			page: 2,
			size: 10,
			sort: Orderings{
				{Column: "created_at", Direction: DirectionDESC},
				{Column: "id", Direction: DirectionASC},
			},
			expectedQuery: "^SELECT \\* FROM [`'\"]users[`'\"] WHERE name = ['\"]lol['\"] ORDER BY created_at DESC, id ASC LIMIT 10 OFFSET 10$",
		},
	}

	for _, dialect := range _dialects {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s %s", dialect, tt.name), func(t *testing.T) {
				db, dbMock := newGORMMock(t, dialect)

				dbMock.ExpectQuery(tt.expectedQuery).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "John Doe"))

				paged, err := NewPageQuery(tt.page, tt.size).
					WithSort(tt.sort...).
					Apply(db.Select("*").Table("users").Where("name = 'lol'"))
				require.NoError(t, err)

				require.NoError(t, paged.Find(&[]tUser{}).Error)
				assert.NoError(t, dbMock.ExpectationsWereMet())
			})
		}
	}
}

func Test_PageQuery_Apply_Invalid(t *testing.T) {
	db, _ := newGORMMock(t, "postgres")

	tests := []struct {
		name  string
		query *PageQuery
	}{
		{"nil query", nil},
		{"no sort", NewPageQuery(1, 10)},
		{"zero page", NewPageQuery(0, 10).WithSort(OrderBy{Column: "id", Direction: DirectionASC})},
		{"bad column", NewPageQuery(1, 10).WithSort(OrderBy{Column: "id desc; --", Direction: DirectionASC})},
		{"offset overflows", NewPageQuery(math.MaxInt/10+2, 10).WithSort(OrderBy{Column: "id", Direction: DirectionASC})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.query.Apply(db.Table("users"))
			require.Error(t, err)
			require.Contains(t, err.Error(), "cannot apply page query")
		})
	}
}

func Test_CountPages(t *testing.T) {
	for _, dialect := range _dialects {
		t.Run(dialect, func(t *testing.T) {
			db, dbMock := newGORMMock(t, dialect)

			dbMock.ExpectQuery("^SELECT count\\(\\*\\) FROM [`'\"]users[`'\"]$").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

			pages, err := CountPages(context.Background(), db.Table("users"), 10)
			require.NoError(t, err)
			require.Equal(t, 5, pages)
			assert.NoError(t, dbMock.ExpectationsWereMet())
		})
	}
}

func Test_CountPages_Error(t *testing.T) {
	db, dbMock := newGORMMock(t, "mysql")

	dbMock.ExpectQuery("^SELECT count").WillReturnError(errors.New("connection reset"))

	_, err := CountPages(context.Background(), db.Table("users"), 10)
	require.Error(t, err)
	require.Contains(t, err.Error(), "connection reset")
}

func Test_SyncTotalPages(t *testing.T) {
	db, dbMock := newGORMMock(t, "postgres")
	dbMock.ExpectQuery("^SELECT count\\(\\*\\) FROM [`'\"]users[`'\"]$").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(30))

	surface := NewHTMLSurface(element(atom.Div))
	var changes []int
	p, err := New(Config{
		Container:    Direct(surface),
		TotalPages:   9,
		CurrentPage:  8,
		OnPageChange: func(page int) { changes = append(changes, page) },
	})
	require.NoError(t, err)

	require.NoError(t, SyncTotalPages(context.Background(), p, db.Table("users"), 10))

	require.Equal(t, 3, p.TotalPages())
	require.Equal(t, 3, p.CurrentPage())
	require.Equal(t, []int{3}, changes)
	require.Equal(t, 20, ForPaginator(p, 10).Offset())
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
