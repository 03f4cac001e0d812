package gopaginator

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type dialectorFactory func(conn *sql.DB) gorm.Dialector

var _mockDialectors = map[string]dialectorFactory{
	"mysql": func(conn *sql.DB) gorm.Dialector {
		return mysql.New(mysql.Config{
			Conn:                      conn,
			SkipInitializeWithVersion: true,
		})
	},
	"postgres": func(conn *sql.DB) gorm.Dialector {
		return postgres.New(postgres.Config{
			Conn: conn,
		})
	},
}

// newGORMMock opens a gorm session backed by sqlmock for the given dialect.
func newGORMMock(t *testing.T, dialect string) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	factory, ok := _mockDialectors[dialect]
	require.True(t, ok, "unknown dialect %q", dialect)

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(factory(conn), &gorm.Config{})
	require.NoError(t, err)

	return db.Debug(), mock
}

// recordingSurface wraps a surface and counts what the paginator asks of it.
type recordingSurface struct {
	Surface
	clears int
	draws  []Strip
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.Surface.Clear()
}

func (s *recordingSurface) Draw(strip Strip) {
	s.draws = append(s.draws, strip)
	s.Surface.Draw(strip)
}

func newRecordingSurface() (*recordingSurface, *HTMLSurface) {
	hs := NewHTMLSurface(element(atom.Div))
	return &recordingSurface{Surface: hs}, hs
}
