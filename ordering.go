package gopaginator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction defines the sort direction of a paged query.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (d Direction) Valid() bool {
	return d == DirectionASC || d == DirectionDESC
}

type (
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction Direction
	}

	ColumnAlias = string

	// ColumnMapping maps external sort aliases to column names.
	ColumnMapping = map[ColumnAlias]string
)

var _columnNameSymbols = append([]rune("_."), lo.AlphanumericCharset...)

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	// Column names end up in raw SQL.
	if o.Column == "" || !lo.Every(_columnNameSymbols, []rune(o.Column)) {
		return fmt.Errorf("ordering column name contains forbidden symbols '%s'", o.Column)
	}

	return nil
}

// ToSQL joins the orderings as "a ASC, b DESC".
func (o Orderings) ToSQL() string {
	return strings.Join(lo.Map(o, func(ordering OrderBy, _ int) string {
		return fmt.Sprintf("%s %s", ordering.Column, ordering.Direction)
	}), ", ")
}

// Apply adds the orderings to a gorm query.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(o.ToSQL())
}

// with appends orderings, moving a column that is already present to the end.
func (o Orderings) with(orderBy ...OrderBy) Orderings {
	ret := slices.Clone(o)
	for _, ordering := range orderBy {
		ret = slices.DeleteFunc(ret, func(existing OrderBy) bool {
			return existing.Column == ordering.Column
		})
		ret = append(ret, ordering)
	}

	return ret
}

func (o Orderings) validate() error {
	if len(o) == 0 {
		return fmt.Errorf("empty ordering list")
	}

	for _, ordering := range o {
		if err := ordering.validate(); err != nil {
			return err
		}
	}

	return nil
}

// ParseSort builds Orderings from strings of the form "alias" or
// "alias asc|desc". Aliases are resolved through columnMapping; an unknown
// alias fails with the closest known one in the message.
func ParseSort(sort []string, columnMapping ColumnMapping) (Orderings, error) {
	ret := make(Orderings, 0, len(sort))

	for _, raw := range sort {
		parts := strings.Fields(raw)
		direction := DirectionASC
		switch len(parts) {
		case 1:
		case 2:
			direction = Direction(strings.ToUpper(parts[1]))
		default:
			return nil, fmt.Errorf("invalid ordering string format '%s'", raw)
		}

		column, ok := columnMapping[parts[0]]
		if !ok || column == "" {
			return nil, fmt.Errorf("invalid column alias '%s'. closest: '%s'",
				parts[0], closestAlias(parts[0], lo.Keys(columnMapping)))
		}

		ordering := OrderBy{Column: column, Direction: direction}
		if err := ordering.validate(); err != nil {
			return nil, err
		}
		ret = append(ret, ordering)
	}

	return ret, nil
}

func closestAlias(input ColumnAlias, aliases []ColumnAlias) ColumnAlias {
	if len(aliases) == 0 {
		return ""
	}

	aliases = slices.Clone(aliases)
	slices.Sort(aliases)

	return lo.MinBy(aliases, func(a, b ColumnAlias) bool {
		return levenshtein.ComputeDistance(a, input) < levenshtein.ComputeDistance(b, input)
	})
}
