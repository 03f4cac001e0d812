package gopaginator

import (
	"strconv"

	"github.com/samber/lo"
)

// windowRadius is the number of pages shown on each side of the current page.
const windowRadius = 2

// ItemKind defines what a strip item represents.
type ItemKind string

const (
	ItemPrev     ItemKind = "prev"
	ItemPage     ItemKind = "page"
	ItemEllipsis ItemKind = "ellipsis"
	ItemNext     ItemKind = "next"
)

// Item is a single entry of the control strip.
type Item struct {
	Kind ItemKind
	// Page is the target page. Zero for ellipsis markers.
	Page int
	// Active marks the control of the current page.
	Active bool
	// Disabled marks a control that must not react to clicks.
	Disabled bool
	// Shortcut marks the first/last page control outside the window.
	Shortcut bool
}

// Interactive reports whether the item is bound to a click handler.
func (i Item) Interactive() bool {
	return i.Kind != ItemEllipsis && !i.Disabled
}

// Target returns the value of the item's AttrTargetPage attribute.
func (i Item) Target() string {
	if i.Kind == ItemEllipsis {
		return ""
	}

	return strconv.Itoa(i.Page)
}

// Labels holds the texts surfaces print around the page numbers.
type Labels struct {
	Status   string
	Prev     string
	Next     string
	PrevAria string
	NextAria string
	Ellipsis string
}

// DefaultLabels returns the labels used when Config.Labels is empty.
func DefaultLabels() Labels {
	return Labels{
		Status:   "Page",
		Prev:     "«",
		Next:     "»",
		PrevAria: "Previous",
		NextAria: "Next",
		Ellipsis: "...",
	}
}

func (l Labels) orDefault() Labels {
	if l == (Labels{}) {
		return DefaultLabels()
	}

	return l
}

// Strip is everything a surface draws for one render.
type Strip struct {
	Current int
	Total   int
	Items   []Item
	Labels  Labels
}

// Empty reports whether there is nothing to draw.
func (s Strip) Empty() bool {
	return s.Total <= 0
}

// Window returns the inclusive range of page numbers shown next to current.
func Window(total, current int) (start, end int) {
	return max(1, current-windowRadius), min(total, current+windowRadius)
}

// Layout computes the control strip for the given state. A strip with
// total <= 0 has no items.
func Layout(total, current int, labels Labels) Strip {
	strip := Strip{
		Current: current,
		Total:   total,
		Labels:  labels.orDefault(),
	}
	if total <= 0 {
		return strip
	}

	start, end := Window(total, current)
	// prev, first, ellipsis, window, ellipsis, last, next
	items := make([]Item, 0, 2*windowRadius+7)

	items = append(items, Item{Kind: ItemPrev, Page: current - 1, Disabled: current == 1})

	if start > 1 {
		items = append(items, Item{Kind: ItemPage, Page: 1, Shortcut: true})
		if start > 2 {
			items = append(items, Item{Kind: ItemEllipsis})
		}
	}

	for _, page := range lo.RangeWithSteps(start, end+1, 1) {
		items = append(items, Item{Kind: ItemPage, Page: page, Active: page == current})
	}

	if end < total {
		if end < total-1 {
			items = append(items, Item{Kind: ItemEllipsis})
		}
		items = append(items, Item{Kind: ItemPage, Page: total, Shortcut: true})
	}

	items = append(items, Item{Kind: ItemNext, Page: current + 1, Disabled: current == total})
	strip.Items = items

	return strip
}

// Pages returns the target pages of the strip's page controls, shortcuts
// included, in order.
func (s Strip) Pages() []int {
	return lo.FilterMap(s.Items, func(item Item, _ int) (int, bool) {
		return item.Page, item.Kind == ItemPage
	})
}
