package tui

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/Alp4ka/gopaginator"
)

// Colors used by DefaultStyles.
var (
	ColorActive  = lipgloss.Color("39")
	ColorMuted   = lipgloss.Color("241")
	ColorHeader  = lipgloss.Color("252")
	ColorFocusBg = lipgloss.Color("237")
)

// Styles configures how the surface renders each kind of item.
type Styles struct {
	Status   lipgloss.Style
	Item     lipgloss.Style
	Active   lipgloss.Style
	Disabled lipgloss.Style
	Ellipsis lipgloss.Style
	Focused  lipgloss.Style
}

// DefaultStyles returns the styles used by the CLI.
func DefaultStyles() Styles {
	return Styles{
		Status:   lipgloss.NewStyle().Foreground(ColorHeader).Bold(true),
		Item:     lipgloss.NewStyle(),
		Active:   lipgloss.NewStyle().Foreground(ColorActive).Bold(true),
		Disabled: lipgloss.NewStyle().Foreground(ColorMuted).Faint(true),
		Ellipsis: lipgloss.NewStyle().Foreground(ColorMuted),
		Focused:  lipgloss.NewStyle().Background(ColorFocusBg).Underline(true),
	}
}

// Surface is a terminal display region. It is driven from the Bubble Tea
// update loop and is not safe for concurrent use.
type Surface struct {
	styles   Styles
	strip    gopaginator.Strip
	drawn    bool
	controls []*Control
	focus    int
	// focusKind is the kind of the focused control at the last Clear.
	focusKind gopaginator.ItemKind
}

// NewSurface returns an empty surface.
func NewSurface(styles Styles) *Surface {
	return &Surface{styles: styles}
}

// Clear implements gopaginator.Surface.
func (s *Surface) Clear() {
	if c := s.Focused(); c != nil {
		s.focusKind = c.item.Kind
	}

	s.strip = gopaginator.Strip{}
	s.drawn = false
	s.controls = nil
}

// Draw implements gopaginator.Surface. The focus stays on previous/next when
// one of them was focused and is still enabled, otherwise it moves to the
// current page.
func (s *Surface) Draw(strip gopaginator.Strip) {
	s.strip = strip
	s.drawn = true
	s.controls = lo.FilterMap(strip.Items, func(item gopaginator.Item, _ int) (*Control, bool) {
		return &Control{item: item}, item.Interactive()
	})

	s.focus = s.restoreFocus()
}

func (s *Surface) restoreFocus() int {
	if len(s.controls) == 0 {
		return 0
	}

	if s.focusKind == gopaginator.ItemPrev || s.focusKind == gopaginator.ItemNext {
		if idx := slices.IndexFunc(s.controls, func(c *Control) bool {
			return c.item.Kind == s.focusKind
		}); idx != -1 {
			return idx
		}
	}

	if idx := slices.IndexFunc(s.controls, func(c *Control) bool { return c.item.Active }); idx != -1 {
		return idx
	}

	return min(s.focus, len(s.controls)-1)
}

// Controls implements gopaginator.Surface.
func (s *Surface) Controls() []gopaginator.Control {
	return lo.Map(s.controls, func(c *Control, _ int) gopaginator.Control { return c })
}

// Focused returns the focused control, or nil when nothing is drawn.
func (s *Surface) Focused() *Control {
	if s.focus < 0 || s.focus >= len(s.controls) {
		return nil
	}

	return s.controls[s.focus]
}

// FocusIndex returns the position of the focused control.
func (s *Surface) FocusIndex() int {
	return s.focus
}

// FocusNext moves the focus one control to the right, stopping at the end.
func (s *Surface) FocusNext() {
	if s.focus < len(s.controls)-1 {
		s.focus++
	}
}

// FocusPrev moves the focus one control to the left, stopping at the start.
func (s *Surface) FocusPrev() {
	if s.focus > 0 {
		s.focus--
	}
}

// Activate clicks the focused control. It returns nil when there is none.
func (s *Surface) Activate() *gopaginator.ClickEvent {
	c := s.Focused()
	if c == nil {
		return nil
	}

	return c.Click()
}

// View renders the status line and the strip. An empty surface renders as an
// empty string.
func (s *Surface) View() string {
	if !s.drawn || s.strip.Empty() {
		return ""
	}

	labels := s.strip.Labels
	status := s.styles.Status.Render(
		labels.Status + " " + strconv.Itoa(s.strip.Current) + " / " + strconv.Itoa(s.strip.Total),
	)

	focused := s.Focused()
	cells := make([]string, 0, len(s.strip.Items))
	controlIdx := 0
	for _, item := range s.strip.Items {
		var cell string
		switch {
		case item.Kind == gopaginator.ItemEllipsis:
			cell = s.styles.Ellipsis.Render(labels.Ellipsis)
		case item.Disabled:
			cell = s.styles.Disabled.Render(itemLabel(item, labels))
		case item.Active:
			cell = s.styles.Active.Render("[" + itemLabel(item, labels) + "]")
		default:
			cell = s.styles.Item.Render(itemLabel(item, labels))
		}

		if item.Interactive() {
			if focused != nil && s.controls[controlIdx] == focused {
				cell = s.styles.Focused.Render(cell)
			}
			controlIdx++
		}
		cells = append(cells, cell)
	}

	return status + "\n" + strings.Join(cells, " ")
}

func itemLabel(item gopaginator.Item, labels gopaginator.Labels) string {
	switch item.Kind {
	case gopaginator.ItemPrev:
		return labels.Prev
	case gopaginator.ItemNext:
		return labels.Next
	default:
		return strconv.Itoa(item.Page)
	}
}

// Control is an interactive item drawn on a Surface.
type Control struct {
	item      gopaginator.Item
	listeners []*listener
}

// Item returns the strip item the control was drawn from.
func (c *Control) Item() gopaginator.Item {
	return c.item
}

// Attr implements gopaginator.Control.
func (c *Control) Attr(name string) (string, bool) {
	if name != gopaginator.AttrTargetPage {
		return "", false
	}

	return c.item.Target(), true
}

// OnClick implements gopaginator.Control.
func (c *Control) OnClick(fn func(*gopaginator.ClickEvent)) gopaginator.Listener {
	l := &listener{control: c, fn: fn}
	c.listeners = append(c.listeners, l)

	return l
}

// Click dispatches an activation to the listeners attached when it starts.
func (c *Control) Click() *gopaginator.ClickEvent {
	e := new(gopaginator.ClickEvent)
	for _, l := range slices.Clone(c.listeners) {
		l.fn(e)
	}

	return e
}

type listener struct {
	control *Control
	fn      func(*gopaginator.ClickEvent)
}

func (l *listener) Detach() {
	l.control.listeners = lo.Without(l.control.listeners, l)
}

var (
	_ gopaginator.Surface = (*Surface)(nil)
	_ gopaginator.Control = (*Control)(nil)
)
