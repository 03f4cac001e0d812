package gopaginator

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StatusElementID is the id of the status line drawn by HTMLSurface.
const StatusElementID = "current-page-info"

// Bootstrap compatible class names.
const (
	classPagination = "pagination justify-content-end"
	classPageItem   = "page-item"
	classPageLink   = "page-link"
	classActive     = "active"
	classDisabled   = "disabled"
)

// HTMLSurface draws the strip as Bootstrap pagination markup below an
// element node. Click listeners are kept by the surface, keyed by anchor node.
type HTMLSurface struct {
	root      *html.Node
	listeners map[*html.Node][]*htmlListener
}

// NewHTMLSurface wraps an element node. The node's children are owned by the
// surface from now on.
func NewHTMLSurface(root *html.Node) *HTMLSurface {
	return &HTMLSurface{
		root:      root,
		listeners: make(map[*html.Node][]*htmlListener),
	}
}

// Root returns the wrapped node.
func (s *HTMLSurface) Root() *html.Node {
	return s.root
}

// Clear implements Surface.
func (s *HTMLSurface) Clear() {
	for c := s.root.FirstChild; c != nil; c = s.root.FirstChild {
		s.root.RemoveChild(c)
	}
	clear(s.listeners)
}

// Draw implements Surface.
func (s *HTMLSurface) Draw(strip Strip) {
	s.root.AppendChild(statusNode(strip))

	ul := element(atom.Ul, html.Attribute{Key: "class", Val: classPagination})
	for _, item := range strip.Items {
		ul.AppendChild(itemNode(item, strip.Labels))
	}

	nav := element(atom.Nav)
	nav.AppendChild(ul)
	s.root.AppendChild(nav)
}

// Controls implements Surface. It returns every page link carrying a target
// page whose list item is not disabled.
func (s *HTMLSurface) Controls() []Control {
	var controls []Control
	walk(s.root, func(n *html.Node) {
		if n.DataAtom != atom.A || !hasClass(n, classPageLink) {
			return
		}
		if _, ok := attr(n, AttrTargetPage); !ok {
			return
		}
		if n.Parent != nil && hasClass(n.Parent, classDisabled) {
			return
		}

		controls = append(controls, &HTMLControl{surface: s, node: n})
	})

	return controls
}

// Render writes the surface's children as HTML.
func (s *HTMLSurface) Render(w io.Writer) error {
	for c := s.root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return fmt.Errorf("cannot render surface: %w", err)
		}
	}

	return nil
}

// String returns the rendered children, or an empty string on failure.
func (s *HTMLSurface) String() string {
	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		return ""
	}

	return buf.String()
}

// Control returns the drawn interactive control targeting page.
func (s *HTMLSurface) Control(page int) (*HTMLControl, bool) {
	target := strconv.Itoa(page)
	for _, c := range s.Controls() {
		if v, _ := c.Attr(AttrTargetPage); v == target {
			return c.(*HTMLControl), true
		}
	}

	return nil, false
}

// HTMLControl is an interactive anchor drawn by HTMLSurface.
type HTMLControl struct {
	surface *HTMLSurface
	node    *html.Node
}

// Attr implements Control.
func (c *HTMLControl) Attr(name string) (string, bool) {
	return attr(c.node, name)
}

// OnClick implements Control.
func (c *HTMLControl) OnClick(fn func(*ClickEvent)) Listener {
	l := &htmlListener{surface: c.surface, node: c.node, fn: fn}
	c.surface.listeners[c.node] = append(c.surface.listeners[c.node], l)

	return l
}

// Click dispatches a synthetic activation to the listeners attached when the
// click starts.
func (c *HTMLControl) Click() *ClickEvent {
	e := new(ClickEvent)
	for _, l := range slices.Clone(c.surface.listeners[c.node]) {
		l.fn(e)
	}

	return e
}

// Node returns the anchor node.
func (c *HTMLControl) Node() *html.Node {
	return c.node
}

type htmlListener struct {
	surface *HTMLSurface
	node    *html.Node
	fn      func(*ClickEvent)
}

// Detach implements Listener.
func (l *htmlListener) Detach() {
	attached := l.surface.listeners[l.node]
	attached = lo.Without(attached, l)
	if len(attached) == 0 {
		delete(l.surface.listeners, l.node)
		return
	}
	l.surface.listeners[l.node] = attached
}

// HTMLDocument is a parsed document whose elements can host surfaces.
type HTMLDocument struct {
	root     *html.Node
	surfaces map[*html.Node]*HTMLSurface
}

// ParseHTMLDocument parses r as an HTML document.
func ParseHTMLDocument(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse html document: %w", err)
	}

	return &HTMLDocument{
		root:     root,
		surfaces: make(map[*html.Node]*HTMLSurface),
	}, nil
}

// SurfaceByID implements Resolver. Resolving the same id twice returns the
// same surface.
func (d *HTMLDocument) SurfaceByID(id string) (Surface, bool) {
	n := d.ElementByID(id)
	if n == nil {
		return nil, false
	}

	s, ok := d.surfaces[n]
	if !ok {
		s = NewHTMLSurface(n)
		d.surfaces[n] = s
	}

	return s, true
}

// ElementByID returns the first element with the given id, or nil.
func (d *HTMLDocument) ElementByID(id string) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) {
		if found != nil || n.Type != html.ElementNode {
			return
		}
		if v, ok := attr(n, "id"); ok && v == id {
			found = n
		}
	})

	return found
}

// Render writes the whole document.
func (d *HTMLDocument) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("cannot render document: %w", err)
	}

	return nil
}

var _ Resolver = (*HTMLDocument)(nil)

var (
	_ Surface = (*HTMLSurface)(nil)
	_ Control = (*HTMLControl)(nil)
)

func statusNode(strip Strip) *html.Node {
	p := element(atom.P, html.Attribute{Key: "id", Val: StatusElementID})
	p.AppendChild(text(strip.Labels.Status + " "))
	p.AppendChild(strong(strconv.Itoa(strip.Current)))
	p.AppendChild(text(" / "))
	p.AppendChild(strong(strconv.Itoa(strip.Total)))

	return p
}

func itemNode(item Item, labels Labels) *html.Node {
	classes := []string{classPageItem}
	switch {
	case item.Active:
		classes = append(classes, classActive)
	case item.Disabled || item.Kind == ItemEllipsis:
		classes = append(classes, classDisabled)
	}
	li := element(atom.Li, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})

	if item.Kind == ItemEllipsis {
		span := element(atom.Span, html.Attribute{Key: "class", Val: classPageLink})
		span.AppendChild(text(labels.Ellipsis))
		li.AppendChild(span)

		return li
	}

	a := element(atom.A,
		html.Attribute{Key: "class", Val: classPageLink},
		html.Attribute{Key: "href", Val: "#"},
		html.Attribute{Key: AttrTargetPage, Val: item.Target()},
	)

	label := strconv.Itoa(item.Page)
	switch item.Kind {
	case ItemPrev:
		label = labels.Prev
		a.Attr = append(a.Attr, html.Attribute{Key: "aria-label", Val: labels.PrevAria})
	case ItemNext:
		label = labels.Next
		a.Attr = append(a.Attr, html.Attribute{Key: "aria-label", Val: labels.NextAria})
	}
	a.AppendChild(text(label))
	li.AppendChild(a)

	return li
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func strong(s string) *html.Node {
	n := element(atom.Strong)
	n.AppendChild(text(s))

	return n
}

func attr(n *html.Node, key string) (string, bool) {
	a, ok := lo.Find(n.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == key
	})

	return a.Val, ok
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}

	return lo.Contains(strings.Fields(v), class)
}

// walk visits n and its descendants in document order.
func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}
