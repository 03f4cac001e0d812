package gopaginator

// AttrTargetPage is the attribute every interactive control carries with the
// page it selects.
const AttrTargetPage = "data-page"

// Surface is a display region a Paginator renders into. A Surface is owned by
// exactly one Paginator and is only mutated from the goroutine driving it.
type Surface interface {
	// Clear removes everything previously drawn.
	Clear()
	// Draw appends the strip to the surface.
	Draw(strip Strip)
	// Controls returns the interactive controls currently drawn, in strip order.
	Controls() []Control
}

// Control is an interactive descendant of a Surface.
type Control interface {
	// Attr returns the raw value of the named attribute.
	Attr(name string) (string, bool)
	// OnClick attaches fn. The returned Listener detaches exactly this
	// attachment.
	OnClick(fn func(*ClickEvent)) Listener
}

// Listener is the handle of a single click attachment.
type Listener interface {
	Detach()
}

// ClickEvent is passed to click listeners on activation.
type ClickEvent struct {
	defaultPrevented bool
}

// PreventDefault suppresses the surface's default navigation for the click.
func (e *ClickEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *ClickEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Resolver looks a surface up by its identifier.
type Resolver interface {
	SurfaceByID(id string) (Surface, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(id string) (Surface, bool)

func (f ResolverFunc) SurfaceByID(id string) (Surface, bool) {
	return f(id)
}

// Container references the surface a Paginator renders into: either an id
// resolved at construction or a direct handle.
type Container struct {
	id       string
	resolver Resolver
	surface  Surface
	byID     bool
}

// ByID references a surface by identifier, resolved with r by New.
func ByID(id string, r Resolver) Container {
	return Container{id: id, resolver: r, byID: true}
}

// Direct references an already resolved surface.
func Direct(s Surface) Container {
	return Container{surface: s}
}

func (c Container) resolve() (Surface, error) {
	if c.byID {
		if c.id == "" {
			return nil, newConfigurationError("empty container id")
		}
		if c.resolver == nil {
			return nil, newConfigurationError("no resolver for container id %q", c.id)
		}

		s, ok := c.resolver.SurfaceByID(c.id)
		if !ok || s == nil {
			return nil, newConfigurationError("container with id %q not found", c.id)
		}

		return s, nil
	}

	if c.surface == nil {
		return nil, newConfigurationError("container must be an id or a surface")
	}

	return c.surface, nil
}
