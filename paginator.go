package gopaginator

import (
	"strconv"

	"github.com/rs/zerolog"
)

// DefaultPage is the current page used when Config.CurrentPage is zero.
const DefaultPage = 1

// Config is the construction contract of a Paginator.
type Config struct {
	// Container references the surface to render into. Required.
	Container Container
	// TotalPages is the initial page count. Negative counts are treated as
	// zero.
	TotalPages int
	// CurrentPage is the initial page. Zero means DefaultPage. It is forced
	// to zero when there are no pages.
	CurrentPage int
	// OnPageChange is called with the new page after every accepted page
	// change. Nil means no notification.
	OnPageChange func(page int)
	// Labels overrides the texts drawn by surfaces. Empty means DefaultLabels.
	Labels Labels
	// Logger receives debug events. Nil disables logging.
	Logger *zerolog.Logger
}

// Paginator renders page-selector controls into a Surface and tracks the
// selected page. A Paginator is not safe for concurrent use.
type Paginator struct {
	surface      Surface
	totalPages   int
	currentPage  int
	onPageChange func(page int)
	pageClick    func(page int)
	labels       Labels
	listeners    []Listener
	log          zerolog.Logger
}

// New resolves the container, stores the initial state and renders once.
// The returned error matches ErrConfiguration.
func New(cfg Config) (*Paginator, error) {
	surface, err := cfg.Container.resolve()
	if err != nil {
		return nil, err
	}

	totalPages := max(0, cfg.TotalPages)
	currentPage := cfg.CurrentPage
	switch {
	case totalPages == 0:
		currentPage = 0
	case currentPage == 0:
		currentPage = DefaultPage
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("component", "paginator").Logger()
	}

	p := &Paginator{
		surface:      surface,
		totalPages:   totalPages,
		currentPage:  currentPage,
		onPageChange: cfg.OnPageChange,
		labels:       cfg.Labels.orDefault(),
		log:          log,
	}
	p.render()

	return p, nil
}

// render rebuilds the whole strip and rebinds every interactive control.
func (p *Paginator) render() {
	p.detach()
	p.surface.Clear()

	strip := Layout(p.totalPages, p.currentPage, p.labels)
	if strip.Empty() {
		p.log.Debug().Int("total", p.totalPages).Msg("nothing to render")
		return
	}

	p.surface.Draw(strip)

	for _, control := range p.surface.Controls() {
		p.listeners = append(p.listeners, control.OnClick(func(e *ClickEvent) {
			p.handleClick(e, control)
		}))
	}

	p.log.Debug().
		Int("page", p.currentPage).
		Int("total", p.totalPages).
		Int("controls", len(p.listeners)).
		Msg("rendered")
}

func (p *Paginator) handleClick(e *ClickEvent, control Control) {
	e.PreventDefault()

	raw, _ := control.Attr(AttrTargetPage)
	page, err := strconv.Atoi(raw)
	if err != nil {
		p.log.Debug().Str("target", raw).Msg("ignoring click on control without target page")
		return
	}

	if p.pageClick != nil {
		p.pageClick(page)
	}

	if page != p.currentPage {
		p.SetPage(page)
	}
}

func (p *Paginator) detach() {
	for _, l := range p.listeners {
		l.Detach()
	}
	p.listeners = nil
}

// SetPage selects page and re-renders. Pages outside [1, TotalPages()] are
// ignored.
func (p *Paginator) SetPage(page int) {
	if page < 1 || page > p.totalPages {
		p.log.Debug().Int("page", page).Int("total", p.totalPages).Msg("ignoring out of range page")
		return
	}

	p.currentPage = page
	if p.onPageChange != nil {
		p.onPageChange(page)
	}
	p.render()
}

// SelectPageByID is an alias of SetPage.
func (p *Paginator) SelectPageByID(pageID int) {
	p.SetPage(pageID)
}

// UpdateTotalPages changes the page count. When the current page no longer
// exists it is clamped to the new last page through SetPage. A count of zero
// resets the current page to zero and leaves the surface empty.
func (p *Paginator) UpdateTotalPages(totalPages int) {
	p.totalPages = max(0, totalPages)

	switch {
	case p.totalPages == 0:
		p.currentPage = 0
		p.render()
	case p.currentPage > p.totalPages:
		p.SetPage(p.totalPages)
	default:
		if p.currentPage < 1 {
			p.currentPage = DefaultPage
		}
		p.render()
	}
}

// CurrentPage returns the selected page.
func (p *Paginator) CurrentPage() int {
	return p.currentPage
}

// TotalPages returns the page count.
func (p *Paginator) TotalPages() int {
	return p.totalPages
}

// Click registers fn to be called with the target page of every activated
// control, before the page changes. It replaces any previous registration;
// nil unregisters.
func (p *Paginator) Click(fn func(page int)) {
	p.pageClick = fn
}

// Destroy detaches every click listener, clears the surface and resets the
// state. The Paginator must not be used afterwards, except for reading
// CurrentPage and TotalPages.
func (p *Paginator) Destroy() {
	p.detach()
	if p.surface != nil {
		p.surface.Clear()
	}

	p.surface = nil
	p.totalPages = 0
	p.currentPage = 0
	p.onPageChange = nil
	p.pageClick = nil

	p.log.Debug().Msg("destroyed")
}
