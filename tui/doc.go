// Package tui renders a gopaginator.Paginator in a terminal.
//
// Surface implements gopaginator.Surface by keeping the last drawn strip and
// rendering it with lipgloss. Model is a Bubble Tea model that moves a focus
// cursor across the surface's controls and activates the focused one, which
// goes through the paginator's regular click handling.
package tui
