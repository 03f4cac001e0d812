// Package gopaginator provides a page-selector widget that renders into a
// caller supplied display surface.
//
// Overview
//
// A Paginator owns a Surface and a (total pages, current page) pair. Every
// state change rebuilds the whole control strip:
//   - a status line with the current page and the total;
//   - previous/next controls, disabled on the first/last page;
//   - a window of up to five pages around the current one;
//   - shortcuts to the first and last page with ellipsis markers when the
//     window does not reach them.
//
// Key concepts
//   - Surface: the display region. HTMLSurface renders Bootstrap compatible
//     markup over golang.org/x/net/html nodes, package tui renders to a
//     terminal.
//   - Resolver: looks a surface up by id. HTMLDocument resolves element ids
//     of a parsed document.
//   - PageQuery: applies the paginator's current page to a GORM query as
//     LIMIT/OFFSET, and CountPages/SyncTotalPages derive the page count.
package gopaginator
