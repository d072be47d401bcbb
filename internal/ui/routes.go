package ui

import (
	"strconv"
	"strings"

	"github.com/five82/marquee/internal/pages"
)

// RouteKind identifies a screen.
type RouteKind int

const (
	RouteHome RouteKind = iota
	RouteMovie
	RouteGenre
	RouteSearch
	RoutePage
	RouteMenu
)

// Route is a parsed navigation target.
type Route struct {
	Kind RouteKind
	ID   int    // movie or genre id
	Slug string // static page slug
}

// ParseRoute resolves a path against the route table. Anything that does
// not match, including a malformed id, routes home.
func ParseRoute(path string) Route {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })

	switch len(parts) {
	case 1:
		switch parts[0] {
		case "search":
			return Route{Kind: RouteSearch}
		case "menu":
			return Route{Kind: RouteMenu}
		}
		if p, ok := pages.Lookup(parts[0]); ok && p.Slug == parts[0] {
			return Route{Kind: RoutePage, Slug: p.Slug}
		}
	case 2:
		id, err := strconv.Atoi(parts[1])
		if err != nil || id <= 0 {
			break
		}
		switch parts[0] {
		case "movie":
			return Route{Kind: RouteMovie, ID: id}
		case "genre":
			return Route{Kind: RouteGenre, ID: id}
		}
	}
	return Route{Kind: RouteHome}
}

// String renders the route as a path.
func (r Route) String() string {
	switch r.Kind {
	case RouteMovie:
		return "/movie/" + strconv.Itoa(r.ID)
	case RouteGenre:
		return "/genre/" + strconv.Itoa(r.ID)
	case RouteSearch:
		return "/search"
	case RoutePage:
		return "/" + r.Slug
	case RouteMenu:
		return "/menu"
	default:
		return "/"
	}
}
