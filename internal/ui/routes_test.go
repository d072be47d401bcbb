package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"/", Route{Kind: RouteHome}},
		{"", Route{Kind: RouteHome}},
		{"/movie/550", Route{Kind: RouteMovie, ID: 550}},
		{"/movie/550/", Route{Kind: RouteMovie, ID: 550}},
		{"/genre/28?page=2", Route{Kind: RouteGenre, ID: 28}},
		{"/search", Route{Kind: RouteSearch}},
		{"/search#top", Route{Kind: RouteSearch}},
		{"/menu", Route{Kind: RouteMenu}},
		{"/privacy", Route{Kind: RoutePage, Slug: "privacy"}},
		{"/dmca", Route{Kind: RoutePage, Slug: "dmca"}},
		{"/movie/abc", Route{Kind: RouteHome}},
		{"/movie/0", Route{Kind: RouteHome}},
		{"/movie/-3", Route{Kind: RouteHome}},
		{"/tv/1", Route{Kind: RouteHome}},
		{"/nowhere", Route{Kind: RouteHome}},
		{"/movie/1/credits", Route{Kind: RouteHome}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRoute(tt.path))
		})
	}
}

func TestRouteString_ParsesBack(t *testing.T) {
	routes := []Route{
		{Kind: RouteHome},
		{Kind: RouteMovie, ID: 42},
		{Kind: RouteGenre, ID: 878},
		{Kind: RouteSearch},
		{Kind: RouteMenu},
		{Kind: RoutePage, Slug: "about"},
	}
	for _, r := range routes {
		assert.Equal(t, r, ParseRoute(r.String()), r.String())
	}
}
