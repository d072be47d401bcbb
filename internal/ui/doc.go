// Package ui provides the Bubble Tea terminal interface for marquee.
//
// # Architecture Overview
//
// Model is the root tea.Model. It owns a Router, a stack of screens with
// Home at the bottom. Opening something pushes a screen, going back pops
// it, and popping closes the screen, which cancels its in-flight load.
//
// Each screen that fetches owns one resource.Resource and renders from its
// State snapshot. Loads run as tea.Cmds; when one settles the resource
// emits resource.UpdatedMsg, which the Model hands to every screen on the
// stack. A result that arrives for a key the screen has moved away from is
// dropped inside the resource, so screens never see it.
//
// # Package Structure
//
//   - app.go: Model, global key handling, navigation and Run
//   - router.go, routes.go: the screen stack and route parsing
//   - home.go, genre.go, search.go, detail.go, page.go, menu.go: screens
//   - list.go: the selectable movie list shared by home, genre and search
//   - status.go: loading, failure and empty placeholders
//   - header.go, help.go: header, command bar and help overlay
//   - theme.go, style_helpers.go: colors and background-safe rendering
//
// # Routes
//
//	/              home (trending and top rated)
//	/movie/{id}    movie details with cast and crew
//	/genre/{id}    discover by genre
//	/search        title search with a genre filter
//	/menu          every genre and page
//	/about, /contact, /privacy, /terms, /dmca
//
// Anything else opens home.
//
// # Key Bindings
//
//   - 1-6: Header genres
//   - /: Search
//   - m: Menu
//   - H: Home
//   - esc or backspace: Back
//   - r: Retry the current load
//   - T: Cycle theme (saved to preferences)
//   - ?: Help
//   - q or Ctrl+C: Exit
//
// While the search box has focus every key goes to it except Ctrl+C.
package ui
