package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScreen struct {
	title  string
	closed int
}

func (s *fakeScreen) Title() string              { return s.title }
func (s *fakeScreen) Route() Route               { return Route{Kind: RouteHome} }
func (s *fakeScreen) Init() tea.Cmd              { return nil }
func (s *fakeScreen) Update(msg tea.Msg) tea.Cmd { return nil }
func (s *fakeScreen) View(f frame) string        { return s.title }
func (s *fakeScreen) Commands() []command        { return nil }
func (s *fakeScreen) Close()                     { s.closed++ }

func TestRouter_PushPop(t *testing.T) {
	var r Router
	root := &fakeScreen{title: "Home"}
	child := &fakeScreen{title: "Heat"}

	r.Push(root)
	r.Push(child)
	assert.Equal(t, 2, r.Depth())
	assert.True(t, r.CanGoBack())
	assert.Equal(t, []string{"Home", "Heat"}, r.Breadcrumbs())

	top := r.Pop()
	require.NotNil(t, top)
	assert.Same(t, root, top)
	assert.Equal(t, 1, child.closed)
	assert.Equal(t, 0, root.closed)
}

func TestRouter_PopKeepsRoot(t *testing.T) {
	var r Router
	root := &fakeScreen{title: "Home"}
	r.Push(root)

	assert.Nil(t, r.Pop())
	assert.Equal(t, 1, r.Depth())
	assert.False(t, r.CanGoBack())
	assert.Equal(t, 0, root.closed)
}

func TestRouter_ReplaceClosesOld(t *testing.T) {
	var r Router
	root := &fakeScreen{title: "Home"}
	a := &fakeScreen{title: "Action"}
	b := &fakeScreen{title: "Drama"}
	r.Push(root)
	r.Push(a)

	r.Replace(b)
	assert.Equal(t, 2, r.Depth())
	assert.Same(t, b, r.Current())
	assert.Equal(t, 1, a.closed)
}

func TestRouter_ReplaceOnEmptyPushes(t *testing.T) {
	var r Router
	s := &fakeScreen{title: "Home"}
	r.Replace(s)
	assert.Same(t, s, r.Current())
}

func TestRouter_PopToRootAndCloseAll(t *testing.T) {
	var r Router
	screens := []*fakeScreen{{title: "Home"}, {title: "Search"}, {title: "Heat"}}
	for _, s := range screens {
		r.Push(s)
	}

	root := r.PopToRoot()
	assert.Same(t, screens[0], root)
	assert.Equal(t, 1, screens[1].closed)
	assert.Equal(t, 1, screens[2].closed)

	r.CloseAll()
	assert.Equal(t, 0, r.Depth())
	assert.Nil(t, r.Current())
	assert.Equal(t, 1, screens[0].closed)
}
