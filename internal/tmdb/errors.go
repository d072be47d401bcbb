package tmdb

import (
	"errors"
	"fmt"

	"github.com/five82/marquee/internal/resource"
)

// ErrEmptyQuery is returned by SearchMovies when the query is blank.
var ErrEmptyQuery = errors.New("search query required")

// ArgumentError reports a request rejected before it was sent.
type ArgumentError struct {
	Name  string
	Value int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %d", e.Name, e.Value)
}

// FetchKind implements resource.Kinder.
func (e *ArgumentError) FetchKind() resource.Kind { return resource.KindInvalid }

// TransportError wraps network, DNS, TLS and timeout failures.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// FetchKind implements resource.Kinder.
func (e *TransportError) FetchKind() resource.Kind { return resource.KindTransport }

// HTTPError reports a non-2xx response. Code and Message come from the
// TMDB error envelope when one is present.
type HTTPError struct {
	Path    string
	Status  int
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Status)
}

// FetchKind implements resource.Kinder.
func (e *HTTPError) FetchKind() resource.Kind { return resource.KindHTTP }

// ParseError reports an undecodable body or a payload missing a field the
// screens rely on.
type ParseError struct {
	Path  string
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s: missing %s", e.Path, e.Field)
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FetchKind implements resource.Kinder.
func (e *ParseError) FetchKind() resource.Kind { return resource.KindParse }
