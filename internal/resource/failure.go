package resource

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrFetchFailed matches every Failure via errors.Is.
var ErrFetchFailed = errors.New("fetch failed")

// Kind records why a fetch failed. Screens render all kinds the same way;
// the kind is kept for logs and tests.
type Kind int

const (
	KindTransport Kind = iota // network, DNS, timeout, cancellation
	KindHTTP                  // non-2xx response
	KindParse                 // undecodable payload or missing required fields
	KindInvalid               // request rejected before it was sent
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTP:
		return "http"
	case KindParse:
		return "parse"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Kinder is implemented by errors that know their own failure kind.
type Kinder interface {
	FetchKind() Kind
}

// Failure is the normalized error stored in a Failed state.
type Failure struct {
	Kind    Kind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Message == "" {
		return ErrFetchFailed.Error()
	}
	return f.Message
}

func (f *Failure) Unwrap() error { return f.Err }

// Is makes every Failure match ErrFetchFailed.
func (f *Failure) Is(target error) bool {
	return target == ErrFetchFailed
}

// Classify normalizes err into a Failure. A nil err yields nil.
func Classify(err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{Kind: kindOf(err), Message: err.Error(), Err: err}
}

// kindOf falls back to KindTransport for anything that is neither
// self-describing nor a JSON decoding error.
func kindOf(err error) Kind {
	var k Kinder
	if errors.As(err, &k) {
		return k.FetchKind()
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return KindParse
	}
	return KindTransport
}

func panicFailure(v any) *Failure {
	return &Failure{
		Kind:    KindTransport,
		Message: fmt.Sprintf("loader panicked: %v", v),
		Err:     fmt.Errorf("%w: loader panic: %v", ErrFetchFailed, v),
	}
}
