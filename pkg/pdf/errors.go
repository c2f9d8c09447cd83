package pdf

import (
	"errors"
	"fmt"
)

// Kind classifies render failures. The set is closed.
type Kind string

const (
	KindInvalidPath Kind = "invalid_path"
	KindLayout      Kind = "layout"
	KindIO          Kind = "io"
)

var (
	// ErrInvalidPath matches errors caused by an unusable destination path.
	ErrInvalidPath = errors.New("pdf: invalid destination path")
	// ErrLayout matches errors raised while building or drawing the page.
	ErrLayout = errors.New("pdf: layout failed")
	// ErrIO matches errors raised while writing the document.
	ErrIO = errors.New("pdf: write failed")
)

// Error reports a failed render. Callers show Error() to the user verbatim and
// use errors.Is with the Err* sentinels when they need the kind.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidPath:
		return e.Kind == KindInvalidPath
	case ErrLayout:
		return e.Kind == KindLayout
	case ErrIO:
		return e.Kind == KindIO
	}
	return false
}

// KindOf returns the kind of a render error, or "" for foreign errors.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return ""
}

func invalidPath(path, format string, args ...any) error {
	return &Error{Kind: KindInvalidPath, Op: "destination", Path: path, Err: fmt.Errorf(format, args...)}
}

func layoutError(op string, err error) error {
	return &Error{Kind: KindLayout, Op: op, Err: err}
}

func ioError(op, path string, err error) error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}
