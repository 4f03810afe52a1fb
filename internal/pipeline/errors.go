// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"errors"
	"fmt"
)

// Kind is the category of a pipeline error, which decides whether
// it stops the whole run or just the image it happened to.
type Kind int

const (
	// KindSetup means the run could not start, e.g. the input
	// directory is missing or empty. Fatal to the run.
	KindSetup Kind = iota + 1
	// KindDecode means a file could not be read as an image.
	KindDecode
	// KindDetection means no circle was found in an image.
	KindDetection
	// KindGeometry means a decoded image could not be searched for
	// a circle, or the circle found could not be cropped or scaled.
	KindGeometry
	// KindWrite means a document could not be created or saved.
	// Fatal to the run.
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindSetup:
		return "setup"
	case KindDecode:
		return "decode"
	case KindDetection:
		return "detection"
	case KindGeometry:
		return "geometry"
	case KindWrite:
		return "write"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Fatal reports whether errors of this kind stop the whole run,
// rather than just causing one image to be skipped.
func (k Kind) Fatal() bool {
	return k == KindSetup || k == KindWrite
}

// Error is an error from processing, with the file it relates to,
// if any.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error with %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(k Kind, path string, err error) *Error {
	return &Error{Kind: k, Path: path, Err: err}
}

// IsKind reports whether err is, or wraps, an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}

// ErrNoCircle is wrapped by detection errors.
var ErrNoCircle = errors.New("no circle detected")
