package atlasc

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies an abstract pipeline failure category.
type Kind int

const (
	// FileNotFound means an input image path does not exist or isn't readable.
	FileNotFound Kind = iota
	// ImageDecodeFailed means the image codec could not parse an input file.
	ImageDecodeFailed
	// EmptySprite means no opaque pixel was found in a sprite.
	EmptySprite
	// DegenerateSprite means the traced outline had zero width or height.
	DegenerateSprite
	// PackOverflow means at least one sprite rectangle did not fit the sheet.
	PackOverflow
	// OutOfMemory means a buffer allocation failed.
	OutOfMemory
	// ImageEncodeFailed means the sheet PNG could not be encoded.
	ImageEncodeFailed
	// DescriptorWriteFailed means the sidecar JSON could not be written.
	DescriptorWriteFailed
)

func (k Kind) String() string {
	switch k {
	case FileNotFound:
		return "FILE_NOT_FOUND"
	case ImageDecodeFailed:
		return "IMAGE_DECODE_FAILED"
	case EmptySprite:
		return "EMPTY_SPRITE"
	case DegenerateSprite:
		return "DEGENERATE_SPRITE"
	case PackOverflow:
		return "PACK_OVERFLOW"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case ImageEncodeFailed:
		return "IMAGE_ENCODE_FAILED"
	case DescriptorWriteFailed:
		return "DESCRIPTOR_WRITE_FAILED"
	default:
		return "UNKNOWN"
	}
}

// Error is a single fatal pipeline error, keyed to the sprite path that
// triggered it where applicable. The driver halts on the first one.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// newError builds an *Error, wrapping cause with github.com/pkg/errors so a
// stack trace is captured at the point of failure.
func newError(kind Kind, path string, cause error) *Error {
	return &Error{Kind: kind, Path: path, Err: errors.WithStack(cause)}
}

// newErrorf builds an *Error from a formatted message with no underlying cause.
func newErrorf(kind Kind, path, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Path: path, Err: errors.Errorf(format, args...)}
}
