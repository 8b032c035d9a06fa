package models

import "fmt"

// ParseError reports an unreadable or malformed input file.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse error: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EmptyDatasetError reports a file that parsed but holds no usable data.
type EmptyDatasetError struct {
	Rows    int
	Columns int
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("empty dataset: %d rows, %d columns", e.Rows, e.Columns)
}

// RenderError reports a chart image generation failure.
type RenderError struct {
	Chart string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error: %s: %v", e.Chart, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// CompositionError reports a document assembly failure.
type CompositionError struct {
	Err error
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("composition error: %v", e.Err)
}

func (e *CompositionError) Unwrap() error { return e.Err }
