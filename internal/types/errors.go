package types

import "fmt"

// SourceError attributes a failure to the input that caused it. Source is
// the literal requirement string or the file path, optionally suffixed
// with ":<line>".
type SourceError struct {
	Kind   ErrorKind
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s error in %s: %v", e.Kind, e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
