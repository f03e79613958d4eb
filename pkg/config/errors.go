package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code identifies why a configuration file could not be loaded.
type Code int

const (
	// CodeIO means the file could not be opened or read.
	CodeIO Code = iota + 1
	// CodeMissingEnv means a placeholder names an unset environment variable.
	CodeMissingEnv
	// CodeParse means the substituted text is not valid in the selected format.
	CodeParse
)

func (c Code) String() string {
	switch c {
	case CodeIO:
		return "io"
	case CodeMissingEnv:
		return "missing environment variable"
	case CodeParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error is returned by Load for every failure.
type Error struct {
	Code Code
	// Path of the configuration file being loaded.
	Path string
	// Name of the missing variable, only set for CodeMissingEnv.
	Name string
	err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeMissingEnv:
		return fmt.Sprintf("config %s: environment not set for %s", e.Path, e.Name)
	default:
		if e.err == nil {
			return fmt.Sprintf("config %s: %s error", e.Path, e.Code)
		}
		return fmt.Sprintf("config %s: %s", e.Path, e.err.Error())
	}
}

// Unwrap returns the underlying I/O or parser error.
func (e *Error) Unwrap() error { return e.err }

// Cause implements the github.com/pkg/errors causer interface.
func (e *Error) Cause() error { return e.err }

// CodeOf returns the Code carried by err, or 0 when err is not a *Error.
func CodeOf(err error) Code {
	var cfgErr *Error
	if errors.As(err, &cfgErr) {
		return cfgErr.Code
	}
	return 0
}

func ioError(path string, err error) *Error {
	return &Error{Code: CodeIO, Path: path, err: errors.Wrap(err, "cannot read file")}
}

func missingEnvError(path, name string) *Error {
	return &Error{Code: CodeMissingEnv, Path: path, Name: name}
}

func parseError(path string, err error) *Error {
	return &Error{Code: CodeParse, Path: path, err: err}
}
