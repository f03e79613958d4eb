// Package config loads launch configuration files. A file is plain JSON or
// TOML text that may contain {{NAME}} placeholders; every placeholder is
// replaced with the value of the environment variable NAME before the text is
// parsed, so values are spliced in as raw text.
//
// Files whose extension is .json (any case) are parsed as JSON, anything else
// as TOML.
package config

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Format is the syntax a configuration file is parsed with.
type Format string

const (
	// FormatJSON is used for files with a .json extension.
	FormatJSON Format = "json"
	// FormatTOML is used for every other file.
	FormatTOML Format = "toml"
)

// FormatOf selects the format for path from its extension.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatTOML
}

// Load reads the file at path, substitutes {{NAME}} placeholders from the
// process environment and parses the result. All failures are returned as
// *Error; no partial document is ever returned.
func Load(path string) (Value, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup LookupFunc) (Value, error) {
	// #nosec G304 -- reading a caller supplied configuration file is the point
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, ioError(path, err)
	}

	content, err := Expand(string(data), lookup)
	if err != nil {
		var missing *MissingVariableError
		if errors.As(err, &missing) {
			return Value{}, missingEnvError(path, missing.Name)
		}
		return Value{}, errors.Wrapf(err, "error expanding %q", path)
	}

	doc, err := Parse(path, []byte(content))
	if err != nil {
		return Value{}, err
	}

	log.Debug().Str("file", path).Str("format", string(FormatOf(path))).Msg("Loaded configuration")
	return doc, nil
}

// Parse decodes already substituted content in the format selected by the
// extension of path. Failures are returned as *Error with CodeParse.
func Parse(path string, content []byte) (Value, error) {
	var (
		doc Value
		err error
	)
	switch FormatOf(path) {
	case FormatJSON:
		doc, err = parseJSON(content)
	default:
		doc, err = parseTOML(content)
	}
	if err != nil {
		return Value{}, parseError(path, err)
	}
	return doc, nil
}

func parseJSON(content []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, describeJSONError(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, errors.Errorf("invalid JSON: unexpected data after top-level value at offset %d", dec.InputOffset())
	}
	return fromDecoded(raw)
}

func describeJSONError(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return errors.Wrapf(err, "invalid JSON at offset %d", syntaxErr.Offset)
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrap(err, "invalid JSON: unexpected end of input")
	}
	return errors.Wrap(err, "invalid JSON")
}

func parseTOML(content []byte) (Value, error) {
	var raw map[string]any
	if err := toml.Unmarshal(content, &raw); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return Value{}, errors.Wrapf(err, "invalid TOML at line %d, column %d", row, col)
		}
		return Value{}, errors.Wrap(err, "invalid TOML")
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return fromDecoded(raw)
}

// fromDecoded converts the output of encoding/json (with UseNumber) or
// go-toml into a Value.
func fromDecoded(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Value{}, errors.Wrapf(err, "invalid number %q", x.String())
		}
		return Float(f), nil
	case int64:
		return Int(x), nil
	case float64:
		return Float(x), nil
	case time.Time:
		return String(x.Format(time.RFC3339Nano)), nil
	case toml.LocalDate:
		return String(x.String()), nil
	case toml.LocalTime:
		return String(x.String()), nil
	case toml.LocalDateTime:
		return String(x.String()), nil
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			v, err := fromDecoded(item)
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return Value{kind: KindSequence, seq: items}, nil
	case map[string]any:
		entries := make(map[string]Value, len(x))
		for k, item := range x {
			v, err := fromDecoded(item)
			if err != nil {
				return Value{}, errors.Wrapf(err, "key %q", k)
			}
			entries[k] = v
		}
		return Value{kind: KindMapping, mapping: entries}, nil
	default:
		return Value{}, errors.Errorf("unsupported value of type %T", raw)
	}
}
