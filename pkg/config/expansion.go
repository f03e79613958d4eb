package config

import (
	"os"
	"regexp"

	"github.com/rs/zerolog/log"
)

// placeholderPattern matches {{NAME}} tokens. The name may contain letters,
// hyphens, underscores and dots.
var placeholderPattern = regexp.MustCompile(`(?i)\{\{([A-Za-z\-_.]+)\}\}`)

// LookupFunc resolves a placeholder name. It has the signature of os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// Placeholders returns the distinct placeholder names found in content, in the
// order they first appear. Names are case-sensitive: {{db_host}} and
// {{DB_HOST}} yield two names.
func Placeholders(content string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(content, -1)
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}

// Expand replaces every {{NAME}} placeholder in content with the value
// returned by lookup. Every name must resolve before anything is replaced; the
// first unresolved name is returned as a *MissingVariableError.
//
// Replacement is case-insensitive on the whole token, so once {{db_host}} is
// replaced with its value, {{DB_HOST}} in the same text is replaced with that
// same value. Names are processed in order of first appearance.
func Expand(content string, lookup LookupFunc) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	names := Placeholders(content)
	values := make([]string, len(names))
	for i, name := range names {
		value, ok := lookup(name)
		if !ok {
			return "", &MissingVariableError{Name: name}
		}
		values[i] = value
		log.Debug().Str("placeholder", name).Msg("Resolved placeholder from environment")
	}

	for i, name := range names {
		token := regexp.MustCompile(`(?i)\{\{` + regexp.QuoteMeta(name) + `\}\}`)
		content = token.ReplaceAllLiteralString(content, values[i])
	}
	return content, nil
}

// MissingVariableError reports a placeholder whose name is not set.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return "environment not set for " + e.Name
}
