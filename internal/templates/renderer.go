package templates

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Token delimiters. A token named T appears in templates as "{{T}}".
const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// tokenPattern matches the delimited form of any well-formed token.
var tokenPattern = regexp.MustCompile(`\{\{([A-Z][A-Z0-9_]*)\}\}`)

// Context maps bare token names to substitution values. It need not
// cover every token a template references.
type Context map[string]string

// Delimited returns the form of token as it appears in template text.
func Delimited(token string) string {
	return openDelim + token + closeDelim
}

// Validate checks that every token name is non-empty and free of
// delimiter characters. Together with the fixed delimiters this keeps any
// delimited form from being a substring of another, so the order in
// which tokens are replaced never matters.
func (c Context) Validate() error {
	for token := range c {
		if token == "" {
			return fmt.Errorf("empty token name")
		}
		if strings.ContainsAny(token, "{}") {
			return fmt.Errorf("token %q contains a delimiter character", token)
		}
	}
	return nil
}

// Merge returns a new context holding c overlaid with other.
func (c Context) Merge(other Context) Context {
	out := make(Context, len(c)+len(other))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Render replaces every occurrence of every delimited token present in
// ctx. Tokens absent from ctx are left verbatim. No escaping is applied
// to values.
func Render(raw string, ctx Context) string {
	if len(ctx) == 0 {
		return raw
	}

	tokens := make([]string, 0, len(ctx))
	for token := range ctx {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	pairs := make([]string, 0, 2*len(tokens))
	for _, token := range tokens {
		pairs = append(pairs, Delimited(token), ctx[token])
	}
	return strings.NewReplacer(pairs...).Replace(raw)
}

// Tokens lists the distinct tokens referenced by raw, sorted.
func Tokens(raw string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, m := range tokenPattern.FindAllStringSubmatch(raw, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			tokens = append(tokens, m[1])
		}
	}
	sort.Strings(tokens)
	return tokens
}
