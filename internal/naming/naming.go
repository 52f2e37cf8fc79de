// Package naming derives a plausible file name from raw block content.
package naming

import "regexp"

var (
	functionRe = regexp.MustCompile(`function\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*\(`)
	classRe    = regexp.MustCompile(`class\s+([A-Za-z_$][A-Za-z0-9_$]*)[\s{]`)
)

// Derive inspects content for a function or class declaration and returns
// "<Identifier>.jsx" for the first one found. Function declarations win over
// class declarations. Returns ok=false when neither matches; the caller is
// expected to supply a generated fallback name.
func Derive(content string) (string, bool) {
	if m := functionRe.FindStringSubmatch(content); m != nil {
		return m[1] + ".jsx", true
	}
	if m := classRe.FindStringSubmatch(content); m != nil {
		return m[1] + ".jsx", true
	}
	return "", false
}
