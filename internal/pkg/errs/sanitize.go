package errs

import "strings"

// sanitize strips line breaks from formatted error messages so that a single
// error always occupies a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
