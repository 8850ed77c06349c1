package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, lowercased, the HTTP headers that carry
// credentials. Loggers redact attributes with these names, and the request
// logging middleware blanks the same headers.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// Attribute names whose values are always redacted.
var (
	redactedNames    = []string{"password", "secret", "token", "dsn"}
	redactedPrefixes = []string{"secret_", "api_key"}
)

// redactedValues catch credentials logged under an innocent name.
var redactedValues = []*regexp.Regexp{
	// Bearer tokens.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs. Ten characters per segment keeps version strings out.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// Inline api_key=... or apikey: ...
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// Userinfo in postgres:// and redis:// URLs.
	regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.\-]*://[^\s/@:]*:[^\s/@]+@`),
}

// newRedactAttr builds the masq ReplaceAttr hook installed by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(redactedNames)+len(redactedPrefixes)+len(redactedValues))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range redactedNames {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range redactedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range redactedValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
