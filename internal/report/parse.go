package report

import (
	"encoding/json"
	"strings"
)

// ParseError reports that model output could not be parsed into an
// AnalysisReport. Raw preserves the original text for diagnostics and for
// the 422 response contract; it must never be shown to end users directly.
type ParseError struct {
	Raw string
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return "model output is not a valid analysis report: " + e.Err.Error()
	}
	return "model output is not a valid analysis report"
}

// Unwrap exposes the underlying JSON error.
func (e *ParseError) Unwrap() error { return e.Err }

// Extract parses raw model output into an AnalysisReport.
//
// Models frequently wrap JSON in a markdown code fence (``` or ```json);
// when a fenced block is present its inner text is parsed, otherwise the
// whole trimmed input is. Fence stripping is content-preserving: fenced and
// unfenced renditions of the same JSON decode to equal reports.
//
// There is no partial recovery. Any unmarshal failure yields a *ParseError
// carrying the original text.
func Extract(raw string) (*AnalysisReport, error) {
	jsonStr := strings.TrimSpace(stripFence(raw))

	var r AnalysisReport
	if err := json.Unmarshal([]byte(jsonStr), &r); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	return &r, nil
}

// stripFence returns the body of the first triple-backtick code block in s,
// or s unchanged when no complete fence is found. An optional language tag
// on the opening fence (e.g. "json") is discarded.
func stripFence(s string) string {
	start := strings.Index(s, "```")
	if start < 0 {
		return s
	}
	body := s[start+3:]

	// Drop a language tag: everything up to the first newline, provided it
	// looks like a bare identifier rather than content.
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		tag := strings.TrimSpace(body[:nl])
		if tag == "" || isFenceTag(tag) {
			body = body[nl+1:]
		}
	}

	end := strings.Index(body, "```")
	if end < 0 {
		// Unterminated fence: treat the input as unfenced.
		return s
	}
	return body[:end]
}

// isFenceTag reports whether s is a plausible code-fence language tag.
func isFenceTag(s string) bool {
	if len(s) > 16 {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
