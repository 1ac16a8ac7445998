package services

import "strings"

var htmlBodyMarkers = []string{"<head>", "<body>"}

// ValidateModelReply rejects replies that are empty or that look like an HTML
// error page returned by the upstream instead of generated text.
func ValidateModelReply(reply string) error {
	trimmed := strings.TrimSpace(reply)
	if trimmed == "" {
		return NewEmptyModelReplyError()
	}

	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html") {
		return NewUnexpectedHTMLReplyError()
	}
	for _, marker := range htmlBodyMarkers {
		if strings.Contains(lower, marker) {
			return NewUnexpectedHTMLReplyError()
		}
	}

	return nil
}
