package utils

import (
	"fmt"
	"strings"
)

// ExtractJSON pulls the JSON payload out of a model response. Responses often
// arrive wrapped in a markdown fence; if a ```json ... ``` pair is present the
// fenced body is used, otherwise the whole trimmed text is assumed to be JSON.
// An empty result is an error, never an empty itinerary.
func ExtractJSON(raw string) (string, error) {
	fenceStart := strings.Index(raw, "```json")
	fenceEnd := strings.LastIndex(raw, "```")

	var cleaned string
	if fenceStart != -1 && fenceEnd != -1 && fenceStart+len("```json") <= fenceEnd {
		cleaned = strings.TrimSpace(raw[fenceStart+len("```json") : fenceEnd])
	} else {
		cleaned = strings.TrimSpace(raw)
	}

	if cleaned == "" {
		return "", fmt.Errorf("model returned an empty or unparseable text response")
	}

	return cleaned, nil
}
