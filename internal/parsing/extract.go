// Package parsing extracts and validates the structured resume payload from
// raw model output.
package parsing

import (
	"regexp"
	"strings"
)

var (
	jsonFenceRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	anyFenceRe  = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// ExtractJSONPayload selects the JSON substring from a model response.
// Models often wrap the payload in a fenced code block surrounded by prose,
// so the search order is: a ```json fence, then any fence, then the raw text.
func ExtractJSONPayload(text string) string {
	if m := jsonFenceRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := anyFenceRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return strings.TrimSpace(text)
}
