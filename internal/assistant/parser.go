package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// Product references are tagged in model output as [PRODUCT:123],
// placed directly after the recommended item's display name. Markers
// with a non-numeric payload are not matched and pass through as
// ordinary prose: the model is an untrusted text generator, and the
// parser extracts whatever valid markers exist rather than rejecting
// non-compliant output. The optional leading space keeps "Name [PRODUCT:1]"
// from turning into "Name " when the marker is removed.
var productMarkerRe = regexp.MustCompile(` ?\[PRODUCT:(\d+)\]`)

// ParseProducts extracts product references from raw model output.
// It returns the referenced identifiers in first-occurrence order
// (duplicates kept, mirroring the order the assistant discussed the
// items) and the display text with every marker removed along with the
// space in front of it. All other prose and formatting is left alone:
// text without markers comes back as the trimmed input, unchanged.
func ParseProducts(raw string) ([]uint, string) {
	var ids []uint
	for _, m := range productMarkerRe.FindAllStringSubmatch(raw, -1) {
		id, err := strconv.ParseUint(m[1], 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	display := productMarkerRe.ReplaceAllString(raw, "")
	return ids, strings.TrimSpace(display)
}
