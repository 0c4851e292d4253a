package render

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"NestorAI/app/dal/lead"
)

// Reserved field identifiers excluded from display.
const (
	FieldTimestamp = "timestamp"
	FieldFormRef   = "formId"
)

// LeadHTML renders every displayable field of a lead as an HTML fragment.
// The stored field mapping carries no order, so fields are emitted in sorted
// identifier order to keep emails deterministic.
func LeadHTML(fields map[string]lead.Value) string {
	ids := make([]string, 0, len(fields))
	for id := range fields {
		if id == FieldTimestamp || id == FieldFormRef {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	for _, id := range ids {
		label, value := DecodeField(id, fields[id])
		sb.WriteString(fmt.Sprintf("<p><strong>%s:</strong> %s</p>",
			html.EscapeString(label), html.EscapeString(value)))
	}
	return sb.String()
}

// FormRef extracts the form reference from the raw field mapping, whatever
// scalar shape it was submitted in. Empty when absent.
func FormRef(fields map[string]lead.Value) string {
	v, ok := fields[FieldFormRef]
	if !ok {
		return ""
	}
	switch {
	case v.String != nil:
		return strings.TrimSpace(*v.String)
	case v.Integer != nil:
		return strconv.FormatInt(*v.Integer, 10)
	case v.Double != nil:
		return strconv.FormatFloat(*v.Double, 'f', -1, 64)
	case v.Bool != nil:
		return strconv.FormatBool(*v.Bool)
	}
	return ""
}
