package render

import (
	"sort"
	"strconv"
	"strings"

	"NestorAI/app/dal/lead"
)

// Placeholder marks a field whose value is empty or unrecognized. A displayed
// field never renders blank.
const Placeholder = "—"

// DecodeField resolves one tagged value into a display label and value.
// A nested {label, value} pair supplies its own label; otherwise the field
// identifier is the label. Decoding never fails: any shape it does not
// recognize resolves to the placeholder.
func DecodeField(fieldId string, v lead.Value) (label, display string) {
	label = fieldId

	if v.Map != nil && v.Map.Fields != nil {
		f := v.Map.Fields
		_, hasLabel := f["label"]
		_, hasValue := f["value"]
		if hasLabel || hasValue {
			if lv := f["label"]; lv.String != nil && strings.TrimSpace(*lv.String) != "" {
				label = *lv.String
			}
			return label, renderValue(f["value"])
		}
	}

	return label, renderValue(v)
}

// renderValue resolves a tagged value to display text, first match wins:
// text, sequence, sub-answer group, integer, double, boolean, placeholder.
func renderValue(v lead.Value) string {
	switch {
	case v.String != nil:
		if s := strings.TrimSpace(*v.String); s != "" {
			return s
		}
		return Placeholder
	case v.Array != nil:
		parts := make([]string, 0, len(v.Array.Values))
		for _, elem := range v.Array.Values {
			if s := scalarText(elem); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return Placeholder
		}
		return strings.Join(parts, ", ")
	case v.Map != nil:
		return renderGroup(v.Map.Fields)
	case v.Integer != nil:
		return strconv.FormatInt(*v.Integer, 10)
	case v.Double != nil:
		return strconv.FormatFloat(*v.Double, 'f', -1, 64)
	case v.Bool != nil:
		return yesNo(*v.Bool)
	}
	return Placeholder
}

// renderGroup collects the text of each sub-answer of a grouped input, in
// stable key order.
func renderGroup(fields map[string]lead.Value) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		member := fields[k]
		if member.Map != nil && member.Map.Fields != nil {
			if inner, ok := member.Map.Fields["value"]; ok {
				if s := scalarText(inner); s != "" {
					parts = append(parts, s)
				}
				continue
			}
		}
		if s := scalarText(member); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, ", ")
}

// scalarText renders a scalar element, or "" when there is nothing to show.
func scalarText(v lead.Value) string {
	switch {
	case v.String != nil:
		return strings.TrimSpace(*v.String)
	case v.Integer != nil:
		return strconv.FormatInt(*v.Integer, 10)
	case v.Double != nil:
		return strconv.FormatFloat(*v.Double, 'f', -1, 64)
	case v.Bool != nil:
		return yesNo(*v.Bool)
	}
	return ""
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
