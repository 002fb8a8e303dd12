package binding

import "strings"

// ParseAttrs extracts the view selector and raw option sources from a
// markup attribute map using the marker convention:
//
//	<marker>="ViewName"                      selects a view definition
//	<marker>-<option>="<keypath-or-literal>" supplies an option value
//
// ok is false when the marker attribute itself is absent, in which case
// the remaining results are empty. Option attributes with an empty name
// suffix ("<marker>-") are ignored.
func ParseAttrs(marker string, attrs map[string]string) (view string, options map[string]string, ok bool) {
	view, ok = attrs[marker]
	if !ok {
		return "", nil, false
	}

	prefix := marker + "-"
	options = make(map[string]string)
	for key, value := range attrs {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name := key[len(prefix):]
		if name == "" {
			continue
		}
		options[name] = value
	}
	return view, options, true
}
