package stderr

import (
	"fmt"
	"sort"
)

// formatMetaData flattens metadata into sorted "section.key: value" lines.
func formatMetaData(md map[string]any) []string {
	var lines []string
	flatten("", md, &lines)
	sort.Strings(lines)
	return lines
}

func flatten(prefix string, md map[string]any, lines *[]string) {
	for k, v := range md {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, lines)
			continue
		}
		*lines = append(*lines, fmt.Sprintf("%s: %v", key, v))
	}
}
