// metadata.go implements normalization and recursive merging of event metadata.

package faultline

import "reflect"

// normalizeMap converts any string-keyed map into a fresh map[string]any,
// recursively normalizing nested maps and slices. ok is false for non-maps.
func normalizeMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = normalizeValue(val)
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = normalizeValue(iter.Value().Interface())
	}
	return out, true
}

func normalizeValue(v any) any {
	if m, ok := normalizeMap(v); ok {
		return m
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return v
	}
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalizeValue(rv.Index(i).Interface())
		}
		return out
	}
	return v
}

// mergeMetaData merges src into dst and returns dst. dst is modified in place.
func mergeMetaData(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		existing, ok := dst[k]
		if !ok {
			dst[k] = v
			continue
		}
		dst[k] = mergeValues(existing, v)
	}
	return dst
}

func mergeValues(a, b any) any {
	am, aok := a.(map[string]any)
	bm, bok := b.(map[string]any)
	if aok && bok {
		return mergeMetaData(am, bm)
	}
	return append(asList(a), asList(b)...)
}

func asList(v any) []any {
	if l, ok := v.([]any); ok {
		return append([]any(nil), l...)
	}
	return []any{v}
}
