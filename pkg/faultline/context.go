// context.go propagates request-scoped metadata through context.Context.

package faultline

import "context"

type metaDataKey struct{}

// WithMetaData returns a context carrying metaData merged over any metadata
// already attached to ctx. The parent's metadata is not modified.
func WithMetaData(ctx context.Context, metaData map[string]any) context.Context {
	merged := map[string]any{}
	if existing, ok := MetaDataFromContext(ctx); ok {
		copied, _ := normalizeMap(existing)
		merged = mergeMetaData(merged, copied)
	}
	if m, ok := normalizeMap(metaData); ok {
		merged = mergeMetaData(merged, m)
	}
	return context.WithValue(ctx, metaDataKey{}, merged)
}

// MetaDataFromContext extracts metadata attached with WithMetaData.
// Returns nil and false if none is set.
func MetaDataFromContext(ctx context.Context) (map[string]any, bool) {
	m, ok := ctx.Value(metaDataKey{}).(map[string]any)
	return m, ok && len(m) > 0
}
