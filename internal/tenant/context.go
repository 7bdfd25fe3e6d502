// Package tenant carries the owner-group identifier through request
// context. The owner group is the household boundary scoping every record;
// engine calls take it as an explicit parameter, and this package is only
// the bridge from the HTTP layer.
package tenant

import "context"

type contextKey struct{}

func WithGroup(ctx context.Context, groupID string) context.Context {
	return context.WithValue(ctx, contextKey{}, groupID)
}

func FromContext(ctx context.Context) (string, bool) {
	groupID, ok := ctx.Value(contextKey{}).(string)
	return groupID, ok
}

// GroupID returns the owner group in ctx, or "" when none was set.
func GroupID(ctx context.Context) string {
	groupID, _ := FromContext(ctx)
	return groupID
}
