package session

import "context"

// Record is the per-user authentication outcome persisted in the hosting
// application's session store. A Record is only ever marked valid right
// after the provider confirmed both token validation and session exchange
// for the same token within the same request.
type Record struct {
	User  map[string]any `json:"user"`
	Valid bool           `json:"valid"`
}

// Invalidated returns the logged-out record: Valid=false, User=nil.
func Invalidated() *Record {
	return &Record{}
}

type recordKey struct{}

// NewContext returns a context carrying the session record.
func NewContext(ctx context.Context, rec *Record) context.Context {
	return context.WithValue(ctx, recordKey{}, rec)
}

// FromContext returns the session record stored in the context, if any.
func FromContext(ctx context.Context) (*Record, bool) {
	rec, ok := ctx.Value(recordKey{}).(*Record)
	return rec, ok
}

// UserFromContext returns the authenticated user's identity payload.
// It reports false when no record is present or the record is not valid,
// so callers never see a user from a logged-out session.
func UserFromContext(ctx context.Context) (map[string]any, bool) {
	rec, ok := FromContext(ctx)
	if !ok || rec == nil || !rec.Valid {
		return nil, false
	}
	return rec.User, true
}
