package domain

import "net/http"

// ClientStore is a per-visitor key-value store carried on the request and
// response. Values are opaque serialized blobs; every key is independently
// written, there is no atomicity across keys.
type ClientStore interface {
	// Load decodes the value under key into v. It reports false when the
	// key is absent or the stored blob is malformed; callers substitute
	// their own default in that case.
	Load(r *http.Request, key string, v any) bool
	Save(w http.ResponseWriter, key string, v any) error
	Remove(w http.ResponseWriter, key string)
}
