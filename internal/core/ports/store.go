package ports

import "context"

// ClientStore is the durable key/value store holding per-client state
// (session token, user snapshot, cart contents) across restarts.
//
// Get reports found=false for absent keys rather than an error. There are
// no transactional guarantees across keys: token, user and cart live under
// independent keys and an interrupted write may leave them mutually
// inconsistent, which the callers accept.
type ClientStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
