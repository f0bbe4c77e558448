package service

// Storage keys for per-client state in the durable client store.
// Each client owns three independent keys; no cross-key atomicity exists.
func tokenKey(clientID string) string { return "client:" + clientID + ":token" }
func userKey(clientID string) string  { return "client:" + clientID + ":user" }
func cartKey(clientID string) string  { return "client:" + clientID + ":cart" }
