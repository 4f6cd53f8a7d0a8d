// Package session provides cookie-based session management with two
// explicitly separated check paths.
//
// Probe is the edge-safe path: it verifies the HMAC-signed session
// cookie (and optionally issues one store existence round trip) without
// ever loading the session record. It exists for latency-critical
// request filters that must not block on heavy I/O.
//
// Load is the DB-aware path: a full store lookup with expiry validation,
// used by server actions that need the real session before authorizing
// anything.
//
//	manager := session.New(cfg, session.WithStore(redisStore), session.WithExistenceProbe())
//
//	// request filter:
//	signedIn := manager.Probe(r.Context(), r)
//
//	// server action:
//	sess, err := manager.Load(r.Context(), r)
//
// Stores: MemoryStore for development and tests, RedisStore for
// production (TTL-based expiry, EXISTS-based probe).
package session
