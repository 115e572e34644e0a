// Package hooks exposes the cache as a write/read hook pair for external
// fetch orchestrators: systems that perform the network fetch themselves and
// call a write hook after a successful fetch and a read hook before deciding
// whether to fetch at all.
//
// Which backing store you inject decides the cache family: a [kv.MemStore]
// gives session-scoped memoization, a durable adapter (sqlite, NATS) gives
// caching that survives restarts. Both families behave identically at the
// hook surface: OnWrite returns the bare payload, and the recorded fetch
// time is available through [Hooks.Metadata] instead of being smuggled into
// the return shape.
//
//	h := hooks.New[Profile](store, hooks.Config{TTL: 10 * time.Minute, Key: "profile"})
//	orchestrator.Register(h.Pair())
package hooks
