// Package resource bounds how many path searches run at once and how fast
// new requests are admitted.
//
//	┌─────────────────────────────────────────────┐
//	│                 Controller                  │
//	├──────────────────────┬──────────────────────┤
//	│  Search slots (sem)  │  Admission limiter   │
//	│                      │  (token bucket)      │
//	├──────────────────────┼──────────────────────┤
//	│  AcquireSearch       │  Admit               │
//	│  ReleaseSearch       │                      │
//	│  InFlight            │                      │
//	└──────────────────────┴──────────────────────┘
//
// Waiting for a search slot is the only point where a dispatched search may
// suspend:
//
//	rc := resource.NewController(resource.Config{MaxConcurrentSearches: 8})
//
//	if err := rc.AcquireSearch(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseSearch()
//
// All methods are safe for concurrent use and handle a nil Controller as
// "no limits".
package resource
