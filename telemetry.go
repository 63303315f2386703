// telemetry.go: lightweight, allocation-free operational metrics
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package charybdis

import "time"

// Stats is a snapshot of a Ring's occupancy and contention counters.
// All fields are read with atomic loads, so the snapshot is internally
// consistent per-field but not a single atomic transaction across
// fields — the same caveat lethe.Stats documents for its own Stats
// struct. Safe to call concurrently and as often as needed.
type Stats struct {
	// Count and Avail are the same values Ring.Count and Ring.Avail
	// would return at the time of the call.
	Count uint32
	Avail uint32

	// ReserveContention counts failed CAS attempts across the multi-side
	// reservation paths. Always 0 for a ring with both sides single.
	ReserveContention uint64

	// PublishSpins counts iterations spent in the publication barrier's
	// wait loop across the multi-side paths. Always 0 for a ring with
	// both sides single, since the single-side publish never spins.
	PublishSpins uint64

	// PublishYields counts how many times a publication spin degraded
	// to an OS scheduler yield, per Config.PauseRep. Always 0 when
	// PauseRep is 0 (the default: pause without ever yielding).
	PublishYields uint64

	// SampledAt is when this snapshot was taken, read from a cached,
	// low-resolution clock rather than time.Now() on every call.
	SampledAt time.Time
}

// Stats returns a snapshot of the ring's current occupancy and
// contention counters, for operational monitoring and performance
// tuning. Call frequency has negligible overhead: every field is read
// with at most two atomic loads.
func (r *Ring[T]) Stats() Stats {
	return Stats{
		Count:             r.Count(),
		Avail:             r.Avail(),
		ReserveContention: r.reserveContention.LoadRelaxed(),
		PublishSpins:      r.publishSpins.LoadRelaxed(),
		PublishYields:     r.publishYields.LoadRelaxed(),
		SampledAt:         r.timeCache.CachedTime(),
	}
}
