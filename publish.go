// publish.go: publication barrier - makes a reservation visible in FIFO order
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package charybdis

import (
	"runtime"

	"code.hybscloud.com/spin"
)

// publishProducer makes the range [head, head+n) visible to consumers by
// advancing prod.tail. On the single-producer path this is a plain
// release store: the caller is the only reserver, so there is nothing to
// wait for. On the multi-producer path, concurrent producers may have
// reserved earlier or later ranges; this spins until every strictly
// earlier reservation on this side has published, then commits, giving
// strict in-order tail commit.
func (r *Ring[T]) publishProducer(single bool, head, n uint32) {
	next := head + n
	if single {
		r.prod.tail.StoreRelease(next)
		return
	}

	var sw spin.Wait
	reps := uint32(0)
	for r.prod.tail.LoadAcquire() != head {
		sw.Once()
		r.publishSpins.AddRelaxed(1)
		if r.pauseRep != 0 {
			reps++
			if reps == r.pauseRep {
				runtime.Gosched()
				r.publishYields.AddRelaxed(1)
				reps = 0
			}
		}
	}
	r.prod.tail.StoreRelease(next)
}

// publishConsumer is the symmetric publication barrier for the consumer
// side, advancing cons.tail.
func (r *Ring[T]) publishConsumer(single bool, head, n uint32) {
	next := head + n
	if single {
		r.cons.tail.StoreRelease(next)
		return
	}

	var sw spin.Wait
	reps := uint32(0)
	for r.cons.tail.LoadAcquire() != head {
		sw.Once()
		r.publishSpins.AddRelaxed(1)
		if r.pauseRep != 0 {
			reps++
			if reps == r.pauseRep {
				runtime.Gosched()
				r.publishYields.AddRelaxed(1)
				reps = 0
			}
		}
	}
	r.cons.tail.StoreRelease(next)
}
