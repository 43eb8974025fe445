package snowflake

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// stubClock replaces NowMs for the duration of a test.
func stubClock(t *testing.T, fn func() int64) {
	t.Helper()
	NowMs = fn
	t.Cleanup(func() { NowMs = func() int64 { return time.Now().UnixMilli() } })
}

func TestNewValidatesIdentity(t *testing.T) {
	if _, err := New(32, 0); !errors.Is(err, ErrDatacenterID) {
		t.Fatalf("datacenter 32: got %v, want ErrDatacenterID", err)
	}
	if _, err := New(-1, 0); !errors.Is(err, ErrDatacenterID) {
		t.Fatalf("datacenter -1: got %v, want ErrDatacenterID", err)
	}
	if _, err := New(0, 32); !errors.Is(err, ErrMachineID) {
		t.Fatalf("machine 32: got %v, want ErrMachineID", err)
	}
	if _, err := New(0, -1); !errors.Is(err, ErrMachineID) {
		t.Fatalf("machine -1: got %v, want ErrMachineID", err)
	}
	g, err := New(31, 31)
	if err != nil || g == nil {
		t.Fatalf("boundary identity (31, 31) should construct: %v", err)
	}
}

func TestFirstMintScenario(t *testing.T) {
	const ms = int64(1577836800123)
	stubClock(t, func() int64 { return ms })

	g, err := New(1, 2)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	id, err := g.Next()
	if err != nil {
		t.Fatalf("first mint: %v", err)
	}
	d := Decode(id)
	if d.TimestampMs != uint64(ms) || d.DatacenterID != 1 || d.MachineID != 2 || d.Sequence != 0 {
		t.Fatalf("first mint decoded to %+v", d)
	}

	// Same simulated millisecond: only the sequence advances.
	id2, err := g.Next()
	if err != nil {
		t.Fatalf("second mint: %v", err)
	}
	d2 := Decode(id2)
	if d2.TimestampMs != uint64(ms) || d2.DatacenterID != 1 || d2.MachineID != 2 || d2.Sequence != 1 {
		t.Fatalf("second mint decoded to %+v", d2)
	}
	if id2 <= id {
		t.Fatalf("expected id2 > id, got %d <= %d", id2, id)
	}
}

func TestMonotonicAndUnique(t *testing.T) {
	g, err := New(0, 0)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	var last uint64
	for i := 0; i < 10000; i++ {
		id, err := g.Next()
		if err != nil {
			t.Fatalf("mint %d: %v", i, err)
		}
		if id <= last {
			t.Fatalf("mint %d: %d not greater than previous %d", i, id, last)
		}
		last = id
	}
}

func TestClockRegression(t *testing.T) {
	var ms atomic.Int64
	ms.Store(1577836805000)
	stubClock(t, ms.Load)

	g, err := New(3, 4)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := g.Next(); err != nil {
		t.Fatalf("mint at T: %v", err)
	}

	ms.Store(1577836804999)
	if _, err := g.Next(); !errors.Is(err, ErrClockRegression) {
		t.Fatalf("mint at T-1: got %v, want ErrClockRegression", err)
	}

	// The failed call must not have touched lastMs or the sequence: minting
	// again at T lands in the same millisecond with sequence 1.
	ms.Store(1577836805000)
	id, err := g.Next()
	if err != nil {
		t.Fatalf("mint after recovery: %v", err)
	}
	d := Decode(id)
	if d.TimestampMs != 1577836805000 || d.Sequence != 1 {
		t.Fatalf("post-recovery mint decoded to %+v", d)
	}
}

func TestSequenceOverflowAdvancesTimestamp(t *testing.T) {
	const t0 = int64(1577836800500)
	var calls atomic.Int64
	stubClock(t, func() int64 {
		if calls.Add(1) <= 4097 {
			return t0
		}
		return t0 + 1
	})

	g, err := New(5, 6)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	seen := make(map[uint64]struct{}, 4096)
	for i := 0; i < 4096; i++ {
		id, err := g.Next()
		if err != nil {
			t.Fatalf("mint %d: %v", i, err)
		}
		d := Decode(id)
		if d.TimestampMs != uint64(t0) {
			t.Fatalf("mint %d: timestamp advanced early to %d", i, d.TimestampMs)
		}
		if d.Sequence != uint64(i) {
			t.Fatalf("mint %d: sequence %d", i, d.Sequence)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("mint %d: duplicate id %d", i, id)
		}
		seen[id] = struct{}{}
	}

	// 4097th call exhausts the millisecond and must wait out the clock.
	id, err := g.Next()
	if err != nil {
		t.Fatalf("overflow mint: %v", err)
	}
	d := Decode(id)
	if d.TimestampMs != uint64(t0+1) || d.Sequence != 0 {
		t.Fatalf("overflow mint decoded to %+v", d)
	}
}

func TestRoundTripAllIdentities(t *testing.T) {
	for dc := int64(0); dc <= MaxDatacenterID; dc++ {
		for m := int64(0); m <= MaxMachineID; m++ {
			g, err := New(dc, m)
			if err != nil {
				t.Fatalf("new(%d, %d): %v", dc, m, err)
			}
			id, err := g.Next()
			if err != nil {
				t.Fatalf("mint(%d, %d): %v", dc, m, err)
			}
			d := Decode(id)
			if d.DatacenterID != uint64(dc) || d.MachineID != uint64(m) {
				t.Fatalf("round trip (%d, %d) decoded to %+v", dc, m, d)
			}
			if d.Sequence > uint64(MaxSequence) {
				t.Fatalf("sequence %d out of range", d.Sequence)
			}
		}
	}
}

func TestConcurrentUniqueness(t *testing.T) {
	g, err := New(1, 1)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	const workers = 8
	const perWorker = 2048

	var mu sync.Mutex
	seen := make(map[uint64]struct{}, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]uint64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				id, err := g.Next()
				if err != nil {
					t.Errorf("mint: %v", err)
					return
				}
				ids = append(ids, id)
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				if _, dup := seen[id]; dup {
					t.Errorf("duplicate id %d", id)
				}
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d distinct ids, got %d", workers*perWorker, len(seen))
	}
}

func TestNextN(t *testing.T) {
	g, err := New(2, 3)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ids, err := g.NextN(100)
	if err != nil {
		t.Fatalf("next n: %v", err)
	}
	if len(ids) != 100 {
		t.Fatalf("expected 100 ids, got %d", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Fatalf("batch not strictly increasing at %d", i)
		}
	}
	if got, err := g.NextN(0); err != nil || got != nil {
		t.Fatalf("next n with n=0: %v, %v", got, err)
	}
}

func BenchmarkNext(b *testing.B) {
	g, err := New(1, 2)
	if err != nil {
		b.Fatalf("new: %v", err)
	}
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := g.Next(); err != nil {
				b.Errorf("mint: %v", err)
				return
			}
		}
	})
}
