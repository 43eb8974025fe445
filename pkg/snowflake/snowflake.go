package snowflake

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Epoch is the reference zero time for the timestamp field, in milliseconds
// since the Unix epoch: 2020-01-01T00:00:00Z. It is part of the wire layout
// shared by every generator and must never change.
const Epoch int64 = 1577836800000

// Bit allocations for the 64-bit identifier, most to least significant.
// These are fixed protocol parameters, not configuration: instances with
// differing layouts would mint mutually undecodable identifiers.
const (
	unusedBits       = 1
	timestampBits    = 41
	datacenterIDBits = 5
	machineIDBits    = 5
	sequenceBits     = 12

	machineIDShift    = sequenceBits
	datacenterIDShift = sequenceBits + machineIDBits
	timestampShift    = sequenceBits + machineIDBits + datacenterIDBits
)

// Max values of the variable fields.
const (
	MaxDatacenterID int64 = -1 ^ (-1 << datacenterIDBits)
	MaxMachineID    int64 = -1 ^ (-1 << machineIDBits)
	MaxSequence     int64 = -1 ^ (-1 << sequenceBits)

	maxTimestamp uint64 = 1<<timestampBits - 1
)

var (
	// ErrDatacenterID reports a datacenter ID outside [0, MaxDatacenterID].
	ErrDatacenterID = errors.New("datacenter id out of range")

	// ErrMachineID reports a machine ID outside [0, MaxMachineID].
	ErrMachineID = errors.New("machine id out of range")

	// ErrClockRegression reports a clock reading earlier than the reading
	// recorded for the last minted id. The generator refuses to mint rather
	// than risk duplicates; the caller decides whether to retry, alert, or
	// fail over.
	ErrClockRegression = errors.New("clock moved backwards, refusing to mint id")
)

// NowMs returns current time in milliseconds since Unix epoch.
var NowMs = func() int64 { return time.Now().UnixMilli() }

// Generator mints identifiers for one node identity. It is safe for
// concurrent use; minting is serialized per instance.
type Generator struct {
	mu           sync.Mutex
	datacenterID int64
	machineID    int64
	sequence     int64

	// lastMs is the raw Unix-millisecond clock reading of the last
	// successful mint, or -1 before the first. Epoch is subtracted only at
	// encode time, so clock comparisons happen in raw milliseconds.
	lastMs int64
}

// New constructs a Generator for the given node identity. Both IDs occupy
// 5-bit fields and must be in [0, 31]. Assigning identities across the
// fleet is the caller's concern; two generators sharing an identity will
// collide.
func New(datacenterID, machineID int64) (*Generator, error) {
	if datacenterID < 0 || datacenterID > MaxDatacenterID {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrDatacenterID, datacenterID, MaxDatacenterID)
	}
	if machineID < 0 || machineID > MaxMachineID {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrMachineID, machineID, MaxMachineID)
	}
	return &Generator{
		datacenterID: datacenterID,
		machineID:    machineID,
		lastMs:       -1,
	}, nil
}

// Next mints a new identifier. Within one millisecond the sequence field
// distinguishes up to 4096 ids; when that space is exhausted Next waits for
// the next millisecond. If the clock reads earlier than the last mint, Next
// fails with ErrClockRegression and leaves the generator state untouched.
func (g *Generator) Next() (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := NowMs()
	if now < g.lastMs {
		return 0, fmt.Errorf("%w: clock at %dms, last id at %dms", ErrClockRegression, now, g.lastMs)
	}

	if now == g.lastMs {
		g.sequence = (g.sequence + 1) & MaxSequence
		if g.sequence == 0 {
			// 4096 ids minted this millisecond; wait out the remainder.
			now = g.nextMs()
		}
	} else {
		g.sequence = 0
	}

	g.lastMs = now
	return uint64(now-Epoch)<<timestampShift |
		uint64(g.datacenterID)<<datacenterIDShift |
		uint64(g.machineID)<<machineIDShift |
		uint64(g.sequence), nil
}

// NextN mints n identifiers in one call, failing fast on the first error.
func (g *Generator) NextN(n int) ([]uint64, error) {
	if n <= 0 {
		return nil, nil
	}
	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		id, err := g.Next()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// nextMs polls the clock until it reads strictly past lastMs. The wait is
// bounded by real clock advancement, rarely more than a millisecond.
func (g *Generator) nextMs() int64 {
	now := NowMs()
	for now <= g.lastMs {
		time.Sleep(time.Millisecond / 8)
		now = NowMs()
	}
	return now
}

// Settings is a snapshot of the fixed layout plus the generator's identity
// and minting state.
type Settings struct {
	Epoch            int64 `json:"epoch"`
	UnusedBits       int   `json:"unusedBits"`
	TimestampBits    int   `json:"timestampBits"`
	DatacenterIDBits int   `json:"datacenterIdBits"`
	MachineIDBits    int   `json:"machineIdBits"`
	SequenceBits     int   `json:"sequenceBits"`
	DatacenterID     int64 `json:"datacenterId"`
	MachineID        int64 `json:"machineId"`
	Sequence         int64 `json:"sequence"`
	LastTimestampMs  int64 `json:"lastTimestampMs"`
}

// Settings returns the current settings snapshot.
func (g *Generator) Settings() Settings {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Settings{
		Epoch:            Epoch,
		UnusedBits:       unusedBits,
		TimestampBits:    timestampBits,
		DatacenterIDBits: datacenterIDBits,
		MachineIDBits:    machineIDBits,
		SequenceBits:     sequenceBits,
		DatacenterID:     g.datacenterID,
		MachineID:        g.machineID,
		Sequence:         g.sequence,
		LastTimestampMs:  g.lastMs,
	}
}

// String renders the settings snapshot as JSON.
func (g *Generator) String() string {
	b, _ := json.Marshal(g.Settings())
	return string(b)
}
