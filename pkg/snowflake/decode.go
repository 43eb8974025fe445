package snowflake

import (
	"fmt"
	"time"
)

// Decoded holds the fields extracted from an identifier.
type Decoded struct {
	TimestampMs  uint64 `json:"timestampMs"`
	DatacenterID uint64 `json:"datacenterId"`
	MachineID    uint64 `json:"machineId"`
	Sequence     uint64 `json:"sequence"`
}

// Decode splits an identifier back into its fields. Any 64-bit input
// decodes structurally; there is no check that id was minted by this
// layout, garbage in yields garbage out.
func Decode(id uint64) Decoded {
	return Decoded{
		TimestampMs:  (id>>timestampShift)&maxTimestamp + uint64(Epoch),
		DatacenterID: (id >> datacenterIDShift) & uint64(MaxDatacenterID),
		MachineID:    (id >> machineIDShift) & uint64(MaxMachineID),
		Sequence:     id & uint64(MaxSequence),
	}
}

// Time returns the mint time in UTC at millisecond precision.
func (d Decoded) Time() time.Time {
	return time.UnixMilli(int64(d.TimestampMs)).UTC()
}

// Format renders an identifier for humans, e.g.
// "2024-01-02 03:04:05.006, #7, @(1, 2)". Purely presentational; nothing
// parses this back.
func Format(id uint64) string {
	d := Decode(id)
	return fmt.Sprintf("%s, #%d, @(%d, %d)",
		d.Time().Format("2006-01-02 15:04:05.000"),
		d.Sequence, d.DatacenterID, d.MachineID)
}
