// Package snowflake mints 64-bit identifiers that are unique across a fleet
// of nodes, coordination-free at mint time, and approximately time-ordered.
//
// # Format
//
// An identifier packs four fields, most to least significant:
//
//	1 bit   always zero
//	41 bits milliseconds elapsed since 2020-01-01T00:00:00Z
//	5 bits  datacenter ID
//	5 bits  machine ID
//	12 bits per-millisecond sequence
//
// The 41-bit timestamp field covers roughly 69 years from the reference
// epoch. Because the timestamp is the most significant variable field,
// numeric ordering of ids from one generator matches mint order. Two
// generators constructed with distinct (datacenter, machine) pairs can never
// collide; a single generator never repeats an id.
//
// # Clock behavior
//
// The generator tracks the raw clock reading of the last minted id. A
// reading earlier than that fails the call with ErrClockRegression rather
// than risking duplicates; the generator does not attempt to compensate.
// When the 4096-id sequence space of one millisecond is exhausted, Next
// blocks until the clock advances to the next millisecond.
//
// Usage
//
//	g, err := snowflake.New(1, 2)
//	id, err := g.Next()
//	fields := snowflake.Decode(id)
//	s := snowflake.Format(id) // "2020-01-01 00:00:00.123, #0, @(1, 2)"
package snowflake
