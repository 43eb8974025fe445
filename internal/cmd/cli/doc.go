// Package cli provides the `snowid` command-line tool.
//
// The CLI is thin packaging around the pkg/snowflake library: it resolves a
// node identity (config file, SNOWID_* environment variables, or flags,
// in increasing precedence), constructs a generator, and prints results to
// stdout. Diagnostics go to the structured logger on stderr.
//
// Usage
//
//	snowid mint --datacenter-id 1 --machine-id 2
//	snowid mint -n 100 --config /etc/snowid.yaml
//	snowid mint -v                 # each id with its decoded breakdown
//
//	snowid decode 516038663
//	snowid decode --json 516038663 9007199254740993
//
//	snowid format 516038663        # "2020-01-01 00:00:00.123, #7, @(1, 2)"
//
//	snowid info --machine-id 5     # layout + identity as JSON
//
// Notes
//
//   - Identity resolution precedence: built-in defaults, then --config
//     file (JSON or YAML), then SNOWID_DATACENTER_ID / SNOWID_MACHINE_ID,
//     then the --datacenter-id / --machine-id flags.
//   - decode accepts any 64-bit value, including ids minted elsewhere with
//     the same layout; it never validates provenance.
package cli
