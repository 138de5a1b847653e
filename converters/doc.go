// Package converters provides two-way adapters between core.Graph and the
// on-disk graph formats the solver reads and writes:
//   - DIMACS edge format (text): "p edge <n> <m>" header, "e <u> <v>" lines
//   - compact binary format: magic 0xBFBFBFBF, big-endian counts, labels,
//     offsets and the neighbor array
//
// Use LoadFile when the format is not known up front; it sniffs the magic.
package converters
