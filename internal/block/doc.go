// Package block provides the fixed-size bitmap segment used by the tracker.
//
// Architecture:
//   - 65536 presence flags per block (one flag per identifier offset)
//   - Packed as 2048 uint32 words, addressed by shift/mask
//   - NextSet skips zero words whole and resolves the first nonzero word
//     with a trailing-zero count
//
// Used internally for:
//   - Pending identifier storage in the sparse block map
package block
