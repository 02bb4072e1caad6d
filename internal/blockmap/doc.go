// Package blockmap maps identifier block indices (id >> 16) to lazily
// allocated blocks, ordered by block index.
package blockmap
