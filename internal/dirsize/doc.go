// Package dirsize computes the total size of a directory tree and ranks the
// largest files found in it.
//
// A scan is a single synchronous depth-first walk. Symbolic links are
// followed, and every directory is entered at most once, keyed by its
// canonical (symlink-resolved) path, so self-referential trees terminate.
// Ranking is a separate step over the collected FileRecords.
package dirsize
