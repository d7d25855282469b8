package dirsize

import (
	"cmp"
	"slices"
)

// FileRecord represents a single file path and the size observed during a scan.
type FileRecord struct {
	// Path is the absolute path of the file as it was reached.
	Path string `json:"path"`
	// Size is the size in bytes.
	Size int64 `json:"size"`
}

// Compare orders records by size, smallest first. Equal sizes compare equal;
// there is no secondary key, so ties may end up in any relative order.
func Compare(a, b FileRecord) int {
	return cmp.Compare(a.Size, b.Size)
}

// Rank returns up to n of the largest records, largest first.
// The input slice is not modified. n larger than len(files) returns all of them,
// and n <= 0 returns an empty slice.
func Rank(files []FileRecord, n int) []FileRecord {
	if n <= 0 || len(files) == 0 {
		return []FileRecord{}
	}

	sorted := slices.Clone(files)
	slices.SortFunc(sorted, Compare)

	n = min(n, len(sorted))

	top := make([]FileRecord, 0, n)
	for i := len(sorted) - 1; i >= len(sorted)-n; i-- {
		top = append(top, sorted[i])
	}

	return top
}
