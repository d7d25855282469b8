package dirsize

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(sizes ...int64) []FileRecord {
	files := make([]FileRecord, 0, len(sizes))
	for i, size := range sizes {
		files = append(files, FileRecord{Path: fmt.Sprintf("/f%d", i), Size: size})
	}

	return files
}

func sizes(files []FileRecord) []int64 {
	out := make([]int64, 0, len(files))
	for _, f := range files {
		out = append(out, f.Size)
	}

	return out
}

func TestCompare(t *testing.T) {
	small := FileRecord{Path: "/a", Size: 1}
	large := FileRecord{Path: "/b", Size: 2}

	assert.Negative(t, Compare(small, large))
	assert.Positive(t, Compare(large, small))
	assert.Zero(t, Compare(small, FileRecord{Path: "/other", Size: 1}))
}

func TestRank(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int64
		n     int
		want  []int64
	}{
		{"largest two", []int64{10, 2048, 3, 1048576}, 2, []int64{1048576, 2048}},
		{"zero", []int64{10, 20}, 0, []int64{}},
		{"negative", []int64{10, 20}, -1, []int64{}},
		{"more than available", []int64{5, 1, 3}, 10, []int64{5, 3, 1}},
		{"exactly all", []int64{5, 1, 3}, 3, []int64{5, 3, 1}},
		{"empty input", nil, 5, []int64{}},
		{"ties", []int64{7, 7, 1}, 2, []int64{7, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(records(tt.sizes...), tt.n)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, sizes(got))
		})
	}
}

func TestRank_DoesNotModifyInput(t *testing.T) {
	files := records(3, 1, 2)
	before := slices.Clone(files)

	Rank(files, 2)

	assert.Equal(t, before, files)
}

func TestRank_Properties(t *testing.T) {
	files := records(9, 4, 4, 100, 0, 17, 4, 63, 2, 9)

	for n := 0; n <= len(files)+2; n++ {
		got := Rank(files, n)

		assert.Len(t, got, min(n, len(files)), "n=%d", n)
		assert.True(t, slices.IsSortedFunc(got, func(a, b FileRecord) int {
			return Compare(b, a)
		}), "n=%d: not non-increasing: %v", n, sizes(got))

		for _, f := range got {
			assert.Contains(t, files, f, "n=%d", n)
		}

		// Every record left out must be no larger than the smallest selected one.
		if len(got) > 0 && len(got) < len(files) {
			smallest := got[len(got)-1].Size
			larger := 0

			for _, f := range files {
				if f.Size > smallest {
					larger++
				}
			}

			assert.LessOrEqual(t, larger, len(got), "n=%d", n)
		}
	}
}
