package dirsize

import (
	"time"
)

// Result holds the outcome of a single scan.
type Result struct {
	// TotalBytes is the cumulative size of all files in Files.
	TotalBytes int64
	// Files contains one record per file encountered, in traversal order.
	Files []FileRecord
	// Dirs is the number of distinct directories entered.
	Dirs int64
	// Skipped contains failures the error handler chose to skip.
	Skipped []*TraversalError
	// Elapsed is the total time taken by the scan.
	Elapsed time.Duration
}

// Report is the printable summary of a scan.
type Report struct {
	// Root is the scanned path.
	Root string `json:"root"`
	// TotalBytes is the cumulative size of all files.
	TotalBytes int64 `json:"total_bytes"`
	// FileCount is the number of files encountered.
	FileCount int `json:"file_count"`
	// DirCount is the number of directories entered.
	DirCount int64 `json:"dir_count"`
	// TopN is the number of largest files requested.
	TopN int `json:"top_n"`
	// TopFiles contains up to TopN of the largest files, largest first.
	TopFiles []FileRecord `json:"top_files"`
	// Errors lists the entries that were skipped because they could not be read.
	Errors []string `json:"errors,omitempty"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// Report ranks the result's files and packages them with the totals.
func (r *Result) Report(root string, n int) *Report {
	errs := make([]string, 0, len(r.Skipped))
	for _, err := range r.Skipped {
		errs = append(errs, err.Error())
	}

	return &Report{
		Root:       root,
		TotalBytes: r.TotalBytes,
		FileCount:  len(r.Files),
		DirCount:   r.Dirs,
		TopN:       n,
		TopFiles:   Rank(r.Files, n),
		Errors:     errs,
		Elapsed:    r.Elapsed,
	}
}

// collector accumulates records for one scan. It is owned by a single
// scanner and never shared, so it needs no locking.
type collector struct {
	files      []FileRecord
	skipped    []*TraversalError
	totalBytes int64
	dirs       int64
}

func newCollector() *collector {
	return &collector{
		files:   make([]FileRecord, 0),
		skipped: make([]*TraversalError, 0),
	}
}

// add records a file. The size is taken once and never re-read.
func (c *collector) add(path string, size int64) {
	c.totalBytes += size
	c.files = append(c.files, FileRecord{Path: path, Size: size})
}

func (c *collector) addDir() {
	c.dirs++
}

func (c *collector) skip(err *TraversalError) {
	c.skipped = append(c.skipped, err)
}

// finalize produces the Result from the collected data.
func (c *collector) finalize() *Result {
	return &Result{
		TotalBytes: c.totalBytes,
		Files:      c.files,
		Dirs:       c.dirs,
		Skipped:    c.skipped,
	}
}
