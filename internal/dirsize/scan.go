package dirsize

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Options configures a scan.
type Options struct {
	// OnError decides what happens to a failed entry. Returning nil skips the
	// entry and records it in Result.Skipped; returning an error aborts the scan
	// with it. A nil OnError aborts on the first failure.
	OnError func(err *TraversalError) error
	// Progress is called with the running file count and byte total at most
	// once per ProgressInterval.
	Progress func(files, bytes int64)
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output to stderr if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// scanner holds the state of one traversal. Nothing in it outlives Scan.
type scanner struct {
	opt       Options
	log       logger
	visited   map[string]struct{}
	collector *collector
	lastTick  time.Time
}

// Scan walks the tree rooted at root and returns its total size together with
// a record for every non-directory entry beneath it.
//
// Symbolic links are followed. Each directory is entered at most once, keyed by
// its canonical path, so a link back to an ancestor or a second link to an
// already visited directory contributes nothing. Children are visited in
// lexical order, which makes "first encountered" deterministic.
//
// If root is not a directory it is treated as a single file.
func Scan(root string, opt Options) (*Result, error) {
	log := logger{enabled: opt.Debug}

	if root == "" {
		root = "."
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	if opt.ProgressInterval <= 0 {
		opt.ProgressInterval = DefaultProgressInterval
	}

	s := &scanner{
		opt:       opt,
		log:       log,
		visited:   make(map[string]struct{}),
		collector: newCollector(),
		lastTick:  time.Now(),
	}

	log.printf("[debug]: scanning %s\n", absRoot)

	start := time.Now()

	if _, err := s.walk(absRoot); err != nil {
		return nil, err
	}

	result := s.collector.finalize()
	result.Elapsed = time.Since(start)

	log.printf("[debug]: %s files in %s directories, %s, %d skipped, took %v\n",
		humanize.Comma(int64(len(result.Files))), humanize.Comma(result.Dirs),
		humanize.IBytes(uint64(result.TotalBytes)), //nolint:gosec // Sizes are never negative
		len(result.Skipped), result.Elapsed)

	return result, nil
}

// walk returns the number of bytes contributed by path and everything below it.
func (s *scanner) walk(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, s.fail("stat", path, err)
	}

	if !info.IsDir() {
		size := info.Size()
		s.collector.add(path, size)
		s.tick()

		return size, nil
	}

	canonical, err := filepath.EvalSymlinks(path)
	if err != nil {
		return 0, s.fail("resolve", path, err)
	}

	if _, seen := s.visited[canonical]; seen {
		s.log.printf("[debug]: skipping visited directory: %s\n", path)
		s.log.printf("	 resolves to: %s\n", canonical)

		return 0, nil
	}

	s.visited[canonical] = struct{}{}
	s.collector.addDir()

	entries, err := os.ReadDir(path)
	if err != nil {
		return 0, s.fail("readdir", path, err)
	}

	var size int64

	for _, entry := range entries {
		n, err := s.walk(filepath.Join(path, entry.Name()))
		if err != nil {
			return size, err
		}

		size += n
	}

	return size, nil
}

// fail hands a failure to the error policy. A nil return means the entry was skipped.
func (s *scanner) fail(op, path string, err error) error {
	terr := &TraversalError{Op: op, Path: path, Err: err}

	s.log.printf("[debug]: error accessing path %s: %v\n", path, err)

	if s.opt.OnError == nil {
		return terr
	}

	if err := s.opt.OnError(terr); err != nil {
		return err
	}

	s.collector.skip(terr)

	return nil
}

// tick invokes the progress hook if the interval has elapsed.
func (s *scanner) tick() {
	if s.opt.Progress == nil {
		return
	}

	if now := time.Now(); now.Sub(s.lastTick) >= s.opt.ProgressInterval {
		s.lastTick = now
		s.opt.Progress(int64(len(s.collector.files)), s.collector.totalBytes)
	}
}
