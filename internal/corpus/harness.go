package corpus

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/codedude/fastfloat/internal/fastfloat"
	"github.com/codedude/fastfloat/internal/slowpath"
)

// Options configures a corpus Run, mirroring the BRC solver's
// chunk/thread knobs this harness is adapted from.
type Options struct {
	NThreads int  // number of worker goroutines, at most
	Verbose  bool // print a summary line when Run finishes
}

// Mismatch records a literal for which the fast driver's result
// disagreed with the arbitrary-precision slow path.
type Mismatch struct {
	Literal string
	Fast    float64
	Slow    float64
}

// Result is the outcome of running every literal in a corpus through
// both parse paths.
type Result struct {
	Lines     int64
	Unique    int64
	Mismatch  []Mismatch
	Malformed int64
}

func (r *Result) merge(other *Result) {
	r.Lines += other.Lines
	r.Malformed += other.Malformed
	r.Mismatch = append(r.Mismatch, other.Mismatch...)
}

type shard struct {
	res  Result
	seen map[uint64]struct{}
}

// Run scans reader for newline-delimited decimal literals, parses
// each one through fastfloat.ParseFloat64 (with the slow path wired in
// as its fallback collaborator) and, independently, through the slow
// path alone, and reports any literal for which the two disagree.
// Each worker dedups within its own shard before verifying a literal;
// the shards' dedup sets are then folded into one to report a single
// global Unique count, the same reduce shape as the BRC solver's
// per-thread-map-then-merge.
func Run(reader Reader, opts Options) (Result, error) {
	if opts.NThreads < 1 {
		return Result{}, fmt.Errorf("corpus: n_threads must be greater than 0")
	}
	data := reader.Bytes()
	ranges := threadByteRanges(data, opts.NThreads)

	shards := make([]shard, len(ranges))
	var wg sync.WaitGroup
	for i, rg := range ranges {
		wg.Go(func() {
			shards[i] = scanRange(data[rg[0]:rg[1]])
		})
	}
	wg.Wait()

	var total Result
	global := make(map[uint64]struct{}, 1024)
	for i := range shards {
		total.merge(&shards[i].res)
		for k := range shards[i].seen {
			global[k] = struct{}{}
		}
	}
	total.Unique = int64(len(global))
	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "corpus: %d lines, %d unique, %d mismatches, %d malformed\n",
			total.Lines, total.Unique, len(total.Mismatch), total.Malformed)
	}
	return total, nil
}

// threadByteRanges splits data into up to n contiguous byte ranges on
// newline boundaries, so no worker sees a literal split across a
// range edge. It may return fewer than n ranges for small inputs.
func threadByteRanges(data []byte, n int) [][2]int {
	size := len(data)
	if size == 0 {
		return nil
	}
	chunk := size / n
	if size%n != 0 {
		chunk++
	}
	ranges := make([][2]int, 0, n)
	start := 0
	for start < size {
		end := min(start+chunk, size)
		if end < size {
			if rel := findNewline(data[end:]); rel >= 0 {
				end += rel + 1
			} else {
				end = size
			}
		}
		ranges = append(ranges, [2]int{start, end})
		start = end
	}
	return ranges
}

func scanRange(data []byte) shard {
	var res Result
	seen := make(map[uint64]struct{}, 1024)
	var lines [][2]int
	lines = splitLines(data, lines[:0])

	slow := slowpath.Parser{}
	for _, lr := range lines {
		literal := string(data[lr[0]:lr[1]])
		res.Lines++

		key := xxh3.HashString(literal)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		fast, err := fastfloat.ParseFloat64(literal, slow)
		if err != nil {
			res.Malformed++
			continue
		}
		exact, err := slow.Parse(literal)
		if err != nil {
			res.Malformed++
			continue
		}
		if math.Float64bits(fast) != math.Float64bits(exact) {
			res.Mismatch = append(res.Mismatch, Mismatch{Literal: literal, Fast: fast, Slow: exact})
		}
	}
	return shard{res: res, seen: seen}
}
