package puzzle

import (
	"errors"
	"sort"

	"github.com/katalvlaran/wordsearch/direction"
	"github.com/katalvlaran/wordsearch/grid"
	"github.com/katalvlaran/wordsearch/placement"
)

// attempt is one whole-grid generation outcome, kept only while it is the
// best seen so far.
type attempt struct {
	display  *grid.Grid
	solution *grid.Grid
	placed   []placement.PlacedWord
	failed   []string
}

// Generate produces a word-search puzzle for words under opts.
//
// Pipeline per attempt: fresh display+solution grids → words longest-first
// through placement.Search → display densified via FillRemaining. The best
// attempt (strictly most words placed) is retained; placing every word ends
// the retry loop immediately.
//
// Contracts:
//   - words non-empty (ErrNoWords), each word uppercase A–Z and non-empty
//     (placement sentinels) — all checked before any attempt runs.
//   - opts.Size positive (grid.ErrGridSize); opts.Directions resolvable
//     (direction.ErrNoDirections).
//
// Errors: the fail-fast sentinels above, or ErrExhausted when the best
// attempt placed zero words. Partial placement is NOT an error: the Result
// is usable and Failed carries the diagnostics.
//
// Complexity: O(Attempts × W × N² × V × L); see doc.go.
func Generate(words []string, opts Options) (Result, error) {
	if err := validateWords(words); err != nil {
		return Result{}, err
	}
	if opts.Size < 1 {
		return Result{}, grid.ErrGridSize
	}
	vectors, err := opts.Directions.Resolve()
	if err != nil {
		return Result{}, err
	}

	attempts := opts.Attempts
	if attempts < 1 {
		attempts = DefaultAttempts
	}
	wordAttempts := opts.WordAttempts
	if wordAttempts < 1 {
		wordAttempts = DefaultWordAttempts
	}
	popts := opts.Placement
	if popts == (placement.Options{}) {
		popts = placement.DefaultOptions()
	}

	// Longest first; stable so the pre-shuffle order is deterministic.
	ordered := make([]string, len(words))
	copy(ordered, words)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	var (
		best *attempt
		ran  int
	)
	for k := 0; k < attempts; k++ {
		ran = k + 1
		r := attemptRand(opts.Rand, opts.Seed, k)

		cur, err := runAttempt(ordered, opts.Size, vectors, wordAttempts, r, popts)
		if err != nil {
			return Result{}, err
		}

		if best == nil || len(cur.placed) > len(best.placed) {
			best = cur
		}
		if len(cur.failed) == 0 {
			// A perfect attempt cannot be beaten; further retries are waste.
			break
		}
	}

	if len(best.placed) == 0 {
		return Result{}, ErrExhausted
	}
	return Result{
		DisplayGrid:  best.display,
		SolutionGrid: best.solution,
		Placed:       best.placed,
		Failed:       best.failed,
		Attempts:     ran,
	}, nil
}

// runAttempt executes one whole-grid generation pass over private grids:
// place every word, then densify the display grid. The only expected
// per-word failure is ErrNoPlacement, which lands the word on the failed
// list; any other Search error is a contract violation and aborts
// generation rather than being swallowed.
func runAttempt(ordered []string, size int, vectors []direction.Vector, wordAttempts int, r grid.Rand, popts placement.Options) (*attempt, error) {
	display, err := grid.New(size)
	if err != nil {
		return nil, err
	}
	solution, err := grid.New(size)
	if err != nil {
		return nil, err
	}

	// Each attempt works its own word order: equal-length runs are shuffled
	// so retries explore different placement orders, while longest-first is
	// preserved.
	attemptOrder := make([]string, len(ordered))
	copy(attemptOrder, ordered)
	shuffleEqualLengths(attemptOrder, r)

	cur := &attempt{display: display, solution: solution}
	for _, w := range attemptOrder {
		placed := false
		for try := 0; try < wordAttempts && !placed; try++ {
			p, err := placement.Search(w, display, solution, vectors, r, popts)
			switch {
			case err == nil:
				cur.placed = append(cur.placed, p)
				placed = true
			case errors.Is(err, placement.ErrNoPlacement):
				// The search scans exhaustively; rescanning the unchanged
				// grid cannot succeed, so further tries are skipped.
				try = wordAttempts
			default:
				return nil, err
			}
		}
		if !placed {
			cur.failed = append(cur.failed, w)
		}
	}
	display.FillRemaining(r)

	return cur, nil
}

// shuffleEqualLengths randomizes the order of words within each run of equal
// length. Runs are delimited on the already longest-first-sorted slice, so
// the sort invariant survives the shuffle.
func shuffleEqualLengths(ordered []string, r grid.Rand) {
	start := 0
	for i := 1; i <= len(ordered); i++ {
		if i < len(ordered) && len(ordered[i]) == len(ordered[start]) {
			continue
		}
		if run := ordered[start:i]; len(run) > 1 {
			r.Shuffle(len(run), func(a, b int) {
				run[a], run[b] = run[b], run[a]
			})
		}
		start = i
	}
}

// validateWords fails fast on structurally invalid input, before any attempt
// allocates a grid. Per-word letter checks reuse the placement sentinels so
// callers match one error regardless of where it surfaced.
func validateWords(words []string) error {
	if len(words) == 0 {
		return ErrNoWords
	}
	for _, w := range words {
		if len(w) == 0 {
			return placement.ErrEmptyWord
		}
		for i := 0; i < len(w); i++ {
			if w[i] < 'A' || w[i] > 'Z' {
				return placement.ErrWordLetters
			}
		}
	}
	return nil
}
