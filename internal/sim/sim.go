// Package sim batch-plays boards with a uniform random move policy and
// aggregates the resulting run statistics. It exists to sanity-check
// scoring balance across board configurations without a terminal.
package sim

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/stat"

	engine "github.com/BruceRanger/rockswap/internal/games/rockswap/core"
)

// Options control a batch run.
type Options struct {
	Rules    engine.Rules
	Runs     int   // Number of games to play
	MaxMoves int   // Stop a run after this many swaps; 0 plays to game over
	Seed     int64 // Master seed; run i plays with Seed+i
	Workers  int   // Parallel games; 0 uses all CPUs
}

// DefaultOptions returns a batch of 1000 standard games capped at 200 moves.
// The cap matters: random play on a refilling board rarely goes dead.
func DefaultOptions() Options {
	return Options{
		Rules:    engine.DefaultRules(),
		Runs:     1000,
		MaxMoves: 200,
		Seed:     1,
	}
}

// RunResult captures one simulated game.
type RunResult struct {
	Seed      int64
	Score     int
	Moves     int
	MaxChain  int
	Passes    int  // Productive cascade passes across the whole run
	LimitHits int  // Moves cut short by the pass ceiling
	Stuck     bool // Ended with no legal swap left, not at the move cap
}

// Distribution summarizes one metric across runs.
type Distribution struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
	Max    float64 `json:"max"`
}

// Summary aggregates a whole batch.
type Summary struct {
	Runs     int          `json:"runs"`
	Score    Distribution `json:"score"`
	Moves    Distribution `json:"moves"`
	MaxChain Distribution `json:"max_chain"`
	Passes   Distribution `json:"passes"`
	// StuckRate is the fraction of runs that ended on a dead board.
	StuckRate float64 `json:"stuck_rate"`
}

// Runner plays full games with a uniform random policy.
type Runner struct {
	opts Options
}

// NewRunner validates the options and creates a runner.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Runs < 1 {
		return nil, fmt.Errorf("sim: runs must be at least 1, got %d", opts.Runs)
	}
	if opts.MaxMoves < 0 {
		return nil, fmt.Errorf("sim: max moves cannot be negative, got %d", opts.MaxMoves)
	}
	return &Runner{opts: opts}, nil
}

// RunOne plays a single game to its end (dead board or move cap) with the
// given seed. The same seed always produces the same result.
func (r *Runner) RunOne(seed int64) RunResult {
	rng := rand.New(rand.NewSource(seed))
	session := engine.NewSession(r.opts.Rules, rng)

	res := RunResult{Seed: seed}
	for !session.GameOver() {
		if r.opts.MaxMoves > 0 && session.Moves() >= r.opts.MaxMoves {
			break
		}

		swaps := engine.LegalSwaps(session.Board())
		if len(swaps) == 0 {
			break
		}
		pick := swaps[rng.Intn(len(swaps))]
		if !session.Swap(pick[0], pick[1]) {
			break
		}
		for _, p := range session.Resolve() {
			if !p.Stable {
				res.Passes++
			}
		}
	}

	res.Score = session.Score()
	res.Moves = session.Moves()
	res.MaxChain = session.MaxChain()
	res.LimitHits = session.LimitHits()
	res.Stuck = session.GameOver()
	return res
}

// Run plays the whole batch and returns every run plus a summary. Results
// are deterministic for a given Options regardless of worker count. The
// optional progress callback receives the number of finished games; it may
// be called concurrently from multiple goroutines.
func (r *Runner) Run(progress func(done int)) ([]RunResult, Summary) {
	results := make([]RunResult, r.opts.Runs)

	workers := r.opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > r.opts.Runs {
		workers = r.opts.Runs
	}

	var done atomic.Int64
	var wg sync.WaitGroup
	next := make(chan int)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				results[i] = r.RunOne(r.opts.Seed + int64(i))
				if progress != nil {
					progress(int(done.Add(1)))
				}
			}
		}()
	}
	for i := range results {
		next <- i
	}
	close(next)
	wg.Wait()

	return results, Summarize(results)
}

// Summarize aggregates run results into per-metric distributions.
func Summarize(results []RunResult) Summary {
	n := len(results)
	sum := Summary{Runs: n}
	if n == 0 {
		return sum
	}

	scores := make([]float64, n)
	moves := make([]float64, n)
	chains := make([]float64, n)
	passes := make([]float64, n)
	stuck := 0
	for i, res := range results {
		scores[i] = float64(res.Score)
		moves[i] = float64(res.Moves)
		chains[i] = float64(res.MaxChain)
		passes[i] = float64(res.Passes)
		if res.Stuck {
			stuck++
		}
	}

	sum.Score = describe(scores)
	sum.Moves = describe(moves)
	sum.MaxChain = describe(chains)
	sum.Passes = describe(passes)
	sum.StuckRate = float64(stuck) / float64(n)
	return sum
}

// describe computes the distribution summary of one metric.
func describe(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Distribution{
		Mean:   stat.Mean(sorted, nil),
		StdDev: stdDev(sorted),
		Min:    sorted[0],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
}

// stdDev guards the single-sample case, where the sample standard
// deviation is undefined.
func stdDev(sorted []float64) float64 {
	if len(sorted) < 2 {
		return 0
	}
	return stat.StdDev(sorted, nil)
}
