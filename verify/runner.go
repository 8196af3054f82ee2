package verify

import (
	"context"
	"math/rand"
	"sort"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"

	"github.com/ar90n/partsearch/common"
	"github.com/ar90n/partsearch/constraints"
	"github.com/ar90n/partsearch/pipeline"
)

var log = logrus.WithField("component", "verify")

type Failure struct {
	Trial int
	Check string
	Input []int
	Value int
	Err   error
}

// Report holds the failures of a run. Trials counts the trials that ran every
// check, which is fewer than requested when the run stopped early.
type Report struct {
	Trials   int
	Failures []Failure
}

func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Runner generates random sequences and runs every Check on them. Each trial
// owns its slices, so trials run in parallel without sharing state.
type Runner struct {
	trials      int
	maxLen      int
	maxValue    int
	seed        int64
	workers     int
	maxFailures int
	checks      []Check
}

func NewRunner() *Runner {
	const defaultTrials = 1000
	const defaultMaxLen = 64
	const defaultMaxValue = 32
	return &Runner{
		trials:   defaultTrials,
		maxLen:   defaultMaxLen,
		maxValue: defaultMaxValue,
		seed:     1,
		checks:   Checks,
	}
}

func (r *Runner) SetTrials(trials int) *Runner {
	r.trials = trials
	return r
}

func (r *Runner) SetMaxLen(maxLen int) *Runner {
	r.maxLen = maxLen
	return r
}

func (r *Runner) SetMaxValue(maxValue int) *Runner {
	r.maxValue = maxValue
	return r
}

func (r *Runner) SetSeed(seed int64) *Runner {
	r.seed = seed
	return r
}

// SetWorkers bounds the number of concurrent trials. Zero means one per CPU.
func (r *Runner) SetWorkers(workers int) *Runner {
	r.workers = workers
	return r
}

// SetMaxFailures stops the run once that many failures are collected. Zero
// means no limit.
func (r *Runner) SetMaxFailures(maxFailures int) *Runner {
	r.maxFailures = maxFailures
	return r
}

func (r *Runner) SetChecks(checks []Check) *Runner {
	r.checks = checks
	return r
}

func (r *Runner) Run(ctx context.Context) Report {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := common.WorkerCount(r.workers)
	log.WithFields(logrus.Fields{
		"trials":  r.trials,
		"workers": workers,
		"seed":    r.seed,
	}).Info("running checks")

	var ran int64
	failureStream := make(chan Failure)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(failureStream)

		p := pool.New().WithMaxGoroutines(workers)
		for trial := range pipeline.Seq(ctx, r.trials) {
			if ctx.Err() != nil {
				break
			}
			trial := trial
			p.Go(func() {
				failures, complete := r.runTrial(ctx, trial)
				if complete {
					atomic.AddInt64(&ran, 1)
				}
				for _, f := range failures {
					select {
					case <-ctx.Done():
						return
					case failureStream <- f:
					}
				}
			})
		}
		p.Wait()
	}()

	var stream <-chan Failure = failureStream
	if 0 < r.maxFailures {
		stream = pipeline.Take(ctx, r.maxFailures, stream)
	}
	failures := pipeline.ToSlice(ctx, stream)

	// Trials still in flight see the cancellation and drop their failures.
	cancel()
	<-done

	sort.Slice(failures, func(i, j int) bool {
		if failures[i].Trial != failures[j].Trial {
			return failures[i].Trial < failures[j].Trial
		}
		return failures[i].Check < failures[j].Check
	})

	report := Report{Trials: int(atomic.LoadInt64(&ran)), Failures: failures}
	log.WithFields(logrus.Fields{
		"trials":   report.Trials,
		"failures": len(failures),
	}).Info("checks done")
	return report
}

// runTrial reports whether every check ran. It stops between checks once ctx
// is done.
func (r *Runner) runTrial(ctx context.Context, trial int) ([]Failure, bool) {
	rng := rand.New(rand.NewSource(r.seed + int64(trial)))
	maxValue := constraints.Max(r.maxValue, 1)

	s := make([]int, rng.Intn(constraints.Max(r.maxLen, 0)+1))
	for i := range s {
		s[i] = rng.Intn(maxValue)
	}
	sorted := append([]int{}, s...)
	sort.Ints(sorted)
	v := rng.Intn(maxValue+2) - 1

	var failures []Failure
	for _, check := range r.checks {
		if ctx.Err() != nil {
			return failures, false
		}
		input := s
		if check.Sorted {
			input = sorted
		}
		if err := check.Run(input, v); err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"trial": trial,
				"check": check.Name,
			}).Warn("check failed")
			failures = append(failures, Failure{
				Trial: trial,
				Check: check.Name,
				Input: append([]int{}, input...),
				Value: v,
				Err:   err,
			})
		}
	}
	return failures, true
}
