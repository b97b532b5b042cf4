package puzzle

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// entry is one registered solver.
type entry struct {
	name  string
	solve SolveFunc
}

// Registry maps day numbers to solvers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[int]entry
	log     logrus.FieldLogger
}

// NewRegistry returns an empty Registry. A nil logger discards log output.
func NewRegistry(log logrus.FieldLogger) *Registry {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &Registry{
		entries: make(map[int]entry),
		log:     log,
	}
}

// Add registers fn as the solver for day.
func (r *Registry) Add(day int, name string, fn SolveFunc) error {
	if day < 1 || day > 25 {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.entries[day]; ok {
		return fmt.Errorf("%w: day %d is %q", ErrDuplicateDay, day, prev.name)
	}
	r.entries[day] = entry{name: name, solve: fn}

	return nil
}

// Lookup returns the solver and its name for day.
func (r *Registry) Lookup(day int) (SolveFunc, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[day]
	if !ok {
		return nil, "", fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return e.solve, e.name, nil
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	days := make([]int, 0, len(r.entries))
	for d := range r.entries {
		days = append(days, d)
	}
	sort.Ints(days)

	return days
}

// Name returns the registered name for day, or "" when unknown.
func (r *Registry) Name(day int) string {
	_, name, err := r.Lookup(day)
	if err != nil {
		return ""
	}
	return name
}

// Run solves day from in. The Answer's Day field is filled in, and any solver
// error is wrapped with the day number.
func (r *Registry) Run(ctx context.Context, day int, in io.Reader, cfg Config) (Answer, error) {
	solve, name, err := r.Lookup(day)
	if err != nil {
		return Answer{}, err
	}
	log := r.log.WithFields(logrus.Fields{"day": day, "puzzle": name})
	log.Debug("solving")

	start := time.Now()
	ans, err := solve(ctx, in, cfg)
	elapsed := time.Since(start)
	if err != nil {
		log.WithError(err).WithField("elapsed", elapsed).Error("solve failed")
		return Answer{}, fmt.Errorf("puzzle: day %d (%s): %w", day, name, err)
	}
	ans.Day = day
	log.WithFields(logrus.Fields{
		"part1":   ans.Part1,
		"part2":   ans.Part2,
		"elapsed": elapsed,
	}).Info("solved")

	return ans, nil
}
