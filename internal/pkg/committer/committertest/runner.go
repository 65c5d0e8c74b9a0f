// Package committertest provides an in-memory committer.Runner for usecase tests.
//
// Fake repositories register the effect each mutation has on their in-memory
// state with Track. The runner runs an effect only when its mutation was
// buffered by a transaction body that succeeded, which mirrors how Spanner
// commits all or nothing.
package committertest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// ErrNoStorage is returned by the fake transaction's read methods.
var ErrNoStorage = errors.New("committertest: reads go through fake repositories")

// Runner is an in-memory committer.Runner.
type Runner struct {
	mu      sync.Mutex
	effects map[*spanner.Mutation]func()

	// AbortOnce makes the next ReadWrite run its body twice, discarding the
	// first attempt, the way Spanner retries an aborted transaction.
	AbortOnce bool

	// CommitErr, when set, fails the next commit after the body succeeded.
	CommitErr error

	// Commits counts successful commits. Attempts counts body invocations.
	Commits  int
	Attempts int
}

// NewRunner creates an empty Runner.
func NewRunner() *Runner {
	return &Runner{effects: make(map[*spanner.Mutation]func())}
}

// Track binds an effect to mut and returns mut.
func (r *Runner) Track(mut *spanner.Mutation, effect func()) *spanner.Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.effects[mut] = effect
	return mut
}

// Apply commits plan.
func (r *Runner) Apply(_ context.Context, plan *committer.CommitPlan) error {
	return r.commit([]*committer.CommitPlan{plan})
}

// ReadWrite runs fn against a fake transaction and commits what it buffered.
func (r *Runner) ReadWrite(ctx context.Context, fn func(ctx context.Context, tx committer.Tx) error) error {
	if r.AbortOnce {
		r.AbortOnce = false
		r.Attempts++
		_ = fn(ctx, &Tx{})
	}

	tx := &Tx{}
	r.Attempts++
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return r.commit(tx.plans)
}

func (r *Runner) commit(plans []*committer.CommitPlan) error {
	if r.CommitErr != nil {
		err := r.CommitErr
		r.CommitErr = nil
		return fmt.Errorf("%w: %w", committer.ErrTransactionFailed, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, plan := range plans {
		for _, mut := range plan.Mutations() {
			if effect, ok := r.effects[mut]; ok {
				effect()
				delete(r.effects, mut)
			}
		}
	}
	r.Commits++
	return nil
}

// Single returns a fake reader.
func (r *Runner) Single() committer.Reader {
	return &Tx{}
}

// Tx is the fake transaction handed to ReadWrite bodies.
type Tx struct {
	plans []*committer.CommitPlan
}

// ReadRow always fails; fake repositories read their own state.
func (t *Tx) ReadRow(context.Context, string, spanner.Key, []string) (*spanner.Row, error) {
	return nil, ErrNoStorage
}

// Query always returns nil; fake repositories read their own state.
func (t *Tx) Query(context.Context, spanner.Statement) *spanner.RowIterator {
	return nil
}

// Buffer records plan for commit.
func (t *Tx) Buffer(plan *committer.CommitPlan) error {
	t.plans = append(t.plans, plan)
	return nil
}

// Placeholder returns a distinct mutation for fakes to Track.
func Placeholder(table string) *spanner.Mutation {
	return spanner.Delete(table, spanner.Key{"placeholder"})
}
