// Package committer applies groups of Spanner mutations atomically.
//
// Repositories never write. They return mutations, usecases collect them
// into a CommitPlan, and the Committer applies the plan in one transaction:
//
//	plan := committer.NewPlan()
//	plan.Add(productRepo.InsertMut(product))
//	return c.Apply(ctx, plan)
//
// Workflows that read before they write run inside ReadWrite. Reads go
// through the Tx, which is scoped to the Spanner read-write transaction,
// and the plan is buffered on it. Buffered mutations only become visible
// at commit, so a body must not expect to read back its own writes.
package committer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
)

var (
	// ErrTransactionFailed wraps any Spanner failure while committing.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrDuplicateKey is returned when a commit violates a primary key or unique index.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrReferenceViolation is returned when a commit breaks a foreign key.
	ErrReferenceViolation = errors.New("foreign key violation")
)

// CommitPlan collects mutations from several repositories.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates an empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{mutations: make([]*spanner.Mutation, 0)}
}

// Add appends a mutation. Nil mutations are ignored.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple appends several mutations.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns the collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty reports whether the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Reader is the read surface shared by single-use reads and read-write
// transactions. *spanner.ReadOnlyTransaction and *spanner.ReadWriteTransaction
// both satisfy it.
type Reader interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

// Tx is the scope handed to a ReadWrite body.
type Tx interface {
	Reader
	Buffer(plan *CommitPlan) error
}

// Runner is what usecases depend on, so tests can substitute an in-memory runner.
type Runner interface {
	Apply(ctx context.Context, plan *CommitPlan) error
	ReadWrite(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	Single() Reader
}

// Committer runs plans against a Spanner client.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply commits the plan in a single transaction.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return classify(err)
	}
	return nil
}

// ReadWrite runs fn inside a read-write transaction and commits whatever fn
// buffered. Spanner may call fn more than once if the transaction aborts,
// so fn must not keep state across calls.
//
// An error returned by fn itself is passed through unchanged, so domain
// sentinels survive for errors.Is. Failures raised by Spanner are wrapped
// in ErrTransactionFailed.
func (c *Committer) ReadWrite(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	var bodyErr error
	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		bodyErr = fn(ctx, &spannerTx{txn: txn})
		return bodyErr
	})
	if err == nil {
		return nil
	}
	if bodyErr != nil {
		return bodyError(bodyErr)
	}
	return classify(err)
}

// bodyError classifies an error returned from a transaction body when it
// carries a gRPC status, such as a failed read. Domain errors pass through.
func bodyError(err error) error {
	if spanner.ErrCode(err) == codes.Unknown {
		return err
	}
	return classify(err)
}

// Single returns a reader for a one-off strong read outside any transaction.
func (c *Committer) Single() Reader {
	return c.client.Single()
}

type spannerTx struct {
	txn *spanner.ReadWriteTransaction
}

func (t *spannerTx) ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error) {
	return t.txn.ReadRow(ctx, table, key, columns)
}

func (t *spannerTx) Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator {
	return t.txn.Query(ctx, statement)
}

func (t *spannerTx) Buffer(plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}
	return t.txn.BufferWrite(plan.Mutations())
}

func classify(err error) error {
	switch spanner.ErrCode(err) {
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %w: %w", ErrTransactionFailed, ErrDuplicateKey, err)
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %w: %w", ErrTransactionFailed, ErrReferenceViolation, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}
}
