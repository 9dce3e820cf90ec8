package checkpointtail

import (
	"context"
	"errors"
)

var (
	// ErrMalformedResponse is returned by a CheckpointSource when a response lacks
	// a field the tail depends on or carries a value that cannot be decoded.
	ErrMalformedResponse = errors.New("malformed checkpoint response")

	// ErrRequestRejected is returned by a CheckpointSource when the endpoint refused
	// the request in a way that sending it again cannot fix.
	ErrRequestRejected = errors.New("checkpoint request rejected")
)

// IsRetriable reports whether err is worth another attempt.
// Every failure except a rejected request is considered transient.
func IsRetriable(err error) bool {
	return err != nil && !errors.Is(err, ErrRequestRejected)
}

// Cursor is an opaque pagination token issued by the checkpoint endpoint.
// Cursors are only ever compared for equality.
type Cursor string

// IsEmpty reports whether the cursor holds no token.
func (c Cursor) IsEmpty() bool {
	return c == ""
}

// BalanceChange is a single asset movement on one account within a transaction
// block's effects. Amount is signed: negative values are debits.
type BalanceChange struct {
	Address string // owner address, never empty
	Amount  int64  // signed amount in the coin's smallest unit
}

// CheckpointPage is the result of one forward page query.
type CheckpointPage struct {
	EndCursor      Cursor          // cursor to resume from after this page
	HasNextPage    bool            // whether the endpoint reported more checkpoints after EndCursor
	Checkpoints    int             // number of checkpoints returned in the page
	BalanceChanges []BalanceChange // balance changes of every checkpoint, in document order
}

// LatestAnchor is the starting position found by discovery.
type LatestAnchor struct {
	StartCursor Cursor // cursor of the oldest checkpoint in the discovery window
	Digest      string // digest of that checkpoint, kept for diagnostics only
}

// CheckpointSource provides paginated access to the checkpoint stream.
type CheckpointSource interface {
	// LatestAnchor returns a cursor a few checkpoints behind the current tip,
	// so that the first forward page has data available right away.
	LatestAnchor(ctx context.Context) (LatestAnchor, error)

	// CheckpointPage returns the page of checkpoints that follows after.
	// Implementations return ErrMalformedResponse when the response cannot be
	// decoded and ErrRequestRejected when the endpoint refused the request.
	CheckpointPage(ctx context.Context, after Cursor) (CheckpointPage, error)
}

// Sink receives the balance changes of each delivered page.
type Sink interface {
	// Accept handles one batch, in order. It is called once per delivered page,
	// possibly with an empty batch, and has no way to report failure.
	Accept(ctx context.Context, batch []BalanceChange)
}
