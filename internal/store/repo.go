package store

import (
	"context"
	"time"
)

// QueryOpts configures result queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Subject string    // exact subject name ("" = all)
	After   int64     // sequence > After
	From    time.Time // timestamp >= From
}

// PreferenceRepo is a string key/value store for user settings.
type PreferenceRepo interface {
	// Get returns the value for key. ok is false if the key was never set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// ResultEventData captures a completed quiz.
type ResultEventData struct {
	SessionID string
	Subject   string
	Score     int
	Total     int
}

// ResultEventRecord is a ResultEventData as read back from the log.
type ResultEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ResultEventData
}

// ResultRepo provides append and query access to completed quiz results.
type ResultRepo interface {
	// AppendResult records a completed quiz.
	AppendResult(ctx context.Context, data ResultEventData) error

	// QueryResults returns results newest first.
	QueryResults(ctx context.Context, opts QueryOpts) ([]ResultEventRecord, error)

	// BestScore returns the highest score recorded for subject.
	// ok is false if the subject has never been completed.
	BestScore(ctx context.Context, subject string) (best ResultEventRecord, ok bool, err error)
}
