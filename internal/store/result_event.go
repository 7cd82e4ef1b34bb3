package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// resultRepo implements ResultRepo on the result_events table.
type resultRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

var resultColumns = []string{colID, colSequence, colTimestamp, colSessionID, colSubject, colScore, colTotal}

func (r *resultRepo) AppendResult(ctx context.Context, data ResultEventData) error {
	if data.Subject == "" {
		return fmt.Errorf("save result event: empty subject")
	}
	if data.Score < 0 || data.Score > data.Total {
		return fmt.Errorf("save result event: score %d out of range 0..%d", data.Score, data.Total)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(resultsTable).
		Columns(colSequence, colTimestamp, colSessionID, colSubject, colScore, colTotal).
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Subject, data.Score, data.Total).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save result event: %w", err)
	}
	return nil
}

func (r *resultRepo) QueryResults(ctx context.Context, opts QueryOpts) ([]ResultEventRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(resultColumns...).From(b.Table(resultsTable))

	var preds []*entsql.Predicate
	if opts.Subject != "" {
		preds = append(preds, entsql.EQ(colSubject, opts.Subject))
	}
	if opts.After > 0 {
		preds = append(preds, entsql.GT(colSequence, opts.After))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE(colTimestamp, opts.From.UTC()))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}

	sel.OrderBy(entsql.Desc(colSequence))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	records, err := r.scan(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("query result events: %w", err)
	}
	return records, nil
}

func (r *resultRepo) BestScore(ctx context.Context, subject string) (ResultEventRecord, bool, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(resultColumns...).
		From(b.Table(resultsTable)).
		Where(entsql.EQ(colSubject, subject)).
		OrderBy(entsql.Desc(colScore), entsql.Asc(colSequence)).
		Limit(1).
		Query()

	records, err := r.scan(ctx, query, args)
	if err != nil {
		return ResultEventRecord{}, false, fmt.Errorf("query best score: %w", err)
	}
	if len(records) == 0 {
		return ResultEventRecord{}, false, nil
	}
	return records[0], true, nil
}

func (r *resultRepo) scan(ctx context.Context, query string, args []any) ([]ResultEventRecord, error) {
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ResultEventRecord
	for rows.Next() {
		var rec ResultEventRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Sequence,
			&rec.Timestamp,
			&rec.SessionID,
			&rec.Subject,
			&rec.Score,
			&rec.Total,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
