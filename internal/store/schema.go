package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names shared by the repos.
const (
	preferencesTable = "preferences"
	resultsTable     = "result_events"

	colID        = "id"
	colKey       = "key"
	colValue     = "value"
	colUpdatedAt = "updated_at"
	colSequence  = "sequence"
	colTimestamp = "timestamp"
	colSessionID = "session_id"
	colSubject   = "subject"
	colScore     = "score"
	colTotal     = "total"
)

var (
	// PreferencesColumns holds the columns for the "preferences" table.
	PreferencesColumns = []*schema.Column{
		{Name: colKey, Type: field.TypeString},
		{Name: colValue, Type: field.TypeString},
		{Name: colUpdatedAt, Type: field.TypeTime},
	}
	// PreferencesTable holds the single-string key/value settings.
	PreferencesTable = &schema.Table{
		Name:       preferencesTable,
		Columns:    PreferencesColumns,
		PrimaryKey: []*schema.Column{PreferencesColumns[0]},
	}

	// ResultEventsColumns holds the columns for the "result_events" table.
	ResultEventsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colTimestamp, Type: field.TypeTime},
		{Name: colSessionID, Type: field.TypeString},
		{Name: colSubject, Type: field.TypeString},
		{Name: colScore, Type: field.TypeInt},
		{Name: colTotal, Type: field.TypeInt},
	}
	// ResultEventsTable is the append-only log of completed quizzes.
	ResultEventsTable = &schema.Table{
		Name:       resultsTable,
		Columns:    ResultEventsColumns,
		PrimaryKey: []*schema.Column{ResultEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resultevent_subject",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[4]},
			},
			{
				Name:    "resultevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[2]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PreferencesTable,
		ResultEventsTable,
	}
)

// migrate creates or upgrades every table in Tables.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	return m.Create(ctx, Tables...)
}
