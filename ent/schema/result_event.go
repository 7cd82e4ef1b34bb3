package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultEvent records one completed quiz.
type ResultEvent struct {
	ent.Schema
}

func (ResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Attempt that produced the result"),
		field.String("subject").
			NotEmpty().
			Comment("Subject title as written in the catalog"),
		field.Int("score").
			NonNegative(),
		field.Int("total").
			Positive().
			Comment("Number of questions in the subject"),
	}
}

func (ResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
	}
}
