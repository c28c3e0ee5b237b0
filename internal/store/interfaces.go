package store

import (
	"context"

	"github.com/hibiken/asynq"
)

// SummaryCache persists fetched knowledge-source summaries between
// requests. Keys are context-aware ("<word>_<context>") so the same word
// can cache different summaries per sense. Misses are cached too: an
// empty summary with ok=true means the source had nothing, and there is
// no point asking again.
type SummaryCache interface {
	Get(ctx context.Context, key string) (summary string, ok bool, err error)
	Put(ctx context.Context, key, summary string) error
	Ping(ctx context.Context) error
	Close() error
}

// JobClient enqueues background tasks.
type JobClient interface {
	Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}
