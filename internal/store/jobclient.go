package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"
)

// AsynqJobClient is the concrete JobClient backed by an asynq queue.
var _ JobClient = (*AsynqJobClient)(nil)

type AsynqJobClient struct {
	client *asynq.Client
}

func NewAsynqJobClient(redisAddr, redisPassword string, redisDB int) (*AsynqJobClient, error) {
	if redisAddr == "" {
		return nil, fmt.Errorf("redis address is required for the job client")
	}
	cli := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
	return &AsynqJobClient{client: cli}, nil
}

func (jc *AsynqJobClient) Close() error {
	return jc.client.Close()
}

func (jc *AsynqJobClient) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if jc.client == nil {
		return nil, fmt.Errorf("job client is not initialized")
	}
	info, err := jc.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return nil, fmt.Errorf("enqueue %s: %w", task.Type(), err)
	}
	// Asynq task IDs are UUIDs; parse for structured logging so queue
	// entries can be correlated with worker logs.
	if taskID, perr := uuid.Parse(info.ID); perr == nil {
		log.WithFields(log.Fields{"task_id": taskID, "type": task.Type(), "queue": info.Queue}).
			Debug("task enqueued")
	} else {
		log.WithFields(log.Fields{"task_id": info.ID, "type": task.Type()}).
			Debug("task enqueued (non-uuid id)")
	}
	return info, nil
}
