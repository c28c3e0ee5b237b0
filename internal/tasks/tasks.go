package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task types used with asynq.
const (
	// TypeWikiPrefetch warms the summary cache for one word/sense pair.
	TypeWikiPrefetch = "wiki:prefetch"
)

// WikiPrefetchPayload identifies the word/sense pair to prefetch.
type WikiPrefetchPayload struct {
	Word    string `json:"word"`
	Context string `json:"context"`
}

// NewWikiPrefetchTask builds the asynq task for a prefetch job.
func NewWikiPrefetchTask(word, contextLabel string) (*asynq.Task, error) {
	payload, err := json.Marshal(WikiPrefetchPayload{Word: word, Context: contextLabel})
	if err != nil {
		return nil, fmt.Errorf("marshal prefetch payload: %w", err)
	}
	return asynq.NewTask(TypeWikiPrefetch, payload), nil
}
