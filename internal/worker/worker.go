// Package worker registers the asynq handlers for background jobs.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"lexis/internal/models"
	"lexis/internal/services"
	"lexis/internal/tasks"
)

// PrefetchDeps bundles what the prefetch handler needs.
type PrefetchDeps struct {
	Lookup *services.LookupService
}

// RegisterHandlers wires all task handlers onto the mux.
func RegisterHandlers(mux *asynq.ServeMux, deps PrefetchDeps) {
	mux.HandleFunc(tasks.TypeWikiPrefetch, HandleWikiPrefetchJob(deps))
}

// HandleWikiPrefetchJob warms the summary cache for the word/sense pair
// named in the payload. Errors are returned so asynq retries with
// backoff; a word that has left the inventory is dropped instead.
func HandleWikiPrefetchJob(deps PrefetchDeps) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload tasks.WikiPrefetchPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
		}

		logger := log.WithFields(log.Fields{"word": payload.Word, "context": payload.Context})
		if err := deps.Lookup.Prefetch(ctx, payload.Word, payload.Context); err != nil {
			if errors.Is(err, models.ErrUnknownWord) {
				logger.Warn("word no longer in inventory, dropping prefetch job")
				return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
			}
			logger.WithError(err).Warn("wiki prefetch failed")
			return err
		}
		logger.Info("wiki prefetch complete")
		return nil
	}
}
