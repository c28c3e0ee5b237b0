package config

import (
	"errors"
	"fmt"
)

// Validate checks the loaded configuration. It runs during startup so a
// broken configuration fails fast instead of surfacing on the first
// request.
func (c *Config) Validate() error {
	if c.Wikipedia.Enabled {
		if c.Wikipedia.APIURL == "" {
			return errors.New("wikipedia.api_url is required when wikipedia is enabled")
		}
		if c.Wikipedia.RestURL == "" {
			return errors.New("wikipedia.rest_url is required when wikipedia is enabled")
		}
		if c.Wikipedia.TimeoutSecs <= 0 {
			return errors.New("wikipedia.timeout_seconds must be a positive integer")
		}
		if c.Wikipedia.MaxSentences <= 0 {
			return errors.New("wikipedia.max_sentences must be a positive integer")
		}
		if c.Wikipedia.CachePath == "" {
			return errors.New("wikipedia.cache_path is required when wikipedia is enabled")
		}
	}

	if c.Worker.Concurrency <= 0 {
		return errors.New("worker.concurrency must be a positive integer")
	}
	if len(c.Worker.Queues) == 0 {
		return errors.New("worker.queues must define at least one queue")
	}
	for name, priority := range c.Worker.Queues {
		if name == "" {
			return errors.New("worker.queues contains an empty queue name")
		}
		if priority <= 0 {
			return fmt.Errorf("worker.queues priority for queue '%s' must be positive", name)
		}
	}

	return nil
}
