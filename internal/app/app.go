package app

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"lexis/internal/config"
	"lexis/internal/lexicon"
	"lexis/internal/services"
	"lexis/internal/store"
	"lexis/internal/wiki"
)

type App struct {
	Config  *config.Config
	Lexicon *lexicon.Lexicon

	SummaryCache store.SummaryCache
	JobClient    store.JobClient

	Disambiguation *services.DisambiguationService
	// Lookup is nil when the Wikipedia collaborator is disabled.
	Lookup *services.LookupService
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// Configuration and reference tables are validated up front: a process
	// with broken tables cannot serve any request, so it must not start.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := app.initLexicon(); err != nil {
		return nil, err
	}
	if err := app.initJobClient(); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}
	if err := app.initLookup(); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}

	app.Disambiguation = services.NewDisambiguationService(app.Lexicon)

	log.WithFields(log.Fields{
		"words":      len(app.Lexicon.Words()),
		"categories": len(app.Lexicon.Categories()),
	}).Debug("application initialization complete")
	return app, nil
}

func (a *App) initLexicon() error {
	lex, err := lexicon.Builtin()
	if err != nil {
		return fmt.Errorf("init lexicon: %w", err)
	}
	a.Lexicon = lex
	return nil
}

func (a *App) initJobClient() error {
	jc, err := store.NewAsynqJobClient(a.Config.Redis.Address, a.Config.Redis.Password, a.Config.Redis.DB)
	if err != nil {
		return fmt.Errorf("init job client: %w", err)
	}
	a.JobClient = jc
	return nil
}

func (a *App) initLookup() error {
	cfg := a.Config
	if !cfg.Wikipedia.Enabled {
		log.Debug("wikipedia lookup disabled, resolutions will carry hints only")
		return nil
	}

	cache, err := store.NewSQLiteSummaryCache(cfg.Wikipedia.CachePath)
	if err != nil {
		return fmt.Errorf("init summary cache: %w", err)
	}
	a.SummaryCache = cache

	client := wiki.NewClient(
		cfg.Wikipedia.APIURL,
		cfg.Wikipedia.RestURL,
		wiki.WithUserAgent(cfg.Wikipedia.UserAgent),
		wiki.WithTimeout(time.Duration(cfg.Wikipedia.TimeoutSecs)*time.Second),
	)
	a.Lookup = services.NewLookupService(client, cache, a.Lexicon, cfg.Wikipedia.MaxSentences)
	return nil
}

func (a *App) cleanupPartialInit() {
	if a.JobClient != nil {
		a.JobClient.Close()
	}
	if a.SummaryCache != nil {
		a.SummaryCache.Close()
	}
}

// Close releases held resources. Safe to call once after use.
func (a *App) Close() {
	a.cleanupPartialInit()
}
