package main

import (
	"log/slog"
	"strings"
	"sync"

	"trackdesk/internal/config"
	"trackdesk/internal/forms"
	"trackdesk/internal/generation"
	"trackdesk/internal/logging"
	"trackdesk/internal/media"
	"trackdesk/internal/records"
	"trackdesk/internal/resolve"
	"trackdesk/internal/services/llm"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// app bundles the wired components one command invocation works with.
type app struct {
	cfg      *config.Config
	store    *records.Store
	resolver *resolve.Resolver
	engine   *forms.Engine
	storage  *media.Storage
	session  *forms.Session
	logger   *slog.Logger
}

// withApp opens the store and assembles the engine for the duration of one
// command. A store that cannot be opened halts the command entirely.
func (c *commandContext) withApp(fn func(*app) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	store, err := records.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	storage := media.NewStorage(cfg)
	resolver := resolve.New(store, resolve.WithLegacyInference(cfg.Catalog.LegacyNameInference))
	engine := forms.New(store, resolver, storage, logger)

	return fn(&app{
		cfg:      cfg,
		store:    store,
		resolver: resolver,
		engine:   engine,
		storage:  storage,
		session:  forms.NewSession(),
		logger:   logger,
	})
}

func (a *app) generator() *generation.Generator {
	client := llm.NewClient(a.cfg.GetLLM())
	return generation.New(a.store, client, generation.NewLogger(a.store), a.storage, a.logger)
}
