// Package pipeline wires the validator and its collaborators from one configuration.
package pipeline

import (
	"context"
	"fmt"

	"github.com/ppiankov/notmytype/internal/cache"
	"github.com/ppiankov/notmytype/internal/catalog"
	"github.com/ppiankov/notmytype/internal/gallery"
	"github.com/ppiankov/notmytype/internal/llm"
	"github.com/ppiankov/notmytype/internal/logging"
	"github.com/ppiankov/notmytype/internal/model"
	"github.com/ppiankov/notmytype/internal/server"
	"github.com/ppiankov/notmytype/internal/share"
	"github.com/ppiankov/notmytype/internal/store"
	"github.com/ppiankov/notmytype/internal/validate"
	"github.com/ppiankov/notmytype/internal/worker"
)

// Pipeline holds the configured components
type Pipeline struct {
	validator *validate.Validator
	catalog   *catalog.Client
	gallery   *gallery.Gallery
	store     *store.Store
	critic    *llm.Critic // nil when no provider is configured
	logger    logging.Logger
	config    *model.Config
}

// NewPipeline creates a pipeline from cfg
func NewPipeline(cfg *model.Config, logger logging.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	var critic *llm.Critic
	if cfg.LLM.Provider != "" {
		c, err := llm.NewCritic(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			return nil, fmt.Errorf("init llm provider: %w", err)
		}
		critic = c
	}

	client := catalog.NewClient(cfg.Catalog,
		catalog.WithCache(cache.New(cfg.Cache)),
		catalog.WithLimiter(worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)),
		catalog.WithLogger(logger),
	)

	return &Pipeline{
		validator: validate.NewValidator(),
		catalog:   client,
		gallery:   gallery.Curated(),
		store:     store.New(cfg.Store.Path, store.WithLogger(logger)),
		critic:    critic,
		logger:    logger,
		config:    cfg,
	}, nil
}

// Validate scores a pairing and, when asked and configured, attaches a critique.
// The critique runs after scoring and never changes it.
func (p *Pipeline) Validate(ctx context.Context, heading, body string, critique bool) model.Report {
	report := model.Report{
		Validation: p.validator.Validate(heading, body),
		ShareQuery: share.Encode(heading, body),
	}

	if critique {
		if p.critic == nil {
			p.logger.Warn("critique requested but no llm provider configured")
		} else {
			report.Critique = p.critic.Critique(ctx, report.Validation)
		}
	}

	return report
}

// ShareLink is the playground link for a pairing on the configured base URL
func (p *Pipeline) ShareLink(heading, body string) string {
	return share.Link(p.config.Server.BaseURL, heading, body)
}

// BatchValidator validates pairs files with the configured worker count
func (p *Pipeline) BatchValidator(workers int) *worker.BatchValidator {
	if workers <= 0 {
		workers = p.config.Concurrency.Workers
	}
	return worker.NewBatchValidator(p.validator, workers)
}

// Server builds the HTTP API over the pipeline's components
func (p *Pipeline) Server() *server.Server {
	return server.New(p.config.Server, server.Deps{
		Gallery: p.gallery,
		Store:   p.store,
		Fonts:   p.catalog,
		Critic:  p.critic,
		Logger:  p.logger,
	})
}

// Catalog returns the font catalog client
func (p *Pipeline) Catalog() *catalog.Client {
	return p.catalog
}

// Gallery returns the curated gallery
func (p *Pipeline) Gallery() *gallery.Gallery {
	return p.gallery
}

// Store returns the saved-pairing store
func (p *Pipeline) Store() *store.Store {
	return p.store
}
