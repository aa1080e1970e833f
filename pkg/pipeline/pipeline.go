package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/BrewLake/configs"
	"droscher.com/BrewLake/pkg/integrations"
	"droscher.com/BrewLake/pkg/repository"
	"droscher.com/BrewLake/pkg/storage"
)

// Stage is one step of the pipeline. Stages run strictly in order; each
// reads its predecessor's published artifact and publishes its own.
type Stage interface {
	Name() string
	Run(ctx context.Context) error
}

type Pipeline struct {
	stages []Stage
	logger *zap.Logger
	RunID  string
}

// New wires the extract → clean → model stages for one run. Each run gets a
// fresh run ID carried through logs and the bronze snapshot.
func New(conf *configs.Config, source integrations.Source, repo *repository.Repository, logger *zap.Logger) *Pipeline {
	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))
	layout := storage.NewLayout(conf.Data.Dir)

	return &Pipeline{
		RunID:  runID,
		logger: logger,
		stages: []Stage{
			NewExtractor(conf, source, layout, runID, logger),
			NewCleaner(layout, logger),
			NewModeler(layout, repo, logger),
		},
	}
}

// Run executes the stages in order, aborting on the first failure. There is
// no retry here: stage inputs are persisted and deterministic, so a failure
// past extract indicates a logic or environment problem, not a transient one.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()

	for _, stage := range p.stages {
		stageStart := time.Now()
		p.logger.Info("stage starting", zap.String("stage", stage.Name()))

		if err := stage.Run(ctx); err != nil {
			p.logger.Error("stage failed", zap.String("stage", stage.Name()), zap.Error(err))

			return fmt.Errorf("%s stage: %w", stage.Name(), err)
		}

		p.logger.Info("stage complete",
			zap.String("stage", stage.Name()), zap.Duration("elapsed", time.Since(stageStart)))
	}

	p.logger.Info("pipeline complete", zap.Duration("elapsed", time.Since(start)))

	return nil
}
