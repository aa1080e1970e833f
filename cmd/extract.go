package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/BrewLake/configs"
	"droscher.com/BrewLake/pkg/integrations"
	"droscher.com/BrewLake/pkg/pipeline"
	"droscher.com/BrewLake/pkg/storage"
)

type ExtractCmd struct {
	ConfigFile string `default:".BrewLake.toml" help:"Path to config file" short:"c"`
}

func (e *ExtractCmd) Run(cmdContext *Context) error {
	logger := newLogger(cmdContext.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(e.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	source := integrations.GetSource(conf.Source.Name, conf, logger)
	if source == nil {
		return fmt.Errorf("%w: unknown source %q", configs.ErrConfiguration, conf.Source.Name)
	}

	runID := uuid.NewString()
	layout := storage.NewLayout(conf.Data.Dir)
	extractor := pipeline.NewExtractor(conf, source, layout, runID, logger.With(zap.String("run_id", runID)))

	return extractor.Run(context.Background())
}
