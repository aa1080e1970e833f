package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/BrewLake/configs"
	"droscher.com/BrewLake/pkg/integrations"
	"droscher.com/BrewLake/pkg/pipeline"
	"droscher.com/BrewLake/pkg/repository"
)

type RunCmd struct {
	ConfigFile string `default:".BrewLake.toml" help:"Path to config file" short:"c"`
}

func (r *RunCmd) Run(cmdContext *Context) error {
	logger := newLogger(cmdContext.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(r.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	source := integrations.GetSource(conf.Source.Name, conf, logger)
	if source == nil {
		return fmt.Errorf("%w: unknown source %q", configs.ErrConfiguration, conf.Source.Name)
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to warehouse", zap.Error(err))

		return err
	}
	defer repo.Close()

	ctx := context.Background()

	if err := pipeline.New(conf, source, repo, logger).Run(ctx); err != nil {
		return err
	}

	locations, types, facts, err := repo.GoldCounts(ctx)
	if err != nil {
		return err
	}

	logger.Info("warehouse ready",
		zap.Int64("dim_location", locations),
		zap.Int64("dim_brewery_type", types),
		zap.Int64("fact_breweries", facts))

	return nil
}
