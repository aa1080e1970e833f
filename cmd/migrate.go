package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BrewLake/configs"
	"droscher.com/BrewLake/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".BrewLake.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to warehouse", zap.Error(err))

		return err
	}
	defer repo.Close()

	return repo.Migrate(context.Background())
}
