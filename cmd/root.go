package cmd

import "go.uber.org/zap"

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Run     RunCmd     `cmd:"" default:"1"                 help:"Run the full pipeline"`
	Extract ExtractCmd `cmd:"" help:"Run the extract stage only"`
	Migrate MigrateCmd `cmd:"" help:"Create or upgrade the warehouse schema"`
}

func newLogger(debug bool) *zap.Logger {
	logConfig := zap.NewProductionConfig()
	if debug {
		logConfig = zap.NewDevelopmentConfig()
		logConfig.DisableStacktrace = true
	}

	logger, _ := logConfig.Build()

	return logger
}
