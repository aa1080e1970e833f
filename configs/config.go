package configs

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type Source struct {
	Name      string `default:"openbrewerydb"`
	BaseURL   string `fig:"baseurl" default:"https://api.openbrewerydb.org/v1"`
	PerPage   int    `default:"200"`
	MaxPages  int    `default:"0"` // 0 means fetch until an empty page
	UserAgent string `fig:"useragent" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
}

type Fetch struct {
	MaxRetries int           `default:"3"`
	RetryWait  time.Duration `default:"500ms"`
	Timeout    time.Duration `default:"10s"`
}

type Data struct {
	Dir string `default:"data"`
}

type Warehouse struct {
	Driver             string `default:"sqlite"`
	Path               string `default:"data/brewlake.db"`
	Host               string `default:"localhost"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"brewlake"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Config struct {
	Source    Source
	Fetch     Fetch
	Data      Data
	Warehouse Warehouse
}

const envPrefix = "BREWLAKE" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	return &config, nil
}
