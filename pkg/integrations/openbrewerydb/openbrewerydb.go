package openbrewerydb

import (
	"errors"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"droscher.com/BrewLake/configs"
)

const SourceName = "openbrewerydb"

// ErrFetch wraps any network or status failure that survives the retry
// budget. It is fatal to the run.
var ErrFetch = errors.New("fetch failed")

type Source struct {
	client  *resty.Client
	perPage int
	logger  *zap.Logger
}

// NewSource builds a client for the Open Brewery DB list endpoint. Transient
// failures (transport errors and 5xx responses) are retried with exponential
// backoff before ErrFetch surfaces; 4xx responses are not retried. The API
// rejects default Go user agents, hence the browser-like header.
func NewSource(conf *configs.Config, logger *zap.Logger) *Source {
	client := resty.New().
		SetBaseURL(conf.Source.BaseURL).
		SetHeader("User-Agent", conf.Source.UserAgent).
		SetTimeout(conf.Fetch.Timeout).
		SetRetryCount(conf.Fetch.MaxRetries).
		SetRetryWaitTime(conf.Fetch.RetryWait).
		SetRetryMaxWaitTime(conf.Fetch.RetryWait * retryWaitCap).
		AddRetryCondition(func(response *resty.Response, err error) bool {
			return err != nil || response.StatusCode() >= 500
		})

	return &Source{client: client, perPage: conf.Source.PerPage, logger: logger}
}

const retryWaitCap = 8

func (s *Source) Name() string { return SourceName }
