package integrations

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BrewLake/configs"
	"droscher.com/BrewLake/pkg/integrations/openbrewerydb"
	"droscher.com/BrewLake/pkg/model"
)

// Source produces an ordered, finite sequence of raw pages from an external
// record source. Fetching stops when a returned page is empty.
type Source interface {
	Name() string
	FetchPage(ctx context.Context, page int) (*model.RawPage, error)
}

func GetSource(name string, conf *configs.Config, logger *zap.Logger) Source {
	if name == openbrewerydb.SourceName {
		return openbrewerydb.NewSource(conf, logger)
	}

	return nil
}
