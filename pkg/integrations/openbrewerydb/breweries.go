package openbrewerydb

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"droscher.com/BrewLake/pkg/model"
)

// FetchPage requests one page of the brewery listing. Pages are requested in
// order by the caller; this call has no local side effects beyond network
// I/O, so a retried page never duplicates landed state.
func (s *Source) FetchPage(ctx context.Context, page int) (*model.RawPage, error) {
	var breweries []model.Brewery

	response, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":     strconv.Itoa(page),
			"per_page": strconv.Itoa(s.perPage),
		}).
		SetResult(&breweries).
		Get("/breweries")
	if err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", ErrFetch, page, err)
	}

	if !response.IsSuccess() {
		return nil, fmt.Errorf("%w: page %d: status %d", ErrFetch, page, response.StatusCode())
	}

	s.logger.Debug("fetched page", zap.Int("page", page), zap.Int("records", len(breweries)))

	return &model.RawPage{Number: page, Breweries: breweries}, nil
}
