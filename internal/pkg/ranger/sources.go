package ranger

import (
	"context"
	"fmt"

	"github.com/twigalabs/rangertrack/internal/pkg/logger"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
)

// sourcesPage handles both response shapes the upstream serves: results at
// the top level or nested under a data envelope.
type sourcesPage struct {
	Results []models.Source `json:"results"`
	Next    string          `json:"next"`
	Data    *struct {
		Results []models.Source `json:"results"`
		Next    string          `json:"next"`
	} `json:"data"`
}

func (p *sourcesPage) results() []models.Source {
	if p.Data != nil {
		return p.Data.Results
	}
	return p.Results
}

func (p *sourcesPage) next() string {
	if p.Data != nil {
		return p.Data.Next
	}
	return p.Next
}

// GetSources fetches every registered tracking unit, walking the numbered
// pages until a page comes back empty or without a next link
func (c *Client) GetSources(ctx context.Context) ([]models.Source, error) {
	var sources []models.Source

	for page := 1; ; page++ {
		rawURL := fmt.Sprintf("%s/api/v1.0/sources/?page=%d&page_size=%d", c.serverURL, page, c.pageSize)

		var result sourcesPage
		if err := c.getJSON(ctx, rawURL, "sources", &result); err != nil {
			return nil, err
		}

		batch := result.results()
		if len(batch) == 0 {
			break
		}
		sources = append(sources, batch...)

		if result.next() == "" {
			break
		}
	}

	c.logger.Debug("fetched sources from upstream", logger.Int("count", len(sources)))

	return sources, nil
}
