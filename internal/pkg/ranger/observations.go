package ranger

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/twigalabs/rangertrack/internal/pkg/logger"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
)

// observationsPage is one cursor page of the observations endpoint. The
// payload sits under a data envelope with a next link holding the full URL
// of the following page.
type observationsPage struct {
	Data struct {
		Results []models.Observation `json:"results"`
		Next    string               `json:"next"`
	} `json:"data"`
}

// GetObservations fetches all fixes recorded in [since, until] for the given
// source IDs (all sources when empty). It follows the cursor link from each
// page until the server returns an empty results page or no cursor at all,
// so a misbehaving cursor can never loop forever.
func (c *Client) GetObservations(ctx context.Context, sourceIDs []string, since, until time.Time) ([]models.Observation, error) {
	params := url.Values{}
	params.Set("page_size", fmt.Sprintf("%d", c.pageSize))
	params.Set("use_cursor", "true")
	params.Set("since", since.UTC().Format(time.RFC3339))
	params.Set("until", until.UTC().Format(time.RFC3339))
	if len(sourceIDs) > 0 {
		params.Set("source_id", strings.Join(sourceIDs, ","))
	}

	rawURL := fmt.Sprintf("%s/api/v1.0/observations/?%s", c.serverURL, params.Encode())

	var observations []models.Observation
	pages := 0

	for rawURL != "" {
		var page observationsPage
		if err := c.getJSON(ctx, rawURL, "observations", &page); err != nil {
			return nil, err
		}
		pages++

		if len(page.Data.Results) == 0 {
			break
		}
		observations = append(observations, page.Data.Results...)

		rawURL = page.Data.Next
	}

	c.logger.Debug("fetched observations from upstream",
		logger.Int("count", len(observations)),
		logger.Int("pages", pages),
		logger.Strings("source_ids", sourceIDs))

	return observations, nil
}
