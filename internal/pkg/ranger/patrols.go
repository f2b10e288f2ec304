package ranger

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/twigalabs/rangertrack/internal/pkg/logger"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
)

// patrolsPage mirrors sourcesPage for the patrols endpoint
type patrolsPage struct {
	Results []models.Patrol `json:"results"`
	Next    string          `json:"next"`
	Data    *struct {
		Results []models.Patrol `json:"results"`
		Next    string          `json:"next"`
	} `json:"data"`
}

func (p *patrolsPage) results() []models.Patrol {
	if p.Data != nil {
		return p.Data.Results
	}
	return p.Results
}

func (p *patrolsPage) next() string {
	if p.Data != nil {
		return p.Data.Next
	}
	return p.Next
}

// GetPatrols fetches patrols overlapping [since, until], optionally filtered
// by state (open, done, cancelled)
func (c *Client) GetPatrols(ctx context.Context, since, until time.Time, status string) ([]models.Patrol, error) {
	params := url.Values{}
	params.Set("page_size", fmt.Sprintf("%d", c.pageSize))
	if !since.IsZero() {
		params.Set("filter", fmt.Sprintf(`{"date_range":{"lower":"%s","upper":"%s"}}`,
			since.UTC().Format(time.RFC3339), until.UTC().Format(time.RFC3339)))
	}
	if status != "" {
		params.Set("status", status)
	}

	rawURL := fmt.Sprintf("%s/api/v1.0/activity/patrols/?%s", c.serverURL, params.Encode())

	var patrols []models.Patrol

	for rawURL != "" {
		var page patrolsPage
		if err := c.getJSON(ctx, rawURL, "patrols", &page); err != nil {
			return nil, err
		}

		batch := page.results()
		if len(batch) == 0 {
			break
		}
		patrols = append(patrols, batch...)

		rawURL = page.next()
	}

	c.logger.Debug("fetched patrols from upstream",
		logger.Int("count", len(patrols)),
		logger.String("status", status))

	return patrols, nil
}
