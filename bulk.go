package swc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// BulkFileBaseURL is the public host serving the bulk data exports.
const BulkFileBaseURL = "https://raw.githubusercontent.com/evrins/hands-on-api-data/main/bulk/"

// BulkFile names one of the bulk data exports.
type BulkFile string

const (
	BulkPlayers      BulkFile = "players"
	BulkLeagues      BulkFile = "leagues"
	BulkPerformances BulkFile = "performances"
	BulkTeams        BulkFile = "teams"
	BulkTeamPlayers  BulkFile = "team_players"
)

var bulkFileStems = map[BulkFile]string{
	BulkPlayers:      "player_data",
	BulkLeagues:      "league_data",
	BulkPerformances: "performance_data",
	BulkTeams:        "team_data",
	BulkTeamPlayers:  "team_player_data",
}

func bulkFileNames(ext string) map[BulkFile]string {
	names := make(map[BulkFile]string, len(bulkFileStems))
	for kind, stem := range bulkFileStems {
		names[kind] = stem + ext
	}
	return names
}

// newBulkClient returns the client used for bulk downloads. It never retries
// and follows redirects.
func newBulkClient(opts *Options) *resty.Client {
	return resty.New().
		SetLogger(opts.requestLogger).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))
}

// BulkFileName returns the file name of kind on the file host, with the
// extension selected by the configured bulk file format.
func (c *Client) BulkFileName(kind BulkFile) (string, bool) {
	name, ok := c.bulkFiles[kind]
	return name, ok
}

// GetBulkFile downloads the bulk export named by kind. The body is returned
// whatever the response status; the caller decides whether it is usable.
func (c *Client) GetBulkFile(ctx context.Context, kind BulkFile) ([]byte, error) {
	c.logger.Debugf("Entered get bulk %s file", kind)

	name, ok := c.bulkFiles[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBulkFile, kind)
	}

	fileURL := c.options.bulkFileBaseURL + name

	ctx, span := c.tracer.Start(ctx, "swc.GetBulkFile")
	defer span.End()
	span.SetAttributes(attribute.String("swc.bulk_file", name))

	resp, err := c.bulk.R().SetContext(ctx).Get(fileURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Errorf("Request error occurred: GET %s: %v", fileURL, err)
		return nil, &RequestError{Method: http.MethodGet, Endpoint: fileURL, Err: err}
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode()))

	if resp.StatusCode() == http.StatusOK {
		c.logger.Debugf("File downloaded successfully")
	} else {
		c.logger.Warnf("bulk file %s answered %d", name, resp.StatusCode())
	}

	return resp.Body(), nil
}

// GetBulkPlayerFile returns the bulk file with player data.
func (c *Client) GetBulkPlayerFile(ctx context.Context) ([]byte, error) {
	return c.GetBulkFile(ctx, BulkPlayers)
}

// GetBulkLeagueFile returns the bulk file with league data.
func (c *Client) GetBulkLeagueFile(ctx context.Context) ([]byte, error) {
	return c.GetBulkFile(ctx, BulkLeagues)
}

// GetBulkPerformanceFile returns the bulk file with performance data.
func (c *Client) GetBulkPerformanceFile(ctx context.Context) ([]byte, error) {
	return c.GetBulkFile(ctx, BulkPerformances)
}

// GetBulkTeamFile returns the bulk file with team data.
func (c *Client) GetBulkTeamFile(ctx context.Context) ([]byte, error) {
	return c.GetBulkFile(ctx, BulkTeams)
}

// GetBulkTeamPlayerFile returns the bulk file mapping players to teams.
func (c *Client) GetBulkTeamPlayerFile(ctx context.Context) ([]byte, error) {
	return c.GetBulkFile(ctx, BulkTeamPlayers)
}
