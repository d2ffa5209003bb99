package swc

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// API endpoints, relative to the configured base URL.
const (
	HealthCheckEndpoint      = "/"
	ListLeaguesEndpoint      = "/v0/leagues/"
	ListPlayersEndpoint      = "/v0/players/"
	ListPerformancesEndpoint = "/v0/performances/"
	ListTeamsEndpoint        = "/v0/teams/"
	GetCountsEndpoint        = "/v0/counts/"
)

const tracerName = "github.com/evrins/swc-go-client"

// Client talks to the SportsWorldCentral API. It is created once and may be
// shared; concurrent use relies on the safety of the underlying HTTP client.
type Client struct {
	config    Config
	options   *Options
	transport Transport
	bulk      *resty.Client
	bulkFiles map[BulkFile]string
	tracer    trace.Tracer
	logger    RequestLogger
}

// New builds a Client from cfg. With cfg.Backoff set, API calls go through a
// retrying transport; otherwise errors surface on the first failure.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := newClientOptions()
	for _, o := range opts {
		o(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	transport, err := newTransport(cfg, options)
	if err != nil {
		return nil, err
	}

	c := &Client{
		config:    *cfg,
		options:   options,
		transport: transport,
		bulk:      newBulkClient(options),
		bulkFiles: bulkFileNames(cfg.bulkFileExtension()),
		tracer:    options.tracerProvider.Tracer(tracerName),
		logger:    options.requestLogger,
	}

	c.logger.Debugf("Bulk file base URL: %s", options.bulkFileBaseURL)
	c.logger.Debugf("SWC client configuration: %s", cfg)
	c.logger.Debugf("Bulk file dictionary: %v", c.bulkFiles)

	return c, nil
}

// Config returns a copy of the configuration the client was built with.
func (c *Client) Config() Config {
	return c.config
}

// CallAPI issues a GET to endpoint. Params whose value is nil (or a nil
// pointer) are dropped and never reach the query string. The raw response
// is returned for the caller to decode.
func (c *Client) CallAPI(ctx context.Context, endpoint string, params map[string]any) (*resty.Response, error) {
	query := queryValues(params)

	ctx, span := c.tracer.Start(ctx, "swc.CallAPI", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("swc.endpoint", endpoint))

	c.logger.Debugf("base_url: %s, endpoint: %s, params: %s", c.config.BaseURL, endpoint, query.Encode())

	resp, err := c.transport.Get(ctx, endpoint, query)
	if resp != nil && resp.RawResponse != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode()))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return resp, err
	}

	c.logger.Debugf("response body: %s", resp.String())

	return resp, nil
}

// HealthCheck calls the API root, which answers with a fixed message while
// the API is healthy.
func (c *Client) HealthCheck(ctx context.Context) (*resty.Response, error) {
	c.logger.Debugf("Getting health check endpoint...")

	return c.CallAPI(ctx, HealthCheckEndpoint, nil)
}

// ListLeagues returns the leagues matching p.
func (c *Client) ListLeagues(ctx context.Context, p ListLeaguesParams) ([]League, error) {
	c.logger.Debugf("Listing leagues...")

	resp, err := c.CallAPI(ctx, ListLeaguesEndpoint, p.params())
	if err != nil {
		return nil, fmt.Errorf("listing leagues: %w", err)
	}

	return ParseLeagues(resp.Body())
}

// GetLeagueByID returns the league with the given id.
func (c *Client) GetLeagueByID(ctx context.Context, leagueID int64) (League, error) {
	c.logger.Debugf("Entered get league by ID")

	resp, err := c.CallAPI(ctx, ListLeaguesEndpoint+strconv.FormatInt(leagueID, 10), nil)
	if err != nil {
		return League{}, fmt.Errorf("getting league %d: %w", leagueID, err)
	}

	return ParseLeague(resp.Body())
}

// GetCounts returns how many leagues, teams and players the API holds.
func (c *Client) GetCounts(ctx context.Context) (Counts, error) {
	c.logger.Debugf("Entered get counts")

	resp, err := c.CallAPI(ctx, GetCountsEndpoint, nil)
	if err != nil {
		return Counts{}, fmt.Errorf("getting counts: %w", err)
	}

	return ParseCounts(resp.Body())
}

// ListTeams returns the teams matching p.
func (c *Client) ListTeams(ctx context.Context, p ListTeamsParams) ([]Team, error) {
	c.logger.Debugf("Entered list teams")

	resp, err := c.CallAPI(ctx, ListTeamsEndpoint, p.params())
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}

	return ParseTeams(resp.Body())
}

// ListPlayers returns the NFL players matching p.
func (c *Client) ListPlayers(ctx context.Context, p ListPlayersParams) ([]Player, error) {
	c.logger.Debugf("Entered list players")

	resp, err := c.CallAPI(ctx, ListPlayersEndpoint, p.params())
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}

	return ParsePlayers(resp.Body())
}

// GetPlayerByID returns the player with the given SWC player id.
func (c *Client) GetPlayerByID(ctx context.Context, playerID int64) (Player, error) {
	c.logger.Debugf("Entered get player by ID")

	resp, err := c.CallAPI(ctx, ListPlayersEndpoint+strconv.FormatInt(playerID, 10), nil)
	if err != nil {
		return Player{}, fmt.Errorf("getting player %d: %w", playerID, err)
	}

	return ParsePlayer(resp.Body())
}

// ListPerformances returns weekly scoring records matching p.
func (c *Client) ListPerformances(ctx context.Context, p ListPerformancesParams) ([]Performance, error) {
	c.logger.Debugf("Entered list performances")

	resp, err := c.CallAPI(ctx, ListPerformancesEndpoint, p.params())
	if err != nil {
		return nil, fmt.Errorf("listing performances: %w", err)
	}

	return ParsePerformances(resp.Body())
}
