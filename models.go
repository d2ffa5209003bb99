package swc

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"time"
)

// League is one SportsWorldCentral fantasy league.
type League struct {
	ID          int64     `json:"league_id"`
	Name        string    `json:"league_name"`
	ScoringType string    `json:"scoring_type"`
	LastChanged time.Time `json:"last_changed_date"`
	Teams       []Team    `json:"teams"`
}

// Team is one team in a fantasy league.
type Team struct {
	LeagueID    int64     `json:"league_id"`
	ID          int64     `json:"team_id"`
	Name        string    `json:"team_name"`
	LastChanged time.Time `json:"last_changed_date"`
	Players     []Player  `json:"players"`
}

// Player is one NFL player.
type Player struct {
	ID int64 `json:"player_id"`
	// ExternalID is the NFL GSIS identifier.
	ExternalID   string        `json:"gsis_id"`
	FirstName    string        `json:"first_name"`
	LastName     string        `json:"last_name"`
	Position     string        `json:"position"`
	LastChanged  time.Time     `json:"last_changed_date"`
	Performances []Performance `json:"performances"`
}

// Performance is one player's scoring for one NFL week.
type Performance struct {
	ID            int64     `json:"performance_id"`
	PlayerID      int64     `json:"player_id"`
	Week          string    `json:"week_number"`
	FantasyPoints float64   `json:"fantasy_points"`
	LastChanged   time.Time `json:"last_changed_date"`
}

// Counts is a snapshot of how many records the API holds.
type Counts struct {
	LeagueCount int64 `json:"league_count"`
	TeamCount   int64 `json:"team_count"`
	PlayerCount int64 `json:"player_count"`
}

func ParseLeague(data []byte) (League, error) {
	return parseOne[leagueWire, League]("League", data)
}

func ParseLeagues(data []byte) ([]League, error) {
	return parseMany[leagueWire, League]("League", data)
}

func ParseTeam(data []byte) (Team, error) {
	return parseOne[teamWire, Team]("Team", data)
}

func ParseTeams(data []byte) ([]Team, error) {
	return parseMany[teamWire, Team]("Team", data)
}

func ParsePlayer(data []byte) (Player, error) {
	return parseOne[playerWire, Player]("Player", data)
}

func ParsePlayers(data []byte) ([]Player, error) {
	return parseMany[playerWire, Player]("Player", data)
}

func ParsePerformance(data []byte) (Performance, error) {
	return parseOne[performanceWire, Performance]("Performance", data)
}

func ParsePerformances(data []byte) ([]Performance, error) {
	return parseMany[performanceWire, Performance]("Performance", data)
}

func ParseCounts(data []byte) (Counts, error) {
	return parseOne[countsWire, Counts]("Counts", data)
}

// Wire structs use pointers so that a missing or null field is told apart
// from a zero value. Nested lists must be present but may be empty.

type leagueWire struct {
	ID          *int64     `json:"league_id" validate:"required"`
	Name        *string    `json:"league_name" validate:"required"`
	ScoringType *string    `json:"scoring_type" validate:"required"`
	LastChanged *jsonTime  `json:"last_changed_date" validate:"required"`
	Teams       []teamWire `json:"teams" validate:"required,dive"`
}

func (w leagueWire) toRecord() League {
	teams := make([]Team, 0, len(w.Teams))
	for _, t := range w.Teams {
		teams = append(teams, t.toRecord())
	}

	return League{
		ID:          *w.ID,
		Name:        *w.Name,
		ScoringType: *w.ScoringType,
		LastChanged: time.Time(*w.LastChanged),
		Teams:       teams,
	}
}

type teamWire struct {
	LeagueID    *int64       `json:"league_id" validate:"required"`
	ID          *int64       `json:"team_id" validate:"required"`
	Name        *string      `json:"team_name" validate:"required"`
	LastChanged *jsonTime    `json:"last_changed_date" validate:"required"`
	Players     []playerWire `json:"players" validate:"required,dive"`
}

func (w teamWire) toRecord() Team {
	players := make([]Player, 0, len(w.Players))
	for _, p := range w.Players {
		players = append(players, p.toRecord())
	}

	return Team{
		LeagueID:    *w.LeagueID,
		ID:          *w.ID,
		Name:        *w.Name,
		LastChanged: time.Time(*w.LastChanged),
		Players:     players,
	}
}

type playerWire struct {
	ID           *int64            `json:"player_id" validate:"required"`
	ExternalID   *string           `json:"gsis_id" validate:"required"`
	FirstName    *string           `json:"first_name" validate:"required"`
	LastName     *string           `json:"last_name" validate:"required"`
	Position     *string           `json:"position" validate:"required"`
	LastChanged  *jsonTime         `json:"last_changed_date" validate:"required"`
	Performances []performanceWire `json:"performances" validate:"required,dive"`
}

func (w playerWire) toRecord() Player {
	performances := make([]Performance, 0, len(w.Performances))
	for _, p := range w.Performances {
		performances = append(performances, p.toRecord())
	}

	return Player{
		ID:           *w.ID,
		ExternalID:   *w.ExternalID,
		FirstName:    *w.FirstName,
		LastName:     *w.LastName,
		Position:     *w.Position,
		LastChanged:  time.Time(*w.LastChanged),
		Performances: performances,
	}
}

type performanceWire struct {
	ID            *int64       `json:"performance_id" validate:"required"`
	PlayerID      *int64       `json:"player_id" validate:"required"`
	Week          *weekLabel   `json:"week_number" validate:"required"`
	FantasyPoints *jsonDecimal `json:"fantasy_points" validate:"required"`
	LastChanged   *jsonTime    `json:"last_changed_date" validate:"required"`
}

func (w performanceWire) toRecord() Performance {
	return Performance{
		ID:            *w.ID,
		PlayerID:      *w.PlayerID,
		Week:          string(*w.Week),
		FantasyPoints: float64(*w.FantasyPoints),
		LastChanged:   time.Time(*w.LastChanged),
	}
}

type countsWire struct {
	LeagueCount *int64 `json:"league_count" validate:"required,gte=0"`
	TeamCount   *int64 `json:"team_count" validate:"required,gte=0"`
	PlayerCount *int64 `json:"player_count" validate:"required,gte=0"`
}

func (w countsWire) toRecord() Counts {
	return Counts{
		LeagueCount: *w.LeagueCount,
		TeamCount:   *w.TeamCount,
		PlayerCount: *w.PlayerCount,
	}
}

// Layouts accepted for last_changed_date. The API emits dates, older
// payloads carry naive datetimes.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// jsonTime is a timestamp decoded from any of timeLayouts. Naive values are
// read as UTC.
type jsonTime time.Time

func (t *jsonTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &json.UnmarshalTypeError{Value: jsonValueKind(b), Type: reflect.TypeOf(jsonTime{})}
	}

	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			*t = jsonTime(parsed)
			return nil
		}
	}

	return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: reflect.TypeOf(jsonTime{})}
}

// weekLabel accepts the week either as a JSON string or number.
type weekLabel string

func (w *weekLabel) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*w = weekLabel(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*w = weekLabel(n.String())
		return nil
	}

	return &json.UnmarshalTypeError{Value: jsonValueKind(b), Type: reflect.TypeOf(weekLabel(""))}
}

// jsonDecimal accepts a JSON number or a numeric string; decimal columns are
// serialized as strings by some API versions.
type jsonDecimal float64

func (d *jsonDecimal) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*d = jsonDecimal(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*d = jsonDecimal(f)
			return nil
		}
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: reflect.TypeOf(jsonDecimal(0))}
	}

	return &json.UnmarshalTypeError{Value: jsonValueKind(b), Type: reflect.TypeOf(jsonDecimal(0))}
}

// jsonValueKind describes a raw JSON value the way encoding/json does in
// its type errors.
func jsonValueKind(b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return "value"
	}

	switch b[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
