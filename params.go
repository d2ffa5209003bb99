package swc

import (
	"fmt"
	"net/url"
	"reflect"
)

// Pagination defaults applied when a list call leaves them unset.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// Pagination is offset-based paging: Skip leading records are omitted and at
// most Limit are returned. A Limit of zero or less means DefaultLimit.
type Pagination struct {
	Skip  int
	Limit int
}

func (p Pagination) params() map[string]any {
	skip := p.Skip
	if skip < 0 {
		skip = DefaultSkip
	}

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	return map[string]any{
		"skip":  skip,
		"limit": limit,
	}
}

// ListLeaguesParams filters [Client.ListLeagues]. Empty fields are not sent.
type ListLeaguesParams struct {
	Pagination
	// MinLastChangedDate keeps records changed on or after this date,
	// formatted as YYYY-MM-DD.
	MinLastChangedDate string
	LeagueName         string
}

func (p ListLeaguesParams) params() map[string]any {
	params := p.Pagination.params()
	params["min_last_changed_date"] = optional(p.MinLastChangedDate)
	params["league_name"] = optional(p.LeagueName)

	return params
}

// ListTeamsParams filters [Client.ListTeams]. Empty fields are not sent.
type ListTeamsParams struct {
	Pagination
	MinLastChangedDate string
	TeamName           string
	LeagueID           int64
}

func (p ListTeamsParams) params() map[string]any {
	params := p.Pagination.params()
	params["min_last_changed_date"] = optional(p.MinLastChangedDate)
	params["team_name"] = optional(p.TeamName)
	params["league_id"] = optional(p.LeagueID)

	return params
}

// ListPlayersParams filters [Client.ListPlayers]. Empty fields are not sent.
type ListPlayersParams struct {
	Pagination
	MinLastChangedDate string
	FirstName          string
	LastName           string
}

func (p ListPlayersParams) params() map[string]any {
	params := p.Pagination.params()
	params["min_last_changed_date"] = optional(p.MinLastChangedDate)
	params["first_name"] = optional(p.FirstName)
	params["last_name"] = optional(p.LastName)

	return params
}

// ListPerformancesParams filters [Client.ListPerformances].
type ListPerformancesParams struct {
	Pagination
	MinLastChangedDate string
}

func (p ListPerformancesParams) params() map[string]any {
	params := p.Pagination.params()
	params["min_last_changed_date"] = optional(p.MinLastChangedDate)

	return params
}

// optional maps a zero value to nil so that queryValues drops it.
func optional[T comparable](v T) any {
	var zero T
	if v == zero {
		return nil
	}
	return v
}

// queryValues converts params to a query string, dropping every unset
// entry: untyped nil and nil pointers, interfaces, maps and slices of any
// type. Pointers are followed to their value; slices add one value per
// element.
func queryValues(params map[string]any) url.Values {
	values := url.Values{}

	for k, v := range params {
		rv, ok := resolve(v)
		if !ok {
			continue
		}

		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := range rv.Len() {
				if el, ok := resolve(rv.Index(i).Interface()); ok {
					values.Add(k, fmt.Sprint(el.Interface()))
				}
			}
		default:
			values.Set(k, fmt.Sprint(rv.Interface()))
		}
	}

	return values
}

// resolve follows pointers and interfaces down to a concrete value. It
// reports false when v is nil or any link on the way is nil.
func resolve(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)

	for rv.IsValid() {
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				return reflect.Value{}, false
			}
			rv = rv.Elem()
		case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if rv.IsNil() {
				return reflect.Value{}, false
			}
			return rv, true
		default:
			return rv, true
		}
	}

	return reflect.Value{}, false
}
