package swc

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestListParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params map[string]any
		want   url.Values
	}{
		{
			name:   "leagues defaults",
			params: ListLeaguesParams{}.params(),
			want:   url.Values{"skip": {"0"}, "limit": {"100"}},
		},
		{
			name:   "negative skip and zero limit fall back",
			params: ListLeaguesParams{Pagination: Pagination{Skip: -3, Limit: 0}}.params(),
			want:   url.Values{"skip": {"0"}, "limit": {"100"}},
		},
		{
			name: "leagues filters",
			params: ListLeaguesParams{
				Pagination:         Pagination{Skip: 10, Limit: 50},
				MinLastChangedDate: "2024-04-01",
				LeagueName:         "Pigskin",
			}.params(),
			want: url.Values{"skip": {"10"}, "limit": {"50"}, "min_last_changed_date": {"2024-04-01"}, "league_name": {"Pigskin"}},
		},
		{
			name:   "teams league id",
			params: ListTeamsParams{LeagueID: 5001}.params(),
			want:   url.Values{"skip": {"0"}, "limit": {"100"}, "league_id": {"5001"}},
		},
		{
			name:   "players names",
			params: ListPlayersParams{FirstName: "Bryce", LastName: "Young"}.params(),
			want:   url.Values{"skip": {"0"}, "limit": {"100"}, "first_name": {"Bryce"}, "last_name": {"Young"}},
		},
		{
			name:   "performances date",
			params: ListPerformancesParams{MinLastChangedDate: "2024-01-01"}.params(),
			want:   url.Values{"skip": {"0"}, "limit": {"100"}, "min_last_changed_date": {"2024-01-01"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, queryValues(tt.params)); diff != "" {
				t.Errorf("query mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQueryValues_DropsTypedNils(t *testing.T) {
	t.Parallel()

	var (
		points  *float64
		changed *time.Time
		week    *int32
		season  *uint
		ids     []int64
		extra   map[string]string
		boxed   any = (*string)(nil)
	)

	got := queryValues(map[string]any{
		"fantasy_points": points,
		"changed":        changed,
		"week":           week,
		"season":         season,
		"ids":            ids,
		"extra":          extra,
		"boxed":          &boxed,
		"unset":          nil,
	})

	if len(got) != 0 {
		t.Errorf("expected empty query, got %q", got.Encode())
	}
}

func TestQueryValues_DereferencesAnyPointer(t *testing.T) {
	t.Parallel()

	points := 15.5
	week := int32(3)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var nilWeek *int32

	got := queryValues(map[string]any{
		"fantasy_points": &points,
		"week":           &week,
		"day":            &day,
		"ids":            []*int32{&week, nilWeek},
	})

	want := url.Values{
		"fantasy_points": {"15.5"},
		"week":           {"3"},
		"day":            {day.String()},
		"ids":            {"3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryValues(t *testing.T) {
	t.Parallel()

	name := "Test"
	active := true
	var nilBool *bool

	got := queryValues(map[string]any{
		"name":     &name,
		"active":   &active,
		"inactive": nilBool,
		"unset":    nil,
		"pos":      []string{"QB", "RB"},
		"week":     3,
	})

	want := url.Values{
		"name":   {"Test"},
		"active": {"true"},
		"pos":    {"QB", "RB"},
		"week":   {"3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}
