package handlers

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/mauv0809/cricket-score/internal/stats"
)

// ChartSeries holds parallel per-match series for the player chart.
type ChartSeries struct {
	Labels  []string `json:"labels"`
	Runs    []int    `json:"runs"`
	Wickets []int    `json:"wickets"`
}

// PlayerMatch is one row of the player page's match table.
type PlayerMatch struct {
	MatchName    string    `json:"match_name"`
	RunsScored   int       `json:"runs_scored"`
	WicketsTaken int       `json:"wickets_taken"`
	MatchDate    time.Time `json:"match_date"`
}

// GraphData is a labelled chart with one or more datasets.
type GraphData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is a single named series of GraphData.
type Dataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

// BuildPlayerSeries turns performances ordered newest first, as the store
// returns them, into oldest-to-newest chart series and table rows.
func BuildPlayerSeries(recent []stats.Performance) (ChartSeries, []PlayerMatch) {
	series := ChartSeries{
		Labels:  make([]string, 0, len(recent)),
		Runs:    make([]int, 0, len(recent)),
		Wickets: make([]int, 0, len(recent)),
	}
	matches := make([]PlayerMatch, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		p := recent[i]
		label := p.Match.Label()
		series.Labels = append(series.Labels, label)
		series.Runs = append(series.Runs, p.RunsScored)
		series.Wickets = append(series.Wickets, p.WicketsTaken)
		matches = append(matches, PlayerMatch{
			MatchName:    label,
			RunsScored:   p.RunsScored,
			WicketsTaken: p.WicketsTaken,
			MatchDate:    p.Match.Date,
		})
	}
	return series, matches
}

// maxOverIndex bounds the over numbers charted. Anything larger cannot be a
// real delivery and is left off the chart.
const maxOverIndex = math.MaxInt32

// BuildRunsPerOver totals the runs conceded in each over of a match. Wides
// and no-balls add one extra on top of the runs off the bat. Only overs with
// at least one ball appear, in over order.
func BuildRunsPerOver(balls []stats.Ball) GraphData {
	perOver := make(map[int]int)
	for _, b := range balls {
		if math.IsNaN(b.Over) || b.Over < 0 || b.Over > maxOverIndex {
			continue
		}
		over := int(math.Floor(b.Over))
		runs := b.Runs
		if b.IsWide {
			runs++
		}
		if b.IsNoBall {
			runs++
		}
		perOver[over] += runs
	}

	overs := slices.Sorted(maps.Keys(perOver))
	labels := make([]string, 0, len(overs))
	data := make([]int, 0, len(overs))
	for _, over := range overs {
		labels = append(labels, fmt.Sprintf("Over %d", over+1))
		data = append(data, perOver[over])
	}
	return GraphData{
		Labels:   labels,
		Datasets: []Dataset{{Label: "Runs per over", Data: data}},
	}
}
