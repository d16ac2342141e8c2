package view

import (
	"sort"

	"github.com/Skar710/CID/internal/models"
)

// ChartRow is one bar of the dashboard's crimes-by-type chart.
type ChartRow struct {
	Type  string
	Count int
}

// MapPoint is one marker on the dashboard map.
type MapPoint struct {
	ID        string
	Longitude float64
	Latitude  float64
	Type      string
	Status    string
}

// CrimeChart counts a fetched crime collection by type, sorted by type
// name so the chart is stable across refreshes.
func CrimeChart(crimes []models.Crime) []ChartRow {
	counts := make(map[string]int)
	for _, c := range crimes {
		counts[c.Type]++
	}
	rows := make([]ChartRow, 0, len(counts))
	for t, n := range counts {
		rows = append(rows, ChartRow{Type: t, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Type < rows[j].Type })
	return rows
}

// CrimeMapPoints extracts the plottable records; crimes without a full
// coordinate pair are skipped.
func CrimeMapPoints(crimes []models.Crime) []MapPoint {
	var points []MapPoint
	for _, c := range crimes {
		if len(c.Location.Coordinates) != 2 {
			continue
		}
		points = append(points, MapPoint{
			ID:        c.ID,
			Longitude: c.Location.Coordinates[0],
			Latitude:  c.Location.Coordinates[1],
			Type:      c.Type,
			Status:    c.Status,
		})
	}
	return points
}
