package dashboard

import "github.com/rpggio/bidintel/internal/domain/project"

// MaxLabelRunes is the longest project name shown unshortened on the chart.
const MaxLabelRunes = 15

// ChartPoint is one bar of the contract value chart.
type ChartPoint struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// ComputeChartSeries maps each project to a labelled amount in source order.
func ComputeChartSeries(projects []project.Project) []ChartPoint {
	series := make([]ChartPoint, 0, len(projects))
	for _, p := range projects {
		series = append(series, ChartPoint{
			Label:  Label(p.ProjectName),
			Amount: p.ContractAmount,
		})
	}
	return series
}

// Label shortens name to MaxLabelRunes runes followed by "...".
func Label(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxLabelRunes {
		return name
	}
	return string(runes[:MaxLabelRunes]) + "..."
}
