package dto

import (
	"github.com/lifeplan/backend/internal/application/usecase/ledger"
)

// DashboardResponse represents the full derived dashboard view.
type DashboardResponse struct {
	Total             float64                `json:"total"`
	Tier              TierResponse           `json:"tier"`
	ByClass           []BucketResponse       `json:"byClass"`
	ByInstitution     []BucketResponse       `json:"byInstitution"`
	ClassSlices       []SliceResponse        `json:"classSlices"`
	InstitutionSlices []SliceResponse        `json:"institutionSlices"`
	Goals             []GoalProgressResponse `json:"goals"`
	Series            []PointResponse        `json:"series"`
	Sync              SyncStatusResponse     `json:"sync"`
}

// TierResponse represents the recommendation band for the current total.
type TierResponse struct {
	Level    int      `json:"level"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Bullets  []string `json:"bullets"`
}

// BucketResponse represents one labeled share of a breakdown.
type BucketResponse struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// SliceResponse represents one proportional chart slice in whole degrees.
type SliceResponse struct {
	Key     string `json:"key"`
	Degrees int    `json:"degrees"`
}

// GoalProgressResponse represents one goal with its accumulated progress.
type GoalProgressResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	Progress float64 `json:"progress"`
	Percent  int     `json:"percent"`
	Priority string  `json:"priority"`
	Due      string  `json:"due"`
}

// PointResponse represents one point of the cumulative contribution series.
type PointResponse struct {
	Index      int     `json:"index"`
	Cumulative float64 `json:"cumulative"`
}

// ToDashboardResponse converts a GetDashboardOutput to a DashboardResponse DTO.
func ToDashboardResponse(output *ledger.GetDashboardOutput) DashboardResponse {
	total, _ := output.Total.Float64()

	byClass := make([]BucketResponse, len(output.ByClass))
	for i, b := range output.ByClass {
		amount, _ := b.Amount.Float64()
		byClass[i] = BucketResponse{Key: b.Key, Label: b.Label, Amount: amount}
	}

	byInstitution := make([]BucketResponse, len(output.ByInstitution))
	for i, b := range output.ByInstitution {
		amount, _ := b.Amount.Float64()
		byInstitution[i] = BucketResponse{Key: b.Key, Label: b.Label, Amount: amount}
	}

	classSlices := make([]SliceResponse, len(output.ClassSlices))
	for i, s := range output.ClassSlices {
		classSlices[i] = SliceResponse{Key: s.Key, Degrees: s.Degrees}
	}

	institutionSlices := make([]SliceResponse, len(output.InstitutionSlices))
	for i, s := range output.InstitutionSlices {
		institutionSlices[i] = SliceResponse{Key: s.Key, Degrees: s.Degrees}
	}

	goals := make([]GoalProgressResponse, len(output.Goals))
	for i, g := range output.Goals {
		target, _ := g.Target.Float64()
		progress, _ := g.Progress.Float64()
		goals[i] = GoalProgressResponse{
			ID:       g.ID,
			Name:     g.Name,
			Target:   target,
			Progress: progress,
			Percent:  g.Percent,
			Priority: string(g.Priority),
			Due:      formatDate(g.Due),
		}
	}

	series := make([]PointResponse, len(output.Series))
	for i, p := range output.Series {
		cumulative, _ := p.Cumulative.Float64()
		series[i] = PointResponse{Index: p.Index, Cumulative: cumulative}
	}

	return DashboardResponse{
		Total:             total,
		Tier:              TierResponse(output.Tier),
		ByClass:           byClass,
		ByInstitution:     byInstitution,
		ClassSlices:       classSlices,
		InstitutionSlices: institutionSlices,
		Goals:             goals,
		Series:            series,
		Sync:              ToSyncStatusResponse(output.Sync),
	}
}
