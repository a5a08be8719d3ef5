package dto

import (
	"time"

	"github.com/lifeplan/backend/internal/application/usecase/session"
	"github.com/lifeplan/backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// AddEntryRequest represents the request body for recording a contribution.
// Amount and date travel as submitted text; malformed values coerce server
// side instead of failing the request.
type AddEntryRequest struct {
	Amount        string `json:"amount"`
	Date          string `json:"date"`
	InstitutionID string `json:"institutionId" binding:"required"`
	GoalID        string `json:"goalId"`
	AssetClass    string `json:"assetClass"`
	Description   string `json:"description"`
}

// AddInstitutionRequest represents the request body for registering an institution.
type AddInstitutionRequest struct {
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type"`
	Yield     string `json:"yield"`
	Liquidity string `json:"liquidity"`
	Risk      int    `json:"risk"`
}

// AddGoalRequest represents the request body for creating a savings goal.
type AddGoalRequest struct {
	Name     string `json:"name" binding:"required"`
	Target   string `json:"target" binding:"required"`
	Due      string `json:"due"`
	Priority string `json:"priority"`
}

// UpdateProfileRequest represents the request body for replacing the profile.
type UpdateProfileRequest struct {
	Income           string `json:"income"`
	Expenses         string `json:"expenses"`
	MainGoalName     string `json:"mainGoalName"`
	MainGoalTarget   string `json:"mainGoalTarget"`
	MainGoalDeadline string `json:"mainGoalDeadline"`
	PrimaryGoalID    string `json:"primaryGoalId"`
}

// EntryResponse represents one contribution in API responses.
type EntryResponse struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	InstitutionID string  `json:"institutionId"`
	GoalID        string  `json:"goalId"`
	AssetClass    string  `json:"assetClass"`
	Description   string  `json:"description"`
}

// InstitutionResponse represents one institution in API responses.
type InstitutionResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Yield     string `json:"yield"`
	Liquidity string `json:"liquidity"`
	Risk      int    `json:"risk"`
}

// GoalResponse represents one savings goal in API responses.
type GoalResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	Due      string  `json:"due"`
	Priority string  `json:"priority"`
}

// ProfileResponse represents the profile singleton in API responses.
type ProfileResponse struct {
	Income           float64 `json:"income"`
	Expenses         float64 `json:"expenses"`
	MainGoalName     string  `json:"mainGoalName"`
	MainGoalTarget   float64 `json:"mainGoalTarget"`
	MainGoalDeadline string  `json:"mainGoalDeadline"`
	PrimaryGoalID    string  `json:"primaryGoalId"`
}

// LedgerStateResponse represents the full ledger aggregate in API responses.
type LedgerStateResponse struct {
	Profile      ProfileResponse       `json:"profile"`
	Institutions []InstitutionResponse `json:"institutions"`
	Goals        []GoalResponse        `json:"goals"`
	Entries      []EntryResponse       `json:"entries"`
	User         UserResponse          `json:"user"`
}

// SyncStatusResponse represents the auto-save outcome in API responses.
type SyncStatusResponse struct {
	State       string `json:"state"`
	LastError   string `json:"lastError,omitempty"`
	LastSavedAt string `json:"lastSavedAt,omitempty"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// ToEntryResponse converts a domain Entry to an EntryResponse DTO.
func ToEntryResponse(entry entity.Entry) EntryResponse {
	amount, _ := entry.Amount.Float64()
	return EntryResponse{
		ID:            entry.ID,
		Amount:        amount,
		Date:          formatDate(entry.Date),
		InstitutionID: entry.InstitutionID,
		GoalID:        entry.GoalID,
		AssetClass:    entry.AssetClass,
		Description:   entry.Description,
	}
}

// ToInstitutionResponse converts a domain Institution to an InstitutionResponse DTO.
func ToInstitutionResponse(inst entity.Institution) InstitutionResponse {
	return InstitutionResponse{
		ID:        inst.ID,
		Name:      inst.Name,
		Type:      inst.Type,
		Yield:     inst.Yield,
		Liquidity: inst.Liquidity,
		Risk:      inst.Risk,
	}
}

// ToGoalResponse converts a domain Goal to a GoalResponse DTO.
func ToGoalResponse(goal entity.Goal) GoalResponse {
	target, _ := goal.Target.Float64()
	return GoalResponse{
		ID:       goal.ID,
		Name:     goal.Name,
		Target:   target,
		Due:      formatDate(goal.Due),
		Priority: string(goal.Priority),
	}
}

// ToProfileResponse converts a domain Profile to a ProfileResponse DTO.
func ToProfileResponse(profile entity.Profile) ProfileResponse {
	income, _ := profile.Income.Float64()
	expenses, _ := profile.Expenses.Float64()
	mainGoalTarget, _ := profile.MainGoalTarget.Float64()
	return ProfileResponse{
		Income:           income,
		Expenses:         expenses,
		MainGoalName:     profile.MainGoalName,
		MainGoalTarget:   mainGoalTarget,
		MainGoalDeadline: formatDate(profile.MainGoalDeadline),
		PrimaryGoalID:    profile.PrimaryGoalID,
	}
}

// ToLedgerStateResponse converts the ledger aggregate to a LedgerStateResponse DTO.
func ToLedgerStateResponse(state *entity.LedgerState) LedgerStateResponse {
	institutions := make([]InstitutionResponse, len(state.Institutions))
	for i, inst := range state.Institutions {
		institutions[i] = ToInstitutionResponse(inst)
	}

	goals := make([]GoalResponse, len(state.Goals))
	for i, goal := range state.Goals {
		goals[i] = ToGoalResponse(goal)
	}

	entries := make([]EntryResponse, len(state.Entries))
	for i, entry := range state.Entries {
		entries[i] = ToEntryResponse(entry)
	}

	return LedgerStateResponse{
		Profile:      ToProfileResponse(state.Profile),
		Institutions: institutions,
		Goals:        goals,
		Entries:      entries,
		User:         ToUserResponse(state.User),
	}
}

// ToSyncStatusResponse converts a session SyncStatus to a SyncStatusResponse DTO.
func ToSyncStatusResponse(status session.SyncStatus) SyncStatusResponse {
	resp := SyncStatusResponse{
		State:     string(status.State),
		LastError: status.LastError,
	}
	if !status.LastSavedAt.IsZero() {
		resp.LastSavedAt = status.LastSavedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
