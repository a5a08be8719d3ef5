// Package model defines storage documents for the persistence layer.
// Documents mirror the ledger aggregate field-for-field so that state
// round-trips losslessly through serialize, store, load, deserialize, and
// they use the same shape for both backends: Firestore field tags for the
// remote document store and JSON tags for the local keyed store.
package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifeplan/backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// FlexibleAmount is a stored amount tolerant of historical junk: a missing,
// non-numeric or negative value decodes to zero instead of failing the whole
// document. The ledger is user-entered data and partially-invalid state must
// still hydrate.
type FlexibleAmount float64

// UnmarshalJSON implements lenient decoding for amounts.
func (a *FlexibleAmount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*a = 0
		return nil
	}

	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		*a = 0
		return nil
	}
	*a = FlexibleAmount(value)
	return nil
}

// Decimal converts the stored amount into the domain representation.
func (a FlexibleAmount) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(a))
}

func amountOf(d decimal.Decimal) FlexibleAmount {
	return FlexibleAmount(d.InexactFloat64())
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDate(raw string) time.Time {
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

// EntryDocument is one stored contribution.
type EntryDocument struct {
	ID            string         `firestore:"id" json:"id"`
	Amount        FlexibleAmount `firestore:"amount" json:"amount"`
	Date          string         `firestore:"date" json:"date"`
	InstitutionID string         `firestore:"institutionId" json:"institutionId"`
	GoalID        string         `firestore:"goalId" json:"goalId"`
	AssetClass    string         `firestore:"assetClass" json:"assetClass"`
	Description   string         `firestore:"description" json:"description"`
}

// InstitutionDocument is one stored institution.
type InstitutionDocument struct {
	ID        string `firestore:"id" json:"id"`
	Name      string `firestore:"name" json:"name"`
	Type      string `firestore:"type" json:"type"`
	Yield     string `firestore:"yield" json:"yield"`
	Liquidity string `firestore:"liquidity" json:"liquidity"`
	Risk      int    `firestore:"risk" json:"risk"`
}

// GoalDocument is one stored goal.
type GoalDocument struct {
	ID       string         `firestore:"id" json:"id"`
	Name     string         `firestore:"name" json:"name"`
	Target   FlexibleAmount `firestore:"target" json:"target"`
	Due      string         `firestore:"due" json:"due"`
	Priority string         `firestore:"priority" json:"priority"`
}

// ProfileDocument is the stored profile singleton.
type ProfileDocument struct {
	Income           FlexibleAmount `firestore:"income" json:"income"`
	Expenses         FlexibleAmount `firestore:"expenses" json:"expenses"`
	MainGoalName     string         `firestore:"mainGoalName" json:"mainGoalName"`
	MainGoalTarget   FlexibleAmount `firestore:"mainGoalTarget" json:"mainGoalTarget"`
	MainGoalDeadline string         `firestore:"mainGoalDeadline" json:"mainGoalDeadline"`
	PrimaryGoalID    string         `firestore:"primaryGoalId" json:"primaryGoalId"`
}

// IdentityDocument is the stored owner of a ledger.
type IdentityDocument struct {
	UID   string `firestore:"uid" json:"uid"`
	Name  string `firestore:"name" json:"name"`
	Email string `firestore:"email" json:"email"`
}

// StateDocument is the stored ledger aggregate, the unit of persistence.
type StateDocument struct {
	Profile      ProfileDocument       `firestore:"profile" json:"profile"`
	Institutions []InstitutionDocument `firestore:"institutions" json:"institutions"`
	Goals        []GoalDocument        `firestore:"goals" json:"goals"`
	Entries      []EntryDocument       `firestore:"entries" json:"entries"`
	User         IdentityDocument      `firestore:"user" json:"user"`
}

// FromEntity converts a ledger aggregate into its storage document.
func FromEntity(state *entity.LedgerState) *StateDocument {
	doc := &StateDocument{
		Profile: ProfileDocument{
			Income:           amountOf(state.Profile.Income),
			Expenses:         amountOf(state.Profile.Expenses),
			MainGoalName:     state.Profile.MainGoalName,
			MainGoalTarget:   amountOf(state.Profile.MainGoalTarget),
			MainGoalDeadline: formatDate(state.Profile.MainGoalDeadline),
			PrimaryGoalID:    state.Profile.PrimaryGoalID,
		},
		Institutions: make([]InstitutionDocument, 0, len(state.Institutions)),
		Goals:        make([]GoalDocument, 0, len(state.Goals)),
		Entries:      make([]EntryDocument, 0, len(state.Entries)),
		User: IdentityDocument{
			UID:   state.User.UID,
			Name:  state.User.Name,
			Email: state.User.Email,
		},
	}

	for _, inst := range state.Institutions {
		doc.Institutions = append(doc.Institutions, InstitutionDocument{
			ID:        inst.ID,
			Name:      inst.Name,
			Type:      inst.Type,
			Yield:     inst.Yield,
			Liquidity: inst.Liquidity,
			Risk:      inst.Risk,
		})
	}

	for _, goal := range state.Goals {
		doc.Goals = append(doc.Goals, GoalDocument{
			ID:       goal.ID,
			Name:     goal.Name,
			Target:   amountOf(goal.Target),
			Due:      formatDate(goal.Due),
			Priority: string(goal.Priority),
		})
	}

	for _, e := range state.Entries {
		doc.Entries = append(doc.Entries, EntryDocument{
			ID:            e.ID,
			Amount:        amountOf(e.Amount),
			Date:          formatDate(e.Date),
			InstitutionID: e.InstitutionID,
			GoalID:        e.GoalID,
			AssetClass:    e.AssetClass,
			Description:   e.Description,
		})
	}

	return doc
}

// ToEntity converts a storage document back into the ledger aggregate.
func (d *StateDocument) ToEntity() *entity.LedgerState {
	state := &entity.LedgerState{
		Profile: entity.Profile{
			Income:           d.Profile.Income.Decimal(),
			Expenses:         d.Profile.Expenses.Decimal(),
			MainGoalName:     d.Profile.MainGoalName,
			MainGoalTarget:   d.Profile.MainGoalTarget.Decimal(),
			MainGoalDeadline: parseDate(d.Profile.MainGoalDeadline),
			PrimaryGoalID:    d.Profile.PrimaryGoalID,
		},
		Institutions: make([]entity.Institution, 0, len(d.Institutions)),
		Goals:        make([]entity.Goal, 0, len(d.Goals)),
		Entries:      make([]entity.Entry, 0, len(d.Entries)),
		User: entity.Identity{
			UID:   d.User.UID,
			Name:  d.User.Name,
			Email: d.User.Email,
		},
	}

	for _, inst := range d.Institutions {
		state.Institutions = append(state.Institutions, entity.Institution{
			ID:        inst.ID,
			Name:      inst.Name,
			Type:      inst.Type,
			Yield:     inst.Yield,
			Liquidity: inst.Liquidity,
			Risk:      inst.Risk,
		})
	}

	for _, goal := range d.Goals {
		state.Goals = append(state.Goals, entity.Goal{
			ID:       goal.ID,
			Name:     goal.Name,
			Target:   goal.Target.Decimal(),
			Due:      parseDate(goal.Due),
			Priority: entity.GoalPriority(goal.Priority),
		})
	}

	for _, e := range d.Entries {
		state.Entries = append(state.Entries, entity.Entry{
			ID:            e.ID,
			Amount:        e.Amount.Decimal(),
			Date:          parseDate(e.Date),
			InstitutionID: e.InstitutionID,
			GoalID:        e.GoalID,
			AssetClass:    e.AssetClass,
			Description:   e.Description,
		})
	}

	return state
}

// ToMap renders the document as map data with the remote store's field
// names. The Firestore client rejects struct data when merge semantics are
// requested, so merge writes must go through this representation.
func (d *StateDocument) ToMap() map[string]interface{} {
	institutions := make([]interface{}, 0, len(d.Institutions))
	for _, inst := range d.Institutions {
		institutions = append(institutions, map[string]interface{}{
			"id":        inst.ID,
			"name":      inst.Name,
			"type":      inst.Type,
			"yield":     inst.Yield,
			"liquidity": inst.Liquidity,
			"risk":      inst.Risk,
		})
	}

	goals := make([]interface{}, 0, len(d.Goals))
	for _, goal := range d.Goals {
		goals = append(goals, map[string]interface{}{
			"id":       goal.ID,
			"name":     goal.Name,
			"target":   float64(goal.Target),
			"due":      goal.Due,
			"priority": goal.Priority,
		})
	}

	entries := make([]interface{}, 0, len(d.Entries))
	for _, e := range d.Entries {
		entries = append(entries, map[string]interface{}{
			"id":            e.ID,
			"amount":        float64(e.Amount),
			"date":          e.Date,
			"institutionId": e.InstitutionID,
			"goalId":        e.GoalID,
			"assetClass":    e.AssetClass,
			"description":   e.Description,
		})
	}

	return map[string]interface{}{
		"profile": map[string]interface{}{
			"income":           float64(d.Profile.Income),
			"expenses":         float64(d.Profile.Expenses),
			"mainGoalName":     d.Profile.MainGoalName,
			"mainGoalTarget":   float64(d.Profile.MainGoalTarget),
			"mainGoalDeadline": d.Profile.MainGoalDeadline,
			"primaryGoalId":    d.Profile.PrimaryGoalID,
		},
		"institutions": institutions,
		"goals":        goals,
		"entries":      entries,
		"user": map[string]interface{}{
			"uid":   d.User.UID,
			"name":  d.User.Name,
			"email": d.User.Email,
		},
	}
}

// Encode serializes the document for the local keyed store.
func (d *StateDocument) Encode() ([]byte, error) {
	return json.Marshal(d)
}

// Decode deserializes a document from the local keyed store.
func Decode(data []byte) (*StateDocument, error) {
	var doc StateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
