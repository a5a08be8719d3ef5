// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalPriority represents the declared priority of a savings goal.
type GoalPriority string

const (
	GoalPriorityAlta  GoalPriority = "alta"
	GoalPriorityMedia GoalPriority = "media"
	GoalPriorityBaixa GoalPriority = "baixa"
)

// Entry represents a single recorded contribution of money. Entries are
// immutable once appended to the ledger; identity is ID.
type Entry struct {
	ID            string
	Amount        decimal.Decimal
	Date          time.Time
	InstitutionID string
	GoalID        string // optional, empty when the entry is not tied to a goal
	AssetClass    string
	Description   string
}

// Institution represents a financial provider used to group entries.
// Yield and Liquidity are display labels, not parsed values.
type Institution struct {
	ID        string
	Name      string
	Type      string
	Yield     string
	Liquidity string
	Risk      int // ordinal 1..5
}

// Goal represents a savings target with a deadline and priority.
type Goal struct {
	ID       string
	Name     string
	Target   decimal.Decimal
	Due      time.Time
	Priority GoalPriority
}

// Profile holds the user's self-declared financial profile. It is a
// singleton per ledger and is replaced wholesale on every update.
type Profile struct {
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	MainGoalName     string
	MainGoalTarget   decimal.Decimal
	MainGoalDeadline time.Time
	PrimaryGoalID    string // optional ref to a Goal
}

// Identity identifies the user a ledger belongs to.
type Identity struct {
	UID   string
	Name  string
	Email string
}

// LedgerState is the aggregate root and the unit of persistence: every
// mutation to any sub-collection replaces the whole aggregate in storage.
type LedgerState struct {
	Profile      Profile
	Institutions []Institution
	Goals        []Goal
	Entries      []Entry
	User         Identity
}

// NewEntry creates a new Entry with a generated ID.
func NewEntry(amount decimal.Decimal, date time.Time, institutionID, goalID, assetClass, description string) Entry {
	return Entry{
		ID:            uuid.NewString(),
		Amount:        amount,
		Date:          date,
		InstitutionID: institutionID,
		GoalID:        goalID,
		AssetClass:    assetClass,
		Description:   description,
	}
}

// NewInstitution creates a new Institution with a generated ID.
func NewInstitution(name, instType, yield, liquidity string, risk int) Institution {
	return Institution{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      instType,
		Yield:     yield,
		Liquidity: liquidity,
		Risk:      risk,
	}
}

// NewGoal creates a new Goal with a generated ID.
func NewGoal(name string, target decimal.Decimal, due time.Time, priority GoalPriority) Goal {
	return Goal{
		ID:       uuid.NewString(),
		Name:     name,
		Target:   target,
		Due:      due,
		Priority: priority,
	}
}

// AppendEntry appends an entry to the ledger. Entries are never edited or
// removed afterwards.
func (s *LedgerState) AppendEntry(e Entry) {
	s.Entries = append(s.Entries, e)
}

// AppendInstitution appends an institution to the ledger.
func (s *LedgerState) AppendInstitution(i Institution) {
	s.Institutions = append(s.Institutions, i)
}

// AppendGoal appends a goal to the ledger.
func (s *LedgerState) AppendGoal(g Goal) {
	s.Goals = append(s.Goals, g)
}

// ReplaceProfile overwrites the profile wholesale.
func (s *LedgerState) ReplaceProfile(p Profile) {
	s.Profile = p
}

// InstitutionByID returns the institution with the given ID, or nil when the
// reference dangles. Callers render dangling refs with a sentinel label.
func (s *LedgerState) InstitutionByID(id string) *Institution {
	for i := range s.Institutions {
		if s.Institutions[i].ID == id {
			return &s.Institutions[i]
		}
	}
	return nil
}

// GoalByID returns the goal with the given ID, or nil when absent.
func (s *LedgerState) GoalByID(id string) *Goal {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			return &s.Goals[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the ledger state so that background saves can
// serialize a snapshot without racing in-flight mutations.
func (s *LedgerState) Clone() *LedgerState {
	clone := &LedgerState{
		Profile:      s.Profile,
		User:         s.User,
		Institutions: make([]Institution, len(s.Institutions)),
		Goals:        make([]Goal, len(s.Goals)),
		Entries:      make([]Entry, len(s.Entries)),
	}
	copy(clone.Institutions, s.Institutions)
	copy(clone.Goals, s.Goals)
	copy(clone.Entries, s.Entries)
	return clone
}
