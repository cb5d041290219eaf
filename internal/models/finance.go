package models

import "strings"

type TransactionType string

const (
	TransactionExpense TransactionType = "EXPENSE"
	TransactionIncome  TransactionType = "INCOME"
)

type UnitType string

const (
	UnitStick UnitType = "stick"
	UnitGram  UnitType = "g"
	UnitDrink UnitType = "drink"
	UnitCup   UnitType = "cup"
	UnitPlain UnitType = "unit"
)

// Transaction is an append-only ledger record. Amount is always the
// positive magnitude; Type decides whether it adds to or subtracts from
// net balance. Transactions are never edited or deleted.
type Transaction struct {
	ID           string          `json:"id"`
	Timestamp    string          `json:"timestamp"` // RFC3339
	Amount       float64         `json:"amount"`
	Type         TransactionType `json:"type"`
	Category     string          `json:"category"`
	IsHabit      bool            `json:"is_habit"`
	UnitQuantity float64         `json:"unit_quantity,omitempty"`
	UnitType     UnitType        `json:"unit_type,omitempty"`
	Mood         Mood            `json:"mood,omitempty"`
	Note         string          `json:"note,omitempty"`
}

// AddictionLog records a single craving/usage event. Independent of the
// transaction ledger; kept for future analytics.
type AddictionLog struct {
	ID         string `json:"id"`
	Timestamp  string `json:"timestamp"` // RFC3339
	Type       string `json:"type"`      // e.g. "Cigarettes"
	Trigger    string `json:"trigger"`
	MoodBefore Mood   `json:"mood_before"`
	MoodAfter  Mood   `json:"mood_after"`
}

// QuickAddPreset is a recurring-expense template with a default unit
// price; the profile may override the price per preset id.
type QuickAddPreset struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Price float64  `json:"price"`
	Unit  UnitType `json:"unit"`
	Icon  string   `json:"icon"`
}

// DefaultQuickAdds are the built-in habit presets.
var DefaultQuickAdds = []QuickAddPreset{
	{ID: "qa1", Label: "Cigarettes", Price: 18.00, Unit: UnitStick, Icon: "cigarette"},
	{ID: "qa2", Label: "Food", Price: 80.00, Unit: UnitPlain, Icon: "burger"},
	{ID: "qa3", Label: "Coffee", Price: 20.00, Unit: UnitCup, Icon: "coffee"},
	{ID: "qa4", Label: "Travel", Price: 50.00, Unit: UnitPlain, Icon: "car"},
}

// PresetByID returns the built-in preset with the given id.
func PresetByID(id string) (QuickAddPreset, bool) {
	for _, p := range DefaultQuickAdds {
		if p.ID == id {
			return p, true
		}
	}
	return QuickAddPreset{}, false
}

// PresetByLabel returns the built-in preset with the given label,
// matching case-insensitively.
func PresetByLabel(label string) (QuickAddPreset, bool) {
	for _, p := range DefaultQuickAdds {
		if strings.EqualFold(p.Label, label) {
			return p, true
		}
	}
	return QuickAddPreset{}, false
}
