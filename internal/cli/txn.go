package cli

import (
	"fmt"
	"time"

	"github.com/jagruklabs/jagruk/internal/constants"
	"github.com/jagruklabs/jagruk/internal/insights"
	"github.com/jagruklabs/jagruk/internal/models"
	"github.com/jagruklabs/jagruk/internal/store"
	"github.com/jagruklabs/jagruk/internal/validation"
)

// TxnCmd manages the money ledger.
type TxnCmd struct {
	Add  TxnAddCmd  `cmd:"" help:"Record an expense or income."`
	List TxnListCmd `cmd:"" default:"1" help:"Show the recent ledger."`
}

type TxnAddCmd struct {
	Amount   float64 `arg:"" help:"Positive amount."`
	Category string  `arg:"" help:"Category label."`
	Income   bool    `help:"Record as income instead of expense."`
	Habit    bool    `help:"Mark as habit spend."`
	Mood     string  `help:"Mood at time of spend."`
	Note     string  `help:"Free-form note."`
	Date     string  `help:"Back-date to YYYY-MM-DD (records at noon)."`
}

func (c *TxnAddCmd) Validate() error {
	if err := validation.Transaction(c.Category, c.Amount); err != nil {
		return err
	}
	if c.Mood != "" {
		if err := validation.Mood(models.Mood(c.Mood)); err != nil {
			return err
		}
	}
	if c.Date != "" {
		return validation.Date(c.Date)
	}
	return nil
}

func (c *TxnAddCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	draft := store.TransactionDraft{
		Amount:   c.Amount,
		Type:     models.TransactionExpense,
		Category: c.Category,
		IsHabit:  c.Habit,
		Mood:     models.Mood(c.Mood),
		Note:     c.Note,
	}
	if c.Income {
		draft.Type = models.TransactionIncome
	}
	if c.Date != "" {
		draft.Timestamp = backDate(c.Date)
	}

	txn := s.AddTransaction(draft)
	fmt.Printf("Logged %s %s (%s)\n", txn.Type, money(txn.Amount), txn.Category)

	if insights.RedirectionAlert(s.State()) {
		fmt.Printf("Habit spend is at %s. That money could fund a goal.\n", money(insights.HabitSpend(s.State())))
	}
	return nil
}

// backDate pins a back-dated transaction to noon local time so it sorts
// inside the requested day regardless of timezone.
func backDate(date string) string {
	d, err := time.ParseInLocation(constants.DateFormat, date, time.Local)
	if err != nil {
		return time.Now().Format(time.RFC3339)
	}
	return d.Add(12 * time.Hour).Format(time.RFC3339)
}

type TxnListCmd struct{}

func (c *TxnListCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	groups := insights.GroupTransactions(s.State())
	if len(groups) == 0 {
		fmt.Println("No transactions yet.")
		return nil
	}
	for _, g := range groups {
		fmt.Printf("%s\n", humanDate(g.Date))
		for _, t := range g.Txns {
			sign := "-"
			if t.Type == models.TransactionIncome {
				sign = "+"
			}
			line := fmt.Sprintf("  %s%s  %s", sign, money(t.Amount), t.Category)
			if t.IsHabit {
				line += " [habit]"
			}
			if t.Note != "" {
				line += "  " + t.Note
			}
			fmt.Println(line)
		}
	}
	return nil
}

// QuickCmd logs a habit preset in one keystroke, at the preset's price or
// the profile's per-habit override.
type QuickCmd struct {
	Preset string  `arg:"" help:"Preset label or id (Cigarettes, Food, Coffee, Travel)."`
	Qty    float64 `default:"1" help:"Unit quantity."`
	Mood   string  `help:"Mood at time of spend."`
	Date   string  `help:"Back-date to YYYY-MM-DD."`
}

func (c *QuickCmd) Validate() error {
	if c.Qty <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if c.Mood != "" {
		if err := validation.Mood(models.Mood(c.Mood)); err != nil {
			return err
		}
	}
	if c.Date != "" {
		return validation.Date(c.Date)
	}
	return nil
}

func (c *QuickCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	preset, ok := models.PresetByID(c.Preset)
	if !ok {
		preset, ok = models.PresetByLabel(c.Preset)
	}
	if !ok {
		return fmt.Errorf("unknown preset %q", c.Preset)
	}

	price := preset.Price
	if override, ok := s.State().Profile.HabitOverrides[preset.ID]; ok {
		price = override
	}

	draft := store.TransactionDraft{
		Amount:       price * c.Qty,
		Type:         models.TransactionExpense,
		Category:     preset.Label,
		IsHabit:      true,
		UnitQuantity: c.Qty,
		UnitType:     preset.Unit,
		Mood:         models.Mood(c.Mood),
	}
	if c.Date != "" {
		draft.Timestamp = backDate(c.Date)
	}

	txn := s.AddTransaction(draft)
	fmt.Printf("Logged %s x%g (%s)\n", preset.Label, c.Qty, money(txn.Amount))

	if limit, ok := s.State().Profile.HabitLimits[preset.Label]; ok {
		day := today()
		if c.Date != "" {
			day = c.Date
		}
		units := insights.DayHabitUnits(s.State(), day)[preset.Label]
		if units > float64(limit) {
			fmt.Printf("Over your %s limit: %g of %d today.\n", preset.Label, units, limit)
		}
	}
	return nil
}
