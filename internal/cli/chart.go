package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jagruklabs/jagruk/internal/insights"
)

// ChartCmd renders the last seven days of spend as a horizontal bar chart.
type ChartCmd struct {
	Width int `default:"30" help:"Bar width in characters."`
}

func (c *ChartCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	series := insights.WeeklySpend(s.State(), time.Now())
	max := insights.SeriesMax(series)

	for _, p := range series {
		n := int(p.Spend / max * float64(c.Width))
		if p.Spend > 0 && n == 0 {
			n = 1
		}
		fmt.Printf("%s %s %s\n", p.Label, strings.Repeat("█", n)+strings.Repeat("░", c.Width-n), money(p.Spend))
	}
	return nil
}
