// Package report renders optimization results for the console. All
// currency formatting and layout lives here; the engine hands over
// plain values.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"

	"spread-optimizer/internal/models"
	"spread-optimizer/pkg/utils"
)

const rule = "---------------------------------------------------------------------------"

// Renderer writes human-readable reports.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// RenderResult writes the full optimization report: the outcome banner,
// the detailed best-spread breakdown, and the top evaluated candidates.
func (r *Renderer) RenderResult(res *models.OptimizationResult, req *models.OptimizationRequest) {
	switch res.Outcome {
	case models.OutcomeBest:
		fmt.Fprintf(r.out, "BEST SPREAD (net risk/reward >= %.2f)\n", req.MinRiskReward)
	case models.OutcomeBestUnqualified:
		fmt.Fprintf(r.out, "NO SPREAD MEETS THE QUALITY GATE (net risk/reward >= %.2f)\n", req.MinRiskReward)
		fmt.Fprintln(r.out, "Showing the best profitable candidate below the bar.")
	case models.OutcomeNoneFound:
		fmt.Fprintf(r.out, "NO PROFITABLE SPREAD FOUND for %s (%d candidates evaluated).\n",
			res.Underlying, res.Evaluated)
		fmt.Fprintf(r.out, "Fees of %s exceed every possible gain.\n", utils.FormatBRL(req.FeesTotal))
		return
	}

	fmt.Fprintln(r.out, rule)
	r.RenderCandidate(res.Best, req.SpotPrice, req.Quantity)

	if len(res.Top) > 1 {
		fmt.Fprintln(r.out)
		r.renderTop(res.Top)
	}
	r.renderSummary(res)
}

// RenderCandidate writes the detailed breakdown for one spread.
func (r *Renderer) RenderCandidate(c *models.SpreadCandidate, spotPrice float64, quantity int) {
	sold, bought := c.SoldLeg.Quote, c.BoughtLeg.Quote

	fmt.Fprintf(r.out, "%s\n", strings.ToUpper(c.Kind.String()))
	fmt.Fprintf(r.out, "Underlying: %s | Spot: %s | Lot: %d contracts\n",
		sold.Underlying, utils.FormatBRL(spotPrice), quantity)
	if sold.Expiry != nil {
		days := ""
		if sold.DaysToExpiry != nil {
			days = fmt.Sprintf(" (%d business days)", *sold.DaysToExpiry)
		}
		fmt.Fprintf(r.out, "Expiry: %s%s\n", sold.Expiry.Format("2006-01-02"), days)
	}
	fmt.Fprintln(r.out, rule)

	fmt.Fprintf(r.out, "SELL:  %s (strike %s | premium %s)\n",
		legTicker(sold), utils.FormatBRL(sold.Strike), utils.FormatBRL(sold.Premium))
	fmt.Fprintf(r.out, "BUY:   %s (strike %s | premium %s)\n",
		legTicker(bought), utils.FormatBRL(bought.Strike), utils.FormatBRL(bought.Premium))
	fmt.Fprintln(r.out, rule)

	nature := "DEBIT (cost paid up front)"
	if c.Kind.IsCredit() {
		nature = "CREDIT (premium collected)"
	}
	fmt.Fprintf(r.out, "Nature: %s\n", nature)
	fmt.Fprintf(r.out, "Net premium per unit: %s\n", utils.FormatBRL(c.NetPremiumPerUnit))
	fmt.Fprintf(r.out, "Breakeven: %s\n", utils.FormatBRL(c.Breakeven))
	fmt.Fprintf(r.out, "Notional exposure: %s\n", utils.FormatBRL(c.NotionalTotal))
	fmt.Fprintln(r.out, rule)

	fmt.Fprintf(r.out, "MAX PROFIT (net of fees): %s\n", utils.FormatBRL(c.MaxProfitTotal))
	fmt.Fprintf(r.out, "MAX LOSS (net of fees):   %s\n", utils.FormatBRL(c.MaxLossTotal))
	if c.HasRatio() {
		fmt.Fprintf(r.out, "RISK/REWARD (net):        %s\n", utils.FormatRatio(c.RiskRewardRatio))
	} else {
		fmt.Fprintln(r.out, "RISK/REWARD (net):        undefined")
	}

	r.renderGreeks(c)
}

func (r *Renderer) renderGreeks(c *models.SpreadCandidate) {
	g := c.NetGreeks
	if g.Delta == nil && g.Gamma == nil && g.Theta == nil && g.Vega == nil {
		return
	}
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, "NET POSITION GREEKS (per unit)")
	fmt.Fprintf(r.out, "  delta %s | gamma %s | theta %s | vega %s\n",
		utils.FormatOptionalGreek(g.Delta),
		utils.FormatOptionalGreek(g.Gamma),
		utils.FormatOptionalGreek(g.Theta),
		utils.FormatOptionalGreek(g.Vega))

	sold, bought := c.SoldLeg.Quote, c.BoughtLeg.Quote
	if sold.ImpliedVol != nil || bought.ImpliedVol != nil {
		fmt.Fprintf(r.out, "  IV sold %s | IV bought %s\n",
			formatOptionalPercent(sold.ImpliedVol),
			formatOptionalPercent(bought.ImpliedVol))
	}
}

// renderTop writes the ranked candidate table.
func (r *Renderer) renderTop(top []*models.SpreadCandidate) {
	fmt.Fprintln(r.out, "TOP CANDIDATES")
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"#", "Strategy", "Sold", "Bought", "Net/Unit", "Max Profit", "Max Loss", "R/R"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnSeparator("")

	for i, c := range top {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			c.Kind.String(),
			fmt.Sprintf("%.2f", c.SoldLeg.Quote.Strike),
			fmt.Sprintf("%.2f", c.BoughtLeg.Quote.Strike),
			fmt.Sprintf("%.2f", c.NetPremiumPerUnit),
			utils.FormatBRL(c.MaxProfitTotal),
			utils.FormatBRL(c.MaxLossTotal),
			utils.FormatRatio(c.RiskRewardRatio),
		})
	}
	table.Render()
}

// renderSummary writes distribution statistics over the ranked
// candidates, when there are enough to be meaningful.
func (r *Renderer) renderSummary(res *models.OptimizationResult) {
	if len(res.Top) < 2 {
		return
	}
	ratios := make([]float64, 0, len(res.Top))
	for _, c := range res.Top {
		ratios = append(ratios, c.RiskRewardRatio)
	}

	median, err := stats.Median(ratios)
	if err != nil {
		return
	}
	mean, err := stats.Mean(ratios)
	if err != nil {
		return
	}
	fmt.Fprintf(r.out, "Evaluated %d candidates | top-%d ratio median %.2f, mean %.2f\n",
		res.Evaluated, len(res.Top), median, mean)
}

func legTicker(q *models.OptionQuote) string {
	if q.Ticker != "" {
		return q.Ticker
	}
	return q.Underlying
}

// formatOptionalPercent renders an implied volatility already expressed
// as a percent figure.
func formatOptionalPercent(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *v)
}
