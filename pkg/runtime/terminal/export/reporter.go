package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/domain"
)

type TableConfig struct {
	NameWidth   int
	AmountWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:   28,
		AmountWidth: 14,
	}
}

// Reporter renders breakdowns and advice to the console in a
// formatted text form.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(title string, breakdown domain.CostBreakdown) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, amount interface{}) string {
			return fmt.Sprintf("| %-*s | %*v |",
				c.config.NameWidth, name,
				c.config.AmountWidth, amount)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.AmountWidth+2))
		},
		"label": func(t domain.MealType) string {
			return t.Label()
		},
	}

	tmpl := `
{{.Title}} ({{.Breakdown.Guests}} guests)

{{if .Breakdown.Meals}}Per-meal costs:
{{range .Breakdown.Meals}}  {{label .Type}}{{if .IsMain}} (main){{end}}: {{.Cost}} (labor {{.LaborCost}}, material {{.MaterialCost}})
{{end}}
{{end}}{{separator}}
{{formatRow "Labor Cost" .Breakdown.LaborCost}}
{{formatRow "Material Cost" .Breakdown.MaterialCost}}
{{formatRow "Base Cost" .Breakdown.BaseCost}}
{{formatRow (printf "Profit (%d%%)" .Breakdown.ProfitMarginPct) .Breakdown.Profit}}
{{formatRow "Total Cost" .Breakdown.TotalCost}}
{{formatRow "Per Person" .Breakdown.PerPersonCost}}
{{formatRow "Misc Expenses" .Breakdown.MiscExpenses}}
{{formatRow "Grand Total" .Breakdown.GrandTotal}}
{{separator}}
`

	t, err := template.New("breakdown").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, struct {
		Title     string
		Breakdown domain.CostBreakdown
	}{Title: title, Breakdown: breakdown})
}

func (c *Reporter) HandleAdvice(advice domain.Advice) error {
	tmpl := `
Advisor verdict: {{if .Reasonable}}within industry standards{{else}}adjustments suggested{{end}}

{{.Explanation}}
{{if .Adjustments.LaborCostMultiplier}}
Suggested labor multiplier: {{printf "%.2f" (deref .Adjustments.LaborCostMultiplier)}}{{end}}{{if .Adjustments.MaterialCostMultiplier}}
Suggested material multiplier: {{printf "%.2f" (deref .Adjustments.MaterialCostMultiplier)}}{{end}}{{if .Adjustments.ProfitMarginPct}}
Suggested profit margin: {{derefInt .Adjustments.ProfitMarginPct}}%{{end}}
`

	funcMap := template.FuncMap{
		"deref":    func(f *float64) float64 { return *f },
		"derefInt": func(i *int) int { return *i },
	}

	t, err := template.New("advice").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, advice)
}
