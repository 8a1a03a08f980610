package commands

import (
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/adjust"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/advisor"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/pricing"
)

// Services bundles the pricing pipeline the commands run against.
type Services struct {
	Rates      pricing.Rates
	Calculator pricing.Calculator
	Advisor    advisor.Advisor
	Applicator adjust.Applicator
}
