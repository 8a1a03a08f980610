package estimate

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/adapters"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/api"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/domain"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/adjust"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/advisor"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/pricing"
)

// Handler serves the estimation endpoints. Input range validation
// happens here: the pricing core trusts its callers, so the handler
// is where guest counts and margins are policed.
type Handler struct {
	rates      pricing.Rates
	calculator pricing.Calculator
	advisor    advisor.Advisor
	applicator adjust.Applicator
}

func NewHandler(
	rates pricing.Rates,
	calculator pricing.Calculator,
	adv advisor.Advisor,
	applicator adjust.Applicator,
) *Handler {
	return &Handler{
		rates:      rates,
		calculator: calculator,
		advisor:    adv,
		applicator: applicator,
	}
}

func (h *Handler) EstimateMeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.MealEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	spec, err := h.validateSpec(req.Meal)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	marginPct, err := h.resolveMargin(req.ProfitMarginPct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	breakdown := h.calculator.EstimateMeal(spec, marginPct)
	writeJSON(w, logger, adapters.MapCostBreakdownDomainToApi(breakdown))
}

func (h *Handler) EstimateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.EventEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Meals) == 0 {
		http.Error(w, "at least one meal must be selected", http.StatusBadRequest)
		return
	}
	mainMeal, err := domain.ParseMealType(req.MainMealType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	specs := make([]domain.MealSpec, 0, len(req.Meals))
	for _, meal := range req.Meals {
		spec, err := h.validateSpec(meal)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		specs = append(specs, spec)
	}
	marginPct, err := h.resolveMargin(req.ProfitMarginPct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	breakdown, err := h.calculator.EstimateEvent(specs, mainMeal, marginPct)
	if err != nil {
		if errors.Is(err, pricing.ErrMainMealNotSelected) || errors.Is(err, pricing.ErrNoMealsSelected) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error().Err(err).Msg("failed to estimate event")
		http.Error(w, "failed to estimate event", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapCostBreakdownDomainToApi(breakdown))
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	mealType, err := domain.ParseMealType(req.MealType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	breakdown, err := adapters.MapCostBreakdownApiToDomain(req.Breakdown)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	advice := h.advisor.Evaluate(breakdown, mealType)
	writeJSON(w, logger, adapters.MapAdviceDomainToApi(advice))
}

func (h *Handler) Adjust(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	breakdown, err := adapters.MapCostBreakdownApiToDomain(req.Breakdown)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if p := req.Adjustments.ProfitMarginPct; p != nil && (*p < 0 || *p > 100) {
		http.Error(w, "profit margin must be between 0 and 100", http.StatusBadRequest)
		return
	}

	adjusted := h.applicator.Apply(breakdown, adapters.MapAdjustmentsApiToDomain(req.Adjustments))
	writeJSON(w, logger, adapters.MapCostBreakdownDomainToApi(adjusted))
}

func (h *Handler) ListMealTypes(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	types := make([]api.MealTypeInfo, 0, len(domain.MealTypes()))
	for _, t := range domain.MealTypes() {
		types = append(types, api.MealTypeInfo{Type: string(t), Label: t.Label()})
	}
	writeJSON(w, logger, types)
}

func (h *Handler) validateSpec(spec api.MealSpec) (domain.MealSpec, error) {
	out, err := adapters.MapMealSpecApiToDomain(spec)
	if err != nil {
		return domain.MealSpec{}, err
	}
	if out.Guests < 1 {
		return domain.MealSpec{}, fmt.Errorf("guest count must be at least 1, got %d", out.Guests)
	}
	if out.Counters < 1 {
		return domain.MealSpec{}, fmt.Errorf("counter count must be at least 1, got %d", out.Counters)
	}
	if out.Items < 0 {
		return domain.MealSpec{}, fmt.Errorf("item count must not be negative, got %d", out.Items)
	}
	return out, nil
}

func (h *Handler) resolveMargin(marginPct *int) (int, error) {
	if marginPct == nil {
		return h.rates.DefaultMarginPct, nil
	}
	if *marginPct < 0 || *marginPct > 100 {
		return 0, fmt.Errorf("profit margin must be between 0 and 100, got %d", *marginPct)
	}
	return *marginPct, nil
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
