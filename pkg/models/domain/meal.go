package domain

import "fmt"

// MealType is the closed set of meal occasions the calculator knows
// how to price.
type MealType string

const (
	MealBreakfast        MealType = "breakfast"
	MealLunch            MealType = "lunch"
	MealDinner           MealType = "dinner"
	MealNextDayBreakfast MealType = "nextDayBreakfast"
)

// MealFamily groups meal types for material pricing and band lookups.
// nextDayBreakfast shares the breakfast family: it is priced like a
// breakfast, it only differs in labor discounting.
type MealFamily string

const (
	FamilyBreakfast MealFamily = "breakfast"
	FamilyLunch     MealFamily = "lunch"
	FamilyDinner    MealFamily = "dinner"
)

func MealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner, MealNextDayBreakfast}
}

func ParseMealType(s string) (MealType, error) {
	t := MealType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown meal type: %q", s)
	}
	return t, nil
}

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealNextDayBreakfast:
		return true
	}
	return false
}

func (m MealType) Family() MealFamily {
	switch m {
	case MealBreakfast, MealNextDayBreakfast:
		return FamilyBreakfast
	case MealLunch:
		return FamilyLunch
	default:
		return FamilyDinner
	}
}

// IsBreakfast reports whether the meal belongs to the breakfast family
// and therefore carries a per-item material surcharge.
func (m MealType) IsBreakfast() bool {
	return m.Family() == FamilyBreakfast
}

func (m MealType) Label() string {
	switch m {
	case MealBreakfast:
		return "Breakfast"
	case MealLunch:
		return "Lunch"
	case MealDinner:
		return "Dinner"
	case MealNextDayBreakfast:
		return "Next Day Breakfast"
	default:
		return string(m)
	}
}

// MealSpec is one meal occasion's pricing input. Counters is accepted
// and echoed back for display but does not enter the cost formulas.
// Items is only meaningful for the breakfast family; zero means "use
// the baseline item count".
type MealSpec struct {
	Type     MealType
	Guests   int
	Counters int
	Items    int
}
