package health

import (
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// MealType identifies which meal of the day an entry belongs to
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// NutritionEntry is one logged meal with macro breakdown
type NutritionEntry struct {
	shared.UserAggregateRoot
	MealType    MealType  `gorm:"type:varchar(10);not null;index"`
	Description string    `gorm:"type:varchar(500)"`
	Calories    float64   `gorm:"not null"`
	ProteinG    float64   `gorm:"not null;default:0"`
	CarbsG      float64   `gorm:"not null;default:0"`
	FatG        float64   `gorm:"not null;default:0"`
	EatenAt     time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (NutritionEntry) TableName() string {
	return "nutrition_entries"
}

// NewNutritionEntry creates a validated meal entry
func NewNutritionEntry(userID uuid.UUID, mealType MealType, description string, calories, protein, carbs, fat float64, eatenAt time.Time) (*NutritionEntry, error) {
	if err := validateMealType(mealType); err != nil {
		return nil, err
	}
	if calories < 0 || protein < 0 || carbs < 0 || fat < 0 {
		return nil, shared.NewDomainError("INVALID_VALUE", "Nutrition values cannot be negative")
	}
	if eatenAt.IsZero() {
		eatenAt = time.Now()
	}

	return &NutritionEntry{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		MealType:          mealType,
		Description:       description,
		Calories:          calories,
		ProteinG:          protein,
		CarbsG:            carbs,
		FatG:              fat,
		EatenAt:           eatenAt,
	}, nil
}

// Update replaces the mutable fields of a meal entry
func (n *NutritionEntry) Update(mealType MealType, description string, calories, protein, carbs, fat float64, eatenAt time.Time) error {
	if err := validateMealType(mealType); err != nil {
		return err
	}
	if calories < 0 || protein < 0 || carbs < 0 || fat < 0 {
		return shared.NewDomainError("INVALID_VALUE", "Nutrition values cannot be negative")
	}
	n.MealType = mealType
	n.Description = description
	n.Calories = calories
	n.ProteinG = protein
	n.CarbsG = carbs
	n.FatG = fat
	if !eatenAt.IsZero() {
		n.EatenAt = eatenAt
	}
	n.UpdatedAt = time.Now()
	n.IncrementVersion()
	return nil
}

// QualityScore rates the macro balance of a meal from 0 to 100. A meal whose
// protein/carb/fat calorie split is close to 30/40/30 scores near 100.
func (n *NutritionEntry) QualityScore() float64 {
	calFromMacros := n.ProteinG*4 + n.CarbsG*4 + n.FatG*9
	if calFromMacros <= 0 {
		return 50 // no macro data, neutral score
	}
	proteinShare := n.ProteinG * 4 / calFromMacros
	carbShare := n.CarbsG * 4 / calFromMacros
	fatShare := n.FatG * 9 / calFromMacros

	deviation := abs(proteinShare-0.30) + abs(carbShare-0.40) + abs(fatShare-0.30)
	score := 100 * (1 - deviation)
	if score < 0 {
		return 0
	}
	return score
}

func validateMealType(t MealType) error {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return nil
	}
	return shared.NewDomainError("INVALID_TYPE", "Unknown meal type")
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
