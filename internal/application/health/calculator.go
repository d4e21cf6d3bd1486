package health

import (
	"math"
	"strings"

	"github.com/wellbeing/backend/internal/domain/identity"
)

var activityMultipliers = map[identity.ActivityLevel]float64{
	identity.ActivitySedentary:        1.2,
	identity.ActivityLightlyActive:    1.375,
	identity.ActivityModeratelyActive: 1.55,
	identity.ActivityVeryActive:       1.725,
	identity.ActivityExtraActive:      1.9,
}

// CalculateBMR computes basal metabolic rate with the Mifflin-St Jeor
// equation. Gender "other" is treated like female, the more conservative of
// the two offsets.
func CalculateBMR(weightKg, heightCm float64, age int, gender identity.Gender) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.ToLower(string(gender)) == string(identity.GenderMale) {
		bmr += 5
	} else {
		bmr -= 161
	}
	return round2(bmr)
}

// CalculateTDEE scales BMR by the activity multiplier. Unknown levels fall
// back to sedentary.
func CalculateTDEE(bmr float64, level identity.ActivityLevel) float64 {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = 1.2
	}
	return round2(bmr * mult)
}

// CalculateMacroTargets derives a daily calorie budget from TDEE and the
// weight goal (lose = 500 deficit, gain = 300 surplus) and splits it into a
// 30/40/30 protein/carb/fat ratio.
func CalculateMacroTargets(tdee float64, goal identity.WeightGoal) MacroTargets {
	calories := tdee
	switch goal {
	case identity.WeightGoalLose:
		calories = tdee - 500
	case identity.WeightGoalGain:
		calories = tdee + 300
	}
	return MacroTargets{
		Calories: math.Round(calories),
		ProteinG: math.Round(calories * 0.30 / 4),
		CarbsG:   math.Round(calories * 0.40 / 4),
		FatG:     math.Round(calories * 0.30 / 9),
	}
}

// BMICategory classifies a BMI value per the WHO ranges
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// bmiPoints awards up to 20 points, full marks for BMI in [18.5, 25)
func bmiPoints(bmi float64) float64 {
	switch {
	case bmi <= 0:
		return 0
	case bmi >= 18.5 && bmi < 25:
		return 20
	case (bmi >= 17 && bmi < 18.5) || (bmi >= 25 && bmi < 27):
		return 15
	case (bmi >= 16 && bmi < 17) || (bmi >= 27 && bmi < 30):
		return 10
	default:
		return 5
	}
}

// sleepPoints awards up to 20 points, full marks for an average of 7-9 hours
func sleepPoints(avgHours float64) float64 {
	switch {
	case avgHours <= 0:
		return 0
	case avgHours >= 7 && avgHours <= 9:
		return 20
	case (avgHours >= 6 && avgHours < 7) || (avgHours > 9 && avgHours <= 10):
		return 15
	case (avgHours >= 5 && avgHours < 6) || (avgHours > 10 && avgHours <= 11):
		return 10
	default:
		return 5
	}
}

// exercisePoints awards up to 25 points based on active days in the week
func exercisePoints(activeDays int, tracked bool) float64 {
	if !tracked {
		return 0
	}
	switch {
	case activeDays >= 5:
		return 25
	case activeDays >= 3:
		return 20
	case activeDays >= 1:
		return 15
	default:
		return 5
	}
}

// nutritionPoints scales an average 0-100 meal quality score to 20 points
func nutritionPoints(avgQuality float64, tracked bool) float64 {
	if !tracked {
		return 0
	}
	return round2(avgQuality / 100 * 20)
}

// vitalsPoints awards up to 15 points, 7.5 each for blood pressure and
// resting heart rate in their healthy ranges. Absent readings score zero.
func vitalsPoints(systolic, heartRate float64) float64 {
	score := 0.0
	if systolic > 0 {
		switch {
		case systolic >= 90 && systolic <= 120:
			score += 7.5
		case systolic >= 121 && systolic <= 129:
			score += 5
		default:
			score += 2.5
		}
	}
	if heartRate > 0 {
		switch {
		case heartRate >= 60 && heartRate <= 80:
			score += 7.5
		case (heartRate >= 50 && heartRate < 60) || (heartRate > 80 && heartRate <= 100):
			score += 5
		default:
			score += 2.5
		}
	}
	return round2(score)
}

func scoreGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C"
	case percentage >= 50:
		return "D"
	default:
		return "F"
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
