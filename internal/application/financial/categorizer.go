package financial

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wellbeing/backend/internal/domain/financial"
)

// largePurchaseThreshold nudges big unmatched expenses into large_purchase
var largePurchaseThreshold = decimal.NewFromInt(1000)

// merchantCategories maps known merchant substrings to categories.
// A merchant match wins outright with high confidence.
var merchantCategories = map[string]string{
	"whole foods":  financial.CategoryGroceries,
	"trader joe":   financial.CategoryGroceries,
	"safeway":      financial.CategoryGroceries,
	"kroger":       financial.CategoryGroceries,
	"aldi":         financial.CategoryGroceries,
	"costco":       financial.CategoryGroceries,
	"starbucks":    financial.CategoryDining,
	"mcdonald":     financial.CategoryDining,
	"chipotle":     financial.CategoryDining,
	"doordash":     financial.CategoryDining,
	"grubhub":      financial.CategoryDining,
	"uber eats":    financial.CategoryDining,
	"uber":         financial.CategoryTransport,
	"lyft":         financial.CategoryTransport,
	"shell":        financial.CategoryTransport,
	"chevron":      financial.CategoryTransport,
	"netflix":      financial.CategorySubscriptions,
	"spotify":      financial.CategorySubscriptions,
	"hulu":         financial.CategorySubscriptions,
	"disney+":      financial.CategorySubscriptions,
	"youtube":      financial.CategorySubscriptions,
	"amazon prime": financial.CategorySubscriptions,
	"amazon":       financial.CategoryShopping,
	"target":       financial.CategoryShopping,
	"walmart":      financial.CategoryShopping,
	"best buy":     financial.CategoryShopping,
	"cvs":          financial.CategoryHealthcare,
	"walgreens":    financial.CategoryHealthcare,
	"airbnb":       financial.CategoryTravel,
	"delta":        financial.CategoryTravel,
	"united":       financial.CategoryTravel,
	"marriott":     financial.CategoryTravel,
}

// keywordCategories maps description keywords to categories. Each hit adds
// one point and the highest scoring category wins.
var keywordCategories = map[string][]string{
	financial.CategorySalary:        {"salary", "paycheck", "payroll", "wages"},
	financial.CategoryGroceries:     {"grocery", "groceries", "supermarket", "market"},
	financial.CategoryDining:        {"restaurant", "lunch", "dinner", "coffee", "cafe", "takeout", "pizza"},
	financial.CategoryTransport:     {"gas", "fuel", "parking", "toll", "transit", "metro", "taxi", "train"},
	financial.CategoryHousing:       {"rent", "mortgage", "landlord", "hoa"},
	financial.CategoryUtilities:     {"electric", "electricity", "water bill", "internet", "phone bill", "utility"},
	financial.CategoryEntertainment: {"movie", "cinema", "concert", "game", "theater"},
	financial.CategoryHealthcare:    {"doctor", "dentist", "pharmacy", "clinic", "hospital", "copay"},
	financial.CategoryShopping:      {"clothes", "clothing", "shoes", "electronics"},
	financial.CategorySubscriptions: {"subscription", "membership", "monthly plan"},
	financial.CategoryTravel:        {"flight", "hotel", "vacation", "trip"},
	financial.CategoryEducation:     {"tuition", "course", "book", "textbook", "class"},
}

// Categorizer assigns spending categories from merchant and description rules
type Categorizer struct{}

// NewCategorizer creates a rule-based categorizer
func NewCategorizer() *Categorizer {
	return &Categorizer{}
}

// Categorize suggests a category for a transaction. Merchant substring
// matches win with confidence 0.95; otherwise description keywords are
// scored; large unmatched amounts fall into large_purchase; everything
// else is other_expense.
func (c *Categorizer) Categorize(description, merchant string, amount decimal.Decimal) CategorizeResponse {
	merchantLower := strings.ToLower(merchant)
	if merchantLower != "" {
		for substr, category := range merchantCategories {
			if strings.Contains(merchantLower, substr) {
				return CategorizeResponse{
					Category:   category,
					Confidence: 0.95,
					Source:     "merchant",
				}
			}
		}
	}

	text := strings.ToLower(description + " " + merchant)
	bestCategory := ""
	bestScore := 0
	for category, keywords := range keywordCategories {
		score := 0
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore || (score == bestScore && score > 0 && category < bestCategory) {
			bestCategory = category
			bestScore = score
		}
	}

	if bestScore > 0 {
		confidence := 0.6 + float64(bestScore)*0.1
		if confidence > 0.9 {
			confidence = 0.9
		}
		return CategorizeResponse{
			Category:   bestCategory,
			Confidence: confidence,
			Source:     "keyword",
		}
	}

	if amount.GreaterThan(largePurchaseThreshold) {
		return CategorizeResponse{
			Category:   financial.CategoryLargePurchase,
			Confidence: 0.5,
			Source:     "amount",
		}
	}

	return CategorizeResponse{
		Category:   financial.CategoryOtherExpense,
		Confidence: 0.3,
		Source:     "default",
	}
}
