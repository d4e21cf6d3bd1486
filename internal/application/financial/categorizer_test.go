package financial

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/wellbeing/backend/internal/domain/financial"
)

func TestCategorizer(t *testing.T) {
	c := NewCategorizer()

	t.Run("merchant match wins with high confidence", func(t *testing.T) {
		resp := c.Categorize("weekly shop", "Whole Foods Market #123", decimal.NewFromInt(85))
		assert.Equal(t, financial.CategoryGroceries, resp.Category)
		assert.Equal(t, 0.95, resp.Confidence)
		assert.Equal(t, "merchant", resp.Source)
	})

	t.Run("merchant match is case insensitive", func(t *testing.T) {
		resp := c.Categorize("", "NETFLIX.COM", decimal.NewFromInt(16))
		assert.Equal(t, financial.CategorySubscriptions, resp.Category)
	})

	t.Run("keyword scoring on description", func(t *testing.T) {
		resp := c.Categorize("dinner at the italian restaurant", "", decimal.NewFromInt(45))
		assert.Equal(t, financial.CategoryDining, resp.Category)
		assert.Equal(t, "keyword", resp.Source)
		assert.Greater(t, resp.Confidence, 0.6)
	})

	t.Run("more keyword hits raise confidence", func(t *testing.T) {
		one := c.Categorize("coffee", "", decimal.NewFromInt(5))
		two := c.Categorize("coffee and lunch", "", decimal.NewFromInt(20))
		assert.Greater(t, two.Confidence, one.Confidence)
	})

	t.Run("large unmatched amount becomes large purchase", func(t *testing.T) {
		resp := c.Categorize("xzq", "", decimal.NewFromInt(2500))
		assert.Equal(t, financial.CategoryLargePurchase, resp.Category)
		assert.Equal(t, "amount", resp.Source)
	})

	t.Run("default is other expense", func(t *testing.T) {
		resp := c.Categorize("xzq", "", decimal.NewFromInt(12))
		assert.Equal(t, financial.CategoryOtherExpense, resp.Category)
		assert.Equal(t, "default", resp.Source)
	})

	t.Run("salary keyword", func(t *testing.T) {
		resp := c.Categorize("monthly paycheck deposit", "", decimal.NewFromInt(5000))
		assert.Equal(t, financial.CategorySalary, resp.Category)
	})
}
