package wellbeing

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appfinancial "github.com/wellbeing/backend/internal/application/financial"
	apphealth "github.com/wellbeing/backend/internal/application/health"
	appproductivity "github.com/wellbeing/backend/internal/application/productivity"
	appworklife "github.com/wellbeing/backend/internal/application/worklife"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/infrastructure/cache"
)

const (
	dashboardView     = "wellbeing"
	defaultWindowDays = 30
)

// FinancialScores exposes the financial score used by the overview
type FinancialScores interface {
	HealthScore(ctx context.Context, userID uuid.UUID) (*appfinancial.HealthScoreResponse, error)
}

// HealthScores exposes the health score and metric trends
type HealthScores interface {
	Score(ctx context.Context, userID uuid.UUID) (*apphealth.HealthScoreResponse, error)
	Trends(ctx context.Context, userID uuid.UUID, metricType string, days int) (*apphealth.TrendResponse, error)
}

// BalanceScores exposes the work-life balance and burnout calculations
type BalanceScores interface {
	BalanceScore(ctx context.Context, userID uuid.UUID, days int) (*appworklife.BalanceScoreResponse, error)
	BurnoutRisk(ctx context.Context, userID uuid.UUID, days int) (*appworklife.BurnoutRiskResponse, error)
}

// ProductivityScores exposes the productivity score
type ProductivityScores interface {
	Score(ctx context.Context, userID uuid.UUID, days int) (*appproductivity.ScoreResponse, error)
}

// Service aggregates the four pillars into one dashboard and generates the
// rule-based insight feed
type Service struct {
	financialScores    FinancialScores
	healthScores       HealthScores
	balanceScores      BalanceScores
	productivityScores ProductivityScores
	txRepo             financial.TransactionRepository
	dashboardCache     cache.DashboardCache
	logger             *zap.Logger
}

// NewService creates a new wellbeing service
func NewService(
	financialScores FinancialScores,
	healthScores HealthScores,
	balanceScores BalanceScores,
	productivityScores ProductivityScores,
	txRepo financial.TransactionRepository,
	dashboardCache cache.DashboardCache,
	logger *zap.Logger,
) *Service {
	return &Service{
		financialScores:    financialScores,
		healthScores:       healthScores,
		balanceScores:      balanceScores,
		productivityScores: productivityScores,
		txRepo:             txRepo,
		dashboardCache:     dashboardCache,
		logger:             logger,
	}
}

// Dashboard returns all four pillar scores plus the overall score, the
// equal-weight average of the pillars that have tracked data. The result is
// cached per user with a short TTL.
func (s *Service) Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardResponse, error) {
	if s.dashboardCache != nil {
		var cached DashboardResponse
		if err := s.dashboardCache.Get(ctx, userID, dashboardView, &cached); err == nil {
			return &cached, nil
		}
	}

	resp := &DashboardResponse{GeneratedAt: time.Now()}

	finScore, err := s.financialScores.HealthScore(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp.Financial = PillarScore{Score: finScore.Score, Available: finScore.Score > 0}

	healthScore, err := s.healthScores.Score(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp.Health = PillarScore{Score: healthScore.Percentage, Available: healthScore.Score > 0}

	balance, err := s.balanceScores.BalanceScore(ctx, userID, defaultWindowDays)
	if err != nil {
		return nil, err
	}
	resp.Worklife = PillarScore{Score: balance.Score, Available: balance.WorkHours > 0 || balance.LifeHours > 0}

	prodScore, err := s.productivityScores.Score(ctx, userID, defaultWindowDays)
	if err != nil {
		return nil, err
	}
	resp.Productivity = PillarScore{Score: prodScore.Score, Available: prodScore.DaysTracked > 0}

	var sum float64
	available := 0
	for _, p := range []PillarScore{resp.Financial, resp.Health, resp.Worklife, resp.Productivity} {
		if p.Available {
			sum += p.Score
			available++
		}
	}
	if available > 0 {
		resp.OverallScore = round2(sum / float64(available))
	}

	if s.dashboardCache != nil {
		if err := s.dashboardCache.Set(ctx, userID, dashboardView, resp); err != nil {
			s.logger.Warn("failed to cache wellbeing dashboard", zap.Error(err))
		}
	}
	return resp, nil
}

// InvalidateDashboard drops the cached overview, called after writes that
// change any pillar's data
func (s *Service) InvalidateDashboard(ctx context.Context, userID uuid.UUID) {
	if s.dashboardCache == nil {
		return
	}
	if err := s.dashboardCache.Invalidate(ctx, userID, dashboardView); err != nil {
		s.logger.Warn("failed to invalidate wellbeing dashboard", zap.Error(err))
	}
}

// Insights generates the rule-based feed: spending anomalies, weight trend
// shifts and burnout warnings
func (s *Service) Insights(ctx context.Context, userID uuid.UUID, days int) (*InsightsResponse, error) {
	if days <= 0 {
		days = defaultWindowDays
	}

	resp := &InsightsResponse{Days: days, Insights: []Insight{}}

	anomalies, err := s.spendingAnomalies(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	resp.Insights = append(resp.Insights, anomalies...)

	if trend := s.weightTrend(ctx, userID, days); trend != nil {
		resp.Insights = append(resp.Insights, *trend)
	}

	burnout, err := s.balanceScores.BurnoutRisk(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	if burnout.Level == "high" || burnout.Level == "critical" {
		resp.Insights = append(resp.Insights, Insight{
			Type:        "warning",
			Pillar:      "worklife",
			Title:       "Elevated Burnout Risk",
			Description: fmt.Sprintf("Your burnout risk is %s (%.0f/100). %s", burnout.Level, burnout.Score, firstOrEmpty(burnout.Recommendations)),
			Severity:    "high",
			Data:        map[string]interface{}{"score": burnout.Score, "level": burnout.Level},
		})
	}

	return resp, nil
}

// spendingAnomalies flags days whose spend exceeds the window mean by more
// than two standard deviations
func (s *Service) spendingAnomalies(ctx context.Context, userID uuid.UUID, days int) ([]Insight, error) {
	now := time.Now()
	txs, err := s.txRepo.FindInRange(ctx, userID, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, err
	}

	daily := make(map[string]float64)
	for i := range txs {
		if txs[i].Type != financial.TransactionTypeExpense {
			continue
		}
		day := txs[i].OccurredOn.Format("2006-01-02")
		daily[day] += txs[i].Amount.InexactFloat64()
	}
	if len(daily) < 2 {
		return nil, nil
	}

	var sum float64
	for _, amount := range daily {
		sum += amount
	}
	mean := sum / float64(len(daily))
	var variance float64
	for _, amount := range daily {
		variance += (amount - mean) * (amount - mean)
	}
	stddev := math.Sqrt(variance / float64(len(daily)))
	if stddev == 0 {
		return nil, nil
	}

	dates := make([]string, 0, len(daily))
	for day := range daily {
		dates = append(dates, day)
	}
	sort.Strings(dates)

	var insights []Insight
	for _, day := range dates {
		amount := daily[day]
		if amount > mean+2*stddev {
			insights = append(insights, Insight{
				Type:        "anomaly",
				Pillar:      "financial",
				Title:       "Unusual Spending Detected",
				Description: fmt.Sprintf("Your spending on %s was $%.2f, significantly higher than your daily average of $%.2f", day, amount, mean),
				Severity:    "medium",
				Data:        map[string]interface{}{"date": day, "amount": amount, "average": round2(mean)},
			})
		}
	}
	return insights, nil
}

// weightTrend surfaces a weight shift of more than 2% over the window
func (s *Service) weightTrend(ctx context.Context, userID uuid.UUID, days int) *Insight {
	trend, err := s.healthScores.Trends(ctx, userID, "weight", days)
	if err != nil {
		s.logger.Warn("failed to compute weight trend", zap.Error(err))
		return nil
	}
	if trend.Direction == "insufficient_data" || math.Abs(trend.ChangePercent) < 2 {
		return nil
	}
	return &Insight{
		Type:        "trend",
		Pillar:      "health",
		Title:       "Weight Trend",
		Description: fmt.Sprintf("Your weight is %s, a change of %.1f%% over the last %d days", trend.Direction, trend.ChangePercent, days),
		Severity:    "low",
		Data:        map[string]interface{}{"direction": trend.Direction, "change_percent": trend.ChangePercent},
	}
}

func firstOrEmpty(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
