package health

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/health"
	"github.com/wellbeing/backend/internal/domain/identity"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// scoreWindowDays is the lookback used by the health score and dashboard
const scoreWindowDays = 7

// AnalyticsService computes health scores, trends and energy calculations
type AnalyticsService struct {
	metricRepo    health.MetricRepository
	exerciseRepo  health.ExerciseRepository
	nutritionRepo health.NutritionRepository
	sleepRepo     health.SleepRepository
	userRepo      identity.UserRepository
}

// NewAnalyticsService creates a new health analytics service
func NewAnalyticsService(
	metricRepo health.MetricRepository,
	exerciseRepo health.ExerciseRepository,
	nutritionRepo health.NutritionRepository,
	sleepRepo health.SleepRepository,
	userRepo identity.UserRepository,
) *AnalyticsService {
	return &AnalyticsService{
		metricRepo:    metricRepo,
		exerciseRepo:  exerciseRepo,
		nutritionRepo: nutritionRepo,
		sleepRepo:     sleepRepo,
		userRepo:      userRepo,
	}
}

// Score computes the composite health score from the last week of tracking
// data and the latest vitals. Untracked components score zero rather than
// failing the whole calculation.
func (s *AnalyticsService) Score(ctx context.Context, userID uuid.UUID) (*HealthScoreResponse, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -scoreWindowDays)

	bmi, err := s.currentBMI(ctx, userID)
	if err != nil {
		return nil, err
	}

	sleeps, err := s.sleepRepo.FindInRange(ctx, userID, from, now)
	if err != nil {
		return nil, err
	}
	avgSleep := 0.0
	if len(sleeps) > 0 {
		for i := range sleeps {
			avgSleep += sleeps[i].DurationHours()
		}
		avgSleep /= float64(len(sleeps))
	}

	exercises, err := s.exerciseRepo.FindInRange(ctx, userID, from, now)
	if err != nil {
		return nil, err
	}
	activeDays := countActiveDays(exercises)

	meals, err := s.nutritionRepo.FindInRange(ctx, userID, from, now)
	if err != nil {
		return nil, err
	}
	avgQuality := 0.0
	if len(meals) > 0 {
		for i := range meals {
			avgQuality += meals[i].QualityScore()
		}
		avgQuality /= float64(len(meals))
	}

	systolic := s.latestValue(ctx, userID, health.MetricBloodPressure)
	heartRate := s.latestValue(ctx, userID, health.MetricHeartRate)

	components := []ScoreComponent{
		{Name: "bmi", Score: bmiPoints(bmi), MaxScore: 20},
		{Name: "sleep", Score: sleepPoints(avgSleep), MaxScore: 20},
		{Name: "exercise", Score: exercisePoints(activeDays, len(exercises) > 0), MaxScore: 25},
		{Name: "nutrition", Score: nutritionPoints(avgQuality, len(meals) > 0), MaxScore: 20},
		{Name: "vitals", Score: vitalsPoints(systolic, heartRate), MaxScore: 15},
	}

	total, max := 0.0, 0.0
	for _, c := range components {
		total += c.Score
		max += c.MaxScore
	}
	percentage := 0.0
	if max > 0 {
		percentage = round2(total / max * 100)
	}

	return &HealthScoreResponse{
		Score:      round2(total),
		MaxScore:   max,
		Percentage: percentage,
		Grade:      scoreGrade(percentage),
		Components: components,
	}, nil
}

// Trends compares the first half of a metric series against the second half
// over the requested window
func (s *AnalyticsService) Trends(ctx context.Context, userID uuid.UUID, metricType string, days int) (*TrendResponse, error) {
	mt := health.MetricType(metricType)
	switch mt {
	case health.MetricWeight, health.MetricHeartRate, health.MetricBloodPressure, health.MetricBloodSugar, health.MetricBodyFat:
	default:
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown metric type")
	}
	if days <= 0 {
		days = 30
	}

	now := time.Now()
	metrics, err := s.metricRepo.FindByTypeInRange(ctx, userID, mt, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, 0, len(metrics))
	for i := range metrics {
		points = append(points, TrendPoint{
			Date:  metrics[i].RecordedAt.Format("2006-01-02"),
			Value: metrics[i].Value,
		})
	}

	resp := &TrendResponse{Metric: metricType, Days: days, Points: points, Direction: "insufficient_data"}
	if len(points) < 2 {
		return resp, nil
	}

	half := len(points) / 2
	firstAvg := avgPointValues(points[:half])
	secondAvg := avgPointValues(points[half:])

	switch {
	case secondAvg > firstAvg:
		resp.Direction = "increasing"
	case secondAvg < firstAvg:
		resp.Direction = "decreasing"
	default:
		resp.Direction = "stable"
	}
	if firstAvg > 0 {
		resp.ChangePercent = round2((secondAvg - firstAvg) / firstAvg * 100)
	}
	return resp, nil
}

// TDEE computes BMR, total daily energy expenditure and macro targets from
// the stored profile, with request fields taking precedence
func (s *AnalyticsService) TDEE(ctx context.Context, userID uuid.UUID, req TDEERequest) (*TDEEResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	weight, height, age := user.WeightKg, user.HeightCm, user.Age
	gender, level, goal := user.Gender, user.ActivityLevel, user.Goal
	if req.WeightKg > 0 {
		weight = req.WeightKg
	}
	if req.HeightCm > 0 {
		height = req.HeightCm
	}
	if req.Age > 0 {
		age = req.Age
	}
	if req.Gender != "" {
		gender = identity.Gender(req.Gender)
	}
	if req.ActivityLevel != "" {
		level = identity.ActivityLevel(req.ActivityLevel)
	}
	if req.Goal != "" {
		goal = identity.WeightGoal(req.Goal)
	}

	if weight <= 0 || height <= 0 || age <= 0 || gender == "" {
		return nil, shared.ErrProfileIncomplete
	}

	bmr := CalculateBMR(weight, height, age, gender)
	tdee := CalculateTDEE(bmr, level)

	return &TDEEResponse{
		BMR:           bmr,
		TDEE:          tdee,
		ActivityLevel: string(level),
		Goal:          string(goal),
		Targets:       CalculateMacroTargets(tdee, goal),
	}, nil
}

// SleepAnalysis summarizes sleep over the window: averages, efficiency and a
// schedule consistency score derived from bedtime variance
func (s *AnalyticsService) SleepAnalysis(ctx context.Context, userID uuid.UUID, days int) (*SleepAnalysisResponse, error) {
	if days <= 0 {
		days = 7
	}
	now := time.Now()
	recs, err := s.sleepRepo.FindInRange(ctx, userID, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, err
	}

	resp := &SleepAnalysisResponse{Days: days, NightsTracked: len(recs), Recommendations: []string{}}
	if len(recs) == 0 {
		return resp, nil
	}

	var totalHours, totalQuality, totalEfficiency float64
	rated := 0
	bedtimes := make([]float64, 0, len(recs))
	for i := range recs {
		totalHours += recs[i].DurationHours()
		totalEfficiency += recs[i].Efficiency()
		if recs[i].Quality > 0 {
			totalQuality += float64(recs[i].Quality)
			rated++
		}
		bt := recs[i].Bedtime
		bedtimes = append(bedtimes, float64(bt.Hour())+float64(bt.Minute())/60)
	}

	n := float64(len(recs))
	resp.Averages.TotalHours = round2(totalHours / n)
	resp.Averages.Efficiency = round2(totalEfficiency / n)
	if rated > 0 {
		resp.Averages.Quality = round2(totalQuality / float64(rated))
	}

	mean := 0.0
	for _, bt := range bedtimes {
		mean += bt
	}
	mean /= n
	variance := 0.0
	for _, bt := range bedtimes {
		variance += (bt - mean) * (bt - mean)
	}
	variance /= n
	resp.ConsistencyScore = round2(math.Max(0, 100-variance*10))

	resp.Recommendations = sleepRecommendations(resp.Averages.TotalHours, resp.Averages.Quality, resp.ConsistencyScore)
	return resp, nil
}

// Dashboard assembles the health overview from latest vitals and a week of
// tracking data
func (s *AnalyticsService) Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardResponse, error) {
	now := time.Now()
	weekAgo := now.AddDate(0, 0, -scoreWindowDays)

	resp := &DashboardResponse{}

	if m := s.latestMetric(ctx, userID, health.MetricWeight); m != nil {
		resp.LatestWeight = ToMetricResponse(m)
	}
	if m := s.latestMetric(ctx, userID, health.MetricHeartRate); m != nil {
		resp.LatestHeartRate = ToMetricResponse(m)
	}
	if m := s.latestMetric(ctx, userID, health.MetricBloodPressure); m != nil {
		resp.LatestBloodPress = ToMetricResponse(m)
	}

	bmi, err := s.currentBMI(ctx, userID)
	if err != nil {
		return nil, err
	}
	if bmi > 0 {
		resp.BMI = round2(bmi)
		resp.BMICategory = BMICategory(bmi)
	}

	exercises, err := s.exerciseRepo.FindInRange(ctx, userID, weekAgo, now)
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		resp.WeeklyExerciseMins += exercises[i].DurationMinutes
		resp.WeeklyCaloriesOut += exercises[i].CaloriesBurned
	}
	resp.WeeklyExerciseDays = countActiveDays(exercises)
	resp.WeeklyCaloriesOut = round2(resp.WeeklyCaloriesOut)

	meals, err := s.nutritionRepo.FindInRange(ctx, userID, weekAgo, now)
	if err != nil {
		return nil, err
	}
	totalCalories := 0.0
	for i := range meals {
		totalCalories += meals[i].Calories
	}
	if len(meals) > 0 {
		resp.AvgDailyCalories = round2(totalCalories / scoreWindowDays)
	}

	sleeps, err := s.sleepRepo.FindInRange(ctx, userID, weekAgo, now)
	if err != nil {
		return nil, err
	}
	if len(sleeps) > 0 {
		var hours, quality float64
		rated := 0
		for i := range sleeps {
			hours += sleeps[i].DurationHours()
			if sleeps[i].Quality > 0 {
				quality += float64(sleeps[i].Quality)
				rated++
			}
		}
		resp.AvgSleepHours = round2(hours / float64(len(sleeps)))
		if rated > 0 {
			resp.AvgSleepQuality = round2(quality / float64(rated))
		}
	}

	score, err := s.Score(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp.HealthScore = score.Score
	resp.Grade = score.Grade

	return resp, nil
}

// currentBMI uses the latest weight measurement with the profile height,
// falling back to the profile weight. Returns 0 when height or weight is
// unknown.
func (s *AnalyticsService) currentBMI(ctx context.Context, userID uuid.UUID) (float64, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user.HeightCm <= 0 {
		return 0, nil
	}
	weight := user.WeightKg
	if m := s.latestMetric(ctx, userID, health.MetricWeight); m != nil {
		weight = m.Value
	}
	if weight <= 0 {
		return 0, nil
	}
	heightM := user.HeightCm / 100
	return weight / (heightM * heightM), nil
}

func (s *AnalyticsService) latestMetric(ctx context.Context, userID uuid.UUID, mt health.MetricType) *health.Metric {
	m, err := s.metricRepo.FindLatestByType(ctx, userID, mt)
	if err != nil || m == nil {
		return nil
	}
	return m
}

func (s *AnalyticsService) latestValue(ctx context.Context, userID uuid.UUID, mt health.MetricType) float64 {
	if m := s.latestMetric(ctx, userID, mt); m != nil {
		return m.Value
	}
	return 0
}

func countActiveDays(exercises []health.Exercise) int {
	days := make(map[string]struct{})
	for i := range exercises {
		days[exercises[i].PerformedAt.Format("2006-01-02")] = struct{}{}
	}
	return len(days)
}

func avgPointValues(points []TrendPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points))
}

func sleepRecommendations(avgHours, avgQuality, consistency float64) []string {
	recs := []string{}
	if avgHours < 7 {
		recs = append(recs, "Aim for 7-9 hours of sleep per night")
	}
	if avgQuality > 0 && avgQuality < 6 {
		recs = append(recs, "Focus on improving your sleep environment and bedtime routine")
	}
	if consistency < 70 {
		recs = append(recs, "Try to keep a consistent sleep schedule")
	}
	if len(recs) == 0 {
		recs = append(recs, "Great sleep habits, keep it up")
	}
	return recs
}
