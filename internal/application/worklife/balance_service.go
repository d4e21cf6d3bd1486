package worklife

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/worklife"
)

const (
	defaultWindowDays = 30
	idealLifeRatio    = 0.5
)

// BalanceService computes balance scores, burnout risk and off-hours
// pattern detection over a lookback window
type BalanceService struct {
	sessionRepo worklife.WorkSessionRepository
	eventRepo   worklife.LifeEventRepository
}

// NewBalanceService creates a new balance service
func NewBalanceService(sessionRepo worklife.WorkSessionRepository, eventRepo worklife.LifeEventRepository) *BalanceService {
	return &BalanceService{sessionRepo: sessionRepo, eventRepo: eventRepo}
}

// BalanceScore rates work-life balance 0-100. With no tracked work the score
// is a neutral 50. The ratio component compares personal hours to work hours
// against an ideal of 1:0.5, the energy component averages post-session
// energy ratings, and each overtime session costs 2 points up to 20.
func (s *BalanceService) BalanceScore(ctx context.Context, userID uuid.UUID, days int) (*BalanceScoreResponse, error) {
	if days <= 0 {
		days = defaultWindowDays
	}
	now := time.Now()
	from := now.AddDate(0, 0, -days)

	sessions, err := s.sessionRepo.FindInRange(ctx, userID, from, now)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.FindInRange(ctx, userID, from, now)
	if err != nil {
		return nil, err
	}

	resp := &BalanceScoreResponse{Days: days}
	if len(sessions) == 0 {
		resp.Score = 50
		return resp, nil
	}

	var workHours float64
	overtime := 0
	for i := range sessions {
		workHours += sessions[i].Hours()
		if sessions[i].IsOvertime() {
			overtime++
		}
	}
	var lifeHours float64
	for i := range events {
		lifeHours += events[i].Hours()
	}

	ratioScore := 100.0
	if workHours > 0 {
		ratio := lifeHours / workHours
		ratioScore = math.Max(0, 100-math.Abs(ratio-idealLifeRatio)*100)
	}

	energyScore := 50.0
	if avg, ok := avgEnergy(sessions); ok {
		energyScore = avg / 10 * 100
	}

	penalty := math.Min(20, float64(overtime)*2)

	resp.WorkHours = round2(workHours)
	resp.LifeHours = round2(lifeHours)
	resp.RatioScore = round2(ratioScore)
	resp.EnergyScore = round2(energyScore)
	resp.OvertimePenalty = penalty
	resp.Score = math.Max(0, math.Min(100, math.Round(ratioScore*0.5+energyScore*0.5-penalty)))
	return resp, nil
}

// AlwaysOn detects off-hours work patterns: evening starts, weekend
// sessions and early-morning starts
func (s *BalanceService) AlwaysOn(ctx context.Context, userID uuid.UUID, days int) (*AlwaysOnResponse, error) {
	if days <= 0 {
		days = defaultWindowDays
	}
	now := time.Now()
	sessions, err := s.sessionRepo.FindInRange(ctx, userID, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, err
	}
	return detectAlwaysOn(sessions), nil
}

// BurnoutRisk scores burnout risk 0-100 from additive factors and maps it
// to a level with matching recommendations
func (s *BalanceService) BurnoutRisk(ctx context.Context, userID uuid.UUID, days int) (*BurnoutRiskResponse, error) {
	if days <= 0 {
		days = defaultWindowDays
	}
	now := time.Now()
	sessions, err := s.sessionRepo.FindInRange(ctx, userID, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, err
	}

	resp := &BurnoutRiskResponse{Days: days, RiskFactors: []string{}}
	score := 0.0

	if len(sessions) > 0 {
		var totalHours, meetingHours float64
		highStress := 0
		violations := 0
		weeks := make(map[[2]int]struct{})
		for i := range sessions {
			totalHours += sessions[i].Hours()
			meetingHours += sessions[i].MeetingHours()
			if sessions[i].IsHighStress() {
				highStress++
			}
			if sessions[i].IsBoundaryViolation() {
				violations++
			}
			y, w := sessions[i].StartedAt.ISOWeek()
			weeks[[2]int{y, w}] = struct{}{}
		}
		weekCount := float64(len(weeks))
		if weekCount < 1 {
			weekCount = 1
		}

		avgWeeklyHours := totalHours / weekCount
		if avgWeeklyHours > 50 {
			resp.RiskFactors = append(resp.RiskFactors, "excessive_hours")
			score += 25
		} else if avgWeeklyHours > 45 {
			score += 15
		}

		if meetingHours/weekCount > 20 {
			resp.RiskFactors = append(resp.RiskFactors, "meeting_overload")
			score += 20
		}

		if avg, ok := avgEnergy(sessions); ok {
			if avg < 5 {
				resp.RiskFactors = append(resp.RiskFactors, "low_energy")
				score += 25
			} else if avg < 6 {
				score += 15
			}
		}

		if float64(highStress) > float64(len(sessions))*0.5 {
			resp.RiskFactors = append(resp.RiskFactors, "high_stress")
			score += 20
		}

		if violations > 10 {
			resp.RiskFactors = append(resp.RiskFactors, "boundary_violations")
			score += 15
		}

		if detectAlwaysOn(sessions).Detected {
			resp.RiskFactors = append(resp.RiskFactors, "always_on_pattern")
			score += 15
		}
	}

	resp.Score = math.Min(100, score)
	switch {
	case resp.Score >= 70:
		resp.Level = "critical"
	case resp.Score >= 50:
		resp.Level = "high"
	case resp.Score >= 30:
		resp.Level = "medium"
	default:
		resp.Level = "low"
	}
	resp.Recommendations = burnoutRecommendations(resp.RiskFactors)
	return resp, nil
}

func detectAlwaysOn(sessions []worklife.WorkSession) *AlwaysOnResponse {
	evening, weekend, early := 0, 0, 0
	for i := range sessions {
		if sessions[i].IsEveningStart() {
			evening++
		}
		if sessions[i].IsWeekend() {
			weekend++
		}
		if sessions[i].IsEarlyMorningStart() {
			early++
		}
	}

	patterns := []AlwaysOnPattern{}
	if evening > 0 {
		severity := "medium"
		if evening > 5 {
			severity = "high"
		}
		patterns = append(patterns, AlwaysOnPattern{Type: "evening_work", Count: evening, Severity: severity})
	}
	if weekend > 0 {
		severity := "low"
		if weekend > 3 {
			severity = "high"
		}
		patterns = append(patterns, AlwaysOnPattern{Type: "weekend_work", Count: weekend, Severity: severity})
	}
	if early > 0 {
		severity := "low"
		if early > 3 {
			severity = "medium"
		}
		patterns = append(patterns, AlwaysOnPattern{Type: "early_morning_work", Count: early, Severity: severity})
	}

	return &AlwaysOnResponse{
		Detected:             len(patterns) > 0,
		Patterns:             patterns,
		TotalUnusualSessions: evening + weekend + early,
	}
}

func burnoutRecommendations(factors []string) []string {
	recs := []string{}
	for _, f := range factors {
		switch f {
		case "excessive_hours":
			recs = append(recs, "Reduce working hours to 40-45 hours per week")
		case "meeting_overload":
			recs = append(recs, "Audit your meetings and decline the ones that could be an email")
		case "low_energy":
			recs = append(recs, "Prioritize sleep and exercise, and take regular breaks during the day")
		case "high_stress":
			recs = append(recs, "Practice stress management and consider talking to a professional")
		case "boundary_violations":
			recs = append(recs, "Strengthen and enforce your work-life boundaries")
		case "always_on_pattern":
			recs = append(recs, "Set clear work hours and disconnect after them")
		}
	}
	if len(recs) == 0 {
		recs = append(recs, "Keep maintaining your current work-life balance")
	}
	return recs
}

// avgEnergy averages post-session energy over rated sessions only
func avgEnergy(sessions []worklife.WorkSession) (float64, bool) {
	sum, rated := 0.0, 0
	for i := range sessions {
		if sessions[i].EnergyAfter > 0 {
			sum += float64(sessions[i].EnergyAfter)
			rated++
		}
	}
	if rated == 0 {
		return 0, false
	}
	return sum / float64(rated), true
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
