package health

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// SymptomSeverity grades how strongly a symptom presents
type SymptomSeverity string

const (
	SeverityMild     SymptomSeverity = "mild"
	SeverityModerate SymptomSeverity = "moderate"
	SeveritySevere   SymptomSeverity = "severe"
)

// Symptom is a self-reported complaint episode. An episode is active until
// EndedAt is set.
type Symptom struct {
	shared.UserAggregateRoot
	Name        string          `gorm:"type:varchar(100);not null;index"`
	Severity    SymptomSeverity `gorm:"type:varchar(10);not null"`
	BodyPart    string          `gorm:"type:varchar(100)"`
	Description string          `gorm:"type:text"`
	StartedAt   time.Time       `gorm:"not null;index"`
	EndedAt     *time.Time
	Notes       string `gorm:"type:varchar(1000)"`
}

// TableName returns the table name for GORM
func (Symptom) TableName() string {
	return "symptoms"
}

// NewSymptom creates a validated symptom episode
func NewSymptom(userID uuid.UUID, name string, severity SymptomSeverity, bodyPart, description string, startedAt time.Time, notes string) (*Symptom, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_VALUE", "Symptom name is required")
	}
	if err := validateSeverity(severity); err != nil {
		return nil, err
	}
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	return &Symptom{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		Name:              name,
		Severity:          severity,
		BodyPart:          strings.TrimSpace(bodyPart),
		Description:       description,
		StartedAt:         startedAt,
		Notes:             notes,
	}, nil
}

// Update replaces severity, description and notes
func (s *Symptom) Update(severity SymptomSeverity, description, notes string) error {
	if err := validateSeverity(severity); err != nil {
		return err
	}
	s.Severity = severity
	s.Description = description
	s.Notes = notes
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Resolve closes the episode. The end must not precede the start.
func (s *Symptom) Resolve(endedAt time.Time) error {
	if endedAt.IsZero() {
		endedAt = time.Now()
	}
	if endedAt.Before(s.StartedAt) {
		return shared.NewDomainError("INVALID_VALUE", "Symptom cannot end before it started")
	}
	s.EndedAt = &endedAt
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Active reports whether the episode is still ongoing
func (s *Symptom) Active() bool {
	return s.EndedAt == nil
}

func validateSeverity(sev SymptomSeverity) error {
	switch sev {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return nil
	}
	return shared.NewDomainError("INVALID_VALUE", "Severity must be mild, moderate or severe")
}
