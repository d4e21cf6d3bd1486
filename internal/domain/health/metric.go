package health

import (
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// MetricType identifies a tracked vital or body measurement
type MetricType string

const (
	MetricWeight        MetricType = "weight"         // kg
	MetricHeartRate     MetricType = "heart_rate"     // resting bpm
	MetricBloodPressure MetricType = "blood_pressure" // systolic/diastolic mmHg
	MetricBloodSugar    MetricType = "blood_sugar"    // mg/dL
	MetricBodyFat       MetricType = "body_fat"       // percent
)

// Metric is a single point-in-time measurement. SecondaryValue is only used
// for blood pressure, where Value is systolic and SecondaryValue diastolic.
type Metric struct {
	shared.UserAggregateRoot
	MetricType     MetricType `gorm:"type:varchar(20);not null;index"`
	Value          float64    `gorm:"not null"`
	SecondaryValue float64    `gorm:"not null;default:0"`
	RecordedAt     time.Time  `gorm:"not null;index"`
	Note           string     `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Metric) TableName() string {
	return "health_metrics"
}

// NewMetric creates a validated measurement
func NewMetric(userID uuid.UUID, metricType MetricType, value, secondary float64, recordedAt time.Time, note string) (*Metric, error) {
	if err := validateMetricType(metricType); err != nil {
		return nil, err
	}
	if value <= 0 {
		return nil, shared.NewDomainError("INVALID_VALUE", "Metric value must be positive")
	}
	if metricType == MetricBloodPressure {
		if secondary <= 0 {
			return nil, shared.NewDomainError("INVALID_VALUE", "Blood pressure requires a diastolic value")
		}
		if secondary >= value {
			return nil, shared.NewDomainError("INVALID_VALUE", "Diastolic must be below systolic")
		}
	}
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	return &Metric{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		MetricType:        metricType,
		Value:             value,
		SecondaryValue:    secondary,
		RecordedAt:        recordedAt,
		Note:              note,
	}, nil
}

// Update replaces value, timestamp and note
func (m *Metric) Update(value, secondary float64, recordedAt time.Time, note string) error {
	if value <= 0 {
		return shared.NewDomainError("INVALID_VALUE", "Metric value must be positive")
	}
	if m.MetricType == MetricBloodPressure && (secondary <= 0 || secondary >= value) {
		return shared.NewDomainError("INVALID_VALUE", "Diastolic must be positive and below systolic")
	}
	m.Value = value
	m.SecondaryValue = secondary
	if !recordedAt.IsZero() {
		m.RecordedAt = recordedAt
	}
	m.Note = note
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
	return nil
}

func validateMetricType(t MetricType) error {
	switch t {
	case MetricWeight, MetricHeartRate, MetricBloodPressure, MetricBloodSugar, MetricBodyFat:
		return nil
	}
	return shared.NewDomainError("INVALID_TYPE", "Unknown metric type")
}
