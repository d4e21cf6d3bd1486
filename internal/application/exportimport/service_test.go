package exportimport

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wellbeing/backend/internal/domain/exportrecord"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/health"
	"github.com/wellbeing/backend/internal/domain/shared"
)

type exportFixture struct {
	txRepo     *mockTransactionRepo
	metricRepo *mockMetricRepo
	focusRepo  *mockFocusDayRepo
	recordRepo *mockExportRecordRepo
	svc        *Service
	userID     uuid.UUID
}

func newExportFixture() *exportFixture {
	f := &exportFixture{
		txRepo:     &mockTransactionRepo{},
		metricRepo: &mockMetricRepo{},
		focusRepo:  &mockFocusDayRepo{},
		recordRepo: &mockExportRecordRepo{},
		userID:     uuid.New(),
	}
	f.svc = NewService(
		f.txRepo,
		f.metricRepo,
		&mockExerciseRepo{},
		&mockNutritionRepo{},
		&mockSleepRepo{},
		&mockSessionRepo{},
		&mockLifeEventRepo{},
		f.focusRepo,
		f.recordRepo,
		zap.NewNop(),
	)
	return f
}

func (f *exportFixture) addTransaction(t *testing.T, amount float64, occurredOn time.Time) {
	t.Helper()
	tx, err := financial.NewTransaction(f.userID, financial.TransactionTypeExpense, decimal.NewFromFloat(amount), "groceries", "weekly shop", "", occurredOn)
	require.NoError(t, err)
	require.NoError(t, f.txRepo.Save(context.Background(), tx))
}

func TestTemplate(t *testing.T) {
	svc := newExportFixture().svc

	headers, err := svc.Template(EntityTransactions)
	require.NoError(t, err)
	assert.Equal(t, []string{"type", "amount", "category", "description", "merchant", "occurred_on"}, headers)

	_, err = svc.Template("budgets")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNSUPPORTED_ENTITY", domainErr.Code)
}

func TestExportCSV(t *testing.T) {
	f := newExportFixture()
	f.addTransaction(t, 12.5, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	f.addTransaction(t, 40, time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC))

	data, err := f.svc.ExportCSV(context.Background(), f.userID, EntityTransactions)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "type,amount,category,description,merchant,occurred_on", lines[0])
	assert.Equal(t, "expense,12.5,groceries,weekly shop,,2026-08-01", lines[1])
	assert.Equal(t, "expense,40,groceries,weekly shop,,2026-08-02", lines[2])

	// the run is logged
	require.Len(t, f.recordRepo.records, 1)
	rec := f.recordRepo.records[0]
	assert.Equal(t, exportrecord.DirectionExport, rec.Direction)
	assert.Equal(t, exportrecord.FormatCSV, rec.Format)
	assert.Equal(t, 2, rec.RowCount)
}

func TestExportJSONRoundTrip(t *testing.T) {
	f := newExportFixture()
	f.addTransaction(t, 99.99, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC))
	metric, err := health.NewMetric(f.userID, health.MetricWeight, 80, 0, time.Date(2026, 7, 15, 8, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	require.NoError(t, f.metricRepo.Save(context.Background(), metric))

	dump, err := f.svc.ExportJSON(context.Background(), f.userID)
	require.NoError(t, err)
	require.Len(t, dump.Transactions, 1)
	require.Len(t, dump.Metrics, 1)
	assert.Equal(t, "weight", dump.Metrics[0].MetricType)

	// importing the dump into a fresh account reproduces the rows
	payload, err := json.Marshal(dump)
	require.NoError(t, err)

	g := newExportFixture()
	result, err := g.svc.ImportJSON(context.Background(), g.userID, payload)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.ImportedRows)
	assert.Equal(t, 0, result.ErrorRows)
	assert.Len(t, g.txRepo.txs, 1)
	assert.True(t, g.txRepo.txs[0].Amount.Equal(decimal.NewFromFloat(99.99)))
	assert.Len(t, g.metricRepo.metrics, 1)
}

func TestImportCSVReportsRowErrors(t *testing.T) {
	f := newExportFixture()
	input := strings.Join([]string{
		"type,amount,category,description,merchant,occurred_on",
		"expense,12.50,groceries,milk,,2026-08-01",
		"expense,not-a-number,groceries,,,2026-08-02",
		"expense,5,groceries,,,08/03/2026",
		"mystery,5,groceries,,,2026-08-04",
		"income,2000,salary,,,2026-08-05",
	}, "\n")

	result, err := f.svc.ImportCSV(context.Background(), f.userID, EntityTransactions, []byte(input))
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalRows)
	assert.Equal(t, 2, result.ImportedRows)
	assert.Equal(t, 3, result.ErrorRows)
	require.Len(t, result.Errors, 3)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, "amount", result.Errors[0].Column)
	assert.Equal(t, "occurred_on", result.Errors[1].Column)
	assert.Len(t, f.txRepo.txs, 2)

	require.Len(t, f.recordRepo.records, 1)
	assert.Equal(t, exportrecord.DirectionImport, f.recordRepo.records[0].Direction)
	assert.Equal(t, 3, f.recordRepo.records[0].ErrorCount)
}

func TestImportCSVRejectsMissingColumns(t *testing.T) {
	f := newExportFixture()
	input := "type,amount\nexpense,5\n"

	_, err := f.svc.ImportCSV(context.Background(), f.userID, EntityTransactions, []byte(input))
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "MISSING_HEADERS", domainErr.Code)
}

func TestImportCSVFocusDayUpsert(t *testing.T) {
	f := newExportFixture()
	input := strings.Join([]string{
		"day,tasks_planned,tasks_completed,focus_score,context_switches,deep_work_minutes,note",
		"2026-08-10,5,3,7,10,90,first pass",
		"2026-08-10,5,4,8,8,120,corrected",
	}, "\n")

	result, err := f.svc.ImportCSV(context.Background(), f.userID, EntityFocusDays, []byte(input))
	require.NoError(t, err)

	assert.Equal(t, 2, result.ImportedRows)
	require.Len(t, f.focusRepo.days, 1)
	assert.Equal(t, 4, f.focusRepo.days[0].TasksCompleted)
	assert.Equal(t, "corrected", f.focusRepo.days[0].Note)
}

func TestHistory(t *testing.T) {
	f := newExportFixture()
	_, err := f.svc.ExportJSON(context.Background(), f.userID)
	require.NoError(t, err)

	history, err := f.svc.History(context.Background(), f.userID, shared.Filter{})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "export", history[0].Direction)
	assert.Equal(t, "json", history[0].Format)
	assert.Equal(t, "all", history[0].Entity)
}
