package integration

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdiff/shamsi-calculator/internal/calculation"
	"github.com/jdiff/shamsi-calculator/internal/config"
	"github.com/jdiff/shamsi-calculator/internal/domain"
)

const (
	configFile = "../testdata/config.yaml"
	pairsFile  = "../testdata/pairs.txt"
)

func loadPairs(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(pairsFile)
	require.NoError(t, err)
	return string(data)
}

func runPairs(t *testing.T, basis domain.Basis) *domain.Report {
	t.Helper()
	cfg, err := config.Load(configFile)
	require.NoError(t, err)
	cfg.Engine.Basis = basis

	engine := calculation.NewEngineWithSettings(cfg.Engine)
	report, err := engine.ProcessText(context.Background(), loadPairs(t))
	require.NoError(t, err)
	return report
}

func TestEndToEndCalculation(t *testing.T) {
	report := runPairs(t, domain.BasisGregorian)

	assert.Equal(t, 10, report.Processed)
	assert.Equal(t, 8, report.Succeeded)
	assert.Equal(t, 2, report.Failed)

	expected := []struct {
		line     int
		outcome  domain.Outcome
		years    int
		months   int
		reversed bool
	}{
		{1, domain.OutcomeSuccess, 5, 1, false},
		{2, domain.OutcomeSuccess, 1, 2, false},
		{4, domain.OutcomeSuccess, 3, 10, false},
		{5, domain.OutcomeSuccess, 3, 10, true},
		{6, domain.OutcomeSuccess, 9, 5, false},
		{7, domain.OutcomeSuccess, 1, 0, false},
		{8, domain.OutcomeParseError, 0, 0, false},
		{9, domain.OutcomeFormatError, 0, 0, false},
		{10, domain.OutcomeSuccess, 2, 11, false},
		{11, domain.OutcomeSuccess, 0, 0, false},
	}

	require.Len(t, report.Lines, len(expected))
	for i, want := range expected {
		got := report.Lines[i]
		assert.Equal(t, want.line, got.Number, "result %d", i)
		assert.Equal(t, want.outcome, got.Outcome, "line %d", want.line)
		if want.outcome != domain.OutcomeSuccess {
			assert.Nil(t, got.Difference, "line %d", want.line)
			continue
		}
		require.NotNil(t, got.Difference, "line %d", want.line)
		assert.Equal(t, want.years, got.Difference.Years, "line %d years", want.line)
		assert.Equal(t, want.months, got.Difference.Months, "line %d months", want.line)
		assert.Equal(t, want.reversed, got.Difference.Reversed, "line %d reversed", want.line)
	}

	assert.Equal(t, "first", report.Lines[6].ErrorSide)
	assert.Equal(t, "1400/12/30", report.Lines[6].ErrorText)
	assert.Equal(t, 3, report.Lines[7].FieldCount)
}

func TestEndToEndSummary(t *testing.T) {
	report := runPairs(t, domain.BasisGregorian)

	require.NotNil(t, report.Summary)
	assert.Equal(t, 8, report.Summary.Count)
	assert.Equal(t, 1, report.Summary.Reversed)
	assert.Equal(t, "0.00", report.Summary.MinYears.String())
	assert.Equal(t, "9.42", report.Summary.MaxYears.String())
	assert.Equal(t, "3.41", report.Summary.MeanYears.String())
}

func TestEndToEndJalaliBasis(t *testing.T) {
	report := runPairs(t, domain.BasisJalali)

	assert.Equal(t, domain.BasisJalali, report.Basis)
	// 1390/05/11 -> 1399/11/12
	assert.Equal(t, 9, report.Lines[4].Difference.Years)
	assert.Equal(t, 6, report.Lines[4].Difference.Months)
	// Nowruz to Nowruz is exactly three Jalali years
	assert.Equal(t, 3, report.Lines[8].Difference.Years)
	assert.Equal(t, 0, report.Lines[8].Difference.Months)
}

func TestConfigurationValidation(t *testing.T) {
	cfg, err := config.Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, 4, cfg.Engine.Workers)
	assert.True(t, cfg.Output.ShowSummary)

	_, err = config.Load("../testdata/invalid_config.yaml")
	assert.Error(t, err)
}
