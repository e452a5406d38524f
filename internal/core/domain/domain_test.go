package domain

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCentsFromDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want Cents
	}{
		{"1500", 150000},
		{"1500.00", 150000},
		{"0.004", 0},
		{"0.005", 1},
		{"10.001", 1000},
		{"-0.005", -1},
		{"-25.00", -2500},
		{"235.745", 23575},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CentsFromDecimal(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestWithinMaxAmount(t *testing.T) {
	assert.True(t, WithinMaxAmount(decimal.RequireFromString("999999999999.99")))
	assert.True(t, WithinMaxAmount(decimal.RequireFromString("999999999999.994")))
	assert.False(t, WithinMaxAmount(decimal.RequireFromString("999999999999.995")))
	assert.False(t, WithinMaxAmount(decimal.RequireFromString("-1000000000000")))

	_, ok := CentsFromDecimalChecked(decimal.RequireFromString("184467440737095517.16"))
	assert.False(t, ok)
	c, ok := CentsFromDecimalChecked(decimal.RequireFromString("12.345"))
	assert.True(t, ok)
	assert.Equal(t, Cents(1235), c)
}

func TestCents_Add(t *testing.T) {
	sum, ok := Cents(100).Add(250)
	assert.True(t, ok)
	assert.Equal(t, Cents(350), sum)

	_, ok = Cents(math.MaxInt64 - 1).Add(2)
	assert.False(t, ok)
	_, ok = Cents(math.MinInt64 + 1).Add(-2)
	assert.False(t, ok)
}

func TestCents_String(t *testing.T) {
	assert.Equal(t, "1500.00", Cents(150000).String())
	assert.Equal(t, "0.07", Cents(7).String())
	assert.Equal(t, "-12.50", Cents(-1250).String())
	assert.True(t, Cents(0).IsZero())
	assert.True(t, Cents(1999).Decimal().Equal(decimal.RequireFromString("19.99")))
}

func TestParseSourceType(t *testing.T) {
	for _, raw := range []string{"INVOICE", "JOB_COMPLETION", "PAYMENT", "EXPENSE", "MANUAL"} {
		st, err := ParseSourceType(raw)
		assert.NoError(t, err)
		assert.Equal(t, SourceType(raw), st)
	}

	_, err := ParseSourceType("invoice")
	assert.Error(t, err)
	_, err = ParseSourceType("")
	assert.Error(t, err)
}

func TestJob_IsCompleted(t *testing.T) {
	done := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, Job{Status: JobCompleted}.IsCompleted())
	assert.True(t, Job{Status: JobInProgress, CompletedDate: &done}.IsCompleted())
	assert.False(t, Job{Status: JobInProgress}.IsCompleted())
	assert.False(t, Job{Status: JobCancelled}.IsCompleted())
}

func TestJobCosts_Total(t *testing.T) {
	assert.Equal(t, Cents(80000), JobCosts{Labor: 50000, Material: 30000}.Total())
}

func TestAccount_CanPost(t *testing.T) {
	assert.True(t, Account{IsActive: true, IsPosting: true}.CanPost())
	assert.False(t, Account{IsActive: false, IsPosting: true}.CanPost())
	assert.False(t, Account{IsActive: true, IsPosting: false}.CanPost())
}
