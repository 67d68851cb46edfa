package database

import (
	"testing"

	"github.com/seanyjeong/academy-web-sub001/app/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePayout(t *testing.T) {
	tests := []struct {
		name          string
		salary        *models.Salary
		dutyDays      int
		wantBase      int64
		wantAllowance int64
		wantTotal     int64
	}{
		{
			name:   "nil salary",
			salary: nil,
		},
		{
			name:     "monthly base no allowance",
			salary:   &models.Salary{Amount: 2_000_000, Period: models.SalaryMonth},
			dutyDays: 22,
			wantBase: 2_000_000, wantTotal: 2_000_000,
		},
		{
			name:     "daily base multiplies by duty days",
			salary:   &models.Salary{Amount: 100_000, Period: models.SalaryDay},
			dutyDays: 18,
			wantBase: 1_800_000, wantTotal: 1_800_000,
		},
		{
			name: "daily allowance",
			salary: &models.Salary{
				Amount: 2_000_000, Period: models.SalaryMonth,
				HasAllowance: true, Allowance: 10_000, AllowancePeriod: models.SalaryDay,
			},
			dutyDays: 20,
			wantBase: 2_000_000, wantAllowance: 200_000, wantTotal: 2_200_000,
		},
		{
			name: "monthly allowance is fixed",
			salary: &models.Salary{
				Amount: 2_000_000, Period: models.SalaryMonth,
				HasAllowance: true, Allowance: 300_000, AllowancePeriod: models.SalaryMonth,
			},
			dutyDays: 5,
			wantBase: 2_000_000, wantAllowance: 300_000, wantTotal: 2_300_000,
		},
		{
			name: "allowance flag off ignores amounts",
			salary: &models.Salary{
				Amount: 2_000_000, Period: models.SalaryMonth,
				Allowance: 300_000, AllowancePeriod: models.SalaryMonth,
			},
			dutyDays: 20,
			wantBase: 2_000_000, wantTotal: 2_000_000,
		},
		{
			name:     "daily base zero duty days",
			salary:   &models.Salary{Amount: 100_000, Period: models.SalaryDay},
			dutyDays: 0,
			wantBase: 0, wantTotal: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, allowance, total := CalculatePayout(tt.salary, tt.dutyDays)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantAllowance, allowance)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}
