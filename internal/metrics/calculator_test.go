package metrics_test

import (
	"testing"

	"github.com/jkoskela/fitweek/internal/metrics"
)

func TestCalculateBMR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		age      int
		sex      string
		want     float64
	}{
		{name: "male", weightKg: 70, heightCm: 175, age: 25, sex: "Male", want: 1773.75},
		{name: "female", weightKg: 70, heightCm: 175, age: 25, sex: "Female", want: 1607.75},
		{name: "unspecified sex uses female branch", weightKg: 70, heightCm: 175, age: 25, sex: "", want: 1607.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := metrics.CalculateBMR(tt.weightKg, tt.heightCm, tt.age, tt.sex); got != tt.want {
				t.Errorf("CalculateBMR() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateTDEE(t *testing.T) {
	t.Parallel()

	if got, want := metrics.CalculateTDEE(1600, 1.55), 2480.0; got != want {
		t.Errorf("CalculateTDEE() = %v, want %v", got, want)
	}
}

func TestCalculateProteinTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goal metrics.Goal
		want float64
	}{
		{goal: metrics.GoalGainMuscle, want: 176},
		{goal: metrics.GoalLoseWeight, want: 160},
		{goal: metrics.GoalMaintain, want: 144},
		{goal: metrics.Goal("Anything Else"), want: 144},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			t.Parallel()
			if got := metrics.CalculateProteinTarget(80, tt.goal); got != tt.want {
				t.Errorf("CalculateProteinTarget(80, %q) = %v, want %v", tt.goal, got, tt.want)
			}
		})
	}
}
