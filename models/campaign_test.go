package models

import "testing"

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		goal    float64
		want    int
	}{
		{"quarter funded", 2500, 10000, 25},
		{"fully funded", 10000, 10000, 100},
		{"over funded not clamped", 11000, 10000, 110},
		{"rounds to nearest", 333, 1000, 33},
		{"rounds up", 335, 1000, 34},
		{"zero goal", 500, 0, 0},
		{"negative goal", 500, -10, 0},
		{"empty campaign", 0, 10000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Campaign{CurrentAmount: tt.current, GoalAmount: tt.goal}
			if got := c.ProgressPercentage(); got != tt.want {
				t.Errorf("ProgressPercentage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidCampaignCategory(t *testing.T) {
	for _, cat := range CampaignCategories {
		if !ValidCampaignCategory(cat) {
			t.Errorf("category %q rejected", cat)
		}
	}
	for _, cat := range []string{"", "crypto", "Education"} {
		if ValidCampaignCategory(cat) {
			t.Errorf("category %q accepted", cat)
		}
	}
}
