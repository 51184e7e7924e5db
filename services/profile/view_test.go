package profile

import (
	"math"
	"net/url"
	"strconv"
	"testing"

	"github.com/sedtender/tender_portal/entities"
	"github.com/stretchr/testify/assert"
)

func Test_SuccessRate(t *testing.T) {
	assert.Equal(t, 30, SuccessRate(3, 10))
	assert.Equal(t, 0, SuccessRate(0, 0))
	assert.Equal(t, 0, SuccessRate(5, 0))
	assert.Equal(t, 67, SuccessRate(2, 3))
	assert.Equal(t, 50, SuccessRate(1, 2))
}

func Test_ScoreDescription(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{score: 95, want: "Excellent! You have a high readiness score"},
		{score: 80, want: "Excellent! You have a high readiness score"},
		{score: 72, want: "Good! Your readiness score is above average"},
		{score: 40, want: "Fair. Consider completing more profile sections"},
		{score: 12, want: "Low score. Please complete your profile"},
		{score: 0, want: "Complete your profile to improve your score"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreDescription(tt.score))
	}
}

func Test_ScoreCircle__should_fill_score_percent_of_circle(t *testing.T) {
	circumference, offset := ScoreCircle(72, 50)

	assert.InDelta(t, 2*math.Pi*50, circumference, 1e-9)
	assert.InDelta(t, 2*math.Pi*50-0.72*2*math.Pi*50, offset, 1e-9)
}

func Test_NewView__should_leave_missing_fields_unset(t *testing.T) {
	view := NewView(entities.Profile{
		"cidb_grade":                   float64(5),
		"bee_level":                    nil,
		"previous_tender_wins":         float64(3),
		"previous_tender_applications": float64(10),
		"cidb_work_categories":         []interface{}{"GB"},
	}, 50)

	assert.True(t, view.HasProfile)
	assert.Equal(t, "5", view.Values["cidb_grade"])
	_, hasLevel := view.Values["bee_level"]
	assert.False(t, hasLevel)
	_, hasTurnover := view.Values["annual_turnover"]
	assert.False(t, hasTurnover)
	assert.Equal(t, "30%", view.SuccessRate)

	for _, option := range view.WorkCategories {
		assert.Equal(t, option.Value == "GB", option.Selected, option.Value)
	}
}

func Test_NewView__should_render_score_and_overview(t *testing.T) {
	view := NewView(entities.Profile{
		"readiness_score":               float64(72),
		"profile_completion_percentage": float64(85),
		"company_name":                  "Acme Construction",
		"updated_at":                    "2024-03-01T10:15:00",
	}, 50)

	_, offset := ScoreCircle(72, 50)
	assert.Equal(t, "72", view.Score.Value)
	assert.Equal(t, strconv.FormatFloat(offset, 'f', -1, 64), view.Score.Offset)
	assert.Equal(t, "Good! Your readiness score is above average", view.Score.Description)
	assert.Equal(t, Overview{
		CompanyName:        "Acme Construction",
		RegistrationNumber: "-",
		PhoneNumber:        "-",
		Completion:         "85%",
		LastUpdated:        "2024-03-01",
	}, view.Overview)
}

func Test_NewView__should_handle_missing_profile(t *testing.T) {
	view := NewView(nil, 50)

	assert.False(t, view.HasProfile)
	assert.Equal(t, "0", view.Score.Value)
	assert.Equal(t, "Complete your profile to improve your score", view.Score.Description)
	assert.Equal(t, "0%", view.Overview.Completion)
	assert.Equal(t, "-", view.Overview.CompanyName)
	assert.Equal(t, "0%", view.SuccessRate)
}

func Test_KeepSubmitted__should_overlay_submitted_section_values(t *testing.T) {
	view := NewView(entities.Profile{
		"previous_tender_wins":         float64(1),
		"previous_tender_applications": float64(2),
		"cidb_grade":                   float64(4),
	}, 50)

	view.KeepSubmitted(Experience, url.Values{
		"previous_tender_wins":         {"3"},
		"previous_tender_applications": {"10"},
	})

	assert.Equal(t, "3", view.Values["previous_tender_wins"])
	assert.Equal(t, "10", view.Values["previous_tender_applications"])
	assert.Equal(t, "4", view.Values["cidb_grade"])
	assert.Equal(t, "30%", view.SuccessRate)
}

func Test_KeepSubmitted__should_keep_selected_work_categories(t *testing.T) {
	view := NewView(nil, 50)

	view.KeepSubmitted(CIDB, url.Values{
		"cidb_grade":           {""},
		"cidb_work_categories": {"GB", "ME"},
	})

	_, hasGrade := view.Values["cidb_grade"]
	assert.False(t, hasGrade)
	for _, option := range view.WorkCategories {
		assert.Equal(t, option.Value == "GB" || option.Value == "ME", option.Selected, option.Value)
	}
}
