package profile

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sedtender/tender_portal/entities"
)

const missingValue = "-"

// Option is an entry of a select input
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// WorkCategories are the CIDB classes of construction works
var WorkCategories = []Option{
	{Value: "CE", Label: "Civil Engineering"},
	{Value: "GB", Label: "General Building"},
	{Value: "EB", Label: "Electrical Engineering (Building)"},
	{Value: "EP", Label: "Electrical Engineering (Infrastructure)"},
	{Value: "ME", Label: "Mechanical Engineering"},
	{Value: "SB", Label: "Specialist Works"},
}

// SuccessRate is the share of won tenders as a whole percentage, 0 without applications
func SuccessRate(wins, applications int) int {
	if applications <= 0 {
		return 0
	}
	return int(math.Floor(float64(wins)/float64(applications)*100 + 0.5))
}

// ScoreDescription describes a readiness score
func ScoreDescription(score float64) string {
	switch {
	case score >= 80:
		return "Excellent! You have a high readiness score"
	case score >= 60:
		return "Good! Your readiness score is above average"
	case score >= 40:
		return "Fair. Consider completing more profile sections"
	case score > 0:
		return "Low score. Please complete your profile"
	default:
		return "Complete your profile to improve your score"
	}
}

// ScoreCircle returns the circumference of the progress circle with the given radius
// and the stroke offset that fills score percent of it
func ScoreCircle(score, radius float64) (circumference, offset float64) {
	circumference = 2 * math.Pi * radius
	offset = circumference - (score/100)*circumference
	return circumference, offset
}

// ScoreView is the readiness score panel
type ScoreView struct {
	Score         float64
	Value         string
	Circumference string
	Offset        string
	Description   string
}

// Overview is the profile summary panel
type Overview struct {
	CompanyName        string
	RegistrationNumber string
	PhoneNumber        string
	Completion         string
	LastUpdated        string
}

// View is everything the profile page renders for a profile
type View struct {
	HasProfile     bool
	Overview       Overview
	Score          ScoreView
	Values         map[string]string
	WorkCategories []Option
	SuccessRate    string
}

// NewView builds the page view of profile, which may be nil.
// Form values are only set for fields present in the profile
func NewView(profile entities.Profile, radius float64) View {
	score, _ := profile.Number(entities.ProfileReadinessScore)
	circumference, offset := ScoreCircle(score, radius)

	values := map[string]string{}
	for _, section := range Sections {
		for _, field := range sectionFields[section] {
			if text, ok := profile.Text(field); ok {
				values[string(field)] = text
			}
		}
	}

	wins := ParseInt(values[string(entities.ProfilePreviousTenderWins)])
	applications := ParseInt(values[string(entities.ProfilePreviousTenderApplications)])

	return View{
		HasProfile: profile != nil,
		Overview:   newOverview(profile),
		Score: ScoreView{
			Score:         score,
			Value:         formatNumber(score),
			Circumference: formatNumber(circumference),
			Offset:        formatNumber(offset),
			Description:   ScoreDescription(score),
		},
		Values:         values,
		WorkCategories: workCategoryOptions(profile.Strings(entities.ProfileCIDBWorkCategories)),
		SuccessRate:    fmt.Sprintf("%d%%", SuccessRate(wins, applications)),
	}
}

// KeepSubmitted overlays the values of a section form that was not saved,
// so the user does not lose their input
func (v *View) KeepSubmitted(section Section, form url.Values) {
	if v.Values == nil {
		v.Values = map[string]string{}
	}
	for _, field := range sectionFields[section] {
		if value := strings.TrimSpace(form.Get(string(field))); value != "" {
			v.Values[string(field)] = value
		} else {
			delete(v.Values, string(field))
		}
	}
	if section == CIDB {
		v.WorkCategories = workCategoryOptions(form[string(entities.ProfileCIDBWorkCategories)])
	}
	if section == Experience {
		wins := ParseInt(v.Values[string(entities.ProfilePreviousTenderWins)])
		applications := ParseInt(v.Values[string(entities.ProfilePreviousTenderApplications)])
		v.SuccessRate = fmt.Sprintf("%d%%", SuccessRate(wins, applications))
	}
}

func newOverview(profile entities.Profile) Overview {
	completion, _ := profile.Number(entities.ProfileCompletionPercentage)

	overview := Overview{
		CompanyName:        textOrMissing(profile, entities.ProfileCompanyName),
		RegistrationNumber: textOrMissing(profile, entities.ProfileCompanyRegistrationNumber),
		PhoneNumber:        textOrMissing(profile, entities.ProfilePhoneNumber),
		Completion:         formatNumber(completion) + "%",
	}
	if updatedAt, ok := profile.Text(entities.ProfileUpdatedAt); ok {
		overview.LastUpdated = formatDate(updatedAt)
	}
	return overview
}

func workCategoryOptions(selected []string) []Option {
	options := make([]Option, len(WorkCategories))
	for i, option := range WorkCategories {
		options[i] = option
		for _, value := range selected {
			if value == option.Value {
				options[i].Selected = true
			}
		}
	}
	return options
}

func textOrMissing(profile entities.Profile, field entities.ProfileField) string {
	text, ok := profile.Text(field)
	if !ok || text == "" {
		return missingValue
	}
	return text
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02 15:04:05", "2006-01-02"}

// formatDate shows a timestamp returned by the API as a date
func formatDate(value string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return value
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
