package entities

import (
	"strconv"
)

type ProfileField string

const (
	ProfileCIDBGrade              ProfileField = "cidb_grade"
	ProfileCIDBRegistrationNumber ProfileField = "cidb_registration_number"
	ProfileCIDBExpiryDate         ProfileField = "cidb_expiry_date"
	ProfileCIDBWorkCategories     ProfileField = "cidb_work_categories"

	ProfileBEELevel                   ProfileField = "bee_level"
	ProfileBEECertificateNumber       ProfileField = "bee_certificate_number"
	ProfileBEEExpiryDate              ProfileField = "bee_expiry_date"
	ProfileBEEOwnershipPercentage     ProfileField = "bee_ownership_percentage"
	ProfileBEEManagementPercentage    ProfileField = "bee_management_control_percentage"
	ProfileBEESkillsPercentage        ProfileField = "bee_skills_development_percentage"
	ProfileBEEEnterprisePercentage    ProfileField = "bee_enterprise_development_percentage"
	ProfileBEESocioEconomicPercentage ProfileField = "bee_socio_economic_development_percentage"

	ProfileCompanyName               ProfileField = "company_name"
	ProfileCompanyRegistrationNumber ProfileField = "company_registration_number"
	ProfilePhoneNumber               ProfileField = "phone_number"
	ProfileYearsInBusiness           ProfileField = "years_in_business"
	ProfileAnnualTurnover            ProfileField = "annual_turnover"
	ProfileNumberOfEmployees         ProfileField = "number_of_employees"

	ProfilePreviousTenderWins         ProfileField = "previous_tender_wins"
	ProfilePreviousTenderApplications ProfileField = "previous_tender_applications"

	ProfileReadinessScore       ProfileField = "readiness_score"
	ProfileCompletionPercentage ProfileField = "profile_completion_percentage"
	ProfileLastScoreCalculation ProfileField = "last_score_calculation"
	ProfileUpdatedAt            ProfileField = "updated_at"
)

// ScoreFields are the server computed fields refreshed after an update or a recalculation
var ScoreFields = []ProfileField{ProfileReadinessScore, ProfileCompletionPercentage, ProfileLastScoreCalculation}

// Profile is the company profile as returned by the API.
// It is kept as a JSON object so fields the portal does not know about survive a round trip
type Profile map[string]interface{}

// Number returns the field as a float64 when it holds a number or a numeric string
func (p Profile) Number(field ProfileField) (float64, bool) {
	switch v := p[string(field)].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Text returns the field formatted the way it is shown in a form input
func (p Profile) Text(field ProfileField) (string, bool) {
	switch v := p[string(field)].(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	default:
		n, ok := p.Number(field)
		if !ok {
			return "", false
		}
		return strconv.FormatFloat(n, 'f', -1, 64), true
	}
}

// Strings returns the field as a list of strings, ignoring non string entries
func (p Profile) Strings(field ProfileField) []string {
	switch v := p[string(field)].(type) {
	case []string:
		return v
	case []interface{}:
		values := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
		return values
	default:
		return nil
	}
}

// Merge copies every field of fragment into the profile, overwriting existing values
func (p Profile) Merge(fragment Profile) {
	for key, value := range fragment {
		p[key] = value
	}
}

// ApplyScores overwrites the score fields with the ones present in echo
func (p Profile) ApplyScores(echo Profile) {
	for _, field := range ScoreFields {
		if value, ok := echo[string(field)]; ok {
			p[string(field)] = value
		}
	}
}

// Clone returns a shallow copy of the profile
func (p Profile) Clone() Profile {
	clone := make(Profile, len(p))
	for key, value := range p {
		clone[key] = value
	}
	return clone
}
