package profile

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/sedtender/tender_portal/entities"
	"github.com/sedtender/tender_portal/services"
)

// Section is one of the forms of the profile editor
type Section string

const (
	CIDB       Section = "cidb"
	BEE        Section = "bee"
	Company    Section = "company"
	Experience Section = "experience"
)

// Sections lists the sections in the order they are shown
var Sections = []Section{CIDB, BEE, Company, Experience}

const percentageErrorMessage = "Percentage must be between 0 and 100"

var sectionFields = map[Section][]entities.ProfileField{
	CIDB: {
		entities.ProfileCIDBGrade,
		entities.ProfileCIDBRegistrationNumber,
		entities.ProfileCIDBExpiryDate,
	},
	BEE: {
		entities.ProfileBEELevel,
		entities.ProfileBEECertificateNumber,
		entities.ProfileBEEExpiryDate,
		entities.ProfileBEEOwnershipPercentage,
		entities.ProfileBEEManagementPercentage,
		entities.ProfileBEESkillsPercentage,
		entities.ProfileBEEEnterprisePercentage,
		entities.ProfileBEESocioEconomicPercentage,
	},
	Company: {
		entities.ProfileYearsInBusiness,
		entities.ProfileAnnualTurnover,
		entities.ProfileNumberOfEmployees,
	},
	Experience: {
		entities.ProfilePreviousTenderWins,
		entities.ProfilePreviousTenderApplications,
	},
}

var numericFields = map[entities.ProfileField]bool{
	entities.ProfileCIDBGrade:                  true,
	entities.ProfileBEELevel:                   true,
	entities.ProfileYearsInBusiness:            true,
	entities.ProfileAnnualTurnover:             true,
	entities.ProfileNumberOfEmployees:          true,
	entities.ProfilePreviousTenderWins:         true,
	entities.ProfilePreviousTenderApplications: true,
	entities.ProfileBEEOwnershipPercentage:     true,
	entities.ProfileBEEManagementPercentage:    true,
	entities.ProfileBEESkillsPercentage:        true,
	entities.ProfileBEEEnterprisePercentage:    true,
	entities.ProfileBEESocioEconomicPercentage: true,
}

// ParseSection returns the section with the given name
func ParseSection(name string) (Section, error) {
	section := Section(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := sectionFields[section]; !ok {
		return "", services.ErrInvalidSection
	}
	return section, nil
}

// Title is the section name as shown in messages
func (s Section) Title() string {
	return strings.ToUpper(string(s))
}

// IsPercentageField reports whether the field holds a percentage
func IsPercentageField(name string) bool {
	return strings.Contains(name, "percentage")
}

// ValidatePercentage returns a *services.ValidationError when value is a number outside [0, 100].
// Values that are not numbers are left to the numeric coercion
func ValidatePercentage(field, value string) error {
	n, ok := parseFloatPrefix(value)
	if ok && (n < 0 || n > 100) {
		return &services.ValidationError{Field: field, Message: percentageErrorMessage}
	}
	return nil
}

// CollectSection builds the partial profile update for a submitted section form.
// Empty values are dropped, known numeric fields are coerced to numbers
// and the CIDB work categories are always sent as a list
func CollectSection(section Section, form url.Values) (entities.Profile, error) {
	fields, ok := sectionFields[section]
	if !ok {
		return nil, services.ErrInvalidSection
	}

	fragment := entities.Profile{}
	for _, field := range fields {
		value := strings.TrimSpace(form.Get(string(field)))
		if value == "" {
			continue
		}

		if IsPercentageField(string(field)) {
			if err := ValidatePercentage(string(field), value); err != nil {
				return nil, err
			}
		}

		if !numericFields[field] {
			fragment[string(field)] = value
			continue
		}

		if field == entities.ProfileAnnualTurnover {
			value = normaliseGroupedNumber(value)
		}
		n, _ := parseFloatPrefix(value)
		fragment[string(field)] = n
	}

	if section == CIDB {
		categories := []interface{}{}
		for _, category := range form[string(entities.ProfileCIDBWorkCategories)] {
			if category = strings.TrimSpace(category); category != "" {
				categories = append(categories, category)
			}
		}
		fragment[string(entities.ProfileCIDBWorkCategories)] = categories
	}

	return fragment, nil
}

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// parseFloatPrefix parses the longest numeric prefix of s, ignoring leading whitespace
func parseFloatPrefix(s string) (float64, bool) {
	match := floatPrefix.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseInt parses the leading integer of s, falling back to 0.
// Values out of range are clamped to the int range
func ParseInt(s string) int {
	match := intPrefix.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return n
		}
		return 0
	}
	return n
}

// normaliseGroupedNumber turns an en-ZA formatted amount such as "1 250 000,50" into "1250000.50".
// Commas are grouping separators unless a single comma is followed by at most two digits
func normaliseGroupedNumber(s string) string {
	s = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "").Replace(s)
	if strings.Contains(s, ".") {
		return strings.Replace(s, ",", "", -1)
	}

	if strings.Count(s, ",") == 1 {
		if i := strings.Index(s, ","); len(s)-i-1 <= 2 {
			return strings.Replace(s, ",", ".", 1)
		}
	}
	return strings.Replace(s, ",", "", -1)
}
