package validation

import (
	"github.com/go-playground/validator/v10"
)

// ProjectTypes is the fixed set of project categories offered by the contact form.
var ProjectTypes = []string{
	"Custom Software Development",
	"API Integration",
	"Mobile Application",
	"Web Application",
	"Database Design",
	"System Integration",
	"Consulting",
	"Other",
}

// BudgetRanges is the fixed set of budget selections offered by the contact form.
var BudgetRanges = []string{
	"Under $10,000",
	"$10,000 - $25,000",
	"$25,000 - $50,000",
	"$50,000 - $100,000",
	"$100,000+",
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("project_type", ValidProjectType)
	_ = v.RegisterValidation("budget_range", ValidBudgetRange)
}

// ValidProjectType validates that a string is one of the allowed project categories.
func ValidProjectType(fl validator.FieldLevel) bool {
	return contains(ProjectTypes, fl.Field().String())
}

// ValidBudgetRange validates that a string is one of the allowed budget ranges.
// Empty values pass; pair with omitempty for optional fields.
func ValidBudgetRange(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return contains(BudgetRanges, val)
}

func contains(set []string, val string) bool {
	for _, s := range set {
		if s == val {
			return true
		}
	}
	return false
}
