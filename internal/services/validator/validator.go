// Package validator checks form field values against a static rule table.
package validator

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/riordanpawley/visioncraft/internal/domain"
)

// Field names with default rules
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
)

// EmailPattern accepts anything shaped like local@domain.tld
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rule describes the checks applied to one field, in this order:
// required, pattern, minimum length.
type Rule struct {
	// Label names the field in the required message. Defaults to the
	// capitalised field name.
	Label     string
	Required  bool
	Pattern   *regexp.Regexp
	MinLength int
	// Message is reported for pattern and length failures
	Message string
}

// Rules maps field names to their rule
type Rules map[string]Rule

// DefaultRules returns the rule table of the sign in and sign up forms
func DefaultRules() Rules {
	return Rules{
		FieldEmail: {
			Required: true,
			Pattern:  EmailPattern,
			Message:  "Please enter a valid email address",
		},
		FieldPassword: {
			Required:  true,
			MinLength: 6,
			Message:   "Password must be at least 6 characters long",
		},
		FieldFirstName: {
			Label:    "First name",
			Required: true,
		},
		FieldLastName: {
			Label:    "Last name",
			Required: true,
		},
	}
}

// Result is the outcome of validating one field
type Result struct {
	Valid   bool
	Message string
}

// Field is one named value of a submitted form
type Field struct {
	Name  string
	Value string
}

// FormResult is the outcome of validating a set of fields
type FormResult struct {
	IsValid bool
	Errors  map[string]string
	// order holds the failing field names in submission order
	order []string
}

// FirstError returns the message of the first failing field in submission
// order, or "" when the form is valid.
func (r FormResult) FirstError() string {
	if len(r.order) == 0 {
		return ""
	}
	return r.Errors[r.order[0]]
}

// Err returns the first failure as a *domain.ValidationError, or nil
func (r FormResult) Err() error {
	if len(r.order) == 0 {
		return nil
	}
	field := r.order[0]
	return &domain.ValidationError{Field: field, Message: r.Errors[field]}
}

// Validator evaluates values against a rule table. It holds no state beyond
// the table.
type Validator struct {
	rules Rules
}

// New creates a validator over rules
func New(rules Rules) *Validator {
	return &Validator{rules: rules}
}

// NewDefault creates a validator over DefaultRules
func NewDefault() *Validator {
	return New(DefaultRules())
}

// Validate checks a single value. Fields without a rule are valid. The first
// failing check wins.
func (v *Validator) Validate(field, value string) Result {
	rule, ok := v.rules[field]
	if !ok {
		return Result{Valid: true}
	}

	if rule.Required {
		err := validation.Validate(strings.TrimSpace(value),
			validation.Required.Error(rule.label(field)+" is required"),
		)
		if err != nil {
			return Result{Valid: false, Message: err.Error()}
		}
	}

	if err := validation.Validate(value, rule.shape()...); err != nil {
		return Result{Valid: false, Message: err.Error()}
	}

	return Result{Valid: true}
}

// ValidateForm validates every field. The slice order decides which error
// FirstError reports.
func (v *Validator) ValidateForm(fields []Field) FormResult {
	result := FormResult{
		IsValid: true,
		Errors:  make(map[string]string),
	}

	for _, f := range fields {
		r := v.Validate(f.Name, f.Value)
		if r.Valid {
			continue
		}
		if _, seen := result.Errors[f.Name]; !seen {
			result.order = append(result.order, f.Name)
		}
		result.Errors[f.Name] = r.Message
		result.IsValid = false
	}

	return result
}

// shape returns the pattern and length checks in evaluation order
func (r Rule) shape() []validation.Rule {
	var rules []validation.Rule
	if r.Pattern != nil {
		rules = append(rules, validation.Match(r.Pattern).Error(r.Message))
	}
	if r.MinLength > 0 {
		rules = append(rules, validation.RuneLength(r.MinLength, 0).Error(r.Message))
	}
	return rules
}

func (r Rule) label(field string) string {
	if r.Label != "" {
		return r.Label
	}
	return capitalize(field)
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
