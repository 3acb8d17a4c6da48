package core

import (
	"regexp"
	"strings"
)

// EmailRule selects which email format an account role must satisfy.
// The registration flows in the product's history disagreed on how
// strict company emails should be, so the choice is explicit config
// instead of a hard-coded rule.
type EmailRule int

const (
	// EmailConsumerDomain requires an address ending in the policy's
	// consumer domain and longer than 10 characters total.
	EmailConsumerDomain EmailRule = iota
	// EmailAnyDomain requires only a syntactically valid user@domain.tld.
	EmailAnyDomain
)

const (
	defaultConsumerDomain = "@gmail.com"

	minStudentPassword = 6
	minCompanyPassword = 8

	passwordSymbols = `!@#$%^&*(),.?":{}|<>`

	phoneDigits = 10
)

var (
	anyEmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nonDigits       = regexp.MustCompile(`\D`)
)

// ValidationPolicy holds the configurable rule set for registration and
// login forms. The zero value is not useful; start from
// DefaultValidationPolicy.
type ValidationPolicy struct {
	// ConsumerDomain is the suffix consumer-domain emails must carry.
	ConsumerDomain string

	StudentEmail EmailRule
	CompanyEmail EmailRule

	// RequireDescription turns the company-description length check
	// into a hard registration rule. Off by default; the check was
	// never consistently enforced.
	RequireDescription bool
}

// DefaultValidationPolicy matches the strictest widely-deployed rule
// set: students must use a consumer-domain address, companies any valid
// address.
func DefaultValidationPolicy() ValidationPolicy {
	return ValidationPolicy{
		ConsumerDomain: defaultConsumerDomain,
		StudentEmail:   EmailConsumerDomain,
		CompanyEmail:   EmailAnyDomain,
	}
}

// ValidEmail reports whether email satisfies the rule configured for
// the given role.
func (p ValidationPolicy) ValidEmail(email string, role Role) bool {
	rule := p.StudentEmail
	if role == RoleCompany {
		rule = p.CompanyEmail
	}
	switch rule {
	case EmailConsumerDomain:
		return strings.HasSuffix(email, p.consumerDomain()) && len(email) > 10
	default:
		return anyEmailPattern.MatchString(email)
	}
}

func (p ValidationPolicy) consumerDomain() string {
	if p.ConsumerDomain == "" {
		return defaultConsumerDomain
	}
	return p.ConsumerDomain
}

// NormalizePhone strips non-digit characters and truncates to 10
// digits. Used to keep phone inputs masked while typing.
func NormalizePhone(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) > phoneDigits {
		digits = digits[:phoneDigits]
	}
	return digits
}

// ValidPhone reports whether raw contains exactly 10 digits (ignoring
// separators) with a leading digit of 6, 7, 8, or 9.
func ValidPhone(raw string) bool {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) != phoneDigits {
		return false
	}
	return digits[0] >= '6' && digits[0] <= '9'
}

// ValidPassword reports whether password meets the strength rule for
// the role: companies need length >= 8 with an uppercase letter, a
// lowercase letter, a digit, and a symbol; students only length >= 6.
func ValidPassword(password string, role Role) bool {
	if role != RoleCompany {
		return len(password) >= minStudentPassword
	}
	if len(password) < minCompanyPassword {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// ValidName reports whether text trims to at least 2 characters. Used
// for personal and company names alike.
func ValidName(text string) bool {
	return len(strings.TrimSpace(text)) >= 2
}

// ValidInstitution reports whether text trims to at least 3 characters.
func ValidInstitution(text string) bool {
	return len(strings.TrimSpace(text)) >= 3
}

// ValidProgram reports whether text trims to at least 3 characters.
func ValidProgram(text string) bool {
	return len(strings.TrimSpace(text)) >= 3
}

// ValidDescription reports whether text trims to at least 10 characters.
func ValidDescription(text string) bool {
	return len(strings.TrimSpace(text)) >= 10
}

// RegisterInput carries the raw form fields submitted at registration.
// Role-specific fields are checked only when provided; name, email,
// phone, and password are always checked.
type RegisterInput struct {
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`

	// Student fields
	University string `json:"university,omitempty"`
	Degree     string `json:"degree,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Portfolio  string `json:"portfolio,omitempty"`

	// Company fields
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}

// Fields returns the submitted attributes as a profile bag, omitting
// empty values and credentials.
func (in RegisterInput) Fields() Profile {
	p := Profile{}
	set := func(key, val string) {
		if val != "" {
			p[key] = val
		}
	}
	set(ProfilePhone, in.Phone)
	set(ProfileUniversity, in.University)
	set(ProfileDegree, in.Degree)
	set(ProfileSkills, in.Skills)
	set(ProfilePortfolio, in.Portfolio)
	set(ProfileDescription, in.Description)
	set(ProfileWebsite, in.Website)
	return p
}

// CollectErrors runs the full applicable rule set for the input's role
// and returns one human-readable message per failing rule, in a fixed
// priority order: name, email, phone, password, then role-specific
// fields. An empty slice means every rule passed.
func (p ValidationPolicy) CollectErrors(in RegisterInput) []string {
	var errs []string

	if !ValidName(in.Name) {
		errs = append(errs, "Name must be at least 2 characters")
	}

	if !p.ValidEmail(in.Email, in.Role) {
		rule := p.StudentEmail
		if in.Role == RoleCompany {
			rule = p.CompanyEmail
		}
		if rule == EmailConsumerDomain {
			errs = append(errs, "Email must be a valid "+p.consumerDomain()+" address")
		} else {
			errs = append(errs, "Email must be a valid address")
		}
	}

	if !ValidPhone(in.Phone) {
		errs = append(errs, "Phone must be a valid 10-digit number starting with 6, 7, 8, or 9")
	}

	if !ValidPassword(in.Password, in.Role) {
		if in.Role == RoleCompany {
			errs = append(errs, "Password must be at least 8 characters with uppercase, lowercase, number, and special character")
		} else {
			errs = append(errs, "Password must be at least 6 characters")
		}
	}

	switch in.Role {
	case RoleStudent:
		if in.University != "" && !ValidInstitution(in.University) {
			errs = append(errs, "University must be at least 3 characters")
		}
		if in.Degree != "" && !ValidProgram(in.Degree) {
			errs = append(errs, "Degree must be at least 3 characters")
		}
	case RoleCompany:
		if p.RequireDescription || in.Description != "" {
			if !ValidDescription(in.Description) {
				errs = append(errs, "Description must be at least 10 characters")
			}
		}
	}

	return errs
}
