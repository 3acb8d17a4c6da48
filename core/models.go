package core

import "time"

// Role identifies the kind of account. It is fixed at registration and
// must match at every subsequent login for the same email.
type Role string

const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleCompany
}

// Profile is the open-ended bag of role-specific attributes captured at
// registration and mutable via profile edits. It is schema-less at the
// storage boundary; use Student() or Company() for a typed view.
type Profile map[string]string

// Well-known profile keys.
const (
	ProfilePhone       = "phone"
	ProfileUniversity  = "university"
	ProfileDegree      = "degree"
	ProfileSkills      = "skills"
	ProfilePortfolio   = "portfolio"
	ProfileDescription = "description"
	ProfileWebsite     = "website"
)

// Clone returns a shallow copy so callers can mutate without aliasing
// the stored map.
func (p Profile) Clone() Profile {
	out := make(Profile, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge applies fields over p: new keys add, existing keys overwrite,
// untouched keys persist. p itself is not modified.
func (p Profile) Merge(fields Profile) Profile {
	out := p.Clone()
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// StudentProfile is the typed view of a student's profile bag.
type StudentProfile struct {
	Phone      string `json:"phone"`
	University string `json:"university"`
	Degree     string `json:"degree"`
	Skills     string `json:"skills"`
	Portfolio  string `json:"portfolio"`
}

// CompanyProfile is the typed view of a company's profile bag.
type CompanyProfile struct {
	Phone       string `json:"phone"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

// Student converts the bag into a typed student view. Unknown keys are
// ignored; missing keys come back zero-valued.
func (p Profile) Student() StudentProfile {
	return StudentProfile{
		Phone:      p[ProfilePhone],
		University: p[ProfileUniversity],
		Degree:     p[ProfileDegree],
		Skills:     p[ProfileSkills],
		Portfolio:  p[ProfilePortfolio],
	}
}

// Company converts the bag into a typed company view.
func (p Profile) Company() CompanyProfile {
	return CompanyProfile{
		Phone:       p[ProfilePhone],
		Description: p[ProfileDescription],
		Website:     p[ProfileWebsite],
	}
}

// Account is a registered student or company identity.
//
// Password is stored the way the configured PasswordHandler produced it.
// With the plaintext handler that is the raw password; it is never
// included in the session copy handed back to callers.
type Account struct {
	ID          string    `json:"id"`
	Role        Role      `json:"role"`
	Email       string    `json:"email"`
	Password    string    `json:"password,omitempty"`
	DisplayName string    `json:"displayName"`
	Profile     Profile   `json:"profile"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Redacted returns a copy of the account with the password removed and
// the profile cloned. This is the shape sessions carry.
func (a *Account) Redacted() Account {
	out := *a
	out.Password = ""
	out.Profile = a.Profile.Clone()
	return out
}

// Session is the currently authenticated account for the running client.
// It holds a password-redacted copy of the account plus the role used to
// log in. At most one session is active per client.
type Session struct {
	Account   Account   `json:"account"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
