// Package internconnect connects students with internship and
// free-course listings and lets companies post internships and manage
// applicants. All state lives behind pluggable Storage adapters; the
// library itself has no server and no network protocol.
package internconnect

import (
	"github.com/internconnect/internconnect/core"
	"github.com/internconnect/internconnect/pkg/crypto"
	"github.com/internconnect/internconnect/services"
)

// interfaces
type (
	Storage        = core.Storage
	AccountStorage = core.AccountStorage
	SessionStorage = core.SessionStorage
	ListingStorage = core.ListingStorage
	CourseStorage  = core.CourseStorage

	PasswordHandler = crypto.PasswordHandler
)

// structs
type (
	Account        = core.Account
	Profile        = core.Profile
	StudentProfile = core.StudentProfile
	CompanyProfile = core.CompanyProfile
	Session        = core.Session
	RegisterInput  = core.RegisterInput

	Internship    = core.Internship
	Application   = core.Application
	Course        = core.Course
	Enrollment    = core.Enrollment
	Certificate   = core.Certificate
	ListingFilter = core.ListingFilter
	CourseFilter  = core.CourseFilter

	ValidationPolicy = core.ValidationPolicy
	ValidationError  = core.ValidationError

	AuthService         = services.AuthService
	ListingService      = services.ListingService
	CourseService       = services.CourseService
	PostInternshipInput = services.PostInternshipInput
)

type (
	Role              = core.Role
	ListingStatus     = core.ListingStatus
	ApplicationStatus = core.ApplicationStatus
)

const (
	RoleStudent = core.RoleStudent
	RoleCompany = core.RoleCompany
)

const (
	ListingActive = core.ListingActive
	ListingClosed = core.ListingClosed
)

const (
	ApplicationPending     = core.ApplicationPending
	ApplicationShortlisted = core.ApplicationShortlisted
	ApplicationInterviewed = core.ApplicationInterviewed
	ApplicationHired       = core.ApplicationHired
)

// Constructors & helpers (convenience re-exports)
var (
	DefaultValidationPolicy = core.DefaultValidationPolicy
	NormalizePhone          = core.NormalizePhone
	NewPlaintext            = crypto.NewPlaintext
	NewArgon2               = crypto.NewArgon2
	SeedInternships         = core.SeedInternships
	SeedCourses             = core.SeedCourses
)

var (
	ErrAccountExists      = core.ErrAccountExists
	ErrAccountNotFound    = core.ErrAccountNotFound
	ErrInvalidCredentials = core.ErrInvalidCredentials
	ErrNoActiveSession    = core.ErrNoActiveSession
	ErrForbidden          = core.ErrForbidden
)

var (
	ErrListingNotFound     = core.ErrListingNotFound
	ErrListingClosed       = core.ErrListingClosed
	ErrAlreadyApplied      = core.ErrAlreadyApplied
	ErrApplicationNotFound = core.ErrApplicationNotFound
	ErrInvalidTransition   = core.ErrInvalidTransition
	ErrCourseNotFound      = core.ErrCourseNotFound
	ErrAlreadyEnrolled     = core.ErrAlreadyEnrolled
	ErrNotEnrolled         = core.ErrNotEnrolled
)

var (
	ErrStorageRequired = core.ErrStorageRequired
)

// Config wires an App. Storage is the only required field; everything
// else defaults to the product's historical behavior, plaintext
// password storage included.
type Config struct {
	Storage core.Storage

	// Optional config
	Policy    *core.ValidationPolicy
	Passwords crypto.PasswordHandler
}

// App bundles the application services over one Storage.
type App struct {
	Auth     *services.AuthService
	Listings *services.ListingService
	Courses  *services.CourseService
	Storage  core.Storage
}

// New validates the config, applies defaults, and restores any
// persisted session so the app starts where the user left off.
func New(config Config) (*App, error) {
	if config.Storage == nil {
		return nil, ErrStorageRequired
	}

	// Set Defaults

	policy := DefaultValidationPolicy()
	if config.Policy != nil {
		policy = *config.Policy
	}

	passwords := config.Passwords
	if passwords == nil {
		passwords = crypto.NewPlaintext()
	}

	auth := services.NewAuthService(config.Storage, config.Storage, passwords, policy)
	if _, err := auth.Restore(); err != nil {
		return nil, err
	}

	return &App{
		Auth:     auth,
		Listings: services.NewListingService(config.Storage),
		Courses:  services.NewCourseService(config.Storage),
		Storage:  config.Storage,
	}, nil
}
