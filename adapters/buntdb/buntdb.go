// Package buntdb persists the InternConnect state in an embedded
// key-value file, the closest server-free analog of the browser storage
// the product originally wrote to. Each logical collection lives under
// one fixed key as a JSON document and is fully overwritten on every
// mutation; there are no partial updates and no schema versioning.
package buntdb

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/buntdb"

	"github.com/internconnect/internconnect/core"
)

// Storage keys. KeySession and KeyAccounts keep the names the web app
// used in local storage.
const (
	KeySession     = "internconnect_user"
	KeyAccounts    = "internconnect_users"
	KeyInternships = "internconnect_internships"
	KeyApps        = "internconnect_applications"
	KeyCourses     = "internconnect_courses"
	KeyEnrollments = "internconnect_enrollments"
)

type Adapter struct {
	db *buntdb.DB
}

var _ core.Storage = (*Adapter)(nil)

// Open opens (or creates) the database at path. Use ":memory:" for an
// ephemeral store.
func Open(path string) (*Adapter, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &Adapter{db: db}, nil
}

func (a *Adapter) Close() error {
	return a.db.Close()
}

// Seed loads the starter catalog unless listings already exist.
func (a *Adapter) Seed(internships []*core.Internship, courses []*core.Course) error {
	existing, err := a.ListInternships()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	if err := writeDoc(a.db, KeyInternships, internships); err != nil {
		return err
	}
	return writeDoc(a.db, KeyCourses, courses)
}

// readDoc unmarshals the JSON document under key into out. A missing
// key leaves out untouched and reports found=false.
func readDoc(db *buntdb.DB, key string, out any) (bool, error) {
	var raw string
	err := db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key)
		if err != nil {
			return err
		}
		raw = v
		return nil
	})
	if err != nil {
		if errors.Is(err, buntdb.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("malformed document at %s: %w", key, err)
	}
	return true, nil
}

// writeDoc overwrites the document under key.
func writeDoc(db *buntdb.DB, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	err = db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, string(raw), nil)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Accounts

func (a *Adapter) ListAccounts() ([]*core.Account, error) {
	var accounts []*core.Account
	if _, err := readDoc(a.db, KeyAccounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *Adapter) FindAccountByEmail(email string) (*core.Account, error) {
	accounts, err := a.ListAccounts()
	if err != nil {
		return nil, err
	}
	for _, acc := range accounts {
		if acc.Email == email {
			return acc, nil
		}
	}
	return nil, core.ErrAccountNotFound
}

func (a *Adapter) FindAccountByID(id string) (*core.Account, error) {
	accounts, err := a.ListAccounts()
	if err != nil {
		return nil, err
	}
	for _, acc := range accounts {
		if acc.ID == id {
			return acc, nil
		}
	}
	return nil, core.ErrAccountNotFound
}

func (a *Adapter) AppendAccount(acc *core.Account) error {
	accounts, err := a.ListAccounts()
	if err != nil {
		return err
	}
	accounts = append(accounts, acc)
	return writeDoc(a.db, KeyAccounts, accounts)
}

func (a *Adapter) UpdateAccount(acc *core.Account) error {
	accounts, err := a.ListAccounts()
	if err != nil {
		return err
	}
	for i, existing := range accounts {
		if existing.ID == acc.ID {
			accounts[i] = acc
			return writeDoc(a.db, KeyAccounts, accounts)
		}
	}
	return core.ErrAccountNotFound
}

// Session

func (a *Adapter) LoadSession() (*core.Session, error) {
	var session core.Session
	found, err := readDoc(a.db, KeySession, &session)
	if err != nil {
		// A malformed persisted session reads as no session; the
		// caller starts anonymous rather than failing to boot.
		return nil, core.ErrSessionNotFound
	}
	if !found {
		return nil, core.ErrSessionNotFound
	}
	return &session, nil
}

func (a *Adapter) SaveSession(s *core.Session) error {
	return writeDoc(a.db, KeySession, s)
}

func (a *Adapter) ClearSession() error {
	err := a.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(KeySession)
		return err
	})
	if err != nil && !errors.Is(err, buntdb.ErrNotFound) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Internships

func (a *Adapter) ListInternships() ([]*core.Internship, error) {
	var listings []*core.Internship
	if _, err := readDoc(a.db, KeyInternships, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (a *Adapter) FindInternship(id string) (*core.Internship, error) {
	listings, err := a.ListInternships()
	if err != nil {
		return nil, err
	}
	for _, in := range listings {
		if in.ID == id {
			return in, nil
		}
	}
	return nil, core.ErrListingNotFound
}

func (a *Adapter) AppendInternship(in *core.Internship) error {
	listings, err := a.ListInternships()
	if err != nil {
		return err
	}
	listings = append(listings, in)
	return writeDoc(a.db, KeyInternships, listings)
}

func (a *Adapter) UpdateInternship(in *core.Internship) error {
	listings, err := a.ListInternships()
	if err != nil {
		return err
	}
	for i, existing := range listings {
		if existing.ID == in.ID {
			listings[i] = in
			return writeDoc(a.db, KeyInternships, listings)
		}
	}
	return core.ErrListingNotFound
}

// Applications

func (a *Adapter) listApps() ([]*core.Application, error) {
	var apps []*core.Application
	if _, err := readDoc(a.db, KeyApps, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (a *Adapter) ListApplications(internshipID string) ([]*core.Application, error) {
	apps, err := a.listApps()
	if err != nil {
		return nil, err
	}
	var out []*core.Application
	for _, app := range apps {
		if app.InternshipID == internshipID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (a *Adapter) ListStudentApplications(studentID string) ([]*core.Application, error) {
	apps, err := a.listApps()
	if err != nil {
		return nil, err
	}
	var out []*core.Application
	for _, app := range apps {
		if app.StudentID == studentID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (a *Adapter) FindApplication(id string) (*core.Application, error) {
	apps, err := a.listApps()
	if err != nil {
		return nil, err
	}
	for _, app := range apps {
		if app.ID == id {
			return app, nil
		}
	}
	return nil, core.ErrApplicationNotFound
}

func (a *Adapter) AppendApplication(app *core.Application) error {
	apps, err := a.listApps()
	if err != nil {
		return err
	}
	apps = append(apps, app)
	return writeDoc(a.db, KeyApps, apps)
}

func (a *Adapter) UpdateApplication(app *core.Application) error {
	apps, err := a.listApps()
	if err != nil {
		return err
	}
	for i, existing := range apps {
		if existing.ID == app.ID {
			apps[i] = app
			return writeDoc(a.db, KeyApps, apps)
		}
	}
	return core.ErrApplicationNotFound
}

// Courses

func (a *Adapter) ListCourses() ([]*core.Course, error) {
	var courses []*core.Course
	if _, err := readDoc(a.db, KeyCourses, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (a *Adapter) FindCourse(id string) (*core.Course, error) {
	courses, err := a.ListCourses()
	if err != nil {
		return nil, err
	}
	for _, c := range courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, core.ErrCourseNotFound
}

func (a *Adapter) AppendCourse(c *core.Course) error {
	courses, err := a.ListCourses()
	if err != nil {
		return err
	}
	courses = append(courses, c)
	return writeDoc(a.db, KeyCourses, courses)
}

// Enrollments

func (a *Adapter) listEnrollments() ([]*core.Enrollment, error) {
	var enrollments []*core.Enrollment
	if _, err := readDoc(a.db, KeyEnrollments, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (a *Adapter) ListEnrollments(studentID string) ([]*core.Enrollment, error) {
	enrollments, err := a.listEnrollments()
	if err != nil {
		return nil, err
	}
	var out []*core.Enrollment
	for _, e := range enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (a *Adapter) FindEnrollment(courseID, studentID string) (*core.Enrollment, error) {
	enrollments, err := a.listEnrollments()
	if err != nil {
		return nil, err
	}
	for _, e := range enrollments {
		if e.CourseID == courseID && e.StudentID == studentID {
			return e, nil
		}
	}
	return nil, core.ErrNotEnrolled
}

func (a *Adapter) AppendEnrollment(e *core.Enrollment) error {
	enrollments, err := a.listEnrollments()
	if err != nil {
		return err
	}
	enrollments = append(enrollments, e)
	return writeDoc(a.db, KeyEnrollments, enrollments)
}

func (a *Adapter) UpdateEnrollment(e *core.Enrollment) error {
	enrollments, err := a.listEnrollments()
	if err != nil {
		return err
	}
	for i, existing := range enrollments {
		if existing.ID == e.ID {
			enrollments[i] = e
			return writeDoc(a.db, KeyEnrollments, enrollments)
		}
	}
	return core.ErrNotEnrolled
}
