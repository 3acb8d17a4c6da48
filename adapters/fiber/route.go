// Package fiber exposes the InternConnect services over HTTP for a
// local UI. It is a thin translation layer: form payloads in, typed
// service outcomes back out as status codes and JSON.
package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/internconnect/internconnect"
)

const defaultBasePath = "/api"

type Adapter struct {
	app      *fiber.App
	ic       *internconnect.App
	basePath string
}

// New mounts the InternConnect routes on app under basePath (default
// "/api").
func New(app *fiber.App, ic *internconnect.App, basePath string) *Adapter {
	if basePath == "" {
		basePath = defaultBasePath
	}
	a := &Adapter{app: app, ic: ic, basePath: basePath}
	a.registerRoutes()
	return a
}

func (a *Adapter) registerRoutes() {
	api := a.app.Group(a.basePath)

	// Public routes
	api.Post("/auth/register", a.register)
	api.Post("/auth/login", a.login)
	api.Get("/internships", a.browseInternships)
	api.Get("/courses", a.browseCourses)

	// Protected routes
	api.Post("/auth/logout", a.requireAuth, a.logout)
	api.Get("/auth/session", a.requireAuth, a.session)
	api.Patch("/auth/profile", a.requireAuth, a.updateProfile)

	api.Post("/internships", a.requireAuth, a.postInternship)
	api.Get("/internships/mine", a.requireAuth, a.myPostings)
	api.Post("/internships/:id/close", a.requireAuth, a.closeInternship)
	api.Post("/internships/:id/apply", a.requireAuth, a.apply)
	api.Get("/internships/:id/applicants", a.requireAuth, a.applicants)
	api.Get("/applications", a.requireAuth, a.myApplications)
	api.Patch("/applications/:id", a.requireAuth, a.advanceApplication)

	api.Post("/courses/:id/enroll", a.requireAuth, a.enroll)
	api.Post("/courses/:id/complete", a.requireAuth, a.complete)
	api.Get("/certificates", a.requireAuth, a.certificates)
}
