package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/utils/v2"

	"github.com/internconnect/internconnect"
)

// Auth

func (a *Adapter) register(c fiber.Ctx) error {
	var input internconnect.RegisterInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	session, err := a.ic.Auth.Register(input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(session)
}

type loginRequest struct {
	Email    string             `json:"email"`
	Password string             `json:"password"`
	Role     internconnect.Role `json:"role"`
}

func (a *Adapter) login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	session, err := a.ic.Auth.Login(req.Email, req.Password, req.Role)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(session)
}

func (a *Adapter) logout(c fiber.Ctx) error {
	if err := a.ic.Auth.Logout(); err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}

func (a *Adapter) session(c fiber.Ctx) error {
	return c.JSON(sessionFrom(c))
}

func (a *Adapter) updateProfile(c fiber.Ctx) error {
	var fields internconnect.Profile
	if err := c.Bind().Body(&fields); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	session, err := a.ic.Auth.UpdateProfile(fields)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(session)
}

// Internships

func (a *Adapter) browseInternships(c fiber.Ctx) error {
	filter := internconnect.ListingFilter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
	}
	listings, err := a.ic.Listings.Browse(filter)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(listings)
}

func (a *Adapter) postInternship(c fiber.Ctx) error {
	var input internconnect.PostInternshipInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	listing, err := a.ic.Listings.Post(sessionFrom(c), input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(listing)
}

func (a *Adapter) myPostings(c fiber.Ctx) error {
	listings, err := a.ic.Listings.Postings(sessionFrom(c))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(listings)
}

func (a *Adapter) closeInternship(c fiber.Ctx) error {
	listing, err := a.ic.Listings.Close(sessionFrom(c), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(listing)
}

func (a *Adapter) apply(c fiber.Ctx) error {
	// Params are views into the request buffer; the service stores the
	// id past the handler's lifetime, so it needs its own copy.
	app, err := a.ic.Listings.Apply(sessionFrom(c), utils.CopyString(c.Params("id")))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(app)
}

func (a *Adapter) applicants(c fiber.Ctx) error {
	apps, err := a.ic.Listings.Applicants(sessionFrom(c), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(apps)
}

func (a *Adapter) myApplications(c fiber.Ctx) error {
	apps, err := a.ic.Listings.Applications(sessionFrom(c))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(apps)
}

type advanceRequest struct {
	Status internconnect.ApplicationStatus `json:"status"`
}

func (a *Adapter) advanceApplication(c fiber.Ctx) error {
	var req advanceRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	app, err := a.ic.Listings.Advance(sessionFrom(c), c.Params("id"), req.Status)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(app)
}

// Courses

func (a *Adapter) browseCourses(c fiber.Ctx) error {
	courses, err := a.ic.Courses.Browse(internconnect.CourseFilter{Query: c.Query("q")})
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(courses)
}

func (a *Adapter) enroll(c fiber.Ctx) error {
	// Same as apply: the enrollment keeps the course id, copy it.
	enrollment, err := a.ic.Courses.Enroll(sessionFrom(c), utils.CopyString(c.Params("id")))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(enrollment)
}

func (a *Adapter) complete(c fiber.Ctx) error {
	enrollment, err := a.ic.Courses.Complete(sessionFrom(c), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(enrollment)
}

func (a *Adapter) certificates(c fiber.Ctx) error {
	certs, err := a.ic.Courses.Certificates(sessionFrom(c))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(certs)
}
