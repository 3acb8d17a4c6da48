package core

import "time"

// Seed data for a fresh install, mirroring the listings the product
// ships with before any company has posted.

// SeedInternships returns the starter internship catalog.
func SeedInternships(now time.Time) []*Internship {
	return []*Internship{
		{
			ID:          "seed-frontend-techstart",
			Company:     "TechStart Inc.",
			Title:       "Frontend Developer Intern",
			Location:    "Remote",
			Stipend:     "$1,500/month",
			Duration:    "3 months",
			Description: "Work with our product team on customer-facing web features.",
			Skills:      []string{"React", "TypeScript", "CSS"},
			Status:      ListingActive,
			PostedAt:    now.AddDate(0, 0, -2),
		},
		{
			ID:          "seed-datascience-analytics",
			Company:     "Analytics Pro",
			Title:       "Data Science Intern",
			Location:    "New York, NY",
			Stipend:     "$2,000/month",
			Duration:    "6 months",
			Description: "Build dashboards and models over customer analytics data.",
			Skills:      []string{"Python", "SQL", "Statistics"},
			Status:      ListingActive,
			PostedAt:    now.AddDate(0, 0, -7),
		},
		{
			ID:          "seed-uiux-creative",
			Company:     "Creative Studio",
			Title:       "UI/UX Design Intern",
			Location:    "San Francisco, CA",
			Stipend:     "$1,800/month",
			Duration:    "4 months",
			Description: "Design flows and prototypes alongside senior designers.",
			Skills:      []string{"Figma", "Prototyping", "User Research"},
			Status:      ListingActive,
			PostedAt:    now.AddDate(0, 0, -3),
		},
		{
			ID:          "seed-marketing-growth",
			Company:     "Growth Marketing Co.",
			Title:       "Marketing Intern",
			Location:    "Chicago, IL",
			Stipend:     "$1,200/month",
			Duration:    "3 months",
			Description: "Run campaigns and measure conversion across channels.",
			Skills:      []string{"SEO", "Content", "Analytics"},
			Status:      ListingActive,
			PostedAt:    now.AddDate(0, 0, -5),
		},
		{
			ID:          "seed-swe-innovation",
			Company:     "Innovation Labs",
			Title:       "Software Engineering Intern",
			Location:    "Austin, TX",
			Stipend:     "$2,200/month",
			Duration:    "5 months",
			Description: "Ship backend services with an experienced platform team.",
			Skills:      []string{"Go", "PostgreSQL", "Docker"},
			Status:      ListingActive,
			PostedAt:    now.AddDate(0, 0, -1),
		},
	}
}

// SeedCourses returns the starter free-course catalog.
func SeedCourses() []*Course {
	return []*Course{
		{ID: "seed-webdev", Title: "Introduction to Web Development", Provider: "CodeCamp Online", Duration: "4 weeks", Level: "Beginner"},
		{ID: "seed-marketing", Title: "Digital Marketing Fundamentals", Provider: "Growth Academy", Duration: "3 weeks", Level: "Beginner"},
		{ID: "seed-excel", Title: "Data Analysis with Excel", Provider: "Analytics Pro", Duration: "2 weeks", Level: "Intermediate"},
		{ID: "seed-communication", Title: "Communication Skills for Professionals", Provider: "CareerBoost", Duration: "3 weeks", Level: "Beginner"},
	}
}
