package core

import "testing"

func TestProfile_Merge(t *testing.T) {
	base := Profile{ProfilePhone: "9876543210", ProfileSkills: "Python"}
	merged := base.Merge(Profile{ProfileSkills: "Go", ProfilePortfolio: "https://s.dev"})

	if merged[ProfileSkills] != "Go" {
		t.Errorf("existing key should overwrite, got %q", merged[ProfileSkills])
	}
	if merged[ProfilePortfolio] != "https://s.dev" {
		t.Errorf("new key should add, got %q", merged[ProfilePortfolio])
	}
	if merged[ProfilePhone] != "9876543210" {
		t.Errorf("untouched key should persist, got %q", merged[ProfilePhone])
	}
	if base[ProfileSkills] != "Python" {
		t.Error("Merge must not mutate the receiver")
	}
}

func TestProfile_TypedViews(t *testing.T) {
	p := Profile{
		ProfilePhone:       "9876543210",
		ProfileUniversity:  "State University",
		ProfileDegree:      "BSc Computer Science",
		ProfileDescription: "We build developer tools",
		ProfileWebsite:     "https://techstart.io",
	}

	student := p.Student()
	if student.University != "State University" || student.Degree != "BSc Computer Science" {
		t.Errorf("Student() = %+v", student)
	}
	if student.Skills != "" {
		t.Errorf("missing key should be zero, got %q", student.Skills)
	}

	company := p.Company()
	if company.Description != "We build developer tools" || company.Website != "https://techstart.io" {
		t.Errorf("Company() = %+v", company)
	}
}

func TestAccount_Redacted(t *testing.T) {
	acc := Account{
		ID:          "acc-1",
		Role:        RoleStudent,
		Email:       "sarah@gmail.com",
		Password:    "secret",
		DisplayName: "Sarah Johnson",
		Profile:     Profile{ProfileSkills: "Go"},
	}

	red := acc.Redacted()
	if red.Password != "" {
		t.Error("Redacted() must drop the password")
	}
	if red.Email != acc.Email || red.DisplayName != acc.DisplayName {
		t.Error("Redacted() must keep visible fields")
	}

	red.Profile[ProfileSkills] = "Rust"
	if acc.Profile[ProfileSkills] != "Go" {
		t.Error("Redacted() profile must not alias the original")
	}
}

func TestApplicationStatus_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		name string
		from ApplicationStatus
		to   ApplicationStatus
		want bool
	}{
		{name: "pending to shortlisted", from: ApplicationPending, to: ApplicationShortlisted, want: true},
		{name: "pending straight to hired", from: ApplicationPending, to: ApplicationHired, want: true},
		{name: "shortlisted to interviewed", from: ApplicationShortlisted, to: ApplicationInterviewed, want: true},
		{name: "no going back", from: ApplicationInterviewed, to: ApplicationPending, want: false},
		{name: "no staying put", from: ApplicationShortlisted, to: ApplicationShortlisted, want: false},
		{name: "unknown target", from: ApplicationPending, to: ApplicationStatus("rejected"), want: false},
		{name: "unknown source", from: ApplicationStatus(""), to: ApplicationHired, want: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := test.from.CanAdvanceTo(test.to); got != test.want {
				t.Errorf("CanAdvanceTo(%q -> %q) = %v, want %v", test.from, test.to, got, test.want)
			}
		})
	}
}

func TestListingFilter_Matches(t *testing.T) {
	listing := &Internship{
		Title:    "Frontend Developer Intern",
		Company:  "TechStart Inc.",
		Location: "New York, NY",
	}

	tests := []struct {
		name   string
		filter ListingFilter
		want   bool
	}{
		{name: "empty filter matches", filter: ListingFilter{}, want: true},
		{name: "title substring", filter: ListingFilter{Query: "frontend"}, want: true},
		{name: "company substring", filter: ListingFilter{Query: "techstart"}, want: true},
		{name: "query miss", filter: ListingFilter{Query: "backend"}, want: false},
		{name: "location substring", filter: ListingFilter{Location: "new york"}, want: true},
		{name: "location miss", filter: ListingFilter{Location: "remote"}, want: false},
		{name: "both must match", filter: ListingFilter{Query: "frontend", Location: "remote"}, want: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := test.filter.Matches(listing); got != test.want {
				t.Errorf("Matches() = %v, want %v", got, test.want)
			}
		})
	}
}
