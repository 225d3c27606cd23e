// Package catalog provides the fixed set of job postings the browser shows.
package catalog

import "github.com/amishk599/postings/internal/model"

var seed = []model.Job{
	{ID: 1, Title: "Frontend Developer", Description: "React, Redux", Date: "2025-01-12"},
	{ID: 2, Title: "Backend Developer", Description: "Node.js, Express", Date: "2025-02-03"},
	{ID: 3, Title: "Full Stack Developer", Description: "React, Node.js", Date: "2025-01-28"},
	{ID: 4, Title: "Mobile Developer", Description: "React Native", Date: "2025-02-14"},
	{ID: 5, Title: "QA Engineer", Description: "Testing Library, Jest", Date: "2025-01-05"},
	{ID: 6, Title: "Data Engineer", Description: "SQL, ETL, Python", Date: "2025-02-20"},
	{ID: 7, Title: "DevOps Engineer", Description: "CI/CD, Docker", Date: "2025-02-08"},
	{ID: 8, Title: "UI Engineer", Description: "HTML, CSS, Accessibility", Date: "2025-01-31"},
	{ID: 9, Title: "Platform Engineer", Description: "APIs, Caching", Date: "2025-02-10"},
	{ID: 10, Title: "Site Reliability Engineer", Description: "Monitoring, Alerts", Date: "2025-02-05"},
	{ID: 11, Title: "Web Developer", Description: "JavaScript, DOM", Date: "2025-01-18"},
	{ID: 12, Title: "Junior Software Engineer", Description: "Java, Git", Date: "2025-02-01"},
	{ID: 13, Title: "Accessibility Engineer", Description: "ARIA, WCAG, semantic HTML", Date: "2025-02-21"},
	{ID: 14, Title: "Automation Engineer", Description: "Playwright, CI test pipelines", Date: "2025-02-18"},
	{ID: 15, Title: "API Engineer", Description: "REST, rate limiting, JWT", Date: "2025-01-22"},
}

// Seed returns a copy of the built-in demo postings.
func Seed() []model.Job {
	out := make([]model.Job, len(seed))
	copy(out, seed)
	return out
}
