package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/amishk599/postings/internal/model"
)

type rawCatalog struct {
	Jobs []rawJob `yaml:"jobs"`
}

type rawJob struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
}

// LoadFile reads a YAML catalog of the form
//
//	jobs:
//	  - id: 1
//	    title: Frontend Developer
//	    description: React, Redux
//	    date: "2025-01-12"
//
// and validates it.
func LoadFile(path string) ([]model.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	jobs := make([]model.Job, 0, len(raw.Jobs))
	for _, j := range raw.Jobs {
		jobs = append(jobs, model.Job{
			ID:          j.ID,
			Title:       j.Title,
			Description: j.Description,
			Date:        j.Date,
		})
	}

	if err := Validate(jobs); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return jobs, nil
}

// Validate checks that job IDs are positive and unique and that every job has
// a title. Dates are not checked; unparseable dates are tolerated downstream.
func Validate(jobs []model.Job) error {
	if len(jobs) == 0 {
		return fmt.Errorf("no jobs")
	}
	seen := make(map[int]bool, len(jobs))
	for i, j := range jobs {
		if j.ID <= 0 {
			return fmt.Errorf("jobs[%d]: id must be positive, got %d", i, j.ID)
		}
		if seen[j.ID] {
			return fmt.Errorf("jobs[%d]: duplicate id %d", i, j.ID)
		}
		seen[j.ID] = true
		if j.Title == "" {
			return fmt.Errorf("jobs[%d]: title is required", i)
		}
	}
	return nil
}
