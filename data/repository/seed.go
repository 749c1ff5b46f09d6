package repository

import (
	"fmt"
	"strings"

	"workshop-hub/data/models"
)

// SeedDemoData loads the canonical demo catalog: two directory accounts and
// six workshops with generated registrant rosters. Intended for the
// in-memory store at boot and for tests.
func SeedDemoData(repo Repo) error {
	users := []models.User{
		{
			Name:     "Admin Account",
			Email:    "admin@hub.com",
			Password: "123",
			Phone:    "000-000-0000",
			Role:     models.RoleAdmin,
		},
		{
			Name:     "Demo User",
			Email:    "user@workshop.com",
			Password: "user123",
			Phone:    "222-333-4444",
			Role:     models.RoleStudent,
		},
	}
	for _, u := range users {
		if err := repo.CreateUser(u); err != nil {
			return fmt.Errorf("seeding user %s: %w", u.Email, err)
		}
	}

	workshops := []models.Workshop{
		{
			Title:       "Advanced React Patterns",
			Description: "Build scalable component systems, advanced hooks flows, and maintainable architecture.",
			Category:    "Web Development",
			Instructor:  "Sarah Johnson",
			Duration:    "3 hours",
			Schedule:    "Mar 15, 2026",
			Enrolled:    35,
			Capacity:    50,
			Registrants: makeRegistrants(35, "Student", "Web Development"),
			Status:      models.StatusUpcoming,
		},
		{
			Title:       "UI/UX Design Fundamentals",
			Description: "Learn practical UX workflows, wireframing, accessibility, and visual hierarchy.",
			Category:    "Design",
			Instructor:  "Michael Chen",
			Duration:    "2.5 hours",
			Schedule:    "Mar 18, 2026",
			Enrolled:    28,
			Capacity:    40,
			Registrants: makeRegistrants(28, "Designer", "Design"),
			Status:      models.StatusUpcoming,
		},
		{
			Title:       "Data Science with Python",
			Description: "Explore data preparation, modeling, and evaluation patterns for real-world datasets.",
			Category:    "Data Science",
			Instructor:  "Dr. Emily Rodriguez",
			Duration:    "4 hours",
			Schedule:    "Mar 20, 2026",
			Enrolled:    30,
			Capacity:    30,
			Registrants: makeRegistrants(30, "Data", "Data Science"),
			Status:      models.StatusUpcoming,
		},
		{
			Title:       "Cloud Architecture Basics",
			Description: "Understand cloud service models, architecture decisions, and deployment best practices.",
			Category:    "Cloud Computing",
			Instructor:  "James Wilson",
			Duration:    "3 hours",
			Schedule:    "Feb 28, 2026",
			Enrolled:    42,
			Capacity:    45,
			Registrants: makeRegistrants(42, "Cloud", "Cloud Computing"),
			Status:      models.StatusCompleted,
			Materials: []models.Material{
				{
					ID:    "cloud-guide",
					Type:  "pdf",
					Title: "Cloud Architecture Handbook",
					URL:   "https://example.com/cloud-architecture-handbook.pdf",
				},
				{
					ID:    "cloud-recording",
					Type:  "video",
					Title: "Workshop Recording",
					URL:   "https://example.com/cloud-recording",
				},
			},
		},
		{
			Title:       "Mobile App Development",
			Description: "Build cross-platform mobile apps with scalable project structure and deployment workflows.",
			Category:    "Mobile Development",
			Instructor:  "Lisa Anderson",
			Duration:    "3 hours",
			Schedule:    "Mar 22, 2026",
			Enrolled:    22,
			Capacity:    35,
			Registrants: makeRegistrants(22, "Mobile", "Mobile Development"),
			Status:      models.StatusUpcoming,
		},
		{
			Title:       "Agile Project Management",
			Description: "Run effective sprints, manage stakeholders, and improve planning cadence.",
			Category:    "Project Management",
			Instructor:  "Robert Taylor",
			Duration:    "2 hours",
			Schedule:    "Mar 25, 2026",
			Enrolled:    48,
			Capacity:    60,
			Registrants: makeRegistrants(48, "PM", "Project Management"),
			Status:      models.StatusUpcoming,
		},
	}
	for _, w := range workshops {
		if _, err := repo.CreateWorkshop(models.NormalizeWorkshop(w)); err != nil {
			return fmt.Errorf("seeding workshop %q: %w", w.Title, err)
		}
	}

	return nil
}

// makeRegistrants generates a roster of total snapshots named "<prefix> 1"
// through "<prefix> <total>", all tagged with the workshop's tech.
func makeRegistrants(total int, prefix, tech string) []models.Registrant {
	registrants := make([]models.Registrant, total)
	emailPrefix := strings.ReplaceAll(strings.ToLower(prefix), " ", "")
	for i := range registrants {
		registrants[i] = models.Registrant{
			Name:  fmt.Sprintf("%s %d", prefix, i+1),
			Email: fmt.Sprintf("%s%d@example.com", emailPrefix, i+1),
			Phone: fmt.Sprintf("100-200-%04d", i),
			Tech:  tech,
		}
	}
	return registrants
}
