package workshops

import (
	"strings"

	"workshop-hub/data/models"
)

// Filters compose with logical AND; zero values impose no constraint.
// Search is a case-insensitive substring match over title, instructor and
// description; category and status are exact matches.
type Filters struct {
	Search   string
	Category string
	Status   string
}

// List applies the filters over the full collection and returns a new slice
// preserving the original insertion order.
func (s *Service) List(f Filters) ([]models.Workshop, error) {
	all, err := s.Repo.ListWorkshops()
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(f.Search)
	result := make([]models.Workshop, 0, len(all))
	for _, w := range all {
		if term != "" && !matchesSearch(w, term) {
			continue
		}
		if f.Category != "" && w.Category != f.Category {
			continue
		}
		if f.Status != "" && w.Status != f.Status {
			continue
		}
		result = append(result, w)
	}
	return result, nil
}

func matchesSearch(w models.Workshop, term string) bool {
	return strings.Contains(strings.ToLower(w.Title), term) ||
		strings.Contains(strings.ToLower(w.Instructor), term) ||
		strings.Contains(strings.ToLower(w.Description), term)
}
