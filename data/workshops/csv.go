package workshops

import (
	"fmt"
	"strings"

	"workshop-hub/data/models"
)

// RegistrantsCSV renders a roster as Name,Email,Phone,Technology rows.
// Every value is wrapped in double quotes with embedded quotes doubled --
// the format the legacy export consumers parse, so encoding/csv's
// quote-only-when-needed output would not do.
func RegistrantsCSV(registrants []models.Registrant) string {
	rows := make([]string, 0, len(registrants)+1)
	rows = append(rows, "Name,Email,Phone,Technology")
	for _, r := range registrants {
		rows = append(rows, fmt.Sprintf("%s,%s,%s,%s",
			escapeCSV(r.Name), escapeCSV(r.Email), escapeCSV(r.Phone), escapeCSV(r.Tech)))
	}
	return strings.Join(rows, "\n")
}

func escapeCSV(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
