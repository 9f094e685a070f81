package normalizer

import (
	"strings"

	"fjacquet/activity-export/internal/models"
)

var excludedStatuses = map[string]bool{
	models.StatusRejected:  true,
	models.StatusCancelled: true,
	models.StatusExpired:   true,
}

// Excluded reports whether an activity must be dropped before
// normalization, and why.
func Excluded(a models.RawActivity) (bool, string) {
	status := strings.ToLower(strings.TrimSpace(a.Status))
	if excludedStatuses[status] {
		return true, "status " + status
	}
	if a.NormalizedType() == TypeLegacyTransfer {
		return true, "legacy transfer"
	}
	return false, ""
}

// Filter returns the activities that survive exclusion, in input order.
func Filter(activities []models.RawActivity) []models.RawActivity {
	kept := make([]models.RawActivity, 0, len(activities))
	for _, a := range activities {
		if excluded, _ := Excluded(a); !excluded {
			kept = append(kept, a)
		}
	}
	return kept
}
