// Package record maps raw intake form fields onto the fixed submission
// schema.
package record

import (
	"strconv"
	"time"

	"github.com/parisxmas/featuredesk/internal/models"
)

// Coded values as the intake form sends them. Unrecognized codes are stored
// verbatim. Note: the source form's authors suspected the two maps may be
// inverted relative to the form labels; they are kept exactly as deployed.
var (
	priorityLabels = map[string]string{
		"1": "Urgent",
		"2": "Normal",
		"3": "Optional",
	}
	severityLabels = map[string]string{
		"1": "Cannot Operate/Sell without",
		"2": "Important but Workable",
		"3": "Nice to Have",
	}
)

func mapCode(labels map[string]string, code string) string {
	if label, ok := labels[code]; ok {
		return label
	}
	return code
}

// Build assembles a SubmissionRecord from the parsed form fields and the
// per-slot stored attachment names. Missing fields become empty strings, so
// the resulting row always has the full column count.
func Build(fields map[string]string, attachments [3]string, at time.Time) models.SubmissionRecord {
	get := func(name string) string { return fields[name] }

	rec := models.SubmissionRecord{
		Timestamp:     at.UTC().Format(time.RFC3339),
		RequestorName: get("requestor_name"),
		DealerName:    get("dealer_name"),
		Email:         get("email"),
		Phone:         get("phone"),
	}
	for i := 0; i < 3; i++ {
		n := strconv.Itoa(i + 1)
		rec.Slots[i] = models.FeatureSlot{
			Priority:    mapCode(priorityLabels, get("priority_"+n)),
			Description: get("feature_description_" + n),
			Severity:    mapCode(severityLabels, get("severity_"+n)),
			Attachment:  attachments[i],
		}
	}
	return rec
}
