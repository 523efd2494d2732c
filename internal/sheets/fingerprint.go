// Package sheets forwards a report's summary row to the spreadsheet
// endpoint and blocks duplicate submissions within one process lifetime.
package sheets

import (
	"encoding/base64"
	"strings"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

// Fingerprint derives the deduplication key for a record: the order-
// sensitive concatenation of inspector, location, date and time, base64
// encoded with non-alphanumeric characters stripped. It is used only to
// suppress double submission, never as an identity elsewhere.
func Fingerprint(record models.InspectionRecord) string {
	raw := record.InspectorName + "_" + record.Location + "_" + record.Date + "_" + record.Time
	encoded := base64.StdEncoding.EncodeToString([]byte(raw))

	var b strings.Builder
	b.Grow(len(encoded))
	for _, r := range encoded {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
