package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

func TestFingerprintIsDeterministic(t *testing.T) {
	record := models.InspectionRecord{
		InspectorName: "الطارق زهران",
		Location:      "مستشفى طنطا العام",
		Date:          "2025-03-15",
		Time:          "10:30",
	}

	first := Fingerprint(record)
	second := Fingerprint(record)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestFingerprintContainsOnlyAlphanumerics(t *testing.T) {
	fp := Fingerprint(models.InspectionRecord{
		InspectorName: "مفتش",
		Location:      "جهة / فرعية",
		Date:          "2025-03-15",
		Time:          "10:30",
	})

	for _, r := range fp {
		ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		assert.True(t, ok, "unexpected character %q in fingerprint", r)
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	base := models.InspectionRecord{
		InspectorName: "Inspector",
		Location:      "Clinic",
		Date:          "2025-03-15",
		Time:          "10:30",
	}

	mutations := []func(*models.InspectionRecord){
		func(r *models.InspectionRecord) { r.InspectorName = "Other" },
		func(r *models.InspectionRecord) { r.Location = "Elsewhere" },
		func(r *models.InspectionRecord) { r.Date = "2025-03-16" },
		func(r *models.InspectionRecord) { r.Time = "10:31" },
	}
	for i, mutate := range mutations {
		changed := base
		mutate(&changed)
		assert.NotEqual(t, Fingerprint(base), Fingerprint(changed), "mutation %d did not change fingerprint", i)
	}

	// Absence rows are not part of the key.
	withAbsences := base
	withAbsences.Absences = []models.AbsenceEntry{{SequenceNumber: 1, EmployeeName: "أحمد"}}
	assert.Equal(t, Fingerprint(base), Fingerprint(withAbsences))
}
