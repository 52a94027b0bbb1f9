package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/clinsynth/fhirgen/cmd/fhirgen/dataset"
	"github.com/clinsynth/fhirgen/models/fhir"
)

var summaryHeader = []string{
	"patient_id",
	"birth_date",
	"gender",
	"encounter_type",
	"heart_rate",
	"blood_pressure_systolic",
}

// ExportCSVSummary writes a flattened demographics/vitals table, one
// row per story. Stories whose patient or encounter did not survive
// validation are skipped.
func (s *ExportService) ExportCSVSummary(ds *dataset.Dataset, outputFile string) error {
	var rows [][]string
	for _, st := range ds.Stories {
		if row, ok := summaryRow(st.Records); ok {
			rows = append(rows, row)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputFile), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create summary directory: %w", err)
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	if len(rows) == 0 {
		s.log.Warn().Msg("No patient rows available for CSV export")
		return nil
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(summaryHeader); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write summary rows: %w", err)
	}

	s.log.Info().Str("path", outputFile).Int("rows", len(rows)).Msg("Saved CSV summary")
	return nil
}

func summaryRow(records []fhir.Resource) ([]string, bool) {
	var patient *fhir.Patient
	var encounter *fhir.Encounter
	observations := make(map[string]fhir.Observation)

	for _, record := range records {
		switch r := record.(type) {
		case fhir.Patient:
			if patient == nil {
				patient = &r
			}
		case fhir.Encounter:
			if encounter == nil {
				encounter = &r
			}
		case fhir.Observation:
			if r.Code != nil && r.Code.Text != nil {
				observations[*r.Code.Text] = r
			}
		}
	}

	if patient == nil || encounter == nil {
		return nil, false
	}

	birthDate := ""
	if patient.BirthDate != nil {
		birthDate = patient.BirthDate.String()
	}
	gender := ""
	if patient.Gender != nil {
		gender = *patient.Gender
	}
	encounterType := ""
	if encounter.Class != nil && encounter.Class.Display != nil {
		encounterType = *encounter.Class.Display
	}

	heartRate := ""
	if hr, ok := observations["Heart rate"]; ok && hr.ValueQuantity != nil && hr.ValueQuantity.Value != nil {
		heartRate = formatValue(*hr.ValueQuantity.Value)
	}

	systolic := ""
	if bp, ok := observations["Blood pressure panel"]; ok {
		for _, component := range bp.Component {
			if component.Code == nil || component.Code.Text == nil {
				continue
			}
			if *component.Code.Text == "Systolic blood pressure" &&
				component.ValueQuantity != nil && component.ValueQuantity.Value != nil {
				systolic = formatValue(*component.ValueQuantity.Value)
				break
			}
		}
	}

	return []string{patient.GetID(), birthDate, gender, encounterType, heartRate, systolic}, true
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
