package clinic

import (
	"context"

	"github.com/clinicdesk/clinic-api/internal/store"
)

// ListPatients returns every patient row. Patients are owned by the
// institution's upstream systems; this service never writes them.
func (s *Service) ListPatients(ctx context.Context) ([]store.Row, error) {
	return s.db.Fetch(ctx, "SELECT * FROM patient")
}

// PatientReports returns all reports filed for a patient. Report dates come
// back normalized by the store's row mapping.
func (s *Service) PatientReports(ctx context.Context, patientID string) ([]store.Row, error) {
	return s.db.Fetch(ctx, "SELECT * FROM patient_reports WHERE patient_id = $1", patientID)
}

// DoctorPatients returns the patients assigned to a doctor.
func (s *Service) DoctorPatients(ctx context.Context, doctorID string) ([]store.Row, error) {
	const q = `
		SELECT p.id, p.name, p.age, p.gender, p.email
		FROM doctor_patients dp
		JOIN patient p ON dp.patient_id = p.id
		WHERE dp.doctor_id = $1`
	return s.db.Fetch(ctx, q, doctorID)
}
