package clinic

import (
	"context"

	"github.com/clinicdesk/clinic-api/internal/store"
)

// ListDoctors returns every doctor row.
func (s *Service) ListDoctors(ctx context.Context) ([]store.Row, error) {
	return s.db.Fetch(ctx, "SELECT * FROM doctor")
}

// DoctorAttendance returns the attendance records for a doctor.
func (s *Service) DoctorAttendance(ctx context.Context, doctorID string) ([]store.Row, error) {
	return s.db.Fetch(ctx, "SELECT * FROM doctor_attendance WHERE doctor_id = $1", doctorID)
}
