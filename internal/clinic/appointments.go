package clinic

import (
	"context"

	"github.com/clinicdesk/clinic-api/internal/logging"
	"github.com/clinicdesk/clinic-api/internal/store"
	"github.com/google/uuid"
)

// AppointmentInput is one entry of an appointment-creation batch. Fields are
// untyped because the payload is validated field by field: a wrong JSON type
// must surface as a ValidationError naming the field, not as a decode
// failure for the whole batch.
type AppointmentInput struct {
	Date      any `json:"date"`
	Time      any `json:"time"`
	PatientID any `json:"patientId"`
	DoctorID  any `json:"doctorId"`
	Status    any `json:"status"`
}

// appointmentStatuses is the closed status domain at creation time.
var appointmentStatuses = []string{"pending", "confirmed", "cancelled"}

const (
	insertAppointmentSQL = `
		INSERT INTO appointments (appointment_date, appointment_time, patient_id, doctor_id, status)
		VALUES ($1, $2, $3, $4, $5)`
	updateStatusSQL = "UPDATE appointments SET status = $1 WHERE id = $2"
)

// AppointmentsByUser returns the appointments where the user appears as
// patient or as doctor, joined with both names. Date and time columns come
// back normalized by the store's row mapping.
func (s *Service) AppointmentsByUser(ctx context.Context, userID string) ([]store.Row, error) {
	const q = `
		SELECT
			a.id,
			a.appointment_date,
			a.appointment_time,
			a.status,
			p.name AS patient_name,
			d.name AS doctor_name
		FROM appointments a
		JOIN patient p ON a.patient_id = p.id
		JOIN doctor d ON a.doctor_id = d.id
		WHERE a.patient_id = $1 OR a.doctor_id = $1`
	return s.db.Fetch(ctx, q, userID)
}

// CreateAppointments validates and inserts each entry of a batch, in order.
// Each entry is inserted immediately after it validates, before the next
// entry is looked at, so a ValidationError later in the batch leaves the
// earlier inserts committed. Callers relying on this endpoint must treat a
// failure as "a prefix of the batch was persisted".
func (s *Service) CreateAppointments(ctx context.Context, entries []AppointmentInput) error {
	logger := logging.FromContext(ctx).With("batch_id", uuid.NewString())

	for _, entry := range entries {
		if err := validateAppointment(entry); err != nil {
			return err
		}
		err := s.db.Exec(ctx, insertAppointmentSQL,
			entry.Date, entry.Time, entry.PatientID, entry.DoctorID, entry.Status)
		if err != nil {
			return err
		}
	}

	logger.Info("appointments created", "entries", len(entries))
	return nil
}

// SetAppointmentStatus updates an appointment's status by identifier. The
// update is unconditional: the new value is not checked against the status
// domain and a nonexistent identifier matches zero rows and succeeds
// silently.
func (s *Service) SetAppointmentStatus(ctx context.Context, appointmentID, status string) error {
	return s.db.Exec(ctx, updateStatusSQL, status, appointmentID)
}

// validateAppointment checks one batch entry: date, time, patientId and
// doctorId must be JSON strings, status must be a string inside the closed
// status set.
func validateAppointment(entry AppointmentInput) error {
	if _, ok := entry.Date.(string); !ok {
		return &ValidationError{Field: "date", Message: "Appointment date must be a string"}
	}
	if _, ok := entry.Time.(string); !ok {
		return &ValidationError{Field: "time", Message: "Appointment time must be a string"}
	}
	if _, ok := entry.PatientID.(string); !ok {
		return &ValidationError{Field: "patientId", Message: "Patient ID must be a string"}
	}
	if _, ok := entry.DoctorID.(string); !ok {
		return &ValidationError{Field: "doctorId", Message: "Doctor ID must be a string"}
	}

	status, ok := entry.Status.(string)
	if !ok {
		return &ValidationError{Field: "status", Message: "Status must be a string"}
	}
	for _, allowed := range appointmentStatuses {
		if status == allowed {
			return nil
		}
	}
	return &ValidationError{Field: "status", Message: "Status must be one of: pending, confirmed, cancelled"}
}
