package clinic

import (
	"context"

	"github.com/clinicdesk/clinic-api/internal/logging"
	"github.com/google/uuid"
)

// AttendanceEntry is one (date, status) pair in an attendance batch.
// Status is free-form, e.g. "present" or "absent".
type AttendanceEntry struct {
	Date   string `json:"attendance_date"`
	Status string `json:"status"`
}

const (
	selectAttendanceSQL = "SELECT * FROM doctor_attendance WHERE doctor_id = $1 AND attendance_date = $2"
	updateAttendanceSQL = "UPDATE doctor_attendance SET status = $1 WHERE doctor_id = $2 AND attendance_date = $3"
	insertAttendanceSQL = "INSERT INTO doctor_attendance (doctor_id, attendance_date, status) VALUES ($1, $2, $3)"
)

// ReconcileAttendance upserts each (date, status) entry for a doctor:
// an existing record for (doctor, date) gets its status updated, a missing
// one is inserted. The natural key is (doctor_id, attendance_date), so at
// most one record exists per pair.
//
// The upsert is read-then-branch rather than a native ON CONFLICT statement,
// which keeps it portable across store dialects but is not safe under
// concurrent writers to the same (doctor, date) key: two racing calls can
// lose one update. Entries operate on disjoint dates and are processed
// independently, in no guaranteed order. The batch is not atomic: a failure
// partway through leaves earlier entries committed.
func (s *Service) ReconcileAttendance(ctx context.Context, doctorID string, entries []AttendanceEntry) error {
	logger := logging.FromContext(ctx).With(
		"batch_id", uuid.NewString(),
		"doctor_id", doctorID,
	)

	for _, entry := range entries {
		existing, err := s.db.Fetch(ctx, selectAttendanceSQL, doctorID, entry.Date)
		if err != nil {
			return err
		}

		if len(existing) > 0 {
			err = s.db.Exec(ctx, updateAttendanceSQL, entry.Status, doctorID, entry.Date)
		} else {
			err = s.db.Exec(ctx, insertAttendanceSQL, doctorID, entry.Date, entry.Status)
		}
		if err != nil {
			return err
		}
	}

	logger.Info("attendance reconciled", "entries", len(entries))
	return nil
}
