package clinic

import (
	"context"
	"strings"
	"sync"

	"github.com/clinicdesk/clinic-api/internal/store"
)

// fakeStore is an in-memory Datastore that understands the statements the
// service issues. It keeps real state for attendance and appointments so
// tests observe the same read-after-write behavior the database would give.
type fakeStore struct {
	mu           sync.Mutex
	attendance   map[string]string // doctor|date -> status
	appointments []fakeAppointment

	fetchRows []store.Row // canned result for plain reads
	fetchErr  error
	execErr   error
	execLog   []string
}

type fakeAppointment struct {
	date, time, patientID, doctorID, status any
}

func newFakeStore() *fakeStore {
	return &fakeStore{attendance: make(map[string]string)}
}

func attendanceKey(doctorID, date any) string {
	return asString(doctorID) + "|" + asString(date)
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func (f *fakeStore) Fetch(ctx context.Context, sql string, args ...any) ([]store.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fetchErr != nil {
		return nil, f.fetchErr
	}

	if strings.Contains(sql, "FROM doctor_attendance") && strings.Contains(sql, "attendance_date") {
		status, ok := f.attendance[attendanceKey(args[0], args[1])]
		if !ok {
			return []store.Row{}, nil
		}
		return []store.Row{{
			"doctor_id":       args[0],
			"attendance_date": args[1],
			"status":          status,
		}}, nil
	}

	if f.fetchRows != nil {
		return f.fetchRows, nil
	}
	return []store.Row{}, nil
}

func (f *fakeStore) Exec(ctx context.Context, sql string, args ...any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.execErr != nil {
		return f.execErr
	}

	switch {
	case strings.Contains(sql, "INSERT INTO doctor_attendance"):
		f.execLog = append(f.execLog, "insert attendance")
		f.attendance[attendanceKey(args[0], args[1])] = asString(args[2])

	case strings.Contains(sql, "UPDATE doctor_attendance"):
		f.execLog = append(f.execLog, "update attendance")
		key := attendanceKey(args[1], args[2])
		// Zero-row updates succeed silently, like the database.
		if _, ok := f.attendance[key]; ok {
			f.attendance[key] = asString(args[0])
		}

	case strings.Contains(sql, "INSERT INTO appointments"):
		f.execLog = append(f.execLog, "insert appointment")
		f.appointments = append(f.appointments, fakeAppointment{
			date:      args[0],
			time:      args[1],
			patientID: args[2],
			doctorID:  args[3],
			status:    args[4],
		})

	case strings.Contains(sql, "UPDATE appointments"):
		f.execLog = append(f.execLog, "update appointment status")
		// Unconditional update by id; the fake has no ids, so this is a
		// zero-row match and a silent no-op.
	}

	return nil
}

func (f *fakeStore) attendanceStatus(doctorID, date string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	status, ok := f.attendance[doctorID+"|"+date]
	return status, ok
}

func (f *fakeStore) attendanceCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.attendance)
}

func (f *fakeStore) appointmentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appointments)
}
