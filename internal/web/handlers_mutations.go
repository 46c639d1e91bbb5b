package web

import (
	"encoding/json"
	"net/http"

	"github.com/clinicdesk/clinic-api/internal/clinic"
	"github.com/go-chi/chi/v5"
)

// handleUpdateAttendance upserts a batch of attendance entries for a doctor.
// Each entry is reconciled independently: the batch is not atomic.
func (s *Server) handleUpdateAttendance(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")

	var req struct {
		Attendance []clinic.AttendanceEntry `json:"attendance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, "invalid request body", "Failed to update attendance")
		return
	}

	if err := s.service.ReconcileAttendance(r.Context(), doctorID, req.Attendance); err != nil {
		respondError(w, r, err, "Failed to update attendance")
		return
	}

	writeMessage(w, "Attendance updated successfully")
}

// handleCreateAppointments validates and inserts a batch of appointments.
// Entries are inserted as they validate; a validation failure reports an
// error even though earlier entries of the batch are already persisted.
func (s *Server) handleCreateAppointments(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AppointmentData []clinic.AppointmentInput `json:"appointmentData"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, "invalid request body", "Failed to update appointments")
		return
	}

	if err := s.service.CreateAppointments(r.Context(), req.AppointmentData); err != nil {
		respondError(w, r, err, "Failed to update appointments")
		return
	}

	writeMessage(w, "Appointments updated successfully")
}

// handleUpdateAppointmentStatus unconditionally updates one appointment's
// status. The new value is not validated and a nonexistent identifier
// succeeds silently.
func (s *Server) handleUpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, "invalid request body", "Failed to update status")
		return
	}

	if err := s.service.SetAppointmentStatus(r.Context(), appointmentID, req.Status); err != nil {
		respondError(w, r, err, "Failed to update status")
		return
	}

	writeMessage(w, "Status updated successfully")
}
