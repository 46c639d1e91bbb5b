package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleHealth reports whether the service can reach its datastore.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Healthy(r.Context()); err != nil {
		respondError(w, r, err, "Service unhealthy")
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleListPatients returns all patients.
func (s *Server) handleListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := s.service.ListPatients(r.Context())
	if err != nil {
		respondError(w, r, err, "Failed to retrieve patient details")
		return
	}
	writeJSON(w, patients)
}

// handlePatientReports returns the reports filed for one patient.
func (s *Server) handlePatientReports(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")

	reports, err := s.service.PatientReports(r.Context(), patientID)
	if err != nil {
		respondError(w, r, err, "Failed to retrieve patient reports")
		return
	}
	writeJSON(w, reports)
}

// handleListDoctors returns all doctors.
func (s *Server) handleListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := s.service.ListDoctors(r.Context())
	if err != nil {
		respondError(w, r, err, "Failed to retrieve doctor details")
		return
	}
	writeJSON(w, doctors)
}

// handleDoctorAttendance returns the attendance records of one doctor.
func (s *Server) handleDoctorAttendance(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")

	attendance, err := s.service.DoctorAttendance(r.Context(), doctorID)
	if err != nil {
		respondError(w, r, err, "Failed to retrieve attendance")
		return
	}
	writeJSON(w, attendance)
}

// handleDoctorPatients returns the patients assigned to one doctor.
func (s *Server) handleDoctorPatients(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")

	patients, err := s.service.DoctorPatients(r.Context(), doctorID)
	if err != nil {
		respondError(w, r, err, "Failed to retrieve patient details")
		return
	}
	writeJSON(w, patients)
}

// handleAppointmentsByUser returns the appointments where the user appears
// as patient or doctor.
func (s *Server) handleAppointmentsByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	appointments, err := s.service.AppointmentsByUser(r.Context(), userID)
	if err != nil {
		respondError(w, r, err, "Failed to fetch appointments")
		return
	}
	writeJSON(w, appointments)
}
