package dto

type DashboardResponse struct {
	TotalPatients      int64                       `json:"total_patients"`
	TotalDoctors       int64                       `json:"total_doctors"`
	TotalAppointments  int64                       `json:"total_appointments"`
	RecentAppointments []AppointmentDetailResponse `json:"recent_appointments"`
}
