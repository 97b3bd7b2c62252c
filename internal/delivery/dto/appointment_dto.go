package dto

import "time"

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID  int     `json:"doctor_id" validate:"required,gt=0"`
	PatientID int     `json:"patient_id" validate:"required,gt=0"`
	Date      string  `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time      string  `json:"time" validate:"required"` // Format: HH:MM
	Reason    *string `json:"reason"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        int       `json:"id"`
	DoctorID  int       `json:"doctor_id"`
	PatientID int       `json:"patient_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AppointmentDetailResponse carries resolved display names. The name fields
// stay null when the referenced record no longer exists.
type AppointmentDetailResponse struct {
	ID          int       `json:"id"`
	DoctorID    int       `json:"doctor_id"`
	PatientID   int       `json:"patient_id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Reason      *string   `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	DoctorName  *string   `json:"doctor_name"`
	PatientName *string   `json:"patient_name"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentDetailResponse `json:"appointments"`
	Total        int                         `json:"total"`
}

type SlotResponse struct {
	DoctorID int                   `json:"doctor_id"`
	Date     string                `json:"date"`
	Time     string                `json:"time"`
	Booked   bool                  `json:"booked"`
	Existing []AppointmentResponse `json:"existing,omitempty"`
}
