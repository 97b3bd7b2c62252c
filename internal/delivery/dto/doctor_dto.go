package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Specialty    *string `json:"specialty"`
	WorkingHours *string `json:"working_hours"` // Format: HH:MM-HH:MM
	Contact      *string `json:"contact"`
	Notes        *string `json:"notes"`
}

type UpdateDoctorRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Specialty    *string `json:"specialty"`
	WorkingHours *string `json:"working_hours"` // Format: HH:MM-HH:MM
	Contact      *string `json:"contact"`
	Notes        *string `json:"notes"`
}

// Response DTOs

type DoctorResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Specialty    *string `json:"specialty,omitempty"`
	WorkingHours *string `json:"working_hours,omitempty"`
	Contact      *string `json:"contact,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
