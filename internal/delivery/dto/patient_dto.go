package dto

// Request DTOs

type CreatePatientRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Age     *int    `json:"age" validate:"omitempty,gte=0,lte=120"`
	Gender  *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Contact *string `json:"contact"`
	Notes   *string `json:"notes"`
}

// UpdatePatientRequest replaces all mutable fields; omitted optional fields
// are cleared.
type UpdatePatientRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Age     *int    `json:"age" validate:"omitempty,gte=0,lte=120"`
	Gender  *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Contact *string `json:"contact"`
	Notes   *string `json:"notes"`
}

// Response DTOs

type PatientResponse struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Age     *int    `json:"age,omitempty"`
	Gender  *string `json:"gender,omitempty"`
	Contact *string `json:"contact,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
