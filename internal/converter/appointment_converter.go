package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to a response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		DoctorID:  appointment.DoctorID,
		PatientID: appointment.PatientID,
		Date:      appointment.Date,
		Time:      appointment.Time,
		Reason:    appointment.Reason,
		CreatedAt: appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentDetailToResponse converts a joined listing row to a response DTO
func AppointmentDetailToResponse(detail *entity.AppointmentDetail) *dto.AppointmentDetailResponse {
	if detail == nil {
		return nil
	}

	return &dto.AppointmentDetailResponse{
		ID:          detail.ID,
		DoctorID:    detail.DoctorID,
		PatientID:   detail.PatientID,
		Date:        detail.Date,
		Time:        detail.Time,
		Reason:      detail.Reason,
		CreatedAt:   detail.CreatedAt,
		DoctorName:  detail.DoctorName,
		PatientName: detail.PatientName,
	}
}

// AppointmentDetailsToResponses converts a slice of joined listing rows to response DTOs
func AppointmentDetailsToResponses(details []entity.AppointmentDetail) []dto.AppointmentDetailResponse {
	responses := make([]dto.AppointmentDetailResponse, len(details))
	for i := range details {
		responses[i] = *AppointmentDetailToResponse(&details[i])
	}
	return responses
}
