package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/monitoring"
	"clinic-management-api/pkg/schedule"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDoubleBooked        = errors.New("doctor already has an appointment at that date and time")
)

const defaultListLimit = 100

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, limit int) (*dto.AppointmentListResponse, error)
	GetSlot(ctx context.Context, doctorID int, date, timeOfDay string) (*dto.SlotResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID int) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
	}
}

// BookAppointment validates the slot and performs the conflict-avoiding insert.
//
// Flow:
// 1. Validate date and time formats
// 2. Load the doctor (the working-hours check needs its record)
// 3. Working-hours containment check
// 4. Insert; the (doctor_id, date, time) unique index rejects double bookings
//
// The insert itself is the only conflict guard. There is deliberately no
// read-before-write existence check: two near-simultaneous bookings of one
// slot must be serialized by the database constraint, not by application code.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := schedule.ValidateDate(req.Date); err != nil {
		monitoring.BookingOutcomes.WithLabelValues("invalid").Inc()
		return nil, err
	}
	if err := schedule.ValidateTime(req.Time); err != nil {
		monitoring.BookingOutcomes.WithLabelValues("invalid").Inc()
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	workingHours := ""
	if doctor.WorkingHours != nil {
		workingHours = *doctor.WorkingHours
	}
	if err := schedule.CheckWorkingHours(workingHours, req.Time); err != nil {
		monitoring.BookingOutcomes.WithLabelValues("out_of_hours").Inc()
		return nil, err
	}

	appointment := &entity.Appointment{
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			monitoring.BookingOutcomes.WithLabelValues("conflict").Inc()
			return nil, ErrDoubleBooked
		}
		u.log.Warnf("Failed to insert appointment: %+v", err)
		return nil, err
	}

	monitoring.BookingOutcomes.WithLabelValues("booked").Inc()
	u.log.Infof("Appointment booked: id=%d, doctor=%d, patient=%d, slot=%s %s",
		appointment.ID, appointment.DoctorID, appointment.PatientID, appointment.Date, appointment.Time)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, limit int) (*dto.AppointmentListResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	details, err := u.appointmentRepo.FindDetailed(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentDetailsToResponses(details),
		Total:        len(details),
	}, nil
}

// GetSlot is the pre-flight availability query for UI feedback. Callers must
// not rely on it as the conflict guard; only the constrained insert is
// race-free.
func (u *appointmentUsecase) GetSlot(ctx context.Context, doctorID int, date, timeOfDay string) (*dto.SlotResponse, error) {
	if err := schedule.ValidateDate(date); err != nil {
		return nil, err
	}
	if err := schedule.ValidateTime(timeOfDay); err != nil {
		return nil, err
	}

	existing, err := u.appointmentRepo.FindByDoctorDateTime(u.db.WithContext(ctx), doctorID, date, timeOfDay)
	if err != nil {
		u.log.Warnf("Failed to query slot doctor=%d %s %s: %+v", doctorID, date, timeOfDay, err)
		return nil, err
	}

	return &dto.SlotResponse{
		DoctorID: doctorID,
		Date:     date,
		Time:     timeOfDay,
		Booked:   len(existing) > 0,
		Existing: converter.AppointmentsToResponses(existing),
	}, nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID int) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(u.db.WithContext(ctx), appointmentID); err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", appointmentID, err)
		return err
	}

	u.log.Infof("Appointment cancelled: id=%d", appointmentID)
	return nil
}
