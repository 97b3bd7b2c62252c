package usecase

import (
	"context"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultRecentLimit = 5

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, recentLimit int) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context, recentLimit int) (*dto.DashboardResponse, error) {
	if recentLimit <= 0 {
		recentLimit = defaultRecentLimit
	}

	db := u.db.WithContext(ctx)

	patientCount, err := u.patientRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	doctorCount, err := u.doctorRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}

	appointmentCount, err := u.appointmentRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	recent, err := u.appointmentRepo.FindRecent(db, recentLimit)
	if err != nil {
		u.log.Warnf("Failed to load recent appointments: %+v", err)
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalPatients:      patientCount,
		TotalDoctors:       doctorCount,
		TotalAppointments:  appointmentCount,
		RecentAppointments: converter.AppointmentDetailsToResponses(recent),
	}, nil
}
