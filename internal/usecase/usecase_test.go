package usecase_test

import (
	"context"
	"io"
	"os"
	"testing"

	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/infrastructure/database"
	"clinic-management-api/internal/repository"
	"clinic-management-api/internal/usecase"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	db           *gorm.DB
	patients     usecase.PatientUsecase
	doctors      usecase.DoctorUsecase
	appointments usecase.AppointmentUsecase
	dashboard    usecase.DashboardUsecase
}

func setup(t *testing.T) *fixture {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	if err := db.Exec("TRUNCATE appointments, doctors, patients RESTART IDENTITY").Error; err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	return &fixture{
		db:           db,
		patients:     usecase.NewPatientUsecase(db, log, patientRepo),
		doctors:      usecase.NewDoctorUsecase(db, log, doctorRepo, appointmentRepo),
		appointments: usecase.NewAppointmentUsecase(db, log, appointmentRepo, doctorRepo),
		dashboard:    usecase.NewDashboardUsecase(db, log, patientRepo, doctorRepo, appointmentRepo),
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func (f *fixture) seedDoctor(t *testing.T, name string, workingHours *string) *entity.Doctor {
	t.Helper()
	doctor := &entity.Doctor{Name: name, WorkingHours: workingHours}
	if err := f.db.Create(doctor).Error; err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return doctor
}

func (f *fixture) seedPatient(t *testing.T, name string) *entity.Patient {
	t.Helper()
	patient := &entity.Patient{Name: name}
	if err := f.db.Create(patient).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return patient
}

func (f *fixture) countAppointments(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := f.db.Model(&entity.Appointment{}).Count(&count).Error; err != nil {
		t.Fatalf("count appointments: %v", err)
	}
	return count
}

func ctx() context.Context { return context.Background() }
