package repository_test

import (
	"os"
	"testing"

	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/infrastructure/database"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB connects to the test database named by TEST_DATABASE_DSN,
// applies migrations and truncates the clinic tables. Tests are skipped when
// the variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
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

	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func seedDoctor(t *testing.T, db *gorm.DB, name string, workingHours *string) *entity.Doctor {
	t.Helper()
	doctor := &entity.Doctor{Name: name, WorkingHours: workingHours}
	if err := db.Create(doctor).Error; err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return doctor
}

func seedPatient(t *testing.T, db *gorm.DB, name string) *entity.Patient {
	t.Helper()
	patient := &entity.Patient{Name: name, Age: intPtr(30)}
	if err := db.Create(patient).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return patient
}
