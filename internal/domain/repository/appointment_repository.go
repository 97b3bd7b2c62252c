package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	// Create inserts the appointment. The (doctor_id, date, time) unique index
	// makes this the atomic conflict guard: a double booking surfaces as
	// gorm.ErrDuplicatedKey.
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	// FindDetailed returns appointments with doctor and patient display names,
	// ordered by date then time descending, bounded by limit.
	FindDetailed(db *gorm.DB, limit int) ([]entity.AppointmentDetail, error)
	// FindRecent returns the most recently created appointments with display
	// names, for the dashboard activity feed.
	FindRecent(db *gorm.DB, limit int) ([]entity.AppointmentDetail, error)
	// FindByDoctorDateTime is the pre-flight slot query. It is advisory only
	// and must never replace the constrained insert as the conflict guard.
	FindByDoctorDateTime(db *gorm.DB, doctorID int, date, timeOfDay string) ([]entity.Appointment, error)
	Delete(db *gorm.DB, id int) error
	DeleteByDoctorID(db *gorm.DB, doctorID int) error
	Count(db *gorm.DB) (int64, error)
}
