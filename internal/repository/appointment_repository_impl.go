package repository

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

const detailColumns = "a.id, a.doctor_id, a.patient_id, a.date, a.time, a.reason, a.created_at, " +
	"d.name AS doctor_name, p.name AS patient_name"

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindDetailed(db *gorm.DB, limit int) ([]entity.AppointmentDetail, error) {
	var details []entity.AppointmentDetail
	err := db.Table("appointments a").
		Select(detailColumns).
		Joins("LEFT JOIN doctors d ON d.id = a.doctor_id").
		Joins("LEFT JOIN patients p ON p.id = a.patient_id").
		Order("a.date DESC, a.time DESC").
		Limit(limit).
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *appointmentRepository) FindRecent(db *gorm.DB, limit int) ([]entity.AppointmentDetail, error) {
	var details []entity.AppointmentDetail
	err := db.Table("appointments a").
		Select(detailColumns).
		Joins("LEFT JOIN doctors d ON d.id = a.doctor_id").
		Joins("LEFT JOIN patients p ON p.id = a.patient_id").
		Order("a.created_at DESC").
		Limit(limit).
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *appointmentRepository) FindByDoctorDateTime(db *gorm.DB, doctorID int, date, timeOfDay string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ? AND date = ? AND time = ?", doctorID, date, timeOfDay).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int) error {
	return db.Delete(&entity.Appointment{}, id).Error
}

func (r *appointmentRepository) DeleteByDoctorID(db *gorm.DB, doctorID int) error {
	return db.Where("doctor_id = ?", doctorID).Delete(&entity.Appointment{}).Error
}

func (r *appointmentRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}
