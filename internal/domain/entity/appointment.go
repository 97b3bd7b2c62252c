package entity

import "time"

// Appointment represents a booked slot. DoctorID and PatientID are soft
// references: deleting a patient leaves its appointments dangling, only the
// doctor delete path cascades. The composite unique index on
// (doctor_id, date, time) is the double-booking guard and must be enforced by
// the database, not by the application.
type Appointment struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  int       `gorm:"not null;uniqueIndex:ux_appointments_doctor_slot,priority:1" json:"doctor_id"`
	PatientID int       `gorm:"not null;index" json:"patient_id"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:ux_appointments_doctor_slot,priority:2" json:"date"`
	Time      string    `gorm:"type:varchar(5);not null;uniqueIndex:ux_appointments_doctor_slot,priority:3" json:"time"`
	Reason    *string   `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentDetail is the listing projection: an appointment joined with the
// display names of its doctor and patient. The name fields are nil when the
// referenced record has been deleted (left-join semantics).
type AppointmentDetail struct {
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
