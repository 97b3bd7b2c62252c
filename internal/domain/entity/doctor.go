package entity

// Doctor represents a clinic doctor record.
// WorkingHours encodes the bookable interval as "HH:MM-HH:MM", e.g. "09:00-17:00";
// a NULL value means the doctor accepts appointments at any time.
type Doctor struct {
	ID           int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"type:text;not null" json:"name"`
	Specialty    *string `gorm:"type:text" json:"specialty,omitempty"`
	WorkingHours *string `gorm:"type:text" json:"working_hours,omitempty"`
	Contact      *string `gorm:"type:text" json:"contact,omitempty"`
	Notes        *string `gorm:"type:text" json:"notes,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
