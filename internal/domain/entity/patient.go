package entity

// Patient represents a clinic patient record. Age, gender, contact and notes
// are optional intake fields and stored as NULL when unset.
type Patient struct {
	ID      int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string  `gorm:"type:text;not null" json:"name"`
	Age     *int    `json:"age,omitempty"`
	Gender  *string `gorm:"type:text" json:"gender,omitempty"`
	Contact *string `gorm:"type:text" json:"contact,omitempty"`
	Notes   *string `gorm:"type:text" json:"notes,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)
