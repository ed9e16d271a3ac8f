package models

type Role string

const (
	RoleAttendee  Role = "ATTENDEE"
	RoleOrganizer Role = "ORGANIZER"
)

func (r Role) Valid() bool {
	return r == RoleAttendee || r == RoleOrganizer
}

type User struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null" json:"email"`
	Role  Role   `gorm:"type:varchar(20);not null" json:"role"`
}
