package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleClient    UserRole = "client"
	RoleOrganizer UserRole = "organizer"
	RoleAdmin     UserRole = "admin"
)

type User struct {
	gorm.Model
	Username     string   `json:"username" gorm:"column:username;unique;not null"`
	Email        string   `json:"email" gorm:"column:email;unique;not null"`
	Password     string   `json:"-" gorm:"-:migration"` // Temporary field for password handling
	PasswordHash string   `json:"-" gorm:"column:password_hash;not null"`
	PhoneNumber  string   `json:"phoneNumber" gorm:"column:phone_number"`
	Role         UserRole `json:"role" gorm:"column:role;not null;default:'client'"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

func (u *User) HashPassword() error {
	if u.Password == "" {
		return nil
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// OrganizerProfile links an organizer user to the catalog entries they manage.
type OrganizerProfile struct {
	gorm.Model
	UserID       uint   `json:"userId" gorm:"column:user_id;not null;unique"`
	BusinessName string `json:"businessName" gorm:"column:business_name"`
	Location     string `json:"location" gorm:"column:location"`
	User         *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name
func (OrganizerProfile) TableName() string {
	return "organizer_profiles"
}
