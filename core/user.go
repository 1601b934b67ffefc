package core

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	UserId    int32  `gorm:"primaryKey;autoIncrement;column:user_id"`
	Code      string `gorm:"uniqueIndex;size:20"`
	FirstName string
	Surname   string
	Email     *string `gorm:"index"`
	Role      string  `gorm:"type:varchar(20);not null;default:user"`
	Status    string  `gorm:"type:varchar(20);not null;default:active"`
	StartDate *time.Time
	EndDate   *time.Time

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (User) TableName() string {
	return "users"
}

func FindUserByID(db *gorm.DB, id int32) (*User, error) {
	var user User
	result := db.First(&user, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*User, error) {
	var user User
	result := db.Where("email = ?", email).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}
