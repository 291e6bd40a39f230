package postgres

import (
	"time"

	"gorm.io/gorm"
)

// UserModel é o model GORM para usuários.
// Os índices únicos cobrem também as linhas com soft delete.
type UserModel struct {
	ID           uint           `gorm:"primaryKey;autoIncrement"`
	Username     string         `gorm:"type:varchar(50);uniqueIndex:idx_users_username;not null"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	Role         string         `gorm:"type:varchar(20);not null;default:user;index"`
	Status       string         `gorm:"type:varchar(20);not null;default:active;index"`
	LastLogin    *time.Time
	CreatedAt    time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// ProfileModel é o model GORM para perfis (um-para-um com UserModel)
type ProfileModel struct {
	ID                uint           `gorm:"primaryKey;autoIncrement"`
	UserID            uint           `gorm:"uniqueIndex:idx_user_profiles_user_id;not null"`
	User              *UserModel     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FullName          string         `gorm:"type:varchar(255);not null"`
	DateOfBirth       *time.Time     `gorm:"type:date"`
	ProfilePictureURL *string        `gorm:"type:varchar(2048)"`
	PhoneNumber       *string        `gorm:"type:varchar(30)"`
	AddressLine       *string        `gorm:"type:varchar(255)"`
	City              *string        `gorm:"type:varchar(100)"`
	PostalCode        *string        `gorm:"type:varchar(20)"`
	Country           *string        `gorm:"type:varchar(100)"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (ProfileModel) TableName() string {
	return "user_profiles"
}

// AllModels lista os models na ordem de criação (usado pelo AutoMigrate)
func AllModels() []any {
	return []any{&UserModel{}, &ProfileModel{}}
}
