package user

import "time"

type User struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;type:varchar(50);not null;uniqueIndex:uq_user_username"`
	Email        string    `gorm:"column:email;type:varchar(100);not null;uniqueIndex:uq_user_email"`
	FullName     string    `gorm:"column:full_name;type:varchar(100)"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:staff"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

