package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleOwner = "owner"
)

// AllRoles is the static role reference data seeded at startup.
var AllRoles = []string{RoleAdmin, RoleUser, RoleOwner}

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:20;uniqueIndex;not null" json:"name"`
}
