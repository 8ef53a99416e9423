package models

// Role titles are unique per department.
type Role struct {
	ID           uint       `gorm:"primaryKey"`
	Title        string     `gorm:"type:varchar(30);not null;uniqueIndex:idx_role_title_department"`
	Salary       float64    `gorm:"type:decimal(12,2);not null"`
	DepartmentID uint       `gorm:"not null;index;uniqueIndex:idx_role_title_department"`
	Department   Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:RESTRICT"`
}

func (Role) TableName() string { return "role" }
