package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type AuthorModel struct {
	AuthorID        uint    `gorm:"primaryKey;autoIncrement;column:author_id"       json:"author_id"`
	AuthorFirstName string  `gorm:"type:varchar(100);not null;column:author_first_name" json:"author_first_name"`
	AuthorLastName  string  `gorm:"type:varchar(100);not null;column:author_last_name"  json:"author_last_name"`
	AuthorBiography string  `gorm:"type:text;column:author_biography"               json:"author_biography"`

	AuthorDateOfBirth *time.Time `gorm:"type:date;column:author_date_of_birth" json:"author_date_of_birth,omitempty"`
	AuthorDateOfDeath *time.Time `gorm:"type:date;column:author_date_of_death" json:"author_date_of_death,omitempty"`

	AuthorCreatedAt time.Time      `gorm:"column:author_created_at;autoCreateTime" json:"author_created_at"`
	AuthorUpdatedAt time.Time      `gorm:"column:author_updated_at;autoUpdateTime" json:"author_updated_at"`
	AuthorDeletedAt gorm.DeletedAt `gorm:"column:author_deleted_at;index"          json:"author_deleted_at,omitempty"`
}

func (AuthorModel) TableName() string { return "authors" }

func (m *AuthorModel) FullName() string {
	return strings.TrimSpace(m.AuthorFirstName + " " + m.AuthorLastName)
}

// ============ Hooks: light normalization ============
func (m *AuthorModel) BeforeSave(tx *gorm.DB) error {
	m.AuthorFirstName = strings.TrimSpace(m.AuthorFirstName)
	m.AuthorLastName = strings.TrimSpace(m.AuthorLastName)
	return nil
}

// ScopeOrdered lists authors the way the catalog displays them.
func ScopeOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("author_last_name ASC, author_first_name ASC")
}
