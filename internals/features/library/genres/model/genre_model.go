package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type GenreModel struct {
	GenreID          uint   `gorm:"primaryKey;autoIncrement;column:genre_id"            json:"genre_id"`
	GenreName        string `gorm:"type:varchar(100);not null;uniqueIndex;column:genre_name" json:"genre_name"`
	GenreDescription string `gorm:"type:text;column:genre_description"                  json:"genre_description"`

	GenreCreatedAt time.Time      `gorm:"column:genre_created_at;autoCreateTime" json:"genre_created_at"`
	GenreUpdatedAt time.Time      `gorm:"column:genre_updated_at;autoUpdateTime" json:"genre_updated_at"`
	GenreDeletedAt gorm.DeletedAt `gorm:"column:genre_deleted_at;index"          json:"genre_deleted_at,omitempty"`
}

func (GenreModel) TableName() string { return "genres" }

func (m *GenreModel) BeforeSave(tx *gorm.DB) error {
	m.GenreName = strings.TrimSpace(m.GenreName)
	return nil
}
