package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Physical condition of a copy.
const (
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
	ConditionDamaged   = "damaged"
)

var AllConditions = []string{ConditionExcellent, ConditionGood, ConditionFair, ConditionDamaged}

func IsValidCondition(c string) bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionDamaged:
		return true
	}
	return false
}

type BookInstanceModel struct {
	BookInstanceID     uint `gorm:"primaryKey;autoIncrement;column:book_instance_id" json:"book_instance_id"`
	BookInstanceBookID uint `gorm:"not null;index;column:book_instance_book_id;constraint:OnDelete:CASCADE" json:"book_instance_book_id"`

	// e.g. "012-0003" (book id + per-book sequence), assigned on create.
	BookInstanceInventoryNumber string `gorm:"type:varchar(20);uniqueIndex;column:book_instance_inventory_number" json:"book_instance_inventory_number"`

	BookInstanceCondition   string `gorm:"type:varchar(20);not null;default:'good';column:book_instance_condition" json:"book_instance_condition"`
	BookInstanceIsAvailable bool   `gorm:"not null;default:true;column:book_instance_is_available"                 json:"book_instance_is_available"`

	Book *BookModel `gorm:"foreignKey:BookInstanceBookID;references:BookID" json:"book,omitempty"`

	BookInstanceAddedAt time.Time `gorm:"column:book_instance_added_at;autoCreateTime" json:"book_instance_added_at"`
}

func (BookInstanceModel) TableName() string { return "book_instances" }

// ============ Hooks: condition check + inventory numbering ============
func (m *BookInstanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.BookInstanceCondition == "" {
		m.BookInstanceCondition = ConditionGood
	}
	if !IsValidCondition(m.BookInstanceCondition) {
		return fmt.Errorf("invalid book instance condition %q", m.BookInstanceCondition)
	}

	if m.BookInstanceInventoryNumber != "" {
		return nil
	}
	inv, err := NextInventoryNumber(tx, m.BookInstanceBookID)
	if err != nil {
		return err
	}
	m.BookInstanceInventoryNumber = inv
	return nil
}

// NextInventoryNumber derives "{book id %03d}-{seq %04d}" where seq continues
// from the suffix of the most recently created instance of the same book.
// A prior number that does not end in "-NNNN" is refused outright: guessing a
// sequence past a hand-edited number is how duplicates get minted.
func NextInventoryNumber(tx *gorm.DB, bookID uint) (string, error) {
	var last BookInstanceModel
	seq := 1

	err := tx.Where("book_instance_book_id = ?", bookID).
		Order("book_instance_id DESC").
		First(&last).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first copy of this book
	case err != nil:
		return "", err
	default:
		idx := strings.LastIndex(last.BookInstanceInventoryNumber, "-")
		if idx < 0 {
			return "", fmt.Errorf("inventory number %q has no sequence suffix", last.BookInstanceInventoryNumber)
		}
		n, convErr := strconv.Atoi(last.BookInstanceInventoryNumber[idx+1:])
		if convErr != nil {
			return "", fmt.Errorf("inventory number %q: sequence suffix is not numeric", last.BookInstanceInventoryNumber)
		}
		seq = n + 1
	}

	return fmt.Sprintf("%03d-%04d", bookID, seq), nil
}

func ScopeAvailable(db *gorm.DB) *gorm.DB {
	return db.Where("book_instance_is_available = ?", true)
}
