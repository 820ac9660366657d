// Package repository translates validated form data into persistence
// operations. Every store fault is wrapped in a StoreError carrying a
// page-ready message; nothing here panics or leaks a raw driver error
// to the handler layer.
package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// StoreError is any persistence-layer failure: constraint violation,
// dangling reference, connectivity loss.
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// storeErr builds a StoreError like "Error adding customer: ...".
func storeErr(action string, err error) *StoreError {
	return &StoreError{
		Message: fmt.Sprintf("Error %s: %v", action, err),
		Err:     err,
	}
}

// refErr reports a failed foreign-key pre-check.
func refErr(action, reference string) *StoreError {
	return &StoreError{
		Message: fmt.Sprintf("Error %s: referenced %s does not exist", action, reference),
	}
}

// exists checks a referenced row before an insert/update so dangling
// foreign keys fail the same way on every database engine.
func exists(db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// MissingRef is the sentinel shown when a joined reference is gone.
const MissingRef = "N/A"
