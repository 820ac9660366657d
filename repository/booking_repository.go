package repository

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"github.com/exoticlanka/backoffice/forms"
	"github.com/exoticlanka/backoffice/models"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// checkRefs verifies the customer and package exist before a write.
func (r *BookingRepository) checkRefs(action string, form *forms.BookingForm) error {
	ok, err := exists(r.db, &models.Customer{}, form.CustomerID)
	if err != nil {
		return storeErr(action, err)
	}
	if !ok {
		return refErr(action, "customer")
	}

	ok, err = exists(r.db, &models.TourPackage{}, form.PackageID)
	if err != nil {
		return storeErr(action, err)
	}
	if !ok {
		return refErr(action, "tour package")
	}
	return nil
}

func (r *BookingRepository) Create(form *forms.BookingForm) (uint, error) {
	if err := r.checkRefs("adding booking", form); err != nil {
		return 0, err
	}

	booking := models.Booking{
		CustomerID:  form.CustomerID,
		PackageID:   form.PackageID,
		BookingDate: form.BookingDate,
		Status:      form.Status,
	}
	if err := r.db.Create(&booking).Error; err != nil {
		return 0, storeErr("adding booking", err)
	}
	return booking.ID, nil
}

func (r *BookingRepository) Update(id uint, form *forms.BookingForm) (int64, error) {
	if err := r.checkRefs("updating booking", form); err != nil {
		return 0, err
	}

	result := r.db.Model(&models.Booking{}).Where("id = ?", id).Updates(map[string]interface{}{
		"customer_id":  form.CustomerID,
		"package_id":   form.PackageID,
		"booking_date": form.BookingDate,
		"status":       form.Status,
	})
	if result.Error != nil {
		return 0, storeErr("updating booking", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *BookingRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return 0, storeErr("deleting booking", result.Error)
	}
	return result.RowsAffected, nil
}

// BookingRow is a list-view row with the referenced names already
// resolved, so the page never looks up foreign keys itself.
type BookingRow struct {
	ID           uint
	CustomerID   uint
	PackageID    uint
	BookingDate  string
	Status       string
	CustomerName string
	TourName     string
}

func (r *BookingRepository) List() ([]BookingRow, error) {
	var raw []struct {
		ID           uint
		CustomerID   uint
		PackageID    uint
		BookingDate  string
		Status       string
		CustomerName sql.NullString
		TourName     sql.NullString
	}

	err := r.db.Raw(`
		SELECT b.id, b.customer_id, b.package_id, b.booking_date, b.status,
		       c.customer_name, t.tour_name
		FROM bookings b
		LEFT JOIN customers c ON b.customer_id = c.id
		LEFT JOIN tour_packages t ON b.package_id = t.id
		ORDER BY b.id`).Scan(&raw).Error
	if err != nil {
		return nil, storeErr("loading bookings", err)
	}

	rows := make([]BookingRow, 0, len(raw))
	for _, b := range raw {
		rows = append(rows, BookingRow{
			ID:           b.ID,
			CustomerID:   b.CustomerID,
			PackageID:    b.PackageID,
			BookingDate:  b.BookingDate,
			Status:       b.Status,
			CustomerName: orMissing(b.CustomerName),
			TourName:     orMissing(b.TourName),
		})
	}
	return rows, nil
}

// BookingOption feeds the payment dropdown; the label pairs the
// customer with the booked tour.
type BookingOption struct {
	ID    uint
	Label string
}

func (r *BookingRepository) Options() ([]BookingOption, error) {
	rows, err := r.List()
	if err != nil {
		return nil, err
	}

	options := make([]BookingOption, 0, len(rows))
	for _, row := range rows {
		options = append(options, BookingOption{
			ID:    row.ID,
			Label: fmt.Sprintf("%s - %s", row.CustomerName, row.TourName),
		})
	}
	return options, nil
}

func orMissing(s sql.NullString) string {
	if s.Valid && s.String != "" {
		return s.String
	}
	return MissingRef
}
