package repository

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/exoticlanka/backoffice/forms"
	"github.com/exoticlanka/backoffice/models"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) checkRefs(action string, form *forms.PaymentForm) error {
	ok, err := exists(r.db, &models.Booking{}, form.BookingID)
	if err != nil {
		return storeErr(action, err)
	}
	if !ok {
		return refErr(action, "booking")
	}
	return nil
}

func (r *PaymentRepository) Create(form *forms.PaymentForm) (uint, error) {
	if err := r.checkRefs("adding payment", form); err != nil {
		return 0, err
	}

	payment := models.Payment{
		BookingID:     form.BookingID,
		Amount:        form.Amount,
		PaymentDate:   form.PaymentDate,
		PaymentMethod: form.PaymentMethod,
	}
	if err := r.db.Create(&payment).Error; err != nil {
		return 0, storeErr("adding payment", err)
	}
	return payment.ID, nil
}

func (r *PaymentRepository) Update(id uint, form *forms.PaymentForm) (int64, error) {
	if err := r.checkRefs("updating payment", form); err != nil {
		return 0, err
	}

	result := r.db.Model(&models.Payment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"booking_id":     form.BookingID,
		"amount":         form.Amount,
		"payment_date":   form.PaymentDate,
		"payment_method": form.PaymentMethod,
	})
	if result.Error != nil {
		return 0, storeErr("updating payment", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *PaymentRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Payment{}, id)
	if result.Error != nil {
		return 0, storeErr("deleting payment", result.Error)
	}
	return result.RowsAffected, nil
}

// PaymentRow carries the booking's customer and tour names so the list
// shows who paid for what.
type PaymentRow struct {
	ID            uint
	BookingID     uint
	Amount        float64
	PaymentDate   string
	PaymentMethod string
	CustomerName  string
	TourName      string
}

func (r *PaymentRepository) List() ([]PaymentRow, error) {
	var raw []struct {
		ID            uint
		BookingID     uint
		Amount        float64
		PaymentDate   string
		PaymentMethod string
		CustomerName  sql.NullString
		TourName      sql.NullString
	}

	err := r.db.Raw(`
		SELECT p.id, p.booking_id, p.amount, p.payment_date, p.payment_method,
		       c.customer_name, t.tour_name
		FROM payments p
		LEFT JOIN bookings b ON p.booking_id = b.id
		LEFT JOIN customers c ON b.customer_id = c.id
		LEFT JOIN tour_packages t ON b.package_id = t.id
		ORDER BY p.id`).Scan(&raw).Error
	if err != nil {
		return nil, storeErr("loading payments", err)
	}

	rows := make([]PaymentRow, 0, len(raw))
	for _, p := range raw {
		rows = append(rows, PaymentRow{
			ID:            p.ID,
			BookingID:     p.BookingID,
			Amount:        p.Amount,
			PaymentDate:   p.PaymentDate,
			PaymentMethod: p.PaymentMethod,
			CustomerName:  orMissing(p.CustomerName),
			TourName:      orMissing(p.TourName),
		})
	}
	return rows, nil
}
