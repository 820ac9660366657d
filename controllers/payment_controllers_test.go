package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/exoticlanka/backoffice/models"
)

func setupPaymentRouter(db *gorm.DB) *gin.Engine {
	r := newTestEngine()
	ctrl := NewPaymentController(db)
	r.GET("/payments", ctrl.ListPayments)
	r.POST("/payments", ctrl.AddPayment)
	r.POST("/payments/:id", ctrl.UpdatePayment)
	r.GET("/payments/:id/delete", ctrl.DeletePayment)
	return r
}

func seedPaymentBooking(t *testing.T, db *gorm.DB) uint {
	customerID, packageID := seedBookingRefs(t, db)
	booking := models.Booking{
		CustomerID:  customerID,
		PackageID:   packageID,
		BookingDate: "2025-06-01",
		Status:      "Confirmed",
	}
	assert.NoError(t, db.Create(&booking).Error)
	return booking.ID
}

func TestAddPayment(t *testing.T) {
	db := setupTestDB(t)
	r := setupPaymentRouter(db)
	bookingID := seedPaymentBooking(t, db)

	w := postForm(r, "/payments", url.Values{
		"booking_id":     {strconv.Itoa(int(bookingID))},
		"amount":         {"25000.00"},
		"payment_date":   {"2025-06-02"},
		"payment_method": {"Bank Transfer"},
	})
	assert.Equal(t, http.StatusFound, w.Code)

	var payment models.Payment
	assert.NoError(t, db.First(&payment).Error)
	assert.Equal(t, 25000.00, payment.Amount)
	assert.Equal(t, "Bank Transfer", payment.PaymentMethod)
}

func TestAddPaymentBadMethod(t *testing.T) {
	db := setupTestDB(t)
	r := setupPaymentRouter(db)
	bookingID := seedPaymentBooking(t, db)

	w := postForm(r, "/payments", url.Values{
		"booking_id":     {strconv.Itoa(int(bookingID))},
		"amount":         {"25000.00"},
		"payment_date":   {"2025-06-02"},
		"payment_method": {"Cheque"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid payment method selection.")

	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.Zero(t, count)
}

func TestAddPaymentNonPositiveAmount(t *testing.T) {
	db := setupTestDB(t)
	r := setupPaymentRouter(db)
	bookingID := seedPaymentBooking(t, db)

	for _, amount := range []string{"0", "-100", "abc"} {
		w := postForm(r, "/payments", url.Values{
			"booking_id":     {strconv.Itoa(int(bookingID))},
			"amount":         {amount},
			"payment_date":   {"2025-06-02"},
			"payment_method": {"Cash"},
		})
		assert.Equal(t, http.StatusOK, w.Code, "amount=%s", amount)
		assert.Contains(t, w.Body.String(), "Amount must be a positive number.", "amount=%s", amount)
	}
}

func TestConcurrentPaymentUpdatesLastWriteWins(t *testing.T) {
	db := setupTestDB(t)
	r := setupPaymentRouter(db)
	bookingID := seedPaymentBooking(t, db)

	payment := models.Payment{
		BookingID:     bookingID,
		Amount:        10000.00,
		PaymentDate:   "2025-06-02",
		PaymentMethod: "Cash",
	}
	assert.NoError(t, db.Create(&payment).Error)

	// Back-to-back updates with different amounts; no conflict error,
	// the later write is what sticks.
	path := "/payments/" + strconv.Itoa(int(payment.ID))
	w := postForm(r, path, url.Values{
		"booking_id":     {strconv.Itoa(int(bookingID))},
		"amount":         {"12000.00"},
		"payment_date":   {"2025-06-02"},
		"payment_method": {"Cash"},
	})
	assert.Equal(t, http.StatusFound, w.Code)

	w = postForm(r, path, url.Values{
		"booking_id":     {strconv.Itoa(int(bookingID))},
		"amount":         {"15000.00"},
		"payment_date":   {"2025-06-02"},
		"payment_method": {"Cash"},
	})
	assert.Equal(t, http.StatusFound, w.Code)

	var updated models.Payment
	assert.NoError(t, db.First(&updated, payment.ID).Error)
	assert.Equal(t, 15000.00, updated.Amount)
}
