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

func setupBookingRouter(db *gorm.DB) *gin.Engine {
	r := newTestEngine()
	ctrl := NewBookingController(db)
	r.GET("/bookings", ctrl.ListBookings)
	r.POST("/bookings", ctrl.AddBooking)
	r.POST("/bookings/:id", ctrl.UpdateBooking)
	r.GET("/bookings/:id/delete", ctrl.DeleteBooking)
	return r
}

func seedBookingRefs(t *testing.T, db *gorm.DB) (uint, uint) {
	customer := models.Customer{
		CustomerName: "Nimal Perera",
		Nationality:  "Sri Lankan",
		ContactNo:    "0771234567",
		Email:        "nimal@example.com",
		Gender:       "M",
	}
	assert.NoError(t, db.Create(&customer).Error)

	pkg := models.TourPackage{
		TourName:    "Kandy Explorer",
		Description: "3-day hill country tour",
		Price:       25000.00,
		Duration:    3,
	}
	assert.NoError(t, db.Create(&pkg).Error)

	return customer.ID, pkg.ID
}

func TestAddBooking(t *testing.T) {
	db := setupTestDB(t)
	r := setupBookingRouter(db)
	customerID, packageID := seedBookingRefs(t, db)

	w := postForm(r, "/bookings", url.Values{
		"customer_id":  {strconv.Itoa(int(customerID))},
		"package_id":   {strconv.Itoa(int(packageID))},
		"booking_date": {"2025-06-01"},
		"status":       {"Pending"},
	})
	assert.Equal(t, http.StatusFound, w.Code)

	var booking models.Booking
	assert.NoError(t, db.First(&booking).Error)
	assert.Equal(t, customerID, booking.CustomerID)
	assert.Equal(t, "Pending", booking.Status)

	// The list resolves foreign keys to names.
	w = get(r, "/bookings")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nimal Perera")
	assert.Contains(t, w.Body.String(), "Kandy Explorer")
}

func TestAddBookingDanglingCustomer(t *testing.T) {
	db := setupTestDB(t)
	r := setupBookingRouter(db)
	_, packageID := seedBookingRefs(t, db)

	w := postForm(r, "/bookings", url.Values{
		"customer_id":  {"999"},
		"package_id":   {strconv.Itoa(int(packageID))},
		"booking_date": {"2025-06-01"},
		"status":       {"Pending"},
	})

	// StoreError surfaced inline, nothing persisted.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "referenced customer does not exist")

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Zero(t, count)
}

func TestAddBookingBadStatus(t *testing.T) {
	db := setupTestDB(t)
	r := setupBookingRouter(db)
	customerID, packageID := seedBookingRefs(t, db)

	w := postForm(r, "/bookings", url.Values{
		"customer_id":  {strconv.Itoa(int(customerID))},
		"package_id":   {strconv.Itoa(int(packageID))},
		"booking_date": {"2025-06-01"},
		"status":       {"Done"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status selection.")
}

func TestUpdateBookingStatus(t *testing.T) {
	db := setupTestDB(t)
	r := setupBookingRouter(db)
	customerID, packageID := seedBookingRefs(t, db)

	booking := models.Booking{
		CustomerID:  customerID,
		PackageID:   packageID,
		BookingDate: "2025-06-01",
		Status:      "Pending",
	}
	assert.NoError(t, db.Create(&booking).Error)

	w := postForm(r, "/bookings/"+strconv.Itoa(int(booking.ID)), url.Values{
		"customer_id":  {strconv.Itoa(int(customerID))},
		"package_id":   {strconv.Itoa(int(packageID))},
		"booking_date": {"2025-06-01"},
		"status":       {"Confirmed"},
	})
	assert.Equal(t, http.StatusFound, w.Code)

	var updated models.Booking
	assert.NoError(t, db.First(&updated, booking.ID).Error)
	assert.Equal(t, "Confirmed", updated.Status)
}
