package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/exoticlanka/backoffice/forms"
	"github.com/exoticlanka/backoffice/repository"
	"github.com/exoticlanka/backoffice/utils"
)

type BookingController struct {
	repo      *repository.BookingRepository
	customers *repository.CustomerRepository
	packages  *repository.TourPackageRepository
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{
		repo:      repository.NewBookingRepository(db),
		customers: repository.NewCustomerRepository(db),
		packages:  repository.NewTourPackageRepository(db),
	}
}

func (bc *BookingController) ListBookings(c *gin.Context) {
	bc.renderList(c, "")
}

func (bc *BookingController) AddBooking(c *gin.Context) {
	var input forms.BookingInput
	if err := c.ShouldBind(&input); err != nil {
		bc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	form, err := forms.ValidateBooking(input)
	if err != nil {
		bc.renderList(c, err.Error())
		return
	}

	id, err := bc.repo.Create(form)
	if err != nil {
		bc.renderList(c, err.Error())
		return
	}

	utils.InfoLogger.Printf("Booking created (ID=%d, customer=%d, package=%d)", id, form.CustomerID, form.PackageID)
	flashAndRedirect(c, "/bookings", "Booking added successfully!")
}

func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		bc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	var input forms.BookingInput
	if err := c.ShouldBind(&input); err != nil {
		bc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	form, err := forms.ValidateBooking(input)
	if err != nil {
		bc.renderList(c, err.Error())
		return
	}

	if _, err := bc.repo.Update(uint(id), form); err != nil {
		bc.renderList(c, err.Error())
		return
	}

	flashAndRedirect(c, "/bookings", "Booking updated successfully!")
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/bookings")
		return
	}

	if _, err := bc.repo.Delete(uint(id)); err != nil {
		bc.renderList(c, err.Error())
		return
	}

	flashAndRedirect(c, "/bookings", "Booking deleted successfully!")
}

// renderList loads the joined booking rows plus the dropdown option
// sets the add/update modals need.
func (bc *BookingController) renderList(c *gin.Context, errMsg string) {
	data := pageData(c, "bookings", "Bookings")

	bookings, err := bc.repo.List()
	if err != nil && errMsg == "" {
		errMsg = err.Error()
	}
	data["Bookings"] = bookings

	if customers, err := bc.customers.Options(); err == nil {
		data["CustomerOptions"] = customers
	}
	if packages, err := bc.packages.Options(); err == nil {
		data["PackageOptions"] = packages
	}
	data["StatusOptions"] = []string{"Pending", "Confirmed", "Cancelled"}

	if errMsg != "" {
		withError(data, errMsg)
	}
	c.HTML(http.StatusOK, "bookings.html", data)
}
