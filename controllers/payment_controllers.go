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

type PaymentController struct {
	repo     *repository.PaymentRepository
	bookings *repository.BookingRepository
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		repo:     repository.NewPaymentRepository(db),
		bookings: repository.NewBookingRepository(db),
	}
}

func (pc *PaymentController) ListPayments(c *gin.Context) {
	pc.renderList(c, "")
}

func (pc *PaymentController) AddPayment(c *gin.Context) {
	var input forms.PaymentInput
	if err := c.ShouldBind(&input); err != nil {
		pc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	form, err := forms.ValidatePayment(input)
	if err != nil {
		pc.renderList(c, err.Error())
		return
	}

	id, err := pc.repo.Create(form)
	if err != nil {
		pc.renderList(c, err.Error())
		return
	}

	utils.InfoLogger.Printf("Payment created (ID=%d, booking=%d, amount=%.2f)", id, form.BookingID, form.Amount)
	flashAndRedirect(c, "/payments", "Payment added successfully!")
}

func (pc *PaymentController) UpdatePayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		pc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	var input forms.PaymentInput
	if err := c.ShouldBind(&input); err != nil {
		pc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	form, err := forms.ValidatePayment(input)
	if err != nil {
		pc.renderList(c, err.Error())
		return
	}

	if _, err := pc.repo.Update(uint(id), form); err != nil {
		pc.renderList(c, err.Error())
		return
	}

	flashAndRedirect(c, "/payments", "Payment updated successfully!")
}

func (pc *PaymentController) DeletePayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/payments")
		return
	}

	if _, err := pc.repo.Delete(uint(id)); err != nil {
		pc.renderList(c, err.Error())
		return
	}

	flashAndRedirect(c, "/payments", "Payment deleted successfully!")
}

func (pc *PaymentController) renderList(c *gin.Context, errMsg string) {
	data := pageData(c, "payments", "Payments")

	payments, err := pc.repo.List()
	if err != nil && errMsg == "" {
		errMsg = err.Error()
	}
	data["Payments"] = payments

	if bookings, err := pc.bookings.Options(); err == nil {
		data["BookingOptions"] = bookings
	}
	data["MethodOptions"] = []string{"Credit Card", "Debit Card", "Bank Transfer", "Cash"}

	if errMsg != "" {
		withError(data, errMsg)
	}
	c.HTML(http.StatusOK, "payments.html", data)
}
