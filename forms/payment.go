package forms

import (
	"strconv"
	"strings"
)

// PaymentInput is the raw add/update payment form.
type PaymentInput struct {
	BookingID     string `form:"booking_id"`
	Amount        string `form:"amount"`
	PaymentDate   string `form:"payment_date"`
	PaymentMethod string `form:"payment_method"`
}

type PaymentForm struct {
	BookingID     uint    `validate:"required"`
	Amount        float64 `validate:"required,gt=0"`
	PaymentDate   string  `validate:"required"`
	PaymentMethod string  `validate:"required,oneof='Credit Card' 'Debit Card' 'Bank Transfer' Cash"`
}

func ValidatePayment(in PaymentInput) (*PaymentForm, error) {
	bookingRaw := strings.TrimSpace(in.BookingID)
	amountRaw := strings.TrimSpace(in.Amount)
	date := strings.TrimSpace(in.PaymentDate)
	method := strings.TrimSpace(in.PaymentMethod)

	if anyEmpty(bookingRaw, amountRaw, date, method) {
		return nil, ErrAllFieldsRequired
	}

	bookingID, err := strconv.ParseUint(bookingRaw, 10, 32)
	if err != nil || bookingID == 0 {
		return nil, ErrInvalidBooking
	}
	amount, err := strconv.ParseFloat(amountRaw, 64)
	if err != nil {
		return nil, ErrInvalidAmount
	}

	form := &PaymentForm{
		BookingID:     uint(bookingID),
		Amount:        amount,
		PaymentDate:   date,
		PaymentMethod: method,
	}

	if err := validate.Struct(form); err != nil {
		return nil, mapValidationError(err, map[string]error{
			"Amount":        ErrInvalidAmount,
			"PaymentMethod": ErrInvalidMethod,
		})
	}
	return form, nil
}
