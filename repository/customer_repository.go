package repository

import (
	"gorm.io/gorm"

	"github.com/exoticlanka/backoffice/forms"
	"github.com/exoticlanka/backoffice/models"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a customer and returns its new id.
func (r *CustomerRepository) Create(form *forms.CustomerForm) (uint, error) {
	customer := models.Customer{
		CustomerName: form.CustomerName,
		Nationality:  form.Nationality,
		ContactNo:    form.ContactNo,
		Email:        form.Email,
		Gender:       form.Gender,
	}
	if err := r.db.Create(&customer).Error; err != nil {
		return 0, storeErr("adding customer", err)
	}
	return customer.ID, nil
}

// Update replaces the full row. Zero rows affected means no such id;
// callers treat that as success.
func (r *CustomerRepository) Update(id uint, form *forms.CustomerForm) (int64, error) {
	result := r.db.Model(&models.Customer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"customer_name": form.CustomerName,
		"nationality":   form.Nationality,
		"contact_no":    form.ContactNo,
		"email":         form.Email,
		"gender":        form.Gender,
	})
	if result.Error != nil {
		return 0, storeErr("updating customer", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *CustomerRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Customer{}, id)
	if result.Error != nil {
		return 0, storeErr("deleting customer", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *CustomerRepository) List() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Find(&customers).Error; err != nil {
		return nil, storeErr("loading customers", err)
	}
	return customers, nil
}

// CustomerOption feeds the booking/feedback dropdowns.
type CustomerOption struct {
	ID           uint
	CustomerName string
}

func (r *CustomerRepository) Options() ([]CustomerOption, error) {
	var options []CustomerOption
	err := r.db.Model(&models.Customer{}).
		Select("id", "customer_name").
		Order("customer_name").
		Find(&options).Error
	if err != nil {
		return nil, storeErr("loading customers", err)
	}
	return options, nil
}
