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

type CustomerController struct {
	repo *repository.CustomerRepository
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{repo: repository.NewCustomerRepository(db)}
}

// ListCustomers renders the customers page.
func (cc *CustomerController) ListCustomers(c *gin.Context) {
	cc.renderList(c, "")
}

// AddCustomer validates the add form, inserts the row, and redirects
// with the success flash. Failures re-render the page inline.
func (cc *CustomerController) AddCustomer(c *gin.Context) {
	var input forms.CustomerInput
	if err := c.ShouldBind(&input); err != nil {
		cc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	form, err := forms.ValidateCustomer(input)
	if err != nil {
		cc.renderList(c, err.Error())
		return
	}

	id, err := cc.repo.Create(form)
	if err != nil {
		cc.renderList(c, err.Error())
		return
	}

	utils.InfoLogger.Printf("Customer created (ID=%d)", id)
	flashAndRedirect(c, "/customers", "Customer added successfully!")
}

// UpdateCustomer replaces the full row for the given id. Zero rows
// affected is not an error: the redirect still carries the flash.
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		cc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	var input forms.CustomerInput
	if err := c.ShouldBind(&input); err != nil {
		cc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	form, err := forms.ValidateCustomer(input)
	if err != nil {
		cc.renderList(c, err.Error())
		return
	}

	if _, err := cc.repo.Update(uint(id), form); err != nil {
		cc.renderList(c, err.Error())
		return
	}

	flashAndRedirect(c, "/customers", "Customer updated successfully!")
}

// DeleteCustomer removes the row. Deleting a nonexistent id is still
// reported as success, matching the page's historical behavior.
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/customers")
		return
	}

	if _, err := cc.repo.Delete(uint(id)); err != nil {
		cc.renderList(c, err.Error())
		return
	}

	flashAndRedirect(c, "/customers", "Customer deleted successfully!")
}

func (cc *CustomerController) renderList(c *gin.Context, errMsg string) {
	data := pageData(c, "customers", "Customers")

	customers, err := cc.repo.List()
	if err != nil && errMsg == "" {
		errMsg = err.Error()
	}
	data["Customers"] = customers

	if errMsg != "" {
		withError(data, errMsg)
	}
	c.HTML(http.StatusOK, "customers.html", data)
}
