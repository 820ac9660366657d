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

type FeedbackController struct {
	repo      *repository.FeedbackRepository
	customers *repository.CustomerRepository
	packages  *repository.TourPackageRepository
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{
		repo:      repository.NewFeedbackRepository(db),
		customers: repository.NewCustomerRepository(db),
		packages:  repository.NewTourPackageRepository(db),
	}
}

func (fc *FeedbackController) ListFeedback(c *gin.Context) {
	fc.renderList(c, "")
}

func (fc *FeedbackController) AddFeedback(c *gin.Context) {
	var input forms.FeedbackInput
	if err := c.ShouldBind(&input); err != nil {
		fc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	form, err := forms.ValidateFeedback(input)
	if err != nil {
		fc.renderList(c, err.Error())
		return
	}

	id, err := fc.repo.Create(form)
	if err != nil {
		fc.renderList(c, err.Error())
		return
	}

	utils.InfoLogger.Printf("Feedback created (ID=%d, rating=%d)", id, form.Rating)
	flashAndRedirect(c, "/feedback", "Feedback added successfully!")
}

func (fc *FeedbackController) UpdateFeedback(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		fc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	var input forms.FeedbackInput
	if err := c.ShouldBind(&input); err != nil {
		fc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	form, err := forms.ValidateFeedback(input)
	if err != nil {
		fc.renderList(c, err.Error())
		return
	}

	if _, err := fc.repo.Update(uint(id), form); err != nil {
		fc.renderList(c, err.Error())
		return
	}

	flashAndRedirect(c, "/feedback", "Feedback updated successfully!")
}

func (fc *FeedbackController) DeleteFeedback(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/feedback")
		return
	}

	if _, err := fc.repo.Delete(uint(id)); err != nil {
		fc.renderList(c, err.Error())
		return
	}

	flashAndRedirect(c, "/feedback", "Feedback deleted successfully!")
}

func (fc *FeedbackController) renderList(c *gin.Context, errMsg string) {
	data := pageData(c, "feedback", "Feedback")

	feedback, err := fc.repo.List()
	if err != nil && errMsg == "" {
		errMsg = err.Error()
	}
	data["Feedback"] = feedback

	if customers, err := fc.customers.Options(); err == nil {
		data["CustomerOptions"] = customers
	}
	if packages, err := fc.packages.Options(); err == nil {
		data["PackageOptions"] = packages
	}

	if errMsg != "" {
		withError(data, errMsg)
	}
	c.HTML(http.StatusOK, "feedback.html", data)
}
