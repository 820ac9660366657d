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

type TourPackageController struct {
	repo *repository.TourPackageRepository
}

func NewTourPackageController(db *gorm.DB) *TourPackageController {
	return &TourPackageController{repo: repository.NewTourPackageRepository(db)}
}

func (tc *TourPackageController) ListTourPackages(c *gin.Context) {
	tc.renderList(c, "")
}

func (tc *TourPackageController) AddTourPackage(c *gin.Context) {
	var input forms.TourPackageInput
	if err := c.ShouldBind(&input); err != nil {
		tc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	form, err := forms.ValidateTourPackage(input)
	if err != nil {
		tc.renderList(c, err.Error())
		return
	}

	id, err := tc.repo.Create(form)
	if err != nil {
		tc.renderList(c, err.Error())
		return
	}

	utils.InfoLogger.Printf("Tour package created (ID=%d)", id)
	flashAndRedirect(c, "/packages", "Tour package added successfully!")
}

func (tc *TourPackageController) UpdateTourPackage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		tc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	var input forms.TourPackageInput
	if err := c.ShouldBind(&input); err != nil {
		tc.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	form, err := forms.ValidateTourPackage(input)
	if err != nil {
		tc.renderList(c, err.Error())
		return
	}

	if _, err := tc.repo.Update(uint(id), form); err != nil {
		tc.renderList(c, err.Error())
		return
	}

	flashAndRedirect(c, "/packages", "Tour package updated successfully!")
}

func (tc *TourPackageController) DeleteTourPackage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/packages")
		return
	}

	if _, err := tc.repo.Delete(uint(id)); err != nil {
		tc.renderList(c, err.Error())
		return
	}

	flashAndRedirect(c, "/packages", "Tour package deleted successfully!")
}

func (tc *TourPackageController) renderList(c *gin.Context, errMsg string) {
	data := pageData(c, "packages", "Tour Packages")

	packages, err := tc.repo.List()
	if err != nil && errMsg == "" {
		errMsg = err.Error()
	}
	data["Packages"] = packages

	if errMsg != "" {
		withError(data, errMsg)
	}
	c.HTML(http.StatusOK, "tourpackages.html", data)
}
