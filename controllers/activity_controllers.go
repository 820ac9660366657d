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

type ActivityController struct {
	repo *repository.ActivityRepository
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{repo: repository.NewActivityRepository(db)}
}

func (ac *ActivityController) ListActivities(c *gin.Context) {
	ac.renderList(c, "")
}

func (ac *ActivityController) AddActivity(c *gin.Context) {
	var input forms.ActivityInput
	if err := c.ShouldBind(&input); err != nil {
		ac.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	form, err := forms.ValidateActivity(input)
	if err != nil {
		ac.renderList(c, err.Error())
		return
	}

	id, err := ac.repo.Create(form)
	if err != nil {
		ac.renderList(c, err.Error())
		return
	}

	utils.InfoLogger.Printf("Activity created (ID=%d)", id)
	flashAndRedirect(c, "/activities", "Activity added successfully!")
}

func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		ac.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	var input forms.ActivityInput
	if err := c.ShouldBind(&input); err != nil {
		ac.renderList(c, forms.ErrAllFieldsRequired.Error())
		return
	}

	form, err := forms.ValidateActivity(input)
	if err != nil {
		ac.renderList(c, err.Error())
		return
	}

	if _, err := ac.repo.Update(uint(id), form); err != nil {
		ac.renderList(c, err.Error())
		return
	}

	flashAndRedirect(c, "/activities", "Activity updated successfully!")
}

func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/activities")
		return
	}

	if _, err := ac.repo.Delete(uint(id)); err != nil {
		ac.renderList(c, err.Error())
		return
	}

	flashAndRedirect(c, "/activities", "Activity deleted successfully!")
}

func (ac *ActivityController) renderList(c *gin.Context, errMsg string) {
	data := pageData(c, "activities", "Activities")

	activities, err := ac.repo.List()
	if err != nil && errMsg == "" {
		errMsg = err.Error()
	}
	data["Activities"] = activities

	if errMsg != "" {
		withError(data, errMsg)
	}
	c.HTML(http.StatusOK, "activities.html", data)
}
