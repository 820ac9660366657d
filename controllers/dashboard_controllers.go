package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/exoticlanka/backoffice/models"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// ShowDashboard renders the landing page with per-entity counts.
func (dc *DashboardController) ShowDashboard(c *gin.Context) {
	data := pageData(c, "dashboard", "Dashboard")

	counts := gin.H{}
	for name, model := range map[string]interface{}{
		"Customers":  &models.Customer{},
		"Packages":   &models.TourPackage{},
		"Bookings":   &models.Booking{},
		"Payments":   &models.Payment{},
		"Feedback":   &models.Feedback{},
		"Activities": &models.Activity{},
	} {
		var count int64
		if err := dc.DB.Model(model).Count(&count).Error; err != nil {
			withError(data, "Error loading dashboard: "+err.Error())
			break
		}
		counts[name] = count
	}
	data["Counts"] = counts

	c.HTML(http.StatusOK, "dashboard.html", data)
}
