package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/exoticlanka/backoffice/controllers"
	"github.com/exoticlanka/backoffice/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/assets", "./assets")

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())

	authCtrl := controllers.NewAuthController(db)
	dashboardCtrl := controllers.NewDashboardController(db)
	customerCtrl := controllers.NewCustomerController(db)
	packageCtrl := controllers.NewTourPackageController(db)
	bookingCtrl := controllers.NewBookingController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	feedbackCtrl := controllers.NewFeedbackController(db)
	activityCtrl := controllers.NewActivityController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
	r.GET("/login", authCtrl.ShowLogin)
	r.POST("/login", authCtrl.Login)
	r.GET("/logout", authCtrl.Logout)

	// ----------------------------------------------------------------
	//                      PROTECTED PAGES
	// ----------------------------------------------------------------
	pages := r.Group("/")
	pages.Use(middlewares.SessionGuard())
	{
		pages.GET("/dashboard", dashboardCtrl.ShowDashboard)

		pages.GET("/customers", customerCtrl.ListCustomers)
		pages.POST("/customers", customerCtrl.AddCustomer)
		pages.POST("/customers/:id", customerCtrl.UpdateCustomer)
		pages.GET("/customers/:id/delete", customerCtrl.DeleteCustomer)

		pages.GET("/packages", packageCtrl.ListTourPackages)
		pages.POST("/packages", packageCtrl.AddTourPackage)
		pages.POST("/packages/:id", packageCtrl.UpdateTourPackage)
		pages.GET("/packages/:id/delete", packageCtrl.DeleteTourPackage)

		pages.GET("/bookings", bookingCtrl.ListBookings)
		pages.POST("/bookings", bookingCtrl.AddBooking)
		pages.POST("/bookings/:id", bookingCtrl.UpdateBooking)
		pages.GET("/bookings/:id/delete", bookingCtrl.DeleteBooking)

		pages.GET("/payments", paymentCtrl.ListPayments)
		pages.POST("/payments", paymentCtrl.AddPayment)
		pages.POST("/payments/:id", paymentCtrl.UpdatePayment)
		pages.GET("/payments/:id/delete", paymentCtrl.DeletePayment)

		pages.GET("/feedback", feedbackCtrl.ListFeedback)
		pages.POST("/feedback", feedbackCtrl.AddFeedback)
		pages.POST("/feedback/:id", feedbackCtrl.UpdateFeedback)
		pages.GET("/feedback/:id/delete", feedbackCtrl.DeleteFeedback)

		pages.GET("/activities", activityCtrl.ListActivities)
		pages.POST("/activities", activityCtrl.AddActivity)
		pages.POST("/activities/:id", activityCtrl.UpdateActivity)
		pages.GET("/activities/:id/delete", activityCtrl.DeleteActivity)
	}

	return r
}
