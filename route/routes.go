package route

import (
	"github.com/gin-gonic/gin"

	"bistro/controller"
	"bistro/utils"
)

func Register(router *gin.Engine, h *controller.Handler, g *utils.Guard) {
	router.GET("/", h.Liveness)

	// sessions
	router.POST("/jwt", h.IssueToken)
	router.POST("/login", h.Login)

	// users
	router.POST("/users", h.CreateUser)
	router.GET("/users", g.AdminOnly(h.ListUsers)...)
	router.GET("/users/admin/:email", g.OwnEmail("email", h.IsAdmin)...)
	router.PATCH("/users/admin/:id", g.AdminOnly(h.PromoteUser)...)
	router.DELETE("/users/:id", g.AdminOnly(h.DeleteUser)...)

	// menu
	router.GET("/menu", h.ListMenu)
	router.GET("/menu/:id", h.GetMenuItem)
	router.POST("/menu", g.AdminOnly(h.CreateMenuItem)...)
	router.POST("/menu/bulk", g.AdminOnly(h.BulkImportMenu)...)
	router.PATCH("/menu/:id", g.AdminOnly(h.UpdateMenuItem)...)
	router.DELETE("/menu/:id", g.AdminOnly(h.DeleteMenuItem)...)

	// reviews
	router.GET("/reviews", h.ListReviews)
	router.GET("/reviews/:email", h.ListReviewsByEmail)
	router.POST("/reviews", h.CreateReview)

	// carts
	router.POST("/carts", h.AddCartEntry)
	router.GET("/carts", h.ListCartEntries)
	router.DELETE("/carts/:id", h.DeleteCartEntry)

	// payments
	router.POST("/create-payment-intent", h.CreatePaymentIntent)
	router.POST("/payments", h.RecordPayment)
	router.GET("/payments/:email", g.OwnEmail("email", h.ListPayments)...)

	// stats
	router.GET("/admin-stats", g.AdminOnly(h.AdminStats)...)
	router.GET("/order-stats", g.AdminOnly(h.OrderStats)...)

	// bookings
	router.POST("/bookings", g.Authenticated(), h.CreateBooking)
	router.GET("/bookings", g.AdminOnly(h.ListBookings)...)
	router.GET("/bookings/:email", g.Authenticated(), h.ListBookingsByEmail)
	router.DELETE("/bookings/:id", g.Authenticated(), h.DeleteBooking)
	router.PATCH("/bookings-status/:id", g.AdminOnly(h.UpdateBookingStatus)...)
}
