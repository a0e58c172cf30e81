package echoServer

import (
	"videostore/app/echoServer/controller/customer"
	"videostore/app/echoServer/controller/rental"
	"videostore/app/echoServer/controller/video"

	"github.com/labstack/echo/v4"
)

type C struct {
	Customer *customer.Controller
	Video    *video.Controller
	Rental   *rental.Controller
}

func Register(e *echo.Echo, c C) {
	api := e.Group("/api")

	// Customers
	api.POST("/customers", c.Customer.Create)
	api.GET("/customers", c.Customer.List)
	api.GET("/customers/:id", c.Customer.Detail)
	api.PUT("/customers/:id", c.Customer.Update)
	api.DELETE("/customers/:id", c.Customer.Delete)

	// Videos
	api.POST("/videos", c.Video.Create)
	api.GET("/videos", c.Video.List)
	api.GET("/videos/:id", c.Video.Detail)
	api.PUT("/videos/:id", c.Video.Update)
	api.DELETE("/videos/:id", c.Video.Delete)

	// Rentals
	api.POST("/rentals", c.Rental.Create)
	api.GET("/rentals", c.Rental.List)
	api.GET("/rentals/overdue", c.Rental.ListOverdue)
	api.GET("/rentals/customer/:customerId", c.Rental.ActiveForCustomer)
	api.GET("/rentals/:id", c.Rental.Detail)
	api.POST("/rentals/:id/return", c.Rental.Return)
	api.POST("/rentals/:id/confirm-payment", c.Rental.ConfirmPayment)
	api.DELETE("/rentals/:id", c.Rental.Delete)
}
