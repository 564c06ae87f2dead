package controller

import (
	"github.com/alimikegami/point-of-sales/storefront-service/internal/service"
	"github.com/alimikegami/point-of-sales/storefront-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type StorefrontController struct {
	service service.StorefrontService
}

func CreateStorefrontController(e *echo.Group, service service.StorefrontService) {
	c := StorefrontController{
		service: service,
	}
	e.GET("/home", c.GetHome)
	e.GET("/promo/countdown", c.GetCountdown)
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductDetails)
}

func (c *StorefrontController) GetHome(e echo.Context) error {
	responsePayload, err := c.service.GetHome(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, noticeMessage("successfully retrieved home page", responsePayload.Notices...), responsePayload)
}

func (c *StorefrontController) GetCountdown(e echo.Context) error {
	return response.WriteSuccessResponse(e, "", c.service.GetCountdown(e.Request().Context()))
}

func (c *StorefrontController) GetProducts(e echo.Context) error {
	filter := bindFilter(e, "GetProducts")

	responsePayload, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, noticeMessage("successfully retrieved products", responsePayload.Notice), responsePayload)
}

func (c *StorefrontController) GetProductDetails(e echo.Context) error {
	responsePayload, err := c.service.GetProductDetails(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteRetryableErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved product details", responsePayload)
}
