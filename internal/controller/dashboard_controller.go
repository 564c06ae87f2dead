package controller

import (
	"strings"

	"github.com/alimikegami/point-of-sales/storefront-service/internal/service"
	pkgdto "github.com/alimikegami/point-of-sales/storefront-service/pkg/dto"
	"github.com/alimikegami/point-of-sales/storefront-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type DashboardController struct {
	service service.DashboardService
}

func CreateDashboardController(e *echo.Group, service service.DashboardService) {
	c := DashboardController{
		service: service,
	}
	e.GET("/dashboard", c.GetDashboard)
	e.GET("/dashboard/users", c.GetDashboardUsers)
}

func (c *DashboardController) GetDashboard(e echo.Context) error {
	filter := bindFilter(e, "GetDashboard")

	responsePayload, err := c.service.GetDashboard(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, noticeMessage("successfully retrieved dashboard", responsePayload.Notice), responsePayload)
}

func (c *DashboardController) GetDashboardUsers(e echo.Context) error {
	filter := bindFilter(e, "GetDashboardUsers")

	responsePayload, err := c.service.GetDashboardUsers(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, noticeMessage("successfully retrieved users", responsePayload.Notice), responsePayload)
}

// bindFilter never rejects a request; unparseable query values fall back to defaults.
func bindFilter(e echo.Context, component string) pkgdto.Filter {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", component).Msg("ignoring malformed query")
		filter = pkgdto.Filter{Q: e.QueryParam("q")}
	}
	return filter
}

// noticeMessage replaces the success message with the advisories when there are any.
func noticeMessage(message string, notices ...string) string {
	var present []string
	for _, notice := range notices {
		if notice != "" {
			present = append(present, notice)
		}
	}
	if len(present) == 0 {
		return message
	}
	return strings.Join(present, "; ")
}
