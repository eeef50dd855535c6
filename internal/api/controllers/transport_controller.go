package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type TransportController struct {
	transportService services.TransportServiceInterface
}

func NewTransportController(transportService services.TransportServiceInterface) *TransportController {
	return &TransportController{
		transportService: transportService,
	}
}

// GetFlights godoc
// @Summary Get the cheapest flight for a leg
// @Description Query the flight provider directly for one origin/destination/date
// @Tags Transport
// @Produce json
// @Param origin query string true "Origin city"
// @Param destination query string true "Destination city"
// @Param date query string true "Travel date (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /transport/flights [get]
func (t *TransportController) GetFlights(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	date := c.Query("date")
	if origin == "" || destination == "" || date == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing required query parameters: origin, destination, date")
		return
	}

	quote, err := t.transportService.FlightQuote(c.Request.Context(), origin, destination, date)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if quote == nil {
		utils.RespondSuccess(c, nil, "No flight offers found")
		return
	}

	utils.RespondSuccess(c, quote, "Flight offer fetched successfully")
}

// GetTrains godoc
// @Summary List train options for a leg
// @Description Simulated train fares until a real rail provider is integrated
// @Tags Transport
// @Produce json
// @Param origin query string true "Origin city"
// @Param destination query string true "Destination city"
// @Param date query string true "Travel date (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /transport/trains [get]
func (t *TransportController) GetTrains(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	date := c.Query("date")
	if origin == "" || destination == "" || date == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing required query parameters: origin, destination, date")
		return
	}

	options, err := t.transportService.TrainOptions(c.Request.Context(), origin, destination, date)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, options, "Train options fetched successfully")
}
