package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/r0nnniiee/GAME-match/internal/catalog"
	"github.com/r0nnniiee/GAME-match/internal/matching"
)

// GetGames godoc
// @Summary      List the game catalog
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]string
// @Router       /catalog/games [get]
func GetGames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": catalog.Games})
}

// GetRanks godoc
// @Summary      List the rank ladder, lowest tier first
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]string
// @Router       /catalog/ranks [get]
func GetRanks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": matching.Ranks})
}

// GetRoles godoc
// @Summary      List the selectable squad roles
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]string
// @Router       /catalog/roles [get]
func GetRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": matching.Roles})
}

// GetTimeSlots godoc
// @Summary      List the weekly schedule grid
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /catalog/slots [get]
func GetTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"days": catalog.Days, "slots": catalog.TimeSlots})
}
