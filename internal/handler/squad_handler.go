package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/r0nnniiee/GAME-match/internal/database"
	"github.com/r0nnniiee/GAME-match/internal/models"
	"github.com/r0nnniiee/GAME-match/internal/squadfinder"
)

// region --- DTOs ---

// SquadSearchInput is the completed squad-finder wizard selection.
type SquadSearchInput struct {
	Game         string                   `json:"game" binding:"required"`
	Roles        []string                 `json:"roles"`
	Availability []models.DayAvailability `json:"availability"`
}

// SquadMatchResponse is one ranked candidate.
type SquadMatchResponse struct {
	Candidate PublicUserResponse `json:"candidate"`
	Score     int                `json:"score"`
}

// endregion

// FindSquadMatches godoc
// @Summary      Find compatible teammates
// @Description  Scores every user against the given squad-finder selection and
// returns matches ordered best first. Candidates not playing the game are left out.
// @Tags         squad
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SquadSearchInput true "Wizard selection"
// @Success      200  {array}   SquadMatchResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /squad/matches [post]
func FindSquadMatches(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil {
		return
	}

	var input SquadSearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := squadfinder.NewSession(actor)
	if err := session.SelectGame(input.Game); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := session.SetRoles(input.Roles); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := session.SetAvailability(input.Availability); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load the user pool"})
		return
	}
	pool := make([]*models.User, len(users))
	for i := range users {
		pool[i] = &users[i]
	}

	results, err := session.Run(pool)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matches := make([]SquadMatchResponse, 0, len(results))
	for _, r := range results {
		matches = append(matches, SquadMatchResponse{
			Candidate: buildPublicUserResponse(r.Candidate, actor),
			Score:     r.Score,
		})
	}

	c.JSON(http.StatusOK, matches)
}
