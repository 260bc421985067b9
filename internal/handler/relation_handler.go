package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/r0nnniiee/GAME-match/internal/database"
	"github.com/r0nnniiee/GAME-match/internal/models"
	"github.com/r0nnniiee/GAME-match/internal/social"
)

// region --- DTOs ---

// SendRequestInput carries the friend code of the user to befriend.
type SendRequestInput struct {
	Code string `json:"code" binding:"required,len=6" example:"K9X2L1"`
}

// RelationPairResponse returns both records touched by a relationship
// operation, updated together.
type RelationPairResponse struct {
	Me    PrivateUserResponse `json:"me"`
	Other PublicUserResponse  `json:"other"`
}

// endregion

// GetRelations godoc
// @Summary      Get user relations
// @Description  Lists the current user's friends or pending requests by direction.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        direction query     string  true  "friends, incoming or outgoing"
// @Success      200       {array}   PublicUserResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      401       {object}  ErrorResponse
// @Router       /users/me/relations [get]
func GetRelations(c *gin.Context) {
	viewer := currentUser(c)
	if viewer == nil {
		return
	}

	var ids []string
	switch c.Query("direction") {
	case "friends":
		ids = viewer.Friends
	case "incoming":
		ids = viewer.IncomingRequests
	case "outgoing":
		ids = viewer.OutgoingRequests
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "A 'direction' query parameter (friends, incoming or outgoing) is required for this endpoint."})
		return
	}

	userResponses := []PublicUserResponse{}
	if len(ids) > 0 {
		var users []models.User
		if err := database.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch relations"})
			return
		}
		for i := range users {
			userResponses = append(userResponses, buildPublicUserResponse(&users[i], viewer))
		}
	}

	c.JSON(http.StatusOK, userResponses)
}

// SendRequest godoc
// @Summary      Send friend request
// @Description  Sends a friend request to the user owning the given friend code.
// @Tags         friendship
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SendRequestInput true "Friend code"
// @Success      201  {object}  RelationPairResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "No user owns that code"
// @Failure      409  {object}  ErrorResponse "Relation already exists"
// @Router       /friends/requests [post]
func SendRequest(c *gin.Context) {
	sender := currentUser(c)
	if sender == nil {
		return
	}

	var input SendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var target models.User
	if err := database.DB.Where("unique_code = ?", input.Code).First(&target).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	pair, err := social.SendRequest(sender, &target)
	if err != nil {
		respondRelationError(c, err)
		return
	}

	if !savePair(c, pair) {
		return
	}
	c.JSON(http.StatusCreated, newRelationPairResponse(pair))
}

// AcceptRequest godoc
// @Summary      Accept friend request
// @Description  Accepts a pending friend request from another user.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Requesting User ID"
// @Success      200  {object}  RelationPairResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Router       /friends/requests/{id}/accept [post]
func AcceptRequest(c *gin.Context) {
	relationOp(c, social.AcceptRequest)
}

// DeclineRequest godoc
// @Summary      Decline friend request
// @Description  Declines a pending friend request from another user. Nothing is
// recorded about the decline; the requester may send again.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Requesting User ID"
// @Success      200  {object}  RelationPairResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Router       /friends/requests/{id}/decline [post]
func DeclineRequest(c *gin.Context) {
	relationOp(c, social.DeclineRequest)
}

// CancelRequest godoc
// @Summary      Cancel a sent friend request
// @Description  Withdraws a pending request the current user sent.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Target User ID"
// @Success      200  {object}  RelationPairResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Router       /friends/requests/{id}/cancel [post]
func CancelRequest(c *gin.Context) {
	relationOp(c, social.CancelRequest)
}

// region --- Helpers ---

// relationOp runs one of the pair-state mutators against the current user
// and the user named by the :id path parameter.
func relationOp(c *gin.Context, op func(*models.User, *models.User) (social.Pair, error)) {
	me := currentUser(c)
	if me == nil {
		return
	}

	var other models.User
	if err := database.DB.First(&other, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	pair, err := op(me, &other)
	if err != nil {
		respondRelationError(c, err)
		return
	}

	if !savePair(c, pair) {
		return
	}
	c.JSON(http.StatusOK, newRelationPairResponse(pair))
}

// savePair persists both updated records in one transaction so that no
// reader ever sees one side of the relation updated and the other stale.
func savePair(c *gin.Context, pair social.Pair) bool {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(pair.First).Error; err != nil {
			return err
		}
		return tx.Save(pair.Second).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update relation"})
		return false
	}
	return true
}

func newRelationPairResponse(pair social.Pair) RelationPairResponse {
	return RelationPairResponse{
		Me:    buildPrivateUserResponse(pair.First),
		Other: buildPublicUserResponse(pair.Second, pair.First),
	}
}

func respondRelationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, social.ErrSelfRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, social.ErrAlreadyFriends),
		errors.Is(err, social.ErrDuplicateRequest),
		errors.Is(err, social.ErrReciprocalRequest):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, social.ErrNoPendingRequest):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update relation"})
	}
}

// endregion
