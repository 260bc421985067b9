package handler

import (
	"errors"
	"io"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/r0nnniiee/GAME-match/internal/catalog"
	"github.com/r0nnniiee/GAME-match/internal/database"
	"github.com/r0nnniiee/GAME-match/internal/hub"
	"github.com/r0nnniiee/GAME-match/internal/models"
)

// region --- DTOs ---

// VoiceChannelInput defines the structure for creating a voice channel.
type VoiceChannelInput struct {
	Name     string `json:"name" binding:"required"`
	Game     string `json:"game" binding:"required"`
	IsPublic *bool  `json:"is_public"`
}

// endregion

// CreateVoiceChannel godoc
// @Summary      Create a voice channel
// @Description  Creates a voice channel and seats the creator in it.
// @Tags         voice
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body VoiceChannelInput true "Channel Info"
// @Success      201  {object}  models.VoiceChannel
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /voice [post]
func CreateVoiceChannel(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var input VoiceChannelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !catalog.ValidGame(input.Game) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown game: " + input.Game})
		return
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	channel := models.VoiceChannel{
		ID:               uuid.NewString(),
		Name:             input.Name,
		Creator:          user.Username,
		Game:             input.Game,
		MaxUsers:         models.VoiceChannelCapacity,
		IsPublic:         isPublic,
		ConnectedUserIDs: []string{user.ID},
	}

	if err := database.DB.Create(&channel).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create voice channel"})
		return
	}

	c.JSON(http.StatusCreated, channel)
}

// ListVoiceChannels godoc
// @Summary      List public voice channels
// @Tags         voice
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(10)
// @Success      200  {object}  PaginatedResponse[models.VoiceChannel]
// @Failure      401  {object}  ErrorResponse
// @Router       /voice [get]
func ListVoiceChannels(c *gin.Context) {
	page, limit := pageParams(c)

	query := database.DB.Model(&models.VoiceChannel{}).Where("is_public = ?", true).Order("created_at")
	paginated, err := Paginate[models.VoiceChannel](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve voice channels"})
		return
	}

	c.JSON(http.StatusOK, paginated)
}

// JoinVoiceChannel godoc
// @Summary      Join a voice channel
// @Description  Seats the current user in the channel, leaving any channel they were in before.
// @Tags         voice
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Channel ID"
// @Success      200  {object}  models.VoiceChannel
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Channel not found"
// @Failure      409  {object}  ErrorResponse "Channel is full"
// @Router       /voice/{id}/join [post]
func JoinVoiceChannel(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var channel models.VoiceChannel
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&channel, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}
		if channel.HasMember(user.ID) {
			return nil
		}
		if channel.IsFull() {
			return errChannelFull
		}

		// A user sits in at most one channel; pull them out of any other first.
		var others []models.VoiceChannel
		if err := tx.Find(&others).Error; err != nil {
			return err
		}
		for i := range others {
			if others[i].ID == channel.ID || !others[i].HasMember(user.ID) {
				continue
			}
			removeMember(&others[i], user.ID)
			if err := tx.Save(&others[i]).Error; err != nil {
				return err
			}
			hub.GlobalHub.Broadcast(others[i].ID, hub.Event{Type: "user_left", Payload: user.ID})
		}

		channel.ConnectedUserIDs = append(channel.ConnectedUserIDs, user.ID)
		return tx.Save(&channel).Error
	})
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Voice channel not found"})
		return
	case errors.Is(err, errChannelFull):
		c.JSON(http.StatusConflict, gin.H{"error": "Voice channel is full"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join voice channel"})
		return
	}

	hub.GlobalHub.Broadcast(channel.ID, hub.Event{Type: "user_joined", Payload: user.ID})
	c.JSON(http.StatusOK, channel)
}

// LeaveVoiceChannel godoc
// @Summary      Leave a voice channel
// @Tags         voice
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Channel ID"
// @Success      200  {object}  models.VoiceChannel
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Channel not found or user not in it"
// @Router       /voice/{id}/leave [post]
func LeaveVoiceChannel(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var channel models.VoiceChannel
	if err := database.DB.First(&channel, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Voice channel not found"})
		return
	}
	if !channel.HasMember(user.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "You are not in this voice channel"})
		return
	}

	removeMember(&channel, user.ID)
	if err := database.DB.Save(&channel).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave voice channel"})
		return
	}

	hub.GlobalHub.Broadcast(channel.ID, hub.Event{Type: "user_left", Payload: user.ID})
	c.JSON(http.StatusOK, channel)
}

// CloseVoiceChannel godoc
// @Summary      Close a voice channel (admin)
// @Tags         voice
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Channel ID"
// @Success      200  {object}  map[string]string "{"message": "Channel closed"}"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/voice/{id} [delete]
func CloseVoiceChannel(c *gin.Context) {
	result := database.DB.Delete(&models.VoiceChannel{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close voice channel"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Voice channel not found"})
		return
	}

	hub.GlobalHub.Broadcast(c.Param("id"), hub.Event{Type: "channel_closed", Payload: c.Param("id")})
	c.JSON(http.StatusOK, gin.H{"message": "Channel closed"})
}

// VoiceChannelEvents godoc
// @Summary      Stream presence events for a voice channel
// @Description  Server-sent events: user_joined, user_left, channel_closed.
// @Tags         voice
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        id   path  string  true  "Channel ID"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /voice/{id}/events [get]
func VoiceChannelEvents(c *gin.Context) {
	channelID := c.Param("id")

	var channel models.VoiceChannel
	if err := database.DB.First(&channel, "id = ?", channelID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Voice channel not found"})
		return
	}

	client := make(hub.Client, 16)
	hub.GlobalHub.Subscribe(channelID, client)
	defer hub.GlobalHub.Unsubscribe(channelID, client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// region --- Helpers ---

var errChannelFull = errors.New("voice channel is full")

func removeMember(channel *models.VoiceChannel, userID string) {
	channel.ConnectedUserIDs = slices.DeleteFunc(channel.ConnectedUserIDs, func(id string) bool {
		return id == userID
	})
}

// endregion
