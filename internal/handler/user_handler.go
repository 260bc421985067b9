package handler

import (
	"crypto/rand"
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/r0nnniiee/GAME-match/internal/catalog"
	"github.com/r0nnniiee/GAME-match/internal/database"
	"github.com/r0nnniiee/GAME-match/internal/matching"
	"github.com/r0nnniiee/GAME-match/internal/models"
	"github.com/r0nnniiee/GAME-match/pkg/token"
)

var (
	errCodeSpaceExhausted   = errors.New("could not allocate a unique friend code")
	errUnknownRole          = errors.New("unknown role")
	errUnknownCommunication = errors.New("unknown communication style")
	errUnknownDay           = errors.New("unknown day")
	errUnknownTimeSlot      = errors.New("unknown time slot")
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username string   `json:"username" binding:"required" example:"JettMain99"`
	Email    string   `json:"email" binding:"required,email" example:"jett@val.com"`
	Password string   `json:"password" binding:"required,min=8" example:"password123"`
	Rank     string   `json:"rank" example:"Gold"`
	Games    []string `json:"games"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Login    string `json:"login" binding:"required" example:"JettMain99"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// RelationStatus describes how a user relates to the viewer.
type RelationStatus string

const (
	RelationFriends  RelationStatus = "friends"
	RelationIncoming RelationStatus = "incoming" // they sent the viewer a request
	RelationOutgoing RelationStatus = "outgoing" // the viewer sent them a request
)

// PublicUserResponse defines the structure for a user's public profile.
type PublicUserResponse struct {
	ID              string               `json:"id"`
	UniqueCode      string               `json:"unique_code"`
	Username        string               `json:"username"`
	Bio             string               `json:"bio"`
	Rank            string               `json:"rank"`
	Level           int                  `json:"level"`
	YearsExperience int                  `json:"years_experience"`
	Games           []string             `json:"games"`
	SquadProfile    *models.SquadProfile `json:"squad_profile,omitempty"`
	RelationToMe    *RelationStatus      `json:"relation_to_me,omitempty"`
}

// PrivateUserResponse defines the structure for the authenticated user's own profile.
type PrivateUserResponse struct {
	PublicUserResponse
	Email            string   `json:"email"`
	Friends          []string `json:"friends"`
	IncomingRequests []string `json:"incoming_requests"`
	OutgoingRequests []string `json:"outgoing_requests"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new user and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Rank == "" {
		input.Rank = matching.Ranks[0]
	}
	if !matching.ValidRank(input.Rank) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown rank tier"})
		return
	}
	for _, g := range input.Games {
		if !catalog.ValidGame(g) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown game: " + g})
			return
		}
	}

	var existingUser models.User
	if err := database.DB.Where("username = ? OR email = ?", input.Username, input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	code, err := generateUniqueCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate friend code"})
		return
	}

	user := models.User{
		ID:               uuid.NewString(),
		UniqueCode:       code,
		Username:         input.Username,
		Email:            input.Email,
		PasswordHash:     string(hashedPassword),
		Rank:             input.Rank,
		Level:            1,
		Games:            input.Games,
		Friends:          []string{},
		IncomingRequests: []string{},
		OutgoingRequests: []string{},
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	tok, err := token.Generate(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": tok, "unique_code": user.UniqueCode})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with username/email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", input.Login, input.Login).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	tok, err := token.Generate(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tok})
}

// endregion

// region --- User Handlers ---

// SearchUsers godoc
// @Summary      Search for users
// @Description  Searches for users by username with pagination.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Search query for username"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  PaginatedResponse[PublicUserResponse]
// @Failure      401   {object}  ErrorResponse
// @Router       /users [get]
func SearchUsers(c *gin.Context) {
	viewer := currentUser(c)
	if viewer == nil {
		return
	}
	searchQuery := c.Query("q")
	page, limit := pageParams(c)

	query := database.DB.Model(&models.User{}).Where("id <> ?", viewer.ID).Order("username")
	if searchQuery != "" {
		query = query.Where("username ILIKE ?", "%"+searchQuery+"%")
	}

	paginated, err := Paginate[models.User](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	userResponses := make([]PublicUserResponse, 0, len(paginated.Data))
	for i := range paginated.Data {
		userResponses = append(userResponses, buildPublicUserResponse(&paginated.Data[i], viewer))
	}

	c.JSON(http.StatusOK, PaginatedResponse[PublicUserResponse]{Data: userResponses, Meta: paginated.Meta})
}

// GetUserByID godoc
// @Summary      Get user by ID
// @Description  Retrieves the public profile for a specific user, including relationship data.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  PublicUserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func GetUserByID(c *gin.Context) {
	viewer := currentUser(c)
	if viewer == nil {
		return
	}

	targetUserID := c.Param("id")
	if targetUserID == viewer.ID {
		c.JSON(http.StatusOK, buildPrivateUserResponse(viewer))
		return
	}

	var targetUser models.User
	if err := database.DB.First(&targetUser, "id = ?", targetUserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, buildPublicUserResponse(&targetUser, viewer))
}

// GetMe godoc
// @Summary      Get current user's info
// @Description  Retrieves the private profile for the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PrivateUserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func GetMe(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	c.JSON(http.StatusOK, buildPrivateUserResponse(user))
}

// UpdateSquadProfile godoc
// @Summary      Save the squad profile
// @Description  Replaces the current user's squad-finder profile wholesale.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body models.SquadProfile true "Squad profile"
// @Success      200  {object}  PrivateUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me/squad-profile [put]
func UpdateSquadProfile(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var input models.SquadProfile
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateSquadProfile(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user.SquadProfile = &input
	if err := database.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save squad profile"})
		return
	}

	c.JSON(http.StatusOK, buildPrivateUserResponse(user))
}

// endregion

// region --- Helpers ---

// currentUser loads the authenticated user's record, responding 404 itself
// when the record is gone. Callers must bail out on nil.
func currentUser(c *gin.Context) *models.User {
	viewerID, _ := c.Get("userID")

	var user models.User
	if err := database.DB.First(&user, "id = ?", viewerID.(string)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return nil
	}
	return &user
}

func buildPublicUserResponse(targetUser *models.User, viewer *models.User) PublicUserResponse {
	resp := PublicUserResponse{
		ID:              targetUser.ID,
		UniqueCode:      targetUser.UniqueCode,
		Username:        targetUser.Username,
		Bio:             targetUser.Bio,
		Rank:            targetUser.Rank,
		Level:           targetUser.Level,
		YearsExperience: targetUser.YearsExperience,
		Games:           targetUser.Games,
		SquadProfile:    targetUser.SquadProfile,
	}

	var status RelationStatus
	switch {
	case slices.Contains(viewer.Friends, targetUser.ID):
		status = RelationFriends
	case slices.Contains(viewer.IncomingRequests, targetUser.ID):
		status = RelationIncoming
	case slices.Contains(viewer.OutgoingRequests, targetUser.ID):
		status = RelationOutgoing
	}
	if status != "" {
		resp.RelationToMe = &status
	}

	return resp
}

func buildPrivateUserResponse(user *models.User) PrivateUserResponse {
	return PrivateUserResponse{
		PublicUserResponse: PublicUserResponse{
			ID:              user.ID,
			UniqueCode:      user.UniqueCode,
			Username:        user.Username,
			Bio:             user.Bio,
			Rank:            user.Rank,
			Level:           user.Level,
			YearsExperience: user.YearsExperience,
			Games:           user.Games,
			SquadProfile:    user.SquadProfile,
		},
		Email:            user.Email,
		Friends:          user.Friends,
		IncomingRequests: user.IncomingRequests,
		OutgoingRequests: user.OutgoingRequests,
	}
}

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateUniqueCode produces a fresh 6-character friend code, retrying on
// the off chance of a collision with an existing user.
func generateUniqueCode() (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		buf := make([]byte, 6)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for i := range buf {
			buf[i] = codeCharset[int(buf[i])%len(codeCharset)]
		}
		code := string(buf)

		var count int64
		if err := database.DB.Model(&models.User{}).Where("unique_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errCodeSpaceExhausted
}

func validateSquadProfile(p *models.SquadProfile) error {
	for _, r := range p.Roles {
		if !slices.Contains(matching.Roles, r) {
			return errUnknownRole
		}
	}
	if p.Communication != "" && !slices.Contains(catalog.CommunicationStyles, p.Communication) {
		return errUnknownCommunication
	}
	for _, d := range p.Availability {
		if !catalog.ValidDay(d.Day) {
			return errUnknownDay
		}
		for _, t := range d.Times {
			if !catalog.ValidSlot(t) {
				return errUnknownTimeSlot
			}
		}
	}
	return nil
}

// endregion
