package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/r0nnniiee/GAME-match/internal/auth"
	"github.com/r0nnniiee/GAME-match/internal/config"
	"github.com/r0nnniiee/GAME-match/internal/database"
	"github.com/r0nnniiee/GAME-match/internal/handler"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           GAME-match API
// @version         1.0
// @description     Squad compatibility matching and social graph for gamers.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	logg := logrus.New()
	logg.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.DateTime,
		FullTimestamp:   true,
	})

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL, logg)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("", handler.SearchUsers) // Must be before /:id
			userRoutes.GET("/me", handler.GetMe)
			userRoutes.GET("/me/relations", handler.GetRelations)
			userRoutes.PUT("/me/squad-profile", handler.UpdateSquadProfile)
			userRoutes.GET("/:id", handler.GetUserByID)
		}

		// Friendship routes (protected)
		friendRoutes := apiV1.Group("/friends")
		friendRoutes.Use(auth.AuthMiddleware())
		{
			friendRoutes.POST("/requests", handler.SendRequest)
			friendRoutes.POST("/requests/:id/accept", handler.AcceptRequest)
			friendRoutes.POST("/requests/:id/decline", handler.DeclineRequest)
			friendRoutes.POST("/requests/:id/cancel", handler.CancelRequest)
		}

		// Squad finder (protected)
		squadRoutes := apiV1.Group("/squad")
		squadRoutes.Use(auth.AuthMiddleware())
		{
			squadRoutes.POST("/matches", handler.FindSquadMatches)
		}

		// Catalog routes (protected)
		catalogRoutes := apiV1.Group("/catalog")
		catalogRoutes.Use(auth.AuthMiddleware())
		{
			catalogRoutes.GET("/games", handler.GetGames)
			catalogRoutes.GET("/ranks", handler.GetRanks)
			catalogRoutes.GET("/roles", handler.GetRoles)
			catalogRoutes.GET("/slots", handler.GetTimeSlots)
		}

		// Voice channel routes (protected)
		voiceRoutes := apiV1.Group("/voice")
		voiceRoutes.Use(auth.AuthMiddleware())
		{
			voiceRoutes.POST("", handler.CreateVoiceChannel)
			voiceRoutes.GET("", handler.ListVoiceChannels)
			voiceRoutes.POST("/:id/join", handler.JoinVoiceChannel)
			voiceRoutes.POST("/:id/leave", handler.LeaveVoiceChannel)
			voiceRoutes.GET("/:id/events", handler.VoiceChannelEvents)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			adminRoutes.DELETE("/voice/:id", handler.CloseVoiceChannel)
		}
	}

	logg.Infof("Server is running on %s", config.AppConfig.ListenAddr)
	logg.Info("Swagger UI is available at /swagger/index.html")
	logg.Fatal(router.Run(config.AppConfig.ListenAddr))
}
