package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/fitpulse/internal/app/controllers"
	"github.com/oguzk/fitpulse/internal/app/models"
	"github.com/oguzk/fitpulse/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	gymController *controllers.GymController,
	exerciseController *controllers.ExerciseController,
	challengeController *controllers.ChallengeController,
	workoutController *controllers.WorkoutController,
	notificationController *controllers.NotificationController,
	badgeController *controllers.BadgeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetProfile)
			users.PUT("/me", userController.UpdateProfile)
			users.PUT("/me/password", userController.ChangePassword)
			users.GET("/me/stats", userController.GetStats)
		}

		gyms := authenticated.Group("/gyms")
		{
			gyms.GET("", gymController.GetGyms)
			gyms.GET("/mine", gymController.GetMyGyms)
			gyms.GET("/:id", gymController.GetGymByID)

			ownerOnly := gyms.Group("")
			ownerOnly.Use(authMiddleware.RoleRequired(models.RoleGymOwner, models.RoleSuperAdmin))
			{
				ownerOnly.POST("", gymController.CreateGym)
				ownerOnly.PUT("/:id", gymController.UpdateGym)
				ownerOnly.DELETE("/:id", gymController.DeleteGym)
			}

			adminOnly := gyms.Group("")
			adminOnly.Use(authMiddleware.RoleRequired(models.RoleSuperAdmin))
			{
				adminOnly.POST("/:id/approve", gymController.ApproveGym)
				adminOnly.POST("/:id/reject", gymController.RejectGym)
			}
		}

		exercises := authenticated.Group("/exercises")
		{
			exercises.GET("", exerciseController.GetExercises)
			exercises.GET("/:id", exerciseController.GetExerciseByID)

			staffOnly := exercises.Group("")
			staffOnly.Use(authMiddleware.RoleRequired(models.RoleGymOwner, models.RoleSuperAdmin))
			{
				staffOnly.POST("", exerciseController.CreateExercise)
				staffOnly.PUT("/:id", exerciseController.UpdateExercise)
				staffOnly.DELETE("/:id", exerciseController.DeleteExercise)
			}
		}

		challenges := authenticated.Group("/challenges")
		{
			challenges.POST("", challengeController.CreateChallenge)
			challenges.GET("", challengeController.GetChallenges)
			challenges.GET("/mine", challengeController.GetMyChallenges)
			challenges.GET("/my-participations", challengeController.GetMyParticipations)
			challenges.GET("/:id", challengeController.GetChallengeByID)
			challenges.PUT("/:id", challengeController.UpdateChallenge)
			challenges.DELETE("/:id", challengeController.CancelChallenge)
			challenges.POST("/:id/join", challengeController.JoinChallenge)
			challenges.POST("/:id/leave", challengeController.LeaveChallenge)
			challenges.GET("/:id/participants", challengeController.GetParticipants)
		}

		workouts := authenticated.Group("/workouts")
		{
			workouts.POST("", workoutController.CreateWorkout)
			workouts.GET("", workoutController.GetMyWorkouts)
			workouts.DELETE("/:id", workoutController.DeleteWorkout)
		}

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.GetNotifications)
			notifications.POST("/read-all", notificationController.MarkAllRead)
			notifications.POST("/:id/read", notificationController.MarkRead)
			notifications.DELETE("/:id", notificationController.DeleteNotification)
		}

		badges := authenticated.Group("/badges")
		{
			badges.GET("", badgeController.GetAllBadges)
			badges.GET("/mine", badgeController.GetMyBadges)
		}
	}
}
