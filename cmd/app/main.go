package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"famboard/cmd/fx/account_fx"
	"famboard/cmd/fx/controllers_fx"
	"famboard/cmd/fx/db_fx"
	"famboard/cmd/fx/family_fx"
	"famboard/cmd/fx/invite_fx"
	"famboard/cmd/fx/logger_fx"
	"famboard/cmd/fx/realtime_fx"
	"famboard/cmd/fx/task_fx"
	"famboard/internal/api/controllers"
	"famboard/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		account_fx.Module,
		family_fx.Module,
		invite_fx.Module,
		task_fx.Module,
		realtime_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	familyController *controllers.FamilyController,
	inviteController *controllers.InviteController,
	taskController *controllers.TaskController,
	realtimeController *controllers.RealtimeController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, familyController, inviteController, taskController, realtimeController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	familyController *controllers.FamilyController,
	inviteController *controllers.InviteController,
	taskController *controllers.TaskController,
	realtimeController *controllers.RealtimeController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	families := r.Group("/families")
	families.Use(middleware.JWTAuthMiddleware())
	families.POST("", familyController.CreateFamily)
	families.GET("", familyController.GetUserFamilies)
	families.GET("/:familyId", familyController.GetFamilyByID)
	families.PUT("/:familyId", familyController.UpdateFamily)
	families.DELETE("/:familyId", familyController.DeleteFamily)
	families.GET("/:familyId/members", familyController.GetFamilyMembers)
	families.PUT("/:familyId/members/role", familyController.UpdateMemberRole)
	families.DELETE("/:familyId/members/:memberId", familyController.RemoveMember)
	families.POST("/:familyId/leave", familyController.LeaveFamily)
	families.GET("/:familyId/stats", familyController.GetFamilyStats)
	families.POST("/:familyId/tasks", taskController.CreateTask)
	families.GET("/:familyId/tasks", taskController.ListFamilyTasks)
	families.PUT("/:familyId/tasks/:taskId/assign", taskController.AssignTask)

	invites := r.Group("/invites")
	invites.Use(middleware.JWTAuthMiddleware())
	invites.POST("", inviteController.CreateInvite)
	invites.POST("/join", inviteController.RequestToJoinFamily)

	joinRequests := r.Group("/join-requests")
	joinRequests.Use(middleware.JWTAuthMiddleware())
	joinRequests.POST("/:requestId/respond", inviteController.RespondToJoinRequest)
	joinRequests.DELETE("/:requestId", inviteController.CancelJoinRequest)
	joinRequests.GET("/pending/:familyId", inviteController.GetPendingJoinRequests)
	joinRequests.GET("/mine", inviteController.GetMyJoinRequests)

	// Authentication happens inside the handler, off the handshake token.
	r.GET("/ws", realtimeController.HandleConnection)
}
