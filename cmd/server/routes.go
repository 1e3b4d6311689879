package main

import (
	"github.com/gin-gonic/gin"
	"investgrow.backend/internal/interfaces/http/handlers"
	"investgrow.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler            *handlers.AuthHandler
	userHandler            *handlers.UserHandler
	kycHandler             *handlers.KycHandler
	investmentHandler      *handlers.InvestmentHandler
	communicationHandler   *handlers.CommunicationHandler
	blogHandler            *handlers.BlogHandler
	adminHandler           *handlers.AdminHandler
	authMiddleware         gin.HandlerFunc
	optionalAuthMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Profile routes (protected)
		user := v1.Group("/user")
		user.Use(d.authMiddleware)
		{
			user.GET("/profile", d.userHandler.GetProfile)
			user.PATCH("/profile", d.userHandler.UpdateProfile)
			user.POST("/change-password", d.userHandler.ChangePassword)
		}

		// KYC routes (protected)
		kyc := v1.Group("/kyc")
		kyc.Use(d.authMiddleware)
		{
			kyc.POST("/upload", d.kycHandler.UploadDocument)
			kyc.GET("/status", d.kycHandler.GetStatus)
		}

		// Plan catalog (public read, admin write)
		plans := v1.Group("/plans")
		{
			plans.GET("", d.investmentHandler.GetPlans)
			plans.GET("/:id", d.investmentHandler.GetPlanByID)
			plans.POST("", d.authMiddleware, middleware.RequireAdmin(), d.investmentHandler.CreatePlan)
			plans.PATCH("/:id", d.authMiddleware, middleware.RequireAdmin(), d.investmentHandler.UpdatePlan)
		}

		// Investment routes (protected)
		investments := v1.Group("/investments")
		investments.Use(d.authMiddleware)
		{
			investments.POST("", middleware.IdempotencyMiddleware(), d.investmentHandler.CreateInvestment)
			investments.GET("", d.investmentHandler.GetUserInvestments)
			investments.GET("/:id", d.investmentHandler.GetInvestmentByID)
		}

		// Lead capture (anonymous allowed, linked when authenticated)
		communication := v1.Group("/communication")
		{
			communication.POST("/consultations", d.optionalAuthMiddleware, d.communicationHandler.CreateConsultation)
			communication.GET("/consultations/my", d.authMiddleware, d.communicationHandler.GetUserConsultations)
			communication.POST("/contact", d.optionalAuthMiddleware, d.communicationHandler.CreateContactMessage)
		}

		// Blog (public)
		blog := v1.Group("/blog")
		{
			blog.GET("/posts", d.blogHandler.GetPosts)
			blog.GET("/posts/:slug", d.blogHandler.GetPostBySlug)
		}

		// Admin console (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/stats", d.adminHandler.GetStats)
			admin.GET("/users", d.adminHandler.GetUsers)
			admin.GET("/orders", d.adminHandler.GetOrders)
			admin.GET("/payments", d.adminHandler.GetPayments)
			admin.GET("/logs", d.adminHandler.GetLogs)

			admin.GET("/consultations", d.communicationHandler.ListConsultations)
			admin.PUT("/consultations/:id/status", d.communicationHandler.UpdateConsultationStatus)
		}
	}
}
