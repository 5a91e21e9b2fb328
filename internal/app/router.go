package app

import (
	"sam_awards_backend/docs"
	"sam_awards_backend/internal/config"
	"sam_awards_backend/internal/middleware"
	"sam_awards_backend/internal/model"
	"sam_awards_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerNomineeRoutes(authGroup, c)
		a.registerReviewRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// the award catalogue is browsable without an account
		public.GET("/categories", c.category.ListCategories)
		public.GET("/categories/employee/:group/subcategories", c.category.GetSubcategories)
		public.GET("/categories/:slug", c.category.GetCategory)
		public.GET("/categories/:slug/criteria", c.category.GetCriteria)
	}
}

func (a *App) registerNomineeRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/profile", c.auth.UpdateProfile)

	// eligibility questionnaire
	rg.POST("/eligibility/:slug/start", c.eligibility.StartCheck)
	rg.GET("/eligibility/:slug", c.eligibility.GetState)
	rg.POST("/eligibility/:slug/answers", c.eligibility.Answer)
	rg.POST("/eligibility/:slug/evaluate", c.eligibility.Evaluate)
	rg.DELETE("/eligibility/:slug/redirect", c.eligibility.CancelRedirect)

	// nomination forms
	rg.POST("/nominations", c.nomination.Submit)
	rg.GET("/nominations", c.nomination.ListMine)
	rg.POST("/nominations/validate", c.nomination.Validate)
	rg.PUT("/nominations/drafts", c.nomination.SaveDraft)
	rg.GET("/nominations/drafts/:slug", c.nomination.LoadDraft)
	rg.DELETE("/nominations/drafts/:slug", c.nomination.DiscardDraft)
	rg.GET("/nominations/track/:ref", c.nomination.Track)
	rg.GET("/nominations/:id", c.nomination.Get)
	rg.POST("/nominations/:id/attachments", c.nomination.UploadAttachment)
	rg.DELETE("/nominations/:id/attachments/:attachmentId", c.nomination.DeleteAttachment)
}

func (a *App) registerReviewRoutes(rg *gin.RouterGroup, c *controllers) {
	review := rg.Group("/review")
	review.Use(middleware.RoleMiddleware(model.Reviewer, model.Admin))
	{
		review.GET("/nominations", c.review.List)
		review.GET("/overview", c.review.Overview)
		review.POST("/nominations/:id/approve", c.review.Approve)
		review.POST("/nominations/:id/reject", c.review.Reject)
	}
}
