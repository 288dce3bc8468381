package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/talentscout/scout/internal/api/handlers"
	"github.com/talentscout/scout/internal/api/middleware"
)

type Deps struct {
	Interview *handlers.InterviewHandler
	Resume    *handlers.ResumeHandler
	Employer  *handlers.EmployerHandler
	WS        *handlers.WSHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Candidate-facing interview (sessions are anonymous and ephemeral)
	r.POST("/interview/start", d.Interview.Start)
	r.GET("/interview/:session_id", d.Interview.Get)
	r.POST("/interview/:session_id/message", d.Interview.Message)
	r.POST("/interview/:session_id/reset", d.Interview.Reset)
	r.POST("/interview/:session_id/resume", d.Resume.Upload)
	r.GET("/interview/:session_id/ws", d.WS.InterviewWS)

	// Employer login
	r.POST("/employer/login", d.Employer.Login)

	// Dashboard (JWT)
	dash := r.Group("/dashboard")
	dash.Use(middleware.EmployerAuth())

	dash.GET("/candidates", d.Employer.Candidates)
	dash.GET("/candidates/:candidate_id/resume", d.Employer.ResumeLink)
	dash.GET("/filters", d.Employer.SavedFilter)
	dash.PUT("/filters", d.Employer.UpdateSavedFilter)
}
