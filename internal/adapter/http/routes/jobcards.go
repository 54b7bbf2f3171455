package routes

import (
	"jobcard_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobCards = "/jobcards"
)

func addJobCardRoutes(
	rg *gin.RouterGroup,
	jobCardHandler *handlers.JobCardHandler,
	workSessionHandler *handlers.WorkSessionHandler,
	reviewHandler *handlers.ReviewHandler,
) {
	jobcards := rg.Group(PathJobCards)
	{
		jobcards.POST("", jobCardHandler.CreateJobCard)
		jobcards.GET("", jobCardHandler.ListJobCards)
		jobcards.GET("/:id", jobCardHandler.GetJobCard)
		jobcards.GET("/:id/costs", jobCardHandler.GetCostSummary)
		jobcards.POST("/:id/cancel", jobCardHandler.CancelJobCard)

		// Lifecycle triggers driven by the assigned technician.
		jobcards.POST("/:id/start", workSessionHandler.StartWork)
		jobcards.POST("/:id/hold", workSessionHandler.Hold)
		jobcards.POST("/:id/resume", workSessionHandler.Resume)
		jobcards.POST("/:id/await-parts", workSessionHandler.AwaitParts)
		jobcards.POST("/:id/parts-arrived", workSessionHandler.PartsArrived)
		jobcards.POST("/:id/request-approval", workSessionHandler.RequestApproval)

		// Work session entries.
		jobcards.POST("/:id/timer/start", workSessionHandler.StartTimer)
		jobcards.POST("/:id/timer/stop", workSessionHandler.StopTimer)
		jobcards.GET("/:id/timer", workSessionHandler.GetOpenTimer)
		jobcards.POST("/:id/labor", workSessionHandler.LogTime)
		jobcards.POST("/:id/materials", workSessionHandler.AddMaterial)
		jobcards.DELETE("/:id/materials/:material_id", workSessionHandler.RemoveMaterial)
		jobcards.POST("/:id/tasks", workSessionHandler.AddTask)
		jobcards.PATCH("/:id/tasks", workSessionHandler.UpdateTaskProgress)
		jobcards.POST("/:id/notes", workSessionHandler.AddNote)

		// Supervisory review.
		jobcards.GET("/:id/review", reviewHandler.GetReview)
		jobcards.POST("/:id/review", reviewHandler.Decide)
	}
}
