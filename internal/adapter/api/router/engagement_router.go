package router

import (
	"github.com/labstack/echo/v4"

	"sincmart/internal/adapter/api/handler"
)

func SetupEngagementRouter(e *echo.Echo) {
	engagementHandler := handler.GetEngagementHandler()

	e.GET("/reviews/:productId", engagementHandler.ListReviews)
	e.POST("/reviews", engagementHandler.CreateReview)

	e.GET("/reports/:productId", engagementHandler.ListReports)
	e.POST("/reports", engagementHandler.CreateReport)

	e.GET("/QandA/:productId", engagementHandler.ListQuestions)
	e.POST("/QandA/:productId", engagementHandler.CreateQuestion)
	e.PATCH("/QandA/:id", engagementHandler.AnswerQuestion)
}
