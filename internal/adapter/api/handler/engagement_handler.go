package handler

import (
	"github.com/labstack/echo/v4"

	"sincmart/internal/usecase"
	"sincmart/pkg/response"
)

type EngagementHandler struct {
	engagementUseCase *usecase.EngagementUseCase
}

func NewEngagementHandler(engagementUseCase *usecase.EngagementUseCase) *EngagementHandler {
	return &EngagementHandler{
		engagementUseCase: engagementUseCase,
	}
}

type createReviewRequest struct {
	ProductID string `json:"productId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserPhoto string `json:"userPhoto"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type createReportRequest struct {
	ProductID     string `json:"productId"`
	Reason        string `json:"reason"`
	Details       string `json:"details"`
	ReporterEmail string `json:"reporterEmail"`
}

type createQuestionRequest struct {
	Question string `json:"question" validate:"required"`
}

type answerQuestionRequest struct {
	Answer string `json:"answer"`
}

func (h *EngagementHandler) ListReviews(c echo.Context) error {
	productID := c.Param("productId")

	reviews, err := h.engagementUseCase.ListReviews(c.Request().Context(), productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *EngagementHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.engagementUseCase.CreateReview(c.Request().Context(), usecase.CreateReviewInput{
		ProductID: req.ProductID,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		UserPhoto: req.UserPhoto,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, echo.Map{
		"insertedId": review.ID,
	})
}

func (h *EngagementHandler) ListReports(c echo.Context) error {
	productID := c.Param("productId")

	reports, err := h.engagementUseCase.ListReports(c.Request().Context(), productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reports)
}

func (h *EngagementHandler) CreateReport(c echo.Context) error {
	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.engagementUseCase.CreateReport(c.Request().Context(), usecase.CreateReportInput{
		ProductID:     req.ProductID,
		Reason:        req.Reason,
		Details:       req.Details,
		ReporterEmail: req.ReporterEmail,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, echo.Map{
		"insertedId": report.ID,
	})
}

func (h *EngagementHandler) ListQuestions(c echo.Context) error {
	productID := c.Param("productId")

	questions, err := h.engagementUseCase.ListQuestions(c.Request().Context(), productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, questions)
}

func (h *EngagementHandler) CreateQuestion(c echo.Context) error {
	productID := c.Param("productId")

	var req createQuestionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	question, err := h.engagementUseCase.CreateQuestion(c.Request().Context(), productID, req.Question)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, question)
}

func (h *EngagementHandler) AnswerQuestion(c echo.Context) error {
	id := c.Param("id")

	var req answerQuestionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	question, err := h.engagementUseCase.AnswerQuestion(c.Request().Context(), id, req.Answer)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, question)
}
