package usecase

import (
	"context"
	"time"

	"sincmart/internal/domain/entity"
	"sincmart/internal/domain/repository"
	"sincmart/pkg/errors"
	"sincmart/pkg/logger"
)

type EngagementUseCase struct {
	reviewRepo   repository.ReviewRepository
	reportRepo   repository.ReportRepository
	questionRepo repository.QuestionRepository
}

func NewEngagementUseCase(
	reviewRepo repository.ReviewRepository,
	reportRepo repository.ReportRepository,
	questionRepo repository.QuestionRepository,
) *EngagementUseCase {
	return &EngagementUseCase{
		reviewRepo:   reviewRepo,
		reportRepo:   reportRepo,
		questionRepo: questionRepo,
	}
}

type CreateReviewInput struct {
	ProductID string `json:"productId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserPhoto string `json:"userPhoto"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type CreateReportInput struct {
	ProductID     string `json:"productId"`
	Reason        string `json:"reason"`
	Details       string `json:"details"`
	ReporterEmail string `json:"reporterEmail"`
}

func (uc *EngagementUseCase) ListReviews(ctx context.Context, productID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByProductID(ctx, productID)
}

func (uc *EngagementUseCase) CreateReview(ctx context.Context, input CreateReviewInput) (*entity.Review, error) {
	review := &entity.Review{
		ProductID: input.ProductID,
		UserName:  input.UserName,
		UserEmail: input.UserEmail,
		UserPhoto: input.UserPhoto,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *EngagementUseCase) ListReports(ctx context.Context, productID string) ([]*entity.Report, error) {
	return uc.reportRepo.ListByProductID(ctx, productID)
}

func (uc *EngagementUseCase) CreateReport(ctx context.Context, input CreateReportInput) (*entity.Report, error) {
	report := &entity.Report{
		ProductID:     input.ProductID,
		Reason:        input.Reason,
		Details:       input.Details,
		ReporterEmail: input.ReporterEmail,
		CreatedAt:     time.Now(),
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		logger.Error("Error posting report for product %s: %v", input.ProductID, err)
		return nil, err
	}

	return report, nil
}

func (uc *EngagementUseCase) ListQuestions(ctx context.Context, productID string) ([]*entity.Question, error) {
	return uc.questionRepo.ListByProductID(ctx, productID)
}

// CreateQuestion stores a new question with an empty answer and returns the
// stored record including its generated identifier.
func (uc *EngagementUseCase) CreateQuestion(ctx context.Context, productID string, text string) (*entity.Question, error) {
	if text == "" {
		return nil, errors.BadRequest("Question is required", nil)
	}

	question := &entity.Question{
		ProductID: productID,
		Question:  text,
		Answer:    "",
		CreatedAt: time.Now(),
	}

	if err := uc.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

// AnswerQuestion sets the answer on the matching record. It is idempotent
// and may be called repeatedly with the same value.
func (uc *EngagementUseCase) AnswerQuestion(ctx context.Context, id string, answer string) (*entity.Question, error) {
	return uc.questionRepo.SetAnswer(ctx, id, answer)
}
