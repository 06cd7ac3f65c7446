package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sincmart/internal/adapter/api"
	"sincmart/internal/domain/entity"
	"sincmart/pkg/errors"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// In-memory repositories backing the usecases under test.

type stubProductRepo struct {
	products []*entity.Product
}

func (s *stubProductRepo) Create(ctx context.Context, product *entity.Product) error {
	product.ID = primitive.NewObjectID()
	s.products = append(s.products, product)
	return nil
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.BadRequest("Invalid product id", err)
	}
	for _, p := range s.products {
		if p.ID == oid {
			return p, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (s *stubProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return append([]*entity.Product{}, s.products...), nil
}

func (s *stubProductRepo) ListPaged(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	total := int64(len(s.products))
	if offset >= len(s.products) {
		return []*entity.Product{}, total, nil
	}
	end := offset + limit
	if end > len(s.products) {
		end = len(s.products)
	}
	return append([]*entity.Product{}, s.products[offset:end]...), total, nil
}

func (s *stubProductRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, errors.BadRequest("Invalid product id", err)
	}
	for i, p := range s.products {
		if p.ID == oid {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type stubUserRepo struct {
	users []*entity.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, user)
	return nil
}

func (s *stubUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return append([]*entity.User{}, s.users...), nil
}

func (s *stubUserRepo) UpdateRole(ctx context.Context, id string, role string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, errors.BadRequest("Invalid user id", err)
	}
	for _, u := range s.users {
		if u.ID == oid && u.Role != role {
			u.Role = role
			return 1, nil
		}
	}
	return 0, nil
}

type stubQuestionRepo struct {
	questions []*entity.Question
}

func (s *stubQuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	question.ID = primitive.NewObjectID()
	s.questions = append(s.questions, question)
	return nil
}

func (s *stubQuestionRepo) ListByProductID(ctx context.Context, productID string) ([]*entity.Question, error) {
	matched := []*entity.Question{}
	for _, q := range s.questions {
		if q.ProductID == productID {
			matched = append(matched, q)
		}
	}
	return matched, nil
}

func (s *stubQuestionRepo) SetAnswer(ctx context.Context, id string, answer string) (*entity.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.BadRequest("Invalid question id", err)
	}
	for _, q := range s.questions {
		if q.ID == oid {
			q.Answer = answer
			return q, nil
		}
	}
	return nil, errors.NotFound("Question", nil)
}

type stubReviewRepo struct {
	reviews []*entity.Review
}

func (s *stubReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	review.ID = primitive.NewObjectID()
	s.reviews = append(s.reviews, review)
	return nil
}

func (s *stubReviewRepo) ListByProductID(ctx context.Context, productID string) ([]*entity.Review, error) {
	matched := []*entity.Review{}
	for _, r := range s.reviews {
		if r.ProductID == productID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

type stubReportRepo struct {
	reports []*entity.Report
}

func (s *stubReportRepo) Create(ctx context.Context, report *entity.Report) error {
	report.ID = primitive.NewObjectID()
	s.reports = append(s.reports, report)
	return nil
}

func (s *stubReportRepo) ListByProductID(ctx context.Context, productID string) ([]*entity.Report, error) {
	matched := []*entity.Report{}
	for _, r := range s.reports {
		if r.ProductID == productID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

type stubOrderRepo struct {
	orders []*entity.Order
}

func (s *stubOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	order.ID = primitive.NewObjectID()
	s.orders = append(s.orders, order)
	return nil
}

func (s *stubOrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	return append([]*entity.Order{}, s.orders...), nil
}
