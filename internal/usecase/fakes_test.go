package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sincmart/internal/domain/entity"
	"sincmart/pkg/errors"
)

// In-memory repositories mirroring the store contract of the MongoDB
// implementations, including identifier parsing and modified counts.

type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	product.ID = primitive.NewObjectID()
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.BadRequest("Invalid product id", err)
	}
	for _, p := range f.products {
		if p.ID == oid {
			return p, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (f *fakeProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return append([]*entity.Product{}, f.products...), nil
}

func (f *fakeProductRepo) ListPaged(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	total := int64(len(f.products))
	if offset >= len(f.products) {
		return []*entity.Product{}, total, nil
	}
	end := offset + limit
	if end > len(f.products) {
		end = len(f.products)
	}
	return append([]*entity.Product{}, f.products[offset:end]...), total, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, errors.BadRequest("Invalid product id", err)
	}
	for i, p := range f.products {
		if p.ID == oid {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return append([]*entity.User{}, f.users...), nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id string, role string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, errors.BadRequest("Invalid user id", err)
	}
	for _, u := range f.users {
		if u.ID == oid {
			if u.Role == role {
				return 0, nil
			}
			u.Role = role
			return 1, nil
		}
	}
	return 0, nil
}

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	review.ID = primitive.NewObjectID()
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) ListByProductID(ctx context.Context, productID string) ([]*entity.Review, error) {
	matched := []*entity.Review{}
	for _, r := range f.reviews {
		if r.ProductID == productID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

type fakeReportRepo struct {
	reports []*entity.Report
	err     error
}

func (f *fakeReportRepo) Create(ctx context.Context, report *entity.Report) error {
	if f.err != nil {
		return f.err
	}
	report.ID = primitive.NewObjectID()
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeReportRepo) ListByProductID(ctx context.Context, productID string) ([]*entity.Report, error) {
	matched := []*entity.Report{}
	for _, r := range f.reports {
		if r.ProductID == productID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

type fakeQuestionRepo struct {
	questions []*entity.Question
}

func (f *fakeQuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	question.ID = primitive.NewObjectID()
	f.questions = append(f.questions, question)
	return nil
}

func (f *fakeQuestionRepo) ListByProductID(ctx context.Context, productID string) ([]*entity.Question, error) {
	matched := []*entity.Question{}
	for _, q := range f.questions {
		if q.ProductID == productID {
			matched = append(matched, q)
		}
	}
	return matched, nil
}

func (f *fakeQuestionRepo) SetAnswer(ctx context.Context, id string, answer string) (*entity.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.BadRequest("Invalid question id", err)
	}
	for _, q := range f.questions {
		if q.ID == oid {
			q.Answer = answer
			return q, nil
		}
	}
	return nil, errors.NotFound("Question", nil)
}

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	order.ID = primitive.NewObjectID()
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	return append([]*entity.Order{}, f.orders...), nil
}
