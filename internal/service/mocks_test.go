package service_test

import (
	"context"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/pdfdoc"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Create(ctx context.Context, exec sqlx.ExtContext, session *model.SigningSession) error {
	return m.Called(ctx, exec, session).Error(0)
}

func (m *MockSessionRepository) GetByToken(ctx context.Context, exec sqlx.ExtContext, token string) (*model.SigningSession, error) {
	args := m.Called(ctx, exec, token)
	if s, ok := args.Get(0).(*model.SigningSession); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionRepository) MarkDelivered(ctx context.Context, exec sqlx.ExtContext, token string) error {
	return m.Called(ctx, exec, token).Error(0)
}

func (m *MockSessionRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).(sqlx.ExtContext), args.Get(1).(func() error), args.Get(2).(func() error), args.Error(3)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Create(ctx context.Context, exec sqlx.ExtContext, delivery *model.Delivery) error {
	return m.Called(ctx, exec, delivery).Error(0)
}

type MockRecipientRepository struct{ mock.Mock }

func (m *MockRecipientRepository) ListStaff(ctx context.Context, exec sqlx.ExtContext) ([]model.Staff, error) {
	args := m.Called(ctx, exec)
	if s, ok := args.Get(0).([]model.Staff); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecipientRepository) ListClients(ctx context.Context, exec sqlx.ExtContext) ([]model.Client, error) {
	args := m.Called(ctx, exec)
	if c, ok := args.Get(0).([]model.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecipientRepository) StaffExists(ctx context.Context, exec sqlx.ExtContext, id int64) (bool, error) {
	args := m.Called(ctx, exec, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecipientRepository) ClientExists(ctx context.Context, exec sqlx.ExtContext, id string) (bool, error) {
	args := m.Called(ctx, exec, id)
	return args.Bool(0), args.Error(1)
}

type MockCacheRepository struct{ mock.Mock }

func (m *MockCacheRepository) SetSession(ctx context.Context, session *model.SigningSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockCacheRepository) GetSession(ctx context.Context, token string) (*model.SigningSession, error) {
	args := m.Called(ctx, token)
	if s, ok := args.Get(0).(*model.SigningSession); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCacheRepository) DeleteSession(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type MockS3Storage struct{ mock.Mock }

func (m *MockS3Storage) PutObject(ctx context.Context, key string, contentType string, data []byte) error {
	return m.Called(ctx, key, contentType, data).Error(0)
}

func (m *MockS3Storage) GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type stubRenderer struct {
	info *pdfdoc.Info
	err  error
}

func (r stubRenderer) Render(ctx context.Context, data []byte) (*pdfdoc.Info, error) {
	return r.info, r.err
}

// blockingRenderer never finishes before its context does
type blockingRenderer struct{}

func (blockingRenderer) Render(ctx context.Context, data []byte) (*pdfdoc.Info, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
