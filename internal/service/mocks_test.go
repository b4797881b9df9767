package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/models"
)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock(now time.Time) *fixedClock { return &fixedClock{now: now} }

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type scriptedCodes struct {
	codes []string
	err   error
}

func (g *scriptedCodes) Generate() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	code := g.codes[0]
	g.codes = g.codes[1:]
	return code, nil
}

type mockOTPRepo struct {
	mock.Mock
}

func (m *mockOTPRepo) Create(ctx context.Context, session *models.OTPSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockOTPRepo) FindPending(ctx context.Context, phoneNumber, code string) (*models.OTPSession, error) {
	args := m.Called(ctx, phoneNumber, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OTPSession), args.Error(1)
}

func (m *mockOTPRepo) MarkVerified(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) BindPhone(ctx context.Context, userID, phoneNumber string, at time.Time) (*models.User, error) {
	args := m.Called(ctx, userID, phoneNumber, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) List(ctx context.Context, category string, limit int) ([]models.Post, error) {
	args := m.Called(ctx, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *mockPostRepo) SeedIfEmpty(ctx context.Context, posts []models.Post) (bool, error) {
	args := m.Called(ctx, posts)
	return args.Bool(0), args.Error(1)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.ShareEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockEventRepo) StatsByUser(ctx context.Context, userID string) (*models.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishStats(userID string, stats *models.UserStats) error {
	args := m.Called(userID, stats)
	return args.Error(0)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, phoneNumber, text string) error {
	args := m.Called(ctx, phoneNumber, text)
	return args.Error(0)
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) RecordEvent(ctx context.Context, userID, postID, action string) (*models.ShareEvent, error) {
	args := m.Called(ctx, userID, postID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShareEvent), args.Error(1)
}

func strPtr(s string) *string { return &s }
