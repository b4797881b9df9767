package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/models"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/pkg/apperror"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/repository"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/repository/memory"
)

var testNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

const testPhone = "+15551234567"

func TestOTPService_RequestOTP_CreatesPendingSession(t *testing.T) {
	sessions := new(mockOTPRepo)
	users := new(mockUserRepo)
	svc := NewOTPService(sessions, users, newFixedClock(testNow), &scriptedCodes{codes: []string{"428193"}}, 0)
	ctx := context.Background()

	sessions.On("Create", ctx, mock.MatchedBy(func(s *models.OTPSession) bool {
		return s.PhoneNumber == testPhone &&
			s.Code == "428193" &&
			!s.Verified &&
			s.ID != "" &&
			s.CreatedAt.Equal(testNow) &&
			s.ExpiresAt.Equal(testNow.Add(10*time.Minute))
	})).Return(nil)

	res, err := svc.RequestOTP(ctx, testPhone, "u1")

	require.NoError(t, err)
	assert.Equal(t, "42****", res.Hint)
	assert.Equal(t, testNow.Add(DefaultOTPTTL), res.ExpiresAt)
	sessions.AssertExpectations(t)
}

func TestOTPService_RequestOTP_StoreFailure(t *testing.T) {
	sessions := new(mockOTPRepo)
	svc := NewOTPService(sessions, new(mockUserRepo), newFixedClock(testNow), &scriptedCodes{codes: []string{"111111"}}, time.Minute)
	ctx := context.Background()

	storeErr := errors.New("connection reset")
	sessions.On("Create", ctx, mock.Anything).Return(storeErr)

	_, err := svc.RequestOTP(ctx, testPhone, "u1")
	assert.ErrorIs(t, err, storeErr)
}

func TestOTPService_RequestOTP_GeneratorFailure(t *testing.T) {
	sessions := new(mockOTPRepo)
	svc := NewOTPService(sessions, new(mockUserRepo), newFixedClock(testNow), &scriptedCodes{err: errors.New("entropy")}, 0)

	_, err := svc.RequestOTP(context.Background(), testPhone, "u1")
	assert.Error(t, err)
	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOTPService_ConfirmOTP_Success(t *testing.T) {
	sessions := new(mockOTPRepo)
	users := new(mockUserRepo)
	svc := NewOTPService(sessions, users, newFixedClock(testNow), nil, 0)
	ctx := context.Background()

	session := &models.OTPSession{ID: "s1", PhoneNumber: testPhone, Code: "428193", ExpiresAt: testNow.Add(5 * time.Minute)}
	sessions.On("FindPending", ctx, testPhone, "428193").Return(session, nil)
	sessions.On("MarkVerified", ctx, "s1").Return(true, nil)
	users.On("BindPhone", ctx, "u1", testPhone, testNow).Return(&models.User{ID: "u1", PhoneNumber: strPtr(testPhone), Verified: true}, nil)

	err := svc.ConfirmOTP(ctx, testPhone, "428193", "u1")

	assert.NoError(t, err)
	sessions.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestOTPService_ConfirmOTP_AtExactExpiry(t *testing.T) {
	sessions := new(mockOTPRepo)
	users := new(mockUserRepo)
	svc := NewOTPService(sessions, users, newFixedClock(testNow), nil, 0)
	ctx := context.Background()

	session := &models.OTPSession{ID: "s1", PhoneNumber: testPhone, Code: "428193", ExpiresAt: testNow}
	sessions.On("FindPending", ctx, testPhone, "428193").Return(session, nil)
	sessions.On("MarkVerified", ctx, "s1").Return(true, nil)
	users.On("BindPhone", ctx, "u1", testPhone, testNow).Return(&models.User{ID: "u1"}, nil)

	assert.NoError(t, svc.ConfirmOTP(ctx, testPhone, "428193", "u1"))
}

func TestOTPService_ConfirmOTP_InvalidCode(t *testing.T) {
	sessions := new(mockOTPRepo)
	users := new(mockUserRepo)
	svc := NewOTPService(sessions, users, newFixedClock(testNow), nil, 0)
	ctx := context.Background()

	sessions.On("FindPending", ctx, testPhone, "000000").Return(nil, repository.ErrOTPSessionNotFound)

	err := svc.ConfirmOTP(ctx, testPhone, "000000", "u1")

	assert.ErrorIs(t, err, apperror.ErrInvalidCode)
	sessions.AssertNotCalled(t, "MarkVerified", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "BindPhone", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOTPService_ConfirmOTP_ExpiredIsRepeatable(t *testing.T) {
	sessions := new(mockOTPRepo)
	users := new(mockUserRepo)
	svc := NewOTPService(sessions, users, newFixedClock(testNow), nil, 0)
	ctx := context.Background()

	session := &models.OTPSession{ID: "s1", PhoneNumber: testPhone, Code: "428193", ExpiresAt: testNow.Add(-time.Second)}
	sessions.On("FindPending", ctx, testPhone, "428193").Return(session, nil)

	for i := 0; i < 2; i++ {
		err := svc.ConfirmOTP(ctx, testPhone, "428193", "u1")
		assert.ErrorIs(t, err, apperror.ErrCodeExpired)
	}
	sessions.AssertNotCalled(t, "MarkVerified", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "BindPhone", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOTPService_ConfirmOTP_LostRace(t *testing.T) {
	sessions := new(mockOTPRepo)
	users := new(mockUserRepo)
	svc := NewOTPService(sessions, users, newFixedClock(testNow), nil, 0)
	ctx := context.Background()

	session := &models.OTPSession{ID: "s1", PhoneNumber: testPhone, Code: "428193", ExpiresAt: testNow.Add(time.Minute)}
	sessions.On("FindPending", ctx, testPhone, "428193").Return(session, nil)
	sessions.On("MarkVerified", ctx, "s1").Return(false, nil)

	err := svc.ConfirmOTP(ctx, testPhone, "428193", "u1")

	assert.ErrorIs(t, err, apperror.ErrInvalidCode)
	users.AssertNotCalled(t, "BindPhone", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOTPService_ConfirmOTP_StoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("db down")

	t.Run("find", func(t *testing.T) {
		sessions := new(mockOTPRepo)
		svc := NewOTPService(sessions, new(mockUserRepo), newFixedClock(testNow), nil, 0)
		sessions.On("FindPending", ctx, testPhone, "428193").Return(nil, storeErr)

		err := svc.ConfirmOTP(ctx, testPhone, "428193", "u1")
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, apperror.ErrInvalidCode)
	})

	t.Run("bind", func(t *testing.T) {
		sessions := new(mockOTPRepo)
		users := new(mockUserRepo)
		svc := NewOTPService(sessions, users, newFixedClock(testNow), nil, 0)
		session := &models.OTPSession{ID: "s1", PhoneNumber: testPhone, Code: "428193", ExpiresAt: testNow.Add(time.Minute)}
		sessions.On("FindPending", ctx, testPhone, "428193").Return(session, nil)
		sessions.On("MarkVerified", ctx, "s1").Return(true, nil)
		users.On("BindPhone", ctx, "u1", testPhone, testNow).Return(nil, storeErr)

		err := svc.ConfirmOTP(ctx, testPhone, "428193", "u1")
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestOTPService_GetUserPhoneStatus(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewOTPService(new(mockOTPRepo), users, newFixedClock(testNow), nil, 0)
	ctx := context.Background()

	users.On("GetByID", ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	users.On("GetByID", ctx, "pending").Return(&models.User{ID: "pending", PhoneNumber: strPtr(testPhone), Verified: false}, nil)
	users.On("GetByID", ctx, "u1").Return(&models.User{ID: "u1", PhoneNumber: strPtr(testPhone), Verified: true}, nil)

	status, err := svc.GetUserPhoneStatus(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, models.PhoneStatus{HasPhone: false}, status)

	status, err = svc.GetUserPhoneStatus(ctx, "pending")
	require.NoError(t, err)
	assert.False(t, status.HasPhone)
	assert.Empty(t, status.PhoneNumber)

	status, err = svc.GetUserPhoneStatus(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.PhoneStatus{HasPhone: true, PhoneNumber: testPhone}, status)
}

func TestOTPService_FlowOnMemoryStore(t *testing.T) {
	store := memory.NewStore()
	clock := newFixedClock(testNow)
	codes := &scriptedCodes{codes: []string{"123456", "654321", "777777"}}
	svc := NewOTPService(store.OTP(), store.Users(), clock, codes, 0)
	ctx := context.Background()

	status, err := svc.GetUserPhoneStatus(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, status.HasPhone)

	_, err = svc.RequestOTP(ctx, testPhone, "u1")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ConfirmOTP(ctx, testPhone, "000000", "u1"), apperror.ErrInvalidCode)
	require.NoError(t, svc.ConfirmOTP(ctx, testPhone, "123456", "u1"))
	// Сессия подтверждается ровно один раз.
	assert.ErrorIs(t, svc.ConfirmOTP(ctx, testPhone, "123456", "u1"), apperror.ErrInvalidCode)

	status, err = svc.GetUserPhoneStatus(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.PhoneStatus{HasPhone: true, PhoneNumber: testPhone}, status)

	// Два активных кода для одного номера сосуществуют.
	_, err = svc.RequestOTP(ctx, testPhone, "u1")
	require.NoError(t, err)
	_, err = svc.RequestOTP(ctx, testPhone, "u1")
	require.NoError(t, err)

	clock.Advance(10*time.Minute + time.Second)
	assert.ErrorIs(t, svc.ConfirmOTP(ctx, testPhone, "654321", "u1"), apperror.ErrCodeExpired)
	assert.ErrorIs(t, svc.ConfirmOTP(ctx, testPhone, "777777", "u1"), apperror.ErrCodeExpired)
}

func TestMaskCode(t *testing.T) {
	assert.Equal(t, "05****", MaskCode("051234"))
	assert.Equal(t, "****", MaskCode("7"))
}

func TestRandomCodeGenerator(t *testing.T) {
	sixDigits := regexp.MustCompile(`^\d{6}$`)
	gen := RandomCodeGenerator{}

	for i := 0; i < 200; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, code)
	}
}
