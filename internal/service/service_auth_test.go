package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/mock"
	"github.com/MKhiriev/calmora/internal/store"
	"github.com/MKhiriev/calmora/internal/validators"
	"github.com/MKhiriev/calmora/models"
)

func validRegistration() models.RegistrationRequest {
	return models.RegistrationRequest{
		Name:            "Ann",
		Email:           "ann@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func newServices() *Services {
	return NewServices(store.NewServerStorages(), models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"), logger.Nop())
}

func TestAuthService_RegisterLoginLogout(t *testing.T) {
	svc := newServices().AuthService
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, validRegistration()))

	sid, err := svc.Login(ctx, models.Credentials{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	email, err := svc.SessionEmail(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", email)

	require.NoError(t, svc.Logout(ctx, sid))
	_, err = svc.SessionEmail(ctx, sid)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// logging out twice is not an error
	assert.NoError(t, svc.Logout(ctx, sid))
	assert.NoError(t, svc.Logout(ctx, ""))
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newServices().AuthService
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, validRegistration()))

	err := svc.Register(ctx, validRegistration())
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	assert.Equal(t, "A user with this email already exists.", err.Error())
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newServices().AuthService

	req := validRegistration()
	req.ConfirmPassword = "other11"

	err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, validators.ErrPasswordsDoNotMatch)
}

func TestAuthService_Login_Failures(t *testing.T) {
	svc := newServices().AuthService
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, validRegistration()))

	_, err := svc.Login(ctx, models.Credentials{Email: "ann@example.com", Password: "wrong11"})
	assert.ErrorIs(t, err, ErrInvalidEmailOrPassword)

	_, err = svc.Login(ctx, models.Credentials{Email: "bob@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidEmailOrPassword)

	_, err = svc.Login(ctx, models.Credentials{Email: "ann@example.com"})
	assert.ErrorIs(t, err, validators.ErrCredentialsRequired)
}

func TestAuthService_SessionEmail_Unknown(t *testing.T) {
	svc := newServices().AuthService

	_, err := svc.SessionEmail(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.SessionEmail(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_RepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	svc := NewAuthService(&store.ServerStorages{AccountRepository: accounts, SessionRepository: sessions}, logger.Nop()).(*authService)
	svc.cost = bcrypt.MinCost
	ctx := context.Background()

	accounts.EXPECT().CreateAccount(ctx, gomock.Any()).Return(errors.New("oom"))
	err := svc.Register(ctx, validRegistration())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailAlreadyRegistered)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	accounts.EXPECT().FindAccountByEmail(ctx, "ann@example.com").
		Return(models.Account{Email: "ann@example.com", PasswordHash: hash}, nil)
	sessions.EXPECT().CreateSession(ctx, gomock.Any(), "ann@example.com").Return(errors.New("oom"))

	_, err = svc.Login(ctx, models.Credentials{Email: "ann@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating session")

	sessions.EXPECT().DeleteSession(ctx, "sid").Return(errors.New("oom"))
	assert.Error(t, svc.Logout(ctx, "sid"))
}

func TestChatService_Reply(t *testing.T) {
	svc := newServices().ChatService
	ctx := context.Background()

	reply, err := svc.Reply(ctx, "ann@example.com", "I feel low today")
	require.NoError(t, err)
	assert.Equal(t, ReplyAcknowledgement, reply)

	_, err = svc.Reply(ctx, "ann@example.com", "   ")
	assert.ErrorIs(t, err, validators.ErrEmptyChatMessage)
}

func TestAppInfoService(t *testing.T) {
	info := newServices().AppInfoService.GetAppVersion(context.Background())
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "abc", info.BuildCommit())
}
