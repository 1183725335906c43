package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-evault/internal/models"
	"github.com/sbilibin2017/gw-evault/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	handler := NewRegisterHandler(mockSvc)

	tests := []struct {
		name           string
		reqBody        any
		mock           func()
		expectedStatus int
		expectedToken  string
		expectedMsg    string
	}{
		{
			name:    "success",
			reqBody: RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"},
			mock: func() {
				mockSvc.EXPECT().Register(gomock.Any(), "Ann", "ann@example.com", "secret1").Return("tok", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedToken:  "tok",
		},
		{
			name:    "user_exists",
			reqBody: RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"},
			mock: func() {
				mockSvc.EXPECT().Register(gomock.Any(), "Ann", "ann@example.com", "secret1").Return("", services.ErrUserAlreadyExists)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "User already exists",
		},
		{
			name:           "invalid_json",
			reqBody:        "{",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mock != nil {
				tt.mock()
			}

			rr := serve(RegisterRegisterHandler, handler, newRequest(http.MethodPost, "/auth/register", tt.reqBody, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedToken != "" {
				var resp TokenResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedToken, resp.Token)
			} else {
				assert.Equal(t, tt.expectedMsg, decodeError(t, rr))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	handler := NewLoginHandler(mockSvc)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().Login(gomock.Any(), "ann@example.com", "secret1").Return("tok", nil)

		rr := serve(RegisterLoginHandler, handler,
			newRequest(http.MethodPost, "/auth/login", LoginRequest{Email: "ann@example.com", Password: "secret1"}, nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp TokenResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "tok", resp.Token)
	})

	t.Run("invalid_credentials", func(t *testing.T) {
		mockSvc.EXPECT().Login(gomock.Any(), "ann@example.com", "wrong").Return("", services.ErrInvalidCredentials)

		rr := serve(RegisterLoginHandler, handler,
			newRequest(http.MethodPost, "/auth/login", LoginRequest{Email: "ann@example.com", Password: "wrong"}, nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Invalid email or password", decodeError(t, rr))
	})
}

func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileReader(ctrl)
	handler := NewProfileHandler(mockSvc)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().Profile(gomock.Any(), userClaims.UserID).
			Return(&models.UserDB{UserID: userClaims.UserID, Name: "Ann", Balance: 250, PasswordHash: "hash"}, nil)

		rr := serve(RegisterProfileHandler, handler, newRequest(http.MethodGet, "/auth/profile", nil, userClaims))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "hash")

		var user models.UserDB
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&user))
		assert.Equal(t, 250.0, user.Balance)
	})

	t.Run("unauthorized", func(t *testing.T) {
		rr := serve(RegisterProfileHandler, handler, newRequest(http.MethodGet, "/auth/profile", nil, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("not_found", func(t *testing.T) {
		mockSvc.EXPECT().Profile(gomock.Any(), userClaims.UserID).Return(nil, services.ErrNotFound)

		rr := serve(RegisterProfileHandler, handler, newRequest(http.MethodGet, "/auth/profile", nil, userClaims))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAddFundsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFundsAdder(ctrl)
	handler := NewAddFundsHandler(mockSvc)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().Credit(gomock.Any(), userClaims.UserID, 1000.0).Return(1500.0, nil)

		rr := serve(RegisterAddFundsHandler, handler,
			newRequest(http.MethodPut, "/auth/profile/funds", AddFundsRequest{Amount: 1000}, userClaims))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp BalanceResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 1500.0, resp.Balance)
	})

	t.Run("internal_error", func(t *testing.T) {
		mockSvc.EXPECT().Credit(gomock.Any(), userClaims.UserID, 10.0).Return(0.0, errors.New("boom"))

		rr := serve(RegisterAddFundsHandler, handler,
			newRequest(http.MethodPut, "/auth/profile/funds", AddFundsRequest{Amount: 10}, userClaims))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Internal server error", decodeError(t, rr))
	})
}

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserLister(ctrl)
	handler := NewListUsersHandler(mockSvc)

	t.Run("admin", func(t *testing.T) {
		mockSvc.EXPECT().ListUsers(gomock.Any(), adminClaims.Principal()).
			Return([]models.UserDB{{Name: "Ann"}, {Name: "Bob"}}, nil)

		rr := serve(RegisterListUsersHandler, handler, newRequest(http.MethodGet, "/auth/users", nil, adminClaims))

		require.Equal(t, http.StatusOK, rr.Code)
		var users []models.UserDB
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&users))
		assert.Len(t, users, 2)
	})

	t.Run("forbidden", func(t *testing.T) {
		mockSvc.EXPECT().ListUsers(gomock.Any(), userClaims.Principal()).Return(nil, services.ErrForbidden)

		rr := serve(RegisterListUsersHandler, handler, newRequest(http.MethodGet, "/auth/users", nil, userClaims))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
