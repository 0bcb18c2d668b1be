package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"codecollabhub/internal/handlers"
	"codecollabhub/internal/middleware"
	"codecollabhub/internal/models"
	"codecollabhub/internal/services"
)

// --- Mock AuthService --- //

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) error {
	args := m.Called(ctx, username, email, password)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) UpdateProfile(
	ctx context.Context,
	userID int64,
	req *models.UpdateProfileRequest,
) (*models.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// --- Tests --- //

func TestNewAuthHandler(t *testing.T) {
	mockService := new(MockAuthService)
	h := handlers.NewAuthHandler(mockService)
	assert.NotNil(t, h)
}

// Вспомогательная функция для создания роутера с обработчиком.
func setupAuthRouter(h *handlers.AuthHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		mockUsername    string
		mockEmail       string
		mockPassword    string
		mockReturnError error
		expectedStatus  int
		expectedBody    string // Проверяем подстроку в теле ответа
	}{
		{
			name:            "Успешная регистрация",
			body:            `{"username": "testuser", "email": "testuser@example.com", "password": "password123"}`,
			mockUsername:    "testuser",
			mockEmail:       "testuser@example.com",
			mockPassword:    "password123",
			mockReturnError: nil,
			expectedStatus:  http.StatusCreated,
		},
		{
			name:           "Невалидный JSON",
			body:           `{"username": "testuser", "password": "password123"`, // Сломанный JSON
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Неверный формат запроса",
		},
		{
			name:           "Пустой username",
			body:           `{"username": "", "password": "password123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Имя пользователя и пароль не могут быть пустыми",
		},
		{
			name:           "Пустой password",
			body:           `{"username": "testuser", "password": ""}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Имя пользователя и пароль не могут быть пустыми",
		},
		{
			name:            "Имя пользователя занято",
			body:            `{"username": "existinguser", "password": "password123"}`,
			mockUsername:    "existinguser",
			mockPassword:    "password123",
			mockReturnError: services.ErrUsernameTaken, // Ошибка от сервиса
			expectedStatus:  http.StatusConflict,
			expectedBody:    "Имя пользователя уже занято",
		},
		{
			name:            "Внутренняя ошибка сервера",
			body:            `{"username": "erroruser", "password": "password123"}`,
			mockUsername:    "erroruser",
			mockPassword:    "password123",
			mockReturnError: errors.New("some internal error"), // Другая ошибка
			expectedStatus:  http.StatusInternalServerError,
			expectedBody:    "Внутренняя ошибка сервера",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			h := handlers.NewAuthHandler(mockService)
			r := setupAuthRouter(h)

			// Настраиваем мок только если ожидается вызов сервиса
			if tt.mockUsername != "" || tt.mockPassword != "" {
				mockService.On("Register", mock.Anything, tt.mockUsername, tt.mockEmail, tt.mockPassword).
					Return(tt.mockReturnError).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			// Проверяем статус код
			assert.Equal(t, tt.expectedStatus, rr.Code)

			// Проверяем тело ответа (содержит ожидаемую подстроку)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			// Проверяем, что мок был вызван как ожидалось
			mockService.AssertExpectations(t)
		})
	}
}

// withUserID кладет ID пользователя в контекст запроса, как это делает
// middleware.Authenticator.
func withUserID(req *http.Request, userID int64) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, userID))
}

func TestAuthHandler_Profile(t *testing.T) {
	t.Run("Профиль текущего пользователя", func(t *testing.T) {
		mockService := new(MockAuthService)
		h := handlers.NewAuthHandler(mockService)
		mockService.On("GetProfile", mock.Anything, int64(42)).
			Return(&models.User{ID: 42, Username: "carol", Bio: "пишу на go", PreferredLanguage: "go"}, nil).Once()

		req := withUserID(httptest.NewRequest(http.MethodGet, "/profile", nil), 42)
		rr := httptest.NewRecorder()
		h.Profile(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var user models.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
		assert.Equal(t, "carol", user.Username)
		assert.Equal(t, "пишу на go", user.Bio)
		mockService.AssertExpectations(t)
	})

	t.Run("Без аутентификации", func(t *testing.T) {
		mockService := new(MockAuthService)
		h := handlers.NewAuthHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		rr := httptest.NewRecorder()
		h.Profile(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	t.Run("Успешное обновление", func(t *testing.T) {
		mockService := new(MockAuthService)
		h := handlers.NewAuthHandler(mockService)
		bio := "новое био"
		mockService.On("UpdateProfile", mock.Anything, int64(42), &models.UpdateProfileRequest{Bio: &bio}).
			Return(&models.User{ID: 42, Username: "carol", Bio: bio, PreferredLanguage: "python"}, nil).Once()

		req := withUserID(httptest.NewRequest(http.MethodPut, "/profile",
			strings.NewReader(`{"bio": "новое био"}`)), 42)
		rr := httptest.NewRecorder()
		h.UpdateProfile(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var user models.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
		assert.Equal(t, "новое био", user.Bio)
		mockService.AssertExpectations(t)
	})

	t.Run("Невалидный JSON", func(t *testing.T) {
		mockService := new(MockAuthService)
		h := handlers.NewAuthHandler(mockService)

		req := withUserID(httptest.NewRequest(http.MethodPut, "/profile",
			strings.NewReader(`{"bio": `)), 42)
		rr := httptest.NewRecorder()
		h.UpdateProfile(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Неверный формат запроса")
		mockService.AssertExpectations(t)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		mockUsername    string
		mockPassword    string
		mockReturnToken string
		mockReturnError error
		expectedStatus  int
		expectedBody    string // Проверяем подстроку
		expectedToken   string // Ожидаемый токен в JSON ответе
	}{
		{
			name:            "Успешный вход",
			body:            `{"username": "testuser", "password": "password123"}`,
			mockUsername:    "testuser",
			mockPassword:    "password123",
			mockReturnToken: "fake-jwt-token",
			mockReturnError: nil,
			expectedStatus:  http.StatusOK,
			expectedToken:   "fake-jwt-token",
		},
		{
			name:           "Невалидный JSON",
			body:           `{"username": "testuser", "password": "password123"`, // Сломанный JSON
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Неверный формат запроса",
		},
		{
			name:           "Пустой username",
			body:           `{"username": "", "password": "password123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Имя пользователя и пароль не могут быть пустыми",
		},
		{
			name:           "Пустой password",
			body:           `{"username": "testuser", "password": ""}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Имя пользователя и пароль не могут быть пустыми",
		},
		{
			name:            "Неверные креды",
			body:            `{"username": "wronguser", "password": "wrongpassword"}`,
			mockUsername:    "wronguser",
			mockPassword:    "wrongpassword",
			mockReturnError: services.ErrInvalidCredentials, // Ошибка от сервиса
			expectedStatus:  http.StatusUnauthorized,
			expectedBody:    "Неверное имя пользователя или пароль",
		},
		{
			name:            "Внутренняя ошибка сервера",
			body:            `{"username": "erroruser", "password": "password123"}`,
			mockUsername:    "erroruser",
			mockPassword:    "password123",
			mockReturnError: errors.New("some internal error"), // Другая ошибка
			expectedStatus:  http.StatusInternalServerError,
			expectedBody:    "Внутренняя ошибка сервера",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			h := handlers.NewAuthHandler(mockService)
			r := setupAuthRouter(h)

			// Настраиваем мок только если ожидается вызов сервиса
			if tt.mockUsername != "" || tt.mockPassword != "" {
				mockService.On("Login", mock.Anything, tt.mockUsername, tt.mockPassword).
					Return(tt.mockReturnToken, tt.mockReturnError).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			// Проверяем статус код
			assert.Equal(t, tt.expectedStatus, rr.Code)

			// Проверяем тело ответа
			if tt.expectedToken != "" {
				var resp models.LoginResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				require.NoError(t, err, "Ошибка декодирования JSON ответа")
				assert.Equal(t, tt.expectedToken, resp.Token)
			} else if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			// Проверяем, что мок был вызван как ожидалось
			mockService.AssertExpectations(t)
		})
	}
}
