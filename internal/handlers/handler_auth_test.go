package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinescope/cinescope_backend/internal/apperrors"
	"github.com/cinescope/cinescope_backend/internal/core/domain"
	portssvc "github.com/cinescope/cinescope_backend/internal/core/ports/services"
	"github.com/cinescope/cinescope_backend/internal/dto"
	"github.com/cinescope/cinescope_backend/internal/handlers"
	"github.com/cinescope/cinescope_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string, bearerTTL, refreshTTL *int) (*domain.TokenPair, error) {
	args := m.Called(ctx, email, password, bearerTTL, refreshTTL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, email string, req dto.UpdateProfileRequest) (*domain.User, error) {
	args := m.Called(ctx, email, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock MovieService ---
type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) SearchMovies(ctx context.Context, title string, year *int, page int) ([]domain.MovieSummary, *domain.Page, error) {
	args := m.Called(ctx, title, year, page)
	var movies []domain.MovieSummary
	if args.Get(0) != nil {
		movies = args.Get(0).([]domain.MovieSummary)
	}
	var pageMeta *domain.Page
	if args.Get(1) != nil {
		pageMeta = args.Get(1).(*domain.Page)
	}
	return movies, pageMeta, args.Error(2)
}

func (m *MockMovieService) GetMovieDetails(ctx context.Context, imdbID string) (*domain.Movie, error) {
	args := m.Called(ctx, imdbID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

var _ portssvc.MovieSvcFacade = (*MockMovieService)(nil)

// --- Mock PersonService ---
type MockPersonService struct {
	mock.Mock
}

func (m *MockPersonService) GetPersonByID(ctx context.Context, id string) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

var _ portssvc.PersonSvcFacade = (*MockPersonService)(nil)

// --- Mock SessionWriter (backs the real token service in handler tests) ---
type MockSessionWriter struct {
	mock.Mock
}

func (m *MockSessionWriter) UpdateRefreshToken(ctx context.Context, email string, refreshToken string) error {
	args := m.Called(ctx, email, refreshToken)
	return args.Error(0)
}

func (m *MockSessionWriter) ClearRefreshTokenByValue(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

// newTestRouter wires the real route registration over mocked services.
// Production mode keeps swagger off the route table.
func newTestRouter(services *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{RateLimit: "100-M", IsProduction: true}
	handlers.RegisterRoutes(r, cfg, services)
	return r
}

// postJSON performs a JSON POST against the router and returns the recorder.
func postJSON(r *gin.Engine, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(w *httptest.ResponseRecorder) dto.MessageResponse {
	var resp dto.MessageResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockAuthService *MockAuthService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.mockAuthService = new(MockAuthService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{
		Auth: suite.mockAuthService,
	})
}

func testPair() *domain.TokenPair {
	return &domain.TokenPair{
		Bearer:  domain.IssuedToken{Token: "bearer.jwt.token", TokenType: "Bearer", ExpiresIn: 600},
		Refresh: domain.IssuedToken{Token: "refresh.jwt.token", TokenType: "Refresh", ExpiresIn: 86400},
	}
}

// --- Register Tests ---

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	suite.mockAuthService.On("Register", mock.Anything, "new@example.com", "hunter22").Return(nil).Once()

	w := postJSON(suite.router, "/user/register", dto.RegisterRequest{Email: "new@example.com", Password: "hunter22"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.RegisterResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal("User created", resp.Message)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_MissingPassword() {
	w := postJSON(suite.router, "/user/register", gin.H{"email": "new@example.com"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Request body incomplete, both email and password are required", decodeMessage(w).Message)
	suite.mockAuthService.AssertNotCalled(suite.T(), "Register")
}

func (suite *AuthHandlerTestSuite) TestRegister_EmptyEmail() {
	w := postJSON(suite.router, "/user/register", gin.H{"email": "", "password": "hunter22"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Request body incomplete, both email and password are required", decodeMessage(w).Message)
	suite.mockAuthService.AssertNotCalled(suite.T(), "Register")
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	suite.mockAuthService.On("Register", mock.Anything, "taken@example.com", "hunter22").Return(apperrors.ErrDuplicate).Once()

	w := postJSON(suite.router, "/user/register", dto.RegisterRequest{Email: "taken@example.com", Password: "hunter22"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("User already exists", decodeMessage(w).Message)
	suite.mockAuthService.AssertExpectations(suite.T())
}

// --- Login Tests ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	suite.mockAuthService.On("Login", mock.Anything, "user@example.com", "hunter22", (*int)(nil), (*int)(nil)).Return(testPair(), nil).Once()

	w := postJSON(suite.router, "/user/login", gin.H{"email": "user@example.com", "password": "hunter22"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TokenPairResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("bearer.jwt.token", resp.BearerToken.Token)
	suite.Equal("Bearer", resp.BearerToken.TokenType)
	suite.Equal(600, resp.BearerToken.ExpiresIn)
	suite.Equal("refresh.jwt.token", resp.RefreshToken.Token)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_ExplicitLifetimes() {
	suite.mockAuthService.On("Login", mock.Anything, "user@example.com", "hunter22",
		mock.MatchedBy(func(ttl *int) bool { return ttl != nil && *ttl == 60 }),
		mock.MatchedBy(func(ttl *int) bool { return ttl != nil && *ttl == 120 }),
	).Return(testPair(), nil).Once()

	w := postJSON(suite.router, "/user/login", gin.H{
		"email":                   "user@example.com",
		"password":                "hunter22",
		"bearerExpiresInSeconds":  60,
		"refreshExpiresInSeconds": 120,
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_NonNumericLifetimeIgnored() {
	suite.mockAuthService.On("Login", mock.Anything, "user@example.com", "hunter22", (*int)(nil), (*int)(nil)).Return(testPair(), nil).Once()

	w := postJSON(suite.router, "/user/login", gin.H{
		"email":                  "user@example.com",
		"password":               "hunter22",
		"bearerExpiresInSeconds": "soon",
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_ZeroLifetimeUsesDefault() {
	suite.mockAuthService.On("Login", mock.Anything, "user@example.com", "hunter22", (*int)(nil), (*int)(nil)).Return(testPair(), nil).Once()

	w := postJSON(suite.router, "/user/login", gin.H{
		"email":                   "user@example.com",
		"password":                "hunter22",
		"bearerExpiresInSeconds":  0,
		"refreshExpiresInSeconds": -300,
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingEmail() {
	w := postJSON(suite.router, "/user/login", gin.H{"password": "hunter22"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Request body incomplete, both email and password are required", decodeMessage(w).Message)
	suite.mockAuthService.AssertNotCalled(suite.T(), "Login")
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockAuthService.On("Login", mock.Anything, "user@example.com", "a-guess", (*int)(nil), (*int)(nil)).Return(nil, apperrors.ErrUnauthorized).Once()

	w := postJSON(suite.router, "/user/login", gin.H{"email": "user@example.com", "password": "a-guess"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Incorrect email or password", decodeMessage(w).Message)
	suite.mockAuthService.AssertExpectations(suite.T())
}

// --- Refresh Tests ---

func (suite *AuthHandlerTestSuite) TestRefresh_Success() {
	suite.mockAuthService.On("Refresh", mock.Anything, "refresh.jwt.token").Return(testPair(), nil).Once()

	w := postJSON(suite.router, "/user/refresh", dto.RefreshRequest{RefreshToken: "refresh.jwt.token"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TokenPairResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("bearer.jwt.token", resp.BearerToken.Token)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRefresh_MissingToken() {
	w := postJSON(suite.router, "/user/refresh", gin.H{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Request body incomplete, refresh token required", decodeMessage(w).Message)
	suite.mockAuthService.AssertNotCalled(suite.T(), "Refresh")
}

func (suite *AuthHandlerTestSuite) TestRefresh_EmptyToken() {
	w := postJSON(suite.router, "/user/refresh", gin.H{"refreshToken": ""})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Request body incomplete, refresh token required", decodeMessage(w).Message)
	suite.mockAuthService.AssertNotCalled(suite.T(), "Refresh")
}

func (suite *AuthHandlerTestSuite) TestRefresh_ExpiredToken() {
	suite.mockAuthService.On("Refresh", mock.Anything, "stale.jwt.token").Return(nil, apperrors.ErrTokenExpired).Once()

	w := postJSON(suite.router, "/user/refresh", dto.RefreshRequest{RefreshToken: "stale.jwt.token"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("JWT token has expired", decodeMessage(w).Message)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRefresh_MalformedToken() {
	suite.mockAuthService.On("Refresh", mock.Anything, "garbage").Return(nil, apperrors.ErrTokenMalformed).Once()

	w := postJSON(suite.router, "/user/refresh", dto.RefreshRequest{RefreshToken: "garbage"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid JWT token", decodeMessage(w).Message)
	suite.mockAuthService.AssertExpectations(suite.T())
}

// --- Logout Tests ---

func (suite *AuthHandlerTestSuite) TestLogout_Success() {
	suite.mockAuthService.On("Logout", mock.Anything, "refresh.jwt.token").Return(nil).Once()

	w := postJSON(suite.router, "/user/logout", dto.RefreshRequest{RefreshToken: "refresh.jwt.token"})

	suite.Equal(http.StatusOK, w.Code)
	resp := decodeMessage(w)
	suite.False(resp.Error)
	suite.Equal("Token successfully invalidated", resp.Message)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogout_NoMatchingSession() {
	suite.mockAuthService.On("Logout", mock.Anything, "orphan.jwt.token").Return(apperrors.ErrNotFound).Once()

	w := postJSON(suite.router, "/user/logout", dto.RefreshRequest{RefreshToken: "orphan.jwt.token"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("JWT token is invalid", decodeMessage(w).Message)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogout_MissingToken() {
	w := postJSON(suite.router, "/user/logout", gin.H{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Request body incomplete, refresh token required", decodeMessage(w).Message)
	suite.mockAuthService.AssertNotCalled(suite.T(), "Logout")
}

// --- Run Test Suite ---
func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
