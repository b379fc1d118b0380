package services_test

import (
	"context"
	"testing"

	"github.com/dermengr/Currency/internal/apperrors"
	"github.com/dermengr/Currency/internal/core/domain"
	portsrepo "github.com/dermengr/Currency/internal/core/ports/repositories"
	portssvc "github.com/dermengr/Currency/internal/core/ports/services"
	"github.com/dermengr/Currency/internal/core/services"
	"github.com/dermengr/Currency/internal/dto"
	"github.com/dermengr/Currency/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository (based on UserService usage) ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserRole(ctx context.Context, userID string, role domain.Role, updatedBy string) error {
	args := m.Called(ctx, userID, role, updatedBy)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- RegisterUser Tests ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	username := "testuser"
	password := "password123"

	req := dto.RegisterRequest{
		Username: username,
		Password: password,
	}

	// Mock: FindUserByUsername should not find the user
	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(nil, apperrors.ErrNotFound).Once()
	// Mock: SaveUser receives a domain.User after the service hashes the password
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == username && user.Role == domain.RoleUser && user.PasswordHash != password
	})).Return(nil).Once()

	createdUser, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdUser)
	suite.Equal(username, createdUser.Username)
	suite.Equal(domain.RoleUser, createdUser.Role)
	suite.NotEmpty(createdUser.UserID)
	suite.NotEqual(password, createdUser.PasswordHash) // Ensure password was hashed
	suite.True(utils.CheckPasswordHash(password, createdUser.PasswordHash))
	suite.Equal(createdUser.UserID, createdUser.CreatedBy)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_IgnoresRequestedRole() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "wannabeadmin",
		Password: "password123",
		Role:     "admin",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, req.Username).Return(nil, apperrors.ErrNotFound).Once()
	// Self-registration always lands on the user role, whatever the request claims.
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Role == domain.RoleUser
	})).Return(nil).Once()

	createdUser, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdUser)
	suite.Equal(domain.RoleUser, createdUser.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_TrimsUsername() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "  testuser  ",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "testuser").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "testuser"
	})).Return(nil).Once()

	createdUser, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdUser)
	suite.Equal("testuser", createdUser.Username)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_UsernameTooShort() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "ab",
		Password: "password123",
	}

	createdUser, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByUsername", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegisterUser_WhitespacePaddedShortUsername() {
	ctx := context.Background()
	// Trimming happens before the length check, so padding cannot sneak a short name through.
	req := dto.RegisterRequest{
		Username: "  ab  ",
		Password: "password123",
	}

	createdUser, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegisterUser_PasswordTooShort() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "testuser",
		Password: "short",
	}

	createdUser, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	username := "testuser"
	existingUser := &domain.User{UserID: uuid.NewString(), Username: username, Role: domain.RoleUser}

	req := dto.RegisterRequest{
		Username: username,
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(existingUser, nil).Once()

	createdUser, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Contains(err.Error(), "already taken")
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_LookupError() {
	ctx := context.Background()
	username := "testuser"
	expectedErr := assert.AnError

	req := dto.RegisterRequest{
		Username: username,
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(nil, expectedErr).Once()

	createdUser, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_SaveError() {
	ctx := context.Background()
	username := "testuser-save-error"
	expectedErr := assert.AnError

	req := dto.RegisterRequest{
		Username: username,
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(expectedErr).Once()

	createdUser, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- EnsureAdminUser Tests ---

func (suite *UserServiceTestSuite) TestEnsureAdminUser_CreatesWhenMissing() {
	ctx := context.Background()
	username := "rootadmin"

	// The lookup misses twice: once for the provisioning check, once inside
	// the shared create path.
	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(nil, apperrors.ErrNotFound).Twice()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == username && user.Role == domain.RoleAdmin
	})).Return(nil).Once()

	adminUser, created, err := suite.service.EnsureAdminUser(ctx, username, "password123")

	suite.Require().NoError(err)
	suite.Require().NotNil(adminUser)
	suite.True(created)
	suite.Equal(domain.RoleAdmin, adminUser.Role)
	suite.True(utils.CheckPasswordHash("password123", adminUser.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureAdminUser_PromotesExistingUser() {
	ctx := context.Background()
	username := "alice"
	hash, err := utils.HashPassword("alicepassword")
	suite.Require().NoError(err)
	existingUser := &domain.User{UserID: uuid.NewString(), Username: username, PasswordHash: hash, Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(existingUser, nil).Once()
	suite.mockUserRepo.On("UpdateUserRole", ctx, existingUser.UserID, domain.RoleAdmin, existingUser.UserID).Return(nil).Once()

	adminUser, created, err := suite.service.EnsureAdminUser(ctx, username, "ignored-password")

	suite.Require().NoError(err)
	suite.Require().NotNil(adminUser)
	suite.False(created)
	suite.Equal(domain.RoleAdmin, adminUser.Role)
	// Promotion never rewrites the stored hash.
	suite.True(utils.CheckPasswordHash("alicepassword", adminUser.PasswordHash))
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureAdminUser_AlreadyAdmin() {
	ctx := context.Background()
	username := "rootadmin"
	existingAdmin := &domain.User{UserID: uuid.NewString(), Username: username, Role: domain.RoleAdmin}

	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(existingAdmin, nil).Once()

	adminUser, created, err := suite.service.EnsureAdminUser(ctx, username, "password123")

	suite.Require().NoError(err)
	suite.Require().NotNil(adminUser)
	suite.False(created)
	suite.Equal(existingAdmin.UserID, adminUser.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUserRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureAdminUser_PromoteError() {
	ctx := context.Background()
	username := "alice"
	expectedErr := assert.AnError
	existingUser := &domain.User{UserID: uuid.NewString(), Username: username, Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(existingUser, nil).Once()
	suite.mockUserRepo.On("UpdateUserRole", ctx, existingUser.UserID, domain.RoleAdmin, existingUser.UserID).Return(expectedErr).Once()

	adminUser, created, err := suite.service.EnsureAdminUser(ctx, username, "password123")

	suite.Require().Error(err)
	suite.Nil(adminUser)
	suite.False(created)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	username := "testuser"
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	existingUser := &domain.User{UserID: uuid.NewString(), Username: username, PasswordHash: hash, Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(existingUser, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, username, password)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(existingUser.UserID, user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	username := "testuser"
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	existingUser := &domain.User{UserID: uuid.NewString(), Username: username, PasswordHash: hash, Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(existingUser, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, username, "wrongpassword")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost", "password123")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UniformFailureMessage() {
	ctx := context.Background()
	// A caller probing for valid usernames must not be able to tell the two failures apart.
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	existingUser := &domain.User{UserID: uuid.NewString(), Username: "testuser", PasswordHash: hash, Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "testuser").Return(existingUser, nil).Once()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, wrongPasswordErr := suite.service.AuthenticateUser(ctx, "testuser", "wrongpassword")
	_, unknownUserErr := suite.service.AuthenticateUser(ctx, "ghost", "password123")

	suite.Require().Error(wrongPasswordErr)
	suite.Require().Error(unknownUserErr)
	suite.Equal(wrongPasswordErr.Error(), unknownUserErr.Error())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_ExactUsernameLookup() {
	ctx := context.Background()
	// Login does not trim, so a padded username is looked up verbatim.
	suite.mockUserRepo.On("FindUserByUsername", ctx, "  testuser  ").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "  testuser  ", "password123")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockUserRepo.On("FindUserByUsername", ctx, "testuser").Return(nil, expectedErr).Once()

	user, err := suite.service.AuthenticateUser(ctx, "testuser", "password123")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, expectedErr)
	suite.NotErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetUserByID Tests ---

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedUser := &domain.User{UserID: userID, Username: "founduser"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(expectedUser, nil).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expectedUser, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, expectedErr).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
