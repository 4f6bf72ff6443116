package profile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/HPainhas/DevConnector/adapters/event"
	profileUC "github.com/HPainhas/DevConnector/internal/application/usecase/profile"
	"github.com/HPainhas/DevConnector/internal/domain/profile"
	"github.com/HPainhas/DevConnector/internal/domain/user"
	"github.com/HPainhas/DevConnector/pkg/apperror"
	"github.com/HPainhas/DevConnector/pkg/logger"
)

// MockProfileRepository is a mock implementation of profile.Repository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetAll(ctx context.Context) ([]*profile.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profile.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockPostRepository is a mock implementation of post.Repository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) DeleteByOwner(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of user.Repository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventPublisher records published profile events.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProfileEvent(ctx context.Context, payload event.ProfileEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newUseCase(pr *MockProfileRepository, postRepo *MockPostRepository, ur *MockUserRepository, events *MockEventPublisher) *profileUC.ProfileUseCase {
	return profileUC.NewProfileUseCase(pr, postRepo, ur, events, logger.NewNop())
}

func anyEvent() interface{} {
	return mock.AnythingOfType("event.ProfileEventPayload")
}

func TestUpsertProfile_NormalizesFields(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	events := new(MockEventPublisher)
	uc := newUseCase(profileRepo, new(MockPostRepository), new(MockUserRepository), events)

	userID := uuid.New()
	var written *profile.Profile

	profileRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*profile.Profile")).
		Run(func(args mock.Arguments) { written = args.Get(1).(*profile.Profile) }).
		Return(nil).Once()
	profileRepo.On("GetByUserID", mock.Anything, userID).
		Return(&profile.Profile{UserID: userID, Status: "dev", Skills: []string{"go", "rust"}}, nil).Once()
	events.On("PublishProfileEvent", mock.Anything, anyEvent()).Return(nil).Once()

	stored, err := uc.ExecuteUpsertProfile(context.Background(), profileUC.UpsertProfileInput{
		UserID: userID,
		Status: "dev",
		Skills: []string{"go", "rust"},
		Website: "http://example.com",
		Social: profile.Social{
			Twitter: "twitter.com/someone",
		},
	})

	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, "https://example.com", written.Website)
	assert.Equal(t, "https://twitter.com/someone", written.Social.Twitter)
	profileRepo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestUpsertProfile_MissingRequiredFields(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	uc := newUseCase(profileRepo, new(MockPostRepository), new(MockUserRepository), new(MockEventPublisher))

	_, err := uc.ExecuteUpsertProfile(context.Background(), profileUC.UpsertProfileInput{
		UserID: uuid.New(),
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Len(t, appErr.Fields, 2)

	// validation must fail before any store access
	profileRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestAddExperience_PrependsNewEntry(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	events := new(MockEventPublisher)
	uc := newUseCase(profileRepo, new(MockPostRepository), new(MockUserRepository), events)

	userID := uuid.New()
	existing := profile.Experience{ID: uuid.New(), Title: "old job", Company: "acme"}

	profileRepo.On("GetByUserID", mock.Anything, userID).
		Return(&profile.Profile{UserID: userID, Experience: []profile.Experience{existing}}, nil).Once()
	profileRepo.On("Save", mock.Anything, mock.AnythingOfType("*profile.Profile")).Return(nil).Once()
	events.On("PublishProfileEvent", mock.Anything, anyEvent()).Return(nil).Once()

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	p, err := uc.ExecuteAddExperience(context.Background(), profileUC.AddExperienceInput{
		UserID:  userID,
		Title:   "new job",
		Company: "globex",
		From:    from,
	})

	assert.NoError(t, err)
	assert.Len(t, p.Experience, 2)
	assert.Equal(t, "new job", p.Experience[0].Title)
	assert.NotEqual(t, uuid.Nil, p.Experience[0].ID)
	assert.Equal(t, existing.ID, p.Experience[1].ID)
	profileRepo.AssertExpectations(t)
}

func TestAddExperience_FromAfterToRejected(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	uc := newUseCase(profileRepo, new(MockPostRepository), new(MockUserRepository), new(MockEventPublisher))

	from := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.ExecuteAddExperience(context.Background(), profileUC.AddExperienceInput{
		UserID:  uuid.New(),
		Title:   "job",
		Company: "acme",
		From:    from,
		To:      &to,
	})

	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	profileRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	profileRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAddEducation_MissingFields(t *testing.T) {
	uc := newUseCase(new(MockProfileRepository), new(MockPostRepository), new(MockUserRepository), new(MockEventPublisher))

	_, err := uc.ExecuteAddEducation(context.Background(), profileUC.AddEducationInput{
		UserID: uuid.New(),
		School: "mit",
	})

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Len(t, appErr.Fields, 3) // degree, fieldofstudy, from
}

func TestRemoveExperience_UnknownIDIsNoop(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	uc := newUseCase(profileRepo, new(MockPostRepository), new(MockUserRepository), new(MockEventPublisher))

	userID := uuid.New()
	existing := profile.Experience{ID: uuid.New(), Title: "job"}

	profileRepo.On("GetByUserID", mock.Anything, userID).
		Return(&profile.Profile{UserID: userID, Experience: []profile.Experience{existing}}, nil).Once()
	profileRepo.On("Save", mock.Anything, mock.AnythingOfType("*profile.Profile")).Return(nil).Once()

	p, err := uc.ExecuteRemoveExperience(context.Background(), userID, uuid.New().String())

	assert.NoError(t, err)
	assert.Len(t, p.Experience, 1)
	profileRepo.AssertExpectations(t)
}

func TestGetProfileByUserID_MalformedAndAbsentLookAlike(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	uc := newUseCase(profileRepo, new(MockPostRepository), new(MockUserRepository), new(MockEventPublisher))

	// malformed id: repo never touched
	_, err := uc.ExecuteGetProfileByUserID(context.Background(), "does-not-exist")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	// well-formed but absent id: same category
	absent := uuid.New()
	profileRepo.On("GetByUserID", mock.Anything, absent).
		Return(nil, profile.ErrProfileNotFound).Once()

	_, err2 := uc.ExecuteGetProfileByUserID(context.Background(), absent.String())
	assert.True(t, errors.Is(err2, apperror.ErrNotFound))

	var appErr, appErr2 *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.True(t, errors.As(err2, &appErr2))
	assert.Equal(t, appErr.Message, appErr2.Message)
}

func TestGetOwnProfile_MissingIsNoProfile(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	uc := newUseCase(profileRepo, new(MockPostRepository), new(MockUserRepository), new(MockEventPublisher))

	userID := uuid.New()
	profileRepo.On("GetByUserID", mock.Anything, userID).
		Return(nil, profile.ErrProfileNotFound).Once()

	_, err := uc.ExecuteGetOwnProfile(context.Background(), userID)

	assert.True(t, errors.Is(err, apperror.ErrNoProfile))
}

func TestDeleteAccount_AllStepsRun(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	events := new(MockEventPublisher)
	uc := newUseCase(profileRepo, postRepo, userRepo, events)

	userID := uuid.New()
	postRepo.On("DeleteByOwner", mock.Anything, userID).Return(int64(3), nil).Once()
	profileRepo.On("DeleteByUserID", mock.Anything, userID).Return(nil).Once()
	userRepo.On("DeleteByID", mock.Anything, userID).Return(nil).Once()
	events.On("PublishProfileEvent", mock.Anything, anyEvent()).Return(nil).Once()

	err := uc.ExecuteDeleteAccount(context.Background(), userID)

	assert.NoError(t, err)
	postRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestDeleteAccount_PartialFailureStillAttemptsRest(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	events := new(MockEventPublisher)
	uc := newUseCase(profileRepo, postRepo, userRepo, events)

	userID := uuid.New()
	postRepo.On("DeleteByOwner", mock.Anything, userID).Return(int64(0), errors.New("posts store down")).Once()
	profileRepo.On("DeleteByUserID", mock.Anything, userID).Return(nil).Once()
	userRepo.On("DeleteByID", mock.Anything, userID).Return(nil).Once()

	err := uc.ExecuteDeleteAccount(context.Background(), userID)

	assert.Error(t, err)
	// later steps were still attempted, nothing is rolled back
	profileRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	// no event on a failed cascade
	events.AssertNotCalled(t, "PublishProfileEvent", mock.Anything, mock.Anything)
}
