package usecase_test

import (
	"context"
	"testing"

	"jtrack-backend/internal/cache"
	"jtrack-backend/internal/domain"
	"jtrack-backend/internal/usecase"
	"jtrack-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Insert(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) Update(ctx context.Context, id string, patch domain.ApplicationPatch) (*domain.Application, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) ListByApplication(ctx context.Context, applicationID string) ([]domain.Interview, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}

func (m *MockInterviewRepo) ListByUser(ctx context.Context, userID string) ([]domain.Interview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}

func (m *MockInterviewRepo) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}

func (m *MockInterviewRepo) Insert(ctx context.Context, iv *domain.Interview) error {
	return m.Called(ctx, iv).Error(0)
}

func (m *MockInterviewRepo) Update(ctx context.Context, id string, patch domain.InterviewPatch) (*domain.Interview, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}

func (m *MockInterviewRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockReferralRepo struct {
	mock.Mock
}

func (m *MockReferralRepo) ListByApplication(ctx context.Context, applicationID string) ([]domain.Referral, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Referral), args.Error(1)
}

func (m *MockReferralRepo) ListByUser(ctx context.Context, userID string) ([]domain.Referral, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Referral), args.Error(1)
}

func (m *MockReferralRepo) GetByID(ctx context.Context, id string) (*domain.Referral, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Referral), args.Error(1)
}

func (m *MockReferralRepo) Insert(ctx context.Context, ref *domain.Referral) error {
	return m.Called(ctx, ref).Error(0)
}

func (m *MockReferralRepo) Update(ctx context.Context, id string, patch domain.ReferralPatch) (*domain.Referral, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Referral), args.Error(1)
}

func (m *MockReferralRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

type fixture struct {
	appRepo  *MockApplicationRepo
	ivRepo   *MockInterviewRepo
	refRepo  *MockReferralRepo
	sessions *cache.Manager
}

func newFixture() *fixture {
	f := &fixture{
		appRepo: new(MockApplicationRepo),
		ivRepo:  new(MockInterviewRepo),
		refRepo: new(MockReferralRepo),
	}
	f.sessions = cache.NewManager(f.appRepo, f.ivRepo, f.refRepo)
	return f
}

const appID = "6f1e1c2a-0000-4000-8000-000000000001"

func TestApplicationCreateValidatesBeforeRemote(t *testing.T) {
	f := newFixture()
	uc := usecase.NewApplicationUsecase(f.sessions, f.appRepo, newValidator(), domain.DeleteConfirmPolicy{})

	t.Run("Should fail when required fields are missing", func(t *testing.T) {
		form := &domain.ApplicationForm{
			CompanyName: "Acme",
			// PositionTitle, ApplicationDate, ApplicationSource missing
		}
		_, err := uc.Create(context.Background(), "u1", form)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Position title")
		f.appRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Should fail on unknown source", func(t *testing.T) {
		form := &domain.ApplicationForm{
			CompanyName:       "Acme",
			PositionTitle:     "Engineer",
			ApplicationDate:   "2026-01-15",
			ApplicationSource: "CARRIER_PIGEON",
		}
		_, err := uc.Create(context.Background(), "u1", form)
		assert.Error(t, err)
		f.appRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Should fail on malformed date", func(t *testing.T) {
		form := &domain.ApplicationForm{
			CompanyName:       "Acme",
			PositionTitle:     "Engineer",
			ApplicationDate:   "15/01/2026",
			ApplicationSource: domain.SourceLinkedIn,
		}
		_, err := uc.Create(context.Background(), "u1", form)
		assert.Error(t, err)
		f.appRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestApplicationCreate(t *testing.T) {
	f := newFixture()
	uc := usecase.NewApplicationUsecase(f.sessions, f.appRepo, newValidator(), domain.DeleteConfirmPolicy{})

	f.appRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Application).ID = appID
	}).Once()

	form := &domain.ApplicationForm{
		CompanyName:       "Acme",
		PositionTitle:     "Engineer",
		ApplicationDate:   "2026-01-15",
		ApplicationSource: domain.SourceLinkedIn,
	}
	app, err := uc.Create(context.Background(), "u1", form)
	require.NoError(t, err)

	assert.Equal(t, appID, app.ID)
	assert.Equal(t, "u1", app.UserID)
	// Status defaults to APPLIED when the form omits it
	assert.Equal(t, domain.StatusApplied, app.Status)
	assert.Equal(t, "2026-01-15", app.ApplicationDate.Format("2006-01-02"))
}

func TestApplicationCreateSample(t *testing.T) {
	f := newFixture()
	uc := usecase.NewApplicationUsecase(f.sessions, f.appRepo, newValidator(), domain.DeleteConfirmPolicy{})

	f.appRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Application).ID = appID
	}).Once()

	app, err := uc.CreateSample(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Tech Corp", app.CompanyName)
	assert.Equal(t, domain.StatusApplied, app.Status)
	assert.NotNil(t, app.SalaryRange)
}

func TestApplicationDeleteConfirmationPolicy(t *testing.T) {
	stored := &domain.Application{ID: appID, UserID: "u1", CompanyName: "Acme", PositionTitle: "Engineer"}

	t.Run("Should refuse without confirm when policy requires it", func(t *testing.T) {
		f := newFixture()
		uc := usecase.NewApplicationUsecase(f.sessions, f.appRepo, newValidator(), domain.DeleteConfirmPolicy{Applications: true})

		err := uc.Delete(context.Background(), "u1", appID, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "confirm=true")
		f.appRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should delete when confirmed", func(t *testing.T) {
		f := newFixture()
		uc := usecase.NewApplicationUsecase(f.sessions, f.appRepo, newValidator(), domain.DeleteConfirmPolicy{Applications: true})

		f.appRepo.On("GetByID", mock.Anything, appID).Return(stored, nil).Once()
		f.appRepo.On("Delete", mock.Anything, appID).Return(nil).Once()

		require.NoError(t, uc.Delete(context.Background(), "u1", appID, true))
		f.appRepo.AssertExpectations(t)
	})

	t.Run("Should delete unconfirmed when policy is relaxed", func(t *testing.T) {
		f := newFixture()
		uc := usecase.NewApplicationUsecase(f.sessions, f.appRepo, newValidator(), domain.DeleteConfirmPolicy{})

		f.appRepo.On("GetByID", mock.Anything, appID).Return(stored, nil).Once()
		f.appRepo.On("Delete", mock.Anything, appID).Return(nil).Once()

		require.NoError(t, uc.Delete(context.Background(), "u1", appID, false))
	})
}

func TestApplicationGetHidesForeignRecords(t *testing.T) {
	f := newFixture()
	uc := usecase.NewApplicationUsecase(f.sessions, f.appRepo, newValidator(), domain.DeleteConfirmPolicy{})

	foreign := &domain.Application{ID: appID, UserID: "someone_else", CompanyName: "Acme", PositionTitle: "Engineer"}
	f.appRepo.On("GetByID", mock.Anything, appID).Return(foreign, nil).Once()

	_, err := uc.Get(context.Background(), "u1", appID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplicationUpdateRejectsEmptyPatch(t *testing.T) {
	f := newFixture()
	uc := usecase.NewApplicationUsecase(f.sessions, f.appRepo, newValidator(), domain.DeleteConfirmPolicy{})

	stored := &domain.Application{ID: appID, UserID: "u1", CompanyName: "Acme", PositionTitle: "Engineer"}
	f.appRepo.On("GetByID", mock.Anything, appID).Return(stored, nil).Once()

	_, err := uc.Update(context.Background(), "u1", appID, &domain.ApplicationUpdateForm{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Nothing to update")
	f.appRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestInterviewCreateChecksOwnership(t *testing.T) {
	f := newFixture()
	uc := usecase.NewInterviewUsecase(f.sessions, f.ivRepo, f.appRepo, newValidator(), domain.DeleteConfirmPolicy{})

	form := &domain.InterviewForm{
		ApplicationID: appID,
		RoundNumber:   1,
		InterviewDate: "2026-02-01T10:00",
		InterviewType: domain.InterviewTypeTechnical,
	}

	t.Run("Should refuse a foreign application", func(t *testing.T) {
		foreign := &domain.Application{ID: appID, UserID: "someone_else", CompanyName: "Acme", PositionTitle: "Engineer"}
		f.appRepo.On("GetByID", mock.Anything, appID).Return(foreign, nil).Once()

		_, err := uc.Create(context.Background(), "u1", form)
		assert.Error(t, err)
		f.ivRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Should create for an owned application", func(t *testing.T) {
		owned := &domain.Application{ID: appID, UserID: "u1", CompanyName: "Acme", PositionTitle: "Engineer"}
		f.appRepo.On("GetByID", mock.Anything, appID).Return(owned, nil).Once()
		f.ivRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Interview).ID = "i1"
		}).Once()

		iv, err := uc.Create(context.Background(), "u1", form)
		require.NoError(t, err)
		assert.Equal(t, "i1", iv.ID)
		// Status defaults to SCHEDULED
		assert.Equal(t, domain.InterviewStatusScheduled, iv.Status)
	})
}

func TestInterviewCreateValidatesBeforeRemote(t *testing.T) {
	f := newFixture()
	uc := usecase.NewInterviewUsecase(f.sessions, f.ivRepo, f.appRepo, newValidator(), domain.DeleteConfirmPolicy{})

	form := &domain.InterviewForm{
		ApplicationID: appID,
		RoundNumber:   0, // invalid
		InterviewDate: "2026-02-01T10:00",
		InterviewType: domain.InterviewTypeTechnical,
	}
	_, err := uc.Create(context.Background(), "u1", form)
	assert.Error(t, err)
	f.appRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.ivRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestReferralCreateValidatesEmail(t *testing.T) {
	f := newFixture()
	uc := usecase.NewReferralUsecase(f.sessions, f.refRepo, f.appRepo, newValidator(), domain.DeleteConfirmPolicy{})

	email := "not-an-email"
	form := &domain.ReferralForm{
		ApplicationID: appID,
		ReferrerName:  "Dana",
		ReferrerEmail: &email,
		Relationship:  "Former colleague",
	}

	_, err := uc.Create(context.Background(), "u1", form)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email")
	f.refRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestReferralCreate(t *testing.T) {
	f := newFixture()
	uc := usecase.NewReferralUsecase(f.sessions, f.refRepo, f.appRepo, newValidator(), domain.DeleteConfirmPolicy{})

	owned := &domain.Application{ID: appID, UserID: "u1", CompanyName: "Acme", PositionTitle: "Engineer"}
	f.appRepo.On("GetByID", mock.Anything, appID).Return(owned, nil).Once()
	f.refRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Referral")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Referral).ID = "r1"
	}).Once()

	email := "dana@example.com"
	ref, err := uc.Create(context.Background(), "u1", &domain.ReferralForm{
		ApplicationID: appID,
		ReferrerName:  "Dana",
		ReferrerEmail: &email,
		Relationship:  "Former colleague",
	})
	require.NoError(t, err)
	assert.Equal(t, "r1", ref.ID)
}

func TestAnalyticsSummaryUsesFreshSnapshot(t *testing.T) {
	f := newFixture()
	uc := usecase.NewAnalyticsUsecase(f.sessions)

	f.appRepo.On("ListByUser", mock.Anything, "u1").Return([]domain.Application{
		{ID: "a1", UserID: "u1", CompanyName: "Acme", PositionTitle: "Dev", Status: domain.StatusApplied},
		{ID: "a2", UserID: "u1", CompanyName: "Beta", PositionTitle: "Dev", Status: domain.StatusOffered},
		{ID: "a3", UserID: "u1", CompanyName: "Gamma", PositionTitle: "Dev", Status: domain.StatusRejected},
	}, nil).Once()

	summary, err := uc.Summary(context.Background(), "u1", "all")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, "33.3%", summary.SuccessRate)
	assert.Equal(t, "66.7%", summary.ResponseRate)
}
