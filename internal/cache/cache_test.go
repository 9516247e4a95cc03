package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jtrack-backend/internal/cache"
	"jtrack-backend/internal/domain"

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

func twoApps() []domain.Application {
	return []domain.Application{
		{ID: "a2", CompanyName: "Beta", PositionTitle: "Dev", Status: domain.StatusApplied},
		{ID: "a1", CompanyName: "Alpha", PositionTitle: "Dev", Status: domain.StatusApplied},
	}
}

func TestApplicationCacheFetchReplacesWholesale(t *testing.T) {
	repo := new(MockApplicationRepo)
	c := cache.NewApplicationCache(repo, "u1")

	repo.On("ListByUser", mock.Anything, "u1").Return(twoApps(), nil).Once()
	require.NoError(t, c.Fetch(context.Background()))
	assert.Equal(t, 2, c.Len())

	// Second fetch replaces, never merges
	repo.On("ListByUser", mock.Anything, "u1").Return([]domain.Application{
		{ID: "a3", CompanyName: "Gamma", PositionTitle: "Dev", Status: domain.StatusApplied},
	}, nil).Once()
	require.NoError(t, c.Fetch(context.Background()))
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("a1")
	assert.False(t, ok)
}

func TestApplicationCacheFetchErrorKeepsRecords(t *testing.T) {
	repo := new(MockApplicationRepo)
	c := cache.NewApplicationCache(repo, "u1")

	repo.On("ListByUser", mock.Anything, "u1").Return(twoApps(), nil).Once()
	require.NoError(t, c.Fetch(context.Background()))

	repo.On("ListByUser", mock.Anything, "u1").Return(nil, errors.New("network down")).Once()
	err := c.Fetch(context.Background())
	assert.Error(t, err)

	// Records untouched, error observable, loading cleared
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "Failed to fetch applications", c.LastError())
	assert.False(t, c.Loading())

	// A later success clears the error
	repo.On("ListByUser", mock.Anything, "u1").Return(twoApps(), nil).Once()
	require.NoError(t, c.Fetch(context.Background()))
	assert.Empty(t, c.LastError())
}

func TestApplicationCacheAddAppendsAtTail(t *testing.T) {
	repo := new(MockApplicationRepo)
	c := cache.NewApplicationCache(repo, "u1")

	repo.On("ListByUser", mock.Anything, "u1").Return(twoApps(), nil).Once()
	require.NoError(t, c.Fetch(context.Background()))

	repo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
		app := args.Get(1).(*domain.Application)
		app.ID = "a9"
		app.CreatedAt = time.Now()
	}).Once()

	app := &domain.Application{CompanyName: "New Co", PositionTitle: "Dev", Status: domain.StatusApplied}
	require.NoError(t, c.Add(context.Background(), app))
	assert.Equal(t, "u1", app.UserID)

	// Tail position, even though fetch order is newest first
	snap := c.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "a9", snap[2].ID)
}

func TestApplicationCacheAddErrorLeavesCache(t *testing.T) {
	repo := new(MockApplicationRepo)
	c := cache.NewApplicationCache(repo, "u1")

	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()
	err := c.Add(context.Background(), &domain.Application{CompanyName: "X", PositionTitle: "Y"})
	assert.Error(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, "Failed to add application", c.LastError())
}

func TestApplicationCacheUpdateReplacesInPlace(t *testing.T) {
	repo := new(MockApplicationRepo)
	c := cache.NewApplicationCache(repo, "u1")

	repo.On("ListByUser", mock.Anything, "u1").Return(twoApps(), nil).Once()
	require.NoError(t, c.Fetch(context.Background()))

	status := domain.StatusOffered
	updated := &domain.Application{ID: "a1", CompanyName: "Alpha", PositionTitle: "Dev", Status: status}
	repo.On("Update", mock.Anything, "a1", mock.Anything).Return(updated, nil).Once()

	got, err := c.Update(context.Background(), "a1", domain.ApplicationPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOffered, got.Status)

	cached, ok := c.Get("a1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusOffered, cached.Status)
	assert.Equal(t, 2, c.Len())
}

func TestApplicationCacheUpdateMissDoesNotInsert(t *testing.T) {
	repo := new(MockApplicationRepo)
	c := cache.NewApplicationCache(repo, "u1")

	repo.On("ListByUser", mock.Anything, "u1").Return(twoApps(), nil).Once()
	require.NoError(t, c.Fetch(context.Background()))

	status := domain.StatusOffered
	updated := &domain.Application{ID: "zz", CompanyName: "Zeta", PositionTitle: "Dev", Status: status}
	repo.On("Update", mock.Anything, "zz", mock.Anything).Return(updated, nil).Once()

	_, err := c.Update(context.Background(), "zz", domain.ApplicationPatch{Status: &status})
	require.NoError(t, err)

	// Membership unchanged: the updated record was never cached
	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("zz")
	assert.False(t, ok)
}

func TestApplicationCacheDeleteRemoteFirst(t *testing.T) {
	repo := new(MockApplicationRepo)
	c := cache.NewApplicationCache(repo, "u1")

	repo.On("ListByUser", mock.Anything, "u1").Return(twoApps(), nil).Once()
	require.NoError(t, c.Fetch(context.Background()))

	// Remote failure leaves the cache intact
	repo.On("Delete", mock.Anything, "a1").Return(errors.New("boom")).Once()
	assert.Error(t, c.Delete(context.Background(), "a1"))
	assert.Equal(t, 2, c.Len())

	// Remote success drops the record
	repo.On("Delete", mock.Anything, "a1").Return(nil).Once()
	require.NoError(t, c.Delete(context.Background(), "a1"))
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("a1")
	assert.False(t, ok)
}

func TestApplicationCachePublishesEvents(t *testing.T) {
	repo := new(MockApplicationRepo)
	c := cache.NewApplicationCache(repo, "u1")

	var events []cache.Event
	c.Subscribe(func(ev cache.Event) { events = append(events, ev) })

	repo.On("ListByUser", mock.Anything, "u1").Return(twoApps(), nil).Once()
	require.NoError(t, c.Fetch(context.Background()))

	repo.On("Delete", mock.Anything, "a1").Return(nil).Once()
	require.NoError(t, c.Delete(context.Background(), "a1"))

	require.Len(t, events, 2)
	assert.Equal(t, cache.OpFetch, events[0].Op)
	assert.Equal(t, cache.OpDelete, events[1].Op)
	assert.Equal(t, "a1", events[1].ID)
	assert.Equal(t, cache.EntityApplication, events[1].Entity)
}

func TestInterviewCacheKeepsDuplicateRounds(t *testing.T) {
	repo := new(MockInterviewRepo)
	c := cache.NewInterviewCache(repo, "u1")

	repo.On("ListByApplication", mock.Anything, "a1").Return([]domain.Interview{
		{ID: "i1", ApplicationID: "a1", RoundNumber: 1},
	}, nil).Once()
	require.NoError(t, c.Fetch(context.Background(), "a1"))
	assert.Equal(t, "a1", c.Filter())

	repo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Interview).ID = "i2"
	}).Once()

	// Same round number as i1: both stay
	require.NoError(t, c.Add(context.Background(), &domain.Interview{ApplicationID: "a1", RoundNumber: 1}))
	assert.Equal(t, 2, c.Len())
}

func TestInterviewCacheAllMode(t *testing.T) {
	repo := new(MockInterviewRepo)
	c := cache.NewInterviewCache(repo, "u1")

	repo.On("ListByUser", mock.Anything, "u1").Return([]domain.Interview{
		{ID: "i1", ApplicationID: "a1"},
		{ID: "i2", ApplicationID: "a2"},
	}, nil).Once()

	require.NoError(t, c.Fetch(context.Background(), ""))
	assert.Empty(t, c.Filter())
	assert.Equal(t, 2, c.Len())
}

func TestSessionEvictsSiblingsOnApplicationDelete(t *testing.T) {
	appRepo := new(MockApplicationRepo)
	ivRepo := new(MockInterviewRepo)
	refRepo := new(MockReferralRepo)

	mgr := cache.NewManager(appRepo, ivRepo, refRepo)
	s := mgr.Session("u1")

	appRepo.On("ListByUser", mock.Anything, "u1").Return(twoApps(), nil).Once()
	require.NoError(t, s.Applications.Fetch(context.Background()))

	ivRepo.On("ListByUser", mock.Anything, "u1").Return([]domain.Interview{
		{ID: "i1", ApplicationID: "a1"},
		{ID: "i2", ApplicationID: "a2"},
	}, nil).Once()
	require.NoError(t, s.Interviews.Fetch(context.Background(), ""))

	refRepo.On("ListByUser", mock.Anything, "u1").Return([]domain.Referral{
		{ID: "r1", ApplicationID: "a1", ReferrerName: "Dana", Relationship: "Friend"},
	}, nil).Once()
	require.NoError(t, s.Referrals.Fetch(context.Background(), ""))

	// Deleting the application cascades into the sibling caches
	appRepo.On("Delete", mock.Anything, "a1").Return(nil).Once()
	require.NoError(t, s.Applications.Delete(context.Background(), "a1"))

	assert.Equal(t, 1, s.Interviews.Len())
	_, ok := s.Interviews.Get("i1")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Referrals.Len())
}

func TestManagerReusesAndDropsSessions(t *testing.T) {
	mgr := cache.NewManager(new(MockApplicationRepo), new(MockInterviewRepo), new(MockReferralRepo))

	s1 := mgr.Session("u1")
	assert.Same(t, s1, mgr.Session("u1"))
	assert.NotSame(t, s1, mgr.Session("u2"))

	mgr.Drop("u1")
	assert.NotSame(t, s1, mgr.Session("u1"))
}
