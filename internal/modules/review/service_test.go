package review

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"nilinki/internal/domain"
)

type MockBookingGate struct {
	mock.Mock
}

func (m *MockBookingGate) HasCompletedForClient(ctx context.Context, clientID, bandID string) (bool, error) {
	args := m.Called(ctx, clientID, bandID)
	return args.Bool(0), args.Error(1)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil && rv.ID == "" {
		rv.ID = "rev-999" // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockStore) GetByBandID(ctx context.Context, bandID string) ([]domain.Review, error) {
	args := m.Called(ctx, bandID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockStore) ExistsByAuthor(ctx context.Context, authorID, bandID string) (bool, error) {
	args := m.Called(ctx, authorID, bandID)
	return args.Bool(0), args.Error(1)
}

func validCreate() CreateRequest {
	return CreateRequest{
		BandID:    "band-1",
		Rating:    5,
		Content:   "Fantastic show, the dance floor was never empty!",
		EventType: "Wedding",
	}
}

func TestService_CheckEligibility_Anonymous(t *testing.T) {
	service := NewService(new(MockBookingGate), new(MockStore))

	elig, err := service.CheckEligibility(context.Background(), "", "band-1")

	assert.NoError(t, err)
	assert.Equal(t, Eligibility{}, elig, "anonymous visitors get all-false, not an error")
}

func TestService_CheckEligibility_Transitions(t *testing.T) {
	cases := []struct {
		name      string
		completed bool
		reviewed  bool
		want      Eligibility
	}{
		{"no booking", false, false, Eligibility{}},
		{"booking, no review yet", true, false, Eligibility{HasCompletedBooking: true, CanReview: true}},
		{"booking and review", true, true, Eligibility{HasCompletedBooking: true, HasReviewed: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockGate := new(MockBookingGate)
			mockStore := new(MockStore)
			mockGate.On("HasCompletedForClient", mock.Anything, "client-1", "band-1").Return(tc.completed, nil)
			mockStore.On("ExistsByAuthor", mock.Anything, "client-1", "band-1").Return(tc.reviewed, nil)

			service := NewService(mockGate, mockStore)

			elig, err := service.CheckEligibility(context.Background(), "client-1", "band-1")
			assert.NoError(t, err)
			assert.Equal(t, tc.want, elig)
		})
	}
}

func TestService_Create_Success(t *testing.T) {
	mockGate := new(MockBookingGate)
	mockStore := new(MockStore)

	mockGate.On("HasCompletedForClient", mock.Anything, "client-1", "band-1").Return(true, nil)
	mockStore.On("ExistsByAuthor", mock.Anything, "client-1", "band-1").Return(false, nil)
	mockStore.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockGate, mockStore)

	rv, err := service.Create(context.Background(), "client-1", validCreate())

	assert.NoError(t, err)
	assert.Equal(t, "rev-999", rv.ID)
	assert.Equal(t, "client-1", rv.AuthorID)
}

func TestService_Create_RejectsWithoutCompletedBooking(t *testing.T) {
	mockGate := new(MockBookingGate)
	mockStore := new(MockStore)

	mockGate.On("HasCompletedForClient", mock.Anything, "client-1", "band-1").Return(false, nil)
	mockStore.On("ExistsByAuthor", mock.Anything, "client-1", "band-1").Return(false, nil)

	service := NewService(mockGate, mockStore)

	_, err := service.Create(context.Background(), "client-1", validCreate())

	assert.ErrorIs(t, err, ErrNotEligible)
	mockStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_RejectsSecondReview(t *testing.T) {
	mockGate := new(MockBookingGate)
	mockStore := new(MockStore)

	mockGate.On("HasCompletedForClient", mock.Anything, "client-1", "band-1").Return(true, nil)
	mockStore.On("ExistsByAuthor", mock.Anything, "client-1", "band-1").Return(true, nil)

	service := NewService(mockGate, mockStore)

	_, err := service.Create(context.Background(), "client-1", validCreate())

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestService_Create_RatingBounds(t *testing.T) {
	service := NewService(new(MockBookingGate), new(MockStore))

	for _, rating := range []int{0, -1, 6} {
		req := validCreate()
		req.Rating = rating
		_, err := service.Create(context.Background(), "client-1", req)
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
}

func TestService_Create_ContentTooShort(t *testing.T) {
	service := NewService(new(MockBookingGate), new(MockStore))

	req := validCreate()
	req.Content = "  nice  "
	_, err := service.Create(context.Background(), "client-1", req)

	assert.ErrorIs(t, err, ErrContentTooShort)
}

func TestService_Create_MapsUniqueViolationToConflict(t *testing.T) {
	mockGate := new(MockBookingGate)
	mockStore := new(MockStore)

	mockGate.On("HasCompletedForClient", mock.Anything, "client-1", "band-1").Return(true, nil)
	mockStore.On("ExistsByAuthor", mock.Anything, "client-1", "band-1").Return(false, nil)
	// a concurrent insert slipped past the pre-check
	mockStore.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_reviews_band_author"})

	service := NewService(mockGate, mockStore)

	_, err := service.Create(context.Background(), "client-1", validCreate())

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestIsUniqueViolation_SQLiteMessage(t *testing.T) {
	err := errors.New("constraint failed: UNIQUE constraint failed: reviews.band_id, reviews.author_id")
	assert.True(t, isUniqueViolation(err))
	assert.False(t, isUniqueViolation(errors.New("disk I/O error")))
}
