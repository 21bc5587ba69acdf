package inquiry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"nilinki/internal/domain"
)

type MockBandResolver struct {
	mock.Mock
}

func (m *MockBandResolver) GetByOwnerID(ctx context.Context, ownerID string) (*domain.Band, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Band), args.Error(1)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetByID(ctx context.Context, id string) (*domain.BookingInquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingInquiry), args.Error(1)
}

func (m *MockStore) GetByBandID(ctx context.Context, bandID string, status *domain.InquiryStatus) ([]domain.BookingInquiry, error) {
	args := m.Called(ctx, bandID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingInquiry), args.Error(1)
}

func (m *MockStore) GetByClientID(ctx context.Context, clientID string) ([]domain.BookingInquiry, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.BookingInquiry), args.Error(1)
}

func (m *MockStore) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockStore) CountByStatus(ctx context.Context, bandID string) (map[domain.InquiryStatus]int64, error) {
	args := m.Called(ctx, bandID)
	return args.Get(0).(map[domain.InquiryStatus]int64), args.Error(1)
}

func ownedBand() *domain.Band {
	return &domain.Band{ID: "band-1", OwnerID: "owner-1", Name: "Velvet Thunder"}
}

func TestService_UpdateStatus_AcceptPending(t *testing.T) {
	mockBands := new(MockBandResolver)
	mockStore := new(MockStore)

	mockBands.On("GetByOwnerID", mock.Anything, "owner-1").Return(ownedBand(), nil)
	mockStore.On("GetByID", mock.Anything, "inq-1").
		Return(&domain.BookingInquiry{ID: "inq-1", BandID: "band-1", Status: domain.InquiryPending}, nil)
	mockStore.On("UpdateStatus", mock.Anything, "inq-1", domain.InquiryAccepted).Return(nil)

	service := NewService(mockBands, mockStore)

	inq, err := service.UpdateStatus(context.Background(), "owner-1", "inq-1", "accepted")

	assert.NoError(t, err)
	assert.Equal(t, domain.InquiryAccepted, inq.Status)
	mockStore.AssertExpectations(t)
}

func TestService_UpdateStatus_RejectsIllegalTransition(t *testing.T) {
	mockBands := new(MockBandResolver)
	mockStore := new(MockStore)

	mockBands.On("GetByOwnerID", mock.Anything, "owner-1").Return(ownedBand(), nil)
	mockStore.On("GetByID", mock.Anything, "inq-1").
		Return(&domain.BookingInquiry{ID: "inq-1", BandID: "band-1", Status: domain.InquiryDeclined}, nil)

	service := NewService(mockBands, mockStore)

	_, err := service.UpdateStatus(context.Background(), "owner-1", "inq-1", "accepted")

	assert.ErrorIs(t, err, ErrInvalidTransition)
	mockStore.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	service := NewService(new(MockBandResolver), new(MockStore))

	_, err := service.UpdateStatus(context.Background(), "owner-1", "inq-1", "archived")

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdateStatus_RejectsForeignInquiry(t *testing.T) {
	mockBands := new(MockBandResolver)
	mockStore := new(MockStore)

	mockBands.On("GetByOwnerID", mock.Anything, "owner-1").Return(ownedBand(), nil)
	mockStore.On("GetByID", mock.Anything, "inq-2").
		Return(&domain.BookingInquiry{ID: "inq-2", BandID: "someone-elses-band", Status: domain.InquiryPending}, nil)

	service := NewService(mockBands, mockStore)

	_, err := service.UpdateStatus(context.Background(), "owner-1", "inq-2", "accepted")

	assert.ErrorIs(t, err, ErrNotOwner)
	mockStore.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_NoBandForAccount(t *testing.T) {
	mockBands := new(MockBandResolver)
	mockBands.On("GetByOwnerID", mock.Anything, "owner-x").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBands, new(MockStore))

	_, err := service.UpdateStatus(context.Background(), "owner-x", "inq-1", "accepted")

	assert.ErrorIs(t, err, ErrNoBand)
}

func TestService_ListForOwner_StatusFilter(t *testing.T) {
	mockBands := new(MockBandResolver)
	mockStore := new(MockStore)

	mockBands.On("GetByOwnerID", mock.Anything, "owner-1").Return(ownedBand(), nil)

	pending := domain.InquiryPending
	mockStore.On("GetByBandID", mock.Anything, "band-1", &pending).
		Return([]domain.BookingInquiry{{ID: "inq-1", Status: domain.InquiryPending}}, nil)

	service := NewService(mockBands, mockStore)

	list, err := service.ListForOwner(context.Background(), "owner-1", "pending")

	assert.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = service.ListForOwner(context.Background(), "owner-1", "bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_StatsForOwner(t *testing.T) {
	mockBands := new(MockBandResolver)
	mockStore := new(MockStore)

	mockBands.On("GetByOwnerID", mock.Anything, "owner-1").Return(ownedBand(), nil)
	mockStore.On("CountByStatus", mock.Anything, "band-1").Return(map[domain.InquiryStatus]int64{
		domain.InquiryPending:   3,
		domain.InquiryAccepted:  2,
		domain.InquiryCompleted: 1,
	}, nil)

	service := NewService(mockBands, mockStore)

	stats, err := service.StatsForOwner(context.Background(), "owner-1")

	assert.NoError(t, err)
	assert.Equal(t, Stats{Pending: 3, Accepted: 2, Declined: 0, Completed: 1, Total: 6}, stats)
}
