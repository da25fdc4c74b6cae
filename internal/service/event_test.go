package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/smulube/stashboard/internal/domain"
	"github.com/smulube/stashboard/internal/metrics"
	broker_mock "github.com/smulube/stashboard/internal/mocks/broker"
	counter_mock "github.com/smulube/stashboard/internal/mocks/counters"
	repository_mock "github.com/smulube/stashboard/internal/mocks/repository"
	"github.com/smulube/stashboard/internal/repo/repoerrs"
	"github.com/smulube/stashboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventService_Create(t *testing.T) {
	api := domain.Service{ID: 1, Slug: "api", Name: "API"}
	down := domain.Status{ID: 2, Slug: "down", Image: "cross-circle", Severity: 40}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := repository_mock.NewMockService(ctrl)
	statuses := repository_mock.NewMockStatus(ctrl)
	events := repository_mock.NewMockEvent(ctrl)
	producer := broker_mock.NewMockProducer(ctrl)
	created := counter_mock.NewMockCounter(ctrl)

	services.EXPECT().GetServiceBySlug(gomock.Any(), "api").Return(api, nil)
	statuses.EXPECT().GetStatusBySlug(gomock.Any(), "down").Return(down, nil)
	events.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.Event) (int64, error) {
			_, err := uuid.Parse(e.SID)
			assert.NoError(t, err)
			assert.Equal(t, down, e.Status)
			assert.Equal(t, api, e.Service)
			e.ID = 11
			return 11, nil
		})
	created.EXPECT().Inc("api", "down")

	var published service.EventNotification
	producer.EXPECT().
		SendMessage(gomock.Any(), []byte("api"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []byte, value []byte) error {
			return json.Unmarshal(value, &published)
		})

	cnt := metrics.NewTestCounters()
	cnt.EventsCreated = created
	s := service.NewEventService(services, statuses, events, cnt, producer)

	got, err := s.Create(context.Background(), "api", service.EventInput{
		StatusSlug: "down",
		Message:    "database unreachable",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, "database unreachable", got.Message)
	assert.Equal(t, got.SID, published.SID)
	assert.Equal(t, "api", published.Service)
	assert.Equal(t, "down", published.Status)
	assert.Equal(t, "ERROR", published.Level)
}

func TestEventService_Create_Errors(t *testing.T) {
	type mockBehavior func(services *repository_mock.MockService, statuses *repository_mock.MockStatus)

	testCases := []struct {
		name         string
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name: "unknown service",
			mockBehavior: func(services *repository_mock.MockService, statuses *repository_mock.MockStatus) {
				services.EXPECT().GetServiceBySlug(gomock.Any(), "api").Return(domain.Service{}, repoerrs.ErrNotFound)
			},
			wantErr: service.ErrServiceNotFound,
		},
		{
			name: "unknown status",
			mockBehavior: func(services *repository_mock.MockService, statuses *repository_mock.MockStatus) {
				services.EXPECT().GetServiceBySlug(gomock.Any(), "api").Return(domain.Service{ID: 1, Slug: "api"}, nil)
				statuses.EXPECT().GetStatusBySlug(gomock.Any(), "down").Return(domain.Status{}, repoerrs.ErrNotFound)
			},
			wantErr: service.ErrStatusNotFound,
		},
		{
			name: "status lookup fails",
			mockBehavior: func(services *repository_mock.MockService, statuses *repository_mock.MockStatus) {
				services.EXPECT().GetServiceBySlug(gomock.Any(), "api").Return(domain.Service{ID: 1, Slug: "api"}, nil)
				statuses.EXPECT().GetStatusBySlug(gomock.Any(), "down").Return(domain.Status{}, errors.New("broken pipe"))
			},
			wantErr: service.ErrBackendUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			services := repository_mock.NewMockService(ctrl)
			statuses := repository_mock.NewMockStatus(ctrl)
			events := repository_mock.NewMockEvent(ctrl)
			tc.mockBehavior(services, statuses)

			s := service.NewEventService(services, statuses, events, metrics.NewTestCounters(), nil)

			_, err := s.Create(context.Background(), "api", service.EventInput{StatusSlug: "down"})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestEventService_Create_BrokerFailureKeepsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := repository_mock.NewMockService(ctrl)
	statuses := repository_mock.NewMockStatus(ctrl)
	events := repository_mock.NewMockEvent(ctrl)
	producer := broker_mock.NewMockProducer(ctrl)

	services.EXPECT().GetServiceBySlug(gomock.Any(), "api").Return(domain.Service{ID: 1, Slug: "api"}, nil)
	statuses.EXPECT().GetStatusBySlug(gomock.Any(), "up").Return(domain.Status{ID: 1, Slug: "up", Severity: 10}, nil)
	events.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(int64(3), nil)
	producer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("leader not available"))

	s := service.NewEventService(services, statuses, events, metrics.NewTestCounters(), producer)

	_, err := s.Create(context.Background(), "api", service.EventInput{StatusSlug: "up"})
	assert.NoError(t, err)
}

func TestEventService_Get(t *testing.T) {
	sid := uuid.NewString()

	testCases := []struct {
		name         string
		sid          string
		mockBehavior func(events *repository_mock.MockEvent)
		wantErr      error
	}{
		{
			name: "found",
			sid:  sid,
			mockBehavior: func(events *repository_mock.MockEvent) {
				events.EXPECT().GetEvent(gomock.Any(), int64(1), sid).Return(domain.Event{SID: sid}, nil)
			},
		},
		{
			name: "missing",
			sid:  sid,
			mockBehavior: func(events *repository_mock.MockEvent) {
				events.EXPECT().GetEvent(gomock.Any(), int64(1), sid).Return(domain.Event{}, repoerrs.ErrNotFound)
			},
			wantErr: service.ErrEventNotFound,
		},
		{
			name:         "malformed sid",
			sid:          "not-a-uuid",
			mockBehavior: func(events *repository_mock.MockEvent) {},
			wantErr:      service.ErrEventNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			services := repository_mock.NewMockService(ctrl)
			events := repository_mock.NewMockEvent(ctrl)
			services.EXPECT().GetServiceBySlug(gomock.Any(), "api").Return(domain.Service{ID: 1, Slug: "api"}, nil)
			tc.mockBehavior(events)

			s := service.NewEventService(services, repository_mock.NewMockStatus(ctrl), events, metrics.NewTestCounters(), nil)

			got, err := s.Get(context.Background(), "api", tc.sid)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.sid, got.SID)
		})
	}
}

func TestEventService_Current_NoEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := repository_mock.NewMockService(ctrl)
	events := repository_mock.NewMockEvent(ctrl)
	services.EXPECT().GetServiceBySlug(gomock.Any(), "api").Return(domain.Service{ID: 1, Slug: "api"}, nil)
	events.EXPECT().GetLatestEvent(gomock.Any(), int64(1)).Return(domain.Event{}, repoerrs.ErrNotFound)

	s := service.NewEventService(services, repository_mock.NewMockStatus(ctrl), events, metrics.NewTestCounters(), nil)

	got, err := s.Current(context.Background(), "api")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
