package handler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
	"github.com/twigalabs/rangertrack/services/tracking/mocks"
)

func TestHandleObservationIngest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)
	h := NewNATSHandler(uc, nil)

	event := models.ObservationIngestEvent{
		Observation: models.Observation{
			ID:         "obs-1",
			SourceID:   "collar-7",
			RecordedAt: time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC),
			Location:   models.Location{Latitude: -1.2921, Longitude: 36.8219},
			Additional: map[string]interface{}{"battery": 3.7},
		},
		ReceivedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	uc.EXPECT().IngestObservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, obs models.Observation) error {
			assert.Equal(t, "collar-7", obs.SourceID)
			assert.InDelta(t, -1.2921, obs.Location.Latitude, 0.0001)
			return nil
		})

	assert.NoError(t, h.handleObservationIngest(payload))
}

func TestHandleObservationIngest_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewNATSHandler(mocks.NewMockTrackingUC(ctrl), nil)

	assert.Error(t, h.handleObservationIngest([]byte("not json")))
}

func TestHandleObservationIngest_UsecaseFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTrackingUC(ctrl)
	h := NewNATSHandler(uc, nil)

	payload, err := json.Marshal(models.ObservationIngestEvent{
		Observation: models.Observation{SourceID: "collar-7"},
	})
	require.NoError(t, err)

	uc.EXPECT().IngestObservation(gomock.Any(), gomock.Any()).Return(assert.AnError)

	assert.Error(t, h.handleObservationIngest(payload))
}
