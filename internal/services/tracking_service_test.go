package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/support-portal/backend/internal/apperr"
	"github.com/support-portal/backend/internal/models"
)

func newTrackingService(store *fakeTicketStore) *TrackingService {
	return NewTrackingService(store, zap.NewNop())
}

func TestTrack(t *testing.T) {
	store := newFakeTicketStore(models.Ticket{
		ID:     "42",
		Email:  "dana@example.com",
		Status: models.StatusOpen,
	})
	svc := newTrackingService(store)

	res, err := svc.Track(context.Background(), "42", "dana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "42", res.TicketID)
	assert.Equal(t, models.StatusOpen, res.Status)
	assert.Nil(t, res.ResolutionSummary, "resolution is shown only on Closed tickets")
}

func TestTrackClosedShowsResolution(t *testing.T) {
	store := newFakeTicketStore(models.Ticket{
		ID:                "42",
		Email:             "dana@example.com",
		Status:            models.StatusClosed,
		ResolutionSummary: strptr("Re-ran the export job."),
	})
	svc := newTrackingService(store)

	res, err := svc.Track(context.Background(), "42", "dana@example.com")
	require.NoError(t, err)
	require.NotNil(t, res.ResolutionSummary)
	assert.Equal(t, "Re-ran the export job.", *res.ResolutionSummary)
}

func TestTrackMissingFields(t *testing.T) {
	svc := newTrackingService(newFakeTicketStore())

	for _, tc := range []struct{ id, email string }{
		{"", ""},
		{"42", ""},
		{"", "dana@example.com"},
	} {
		_, err := svc.Track(context.Background(), tc.id, tc.email)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
		assert.EqualError(t, err, "Please enter both Ticket ID and Email.")
	}
}

func TestTrackNonNumericID(t *testing.T) {
	svc := newTrackingService(newFakeTicketStore())

	_, err := svc.Track(context.Background(), "1A2B3C4D", "dana@example.com")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.EqualError(t, err, "Ticket ID must be a number.")
}

func TestTrackNotFoundWordingIsUniform(t *testing.T) {
	store := newFakeTicketStore(models.Ticket{
		ID:     "42",
		Email:  "dana@example.com",
		Status: models.StatusOpen,
	})
	svc := newTrackingService(store)

	// Wrong ID and wrong email produce the identical answer.
	_, errWrongID := svc.Track(context.Background(), "99", "dana@example.com")
	_, errWrongEmail := svc.Track(context.Background(), "42", "eve@example.com")

	assert.ErrorIs(t, errWrongID, apperr.ErrTicketNotFound)
	assert.ErrorIs(t, errWrongEmail, apperr.ErrTicketNotFound)
	assert.Equal(t, errWrongID.Error(), errWrongEmail.Error())
	assert.EqualError(t, errWrongID, "No ticket found for that ID and email.")
}
