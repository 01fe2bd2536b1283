package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/support-portal/backend/internal/models"
)

func dashboardFixture() *fakeTicketStore {
	unassigned := seedTicket()
	unassigned.ID = "10000001"
	unassigned.Priority = models.PriorityHigh

	mine := seedTicket()
	mine.ID = "10000002"
	mine.Status = models.StatusOpen
	mine.AssignedTo = strptr("agent@example.com")

	theirs := seedTicket()
	theirs.ID = "10000003"
	theirs.AssignedTo = strptr("other@example.com")

	return newFakeTicketStore(unassigned, mine, theirs)
}

func TestListTicketsVisibility(t *testing.T) {
	store := dashboardFixture()
	svc := NewDashboardService(store, zap.NewNop())

	adminList, err := svc.ListTickets(context.Background(), admin(), nil, nil, 50, 0)
	require.NoError(t, err)
	assert.Len(t, adminList, 3, "admins see every ticket")

	agentList, err := svc.ListTickets(context.Background(), agent(), nil, nil, 50, 0)
	require.NoError(t, err)
	require.Len(t, agentList, 2, "agents see unassigned plus their own")
	for _, tk := range agentList {
		if tk.AssignedTo != nil {
			assert.Equal(t, "agent@example.com", *tk.AssignedTo)
		}
	}
}

func TestListTicketsStatusFilter(t *testing.T) {
	store := dashboardFixture()
	svc := NewDashboardService(store, zap.NewNop())

	open := models.StatusOpen
	list, err := svc.ListTickets(context.Background(), admin(), &open, nil, 50, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "10000002", list[0].ID)
}

func TestMetricsVisibility(t *testing.T) {
	store := dashboardFixture()
	svc := NewDashboardService(store, zap.NewNop())

	adminMetrics, err := svc.Metrics(context.Background(), admin())
	require.NoError(t, err)
	assert.Equal(t, 3, adminMetrics.Total)
	assert.Equal(t, 2, adminMetrics.New)
	assert.Equal(t, 1, adminMetrics.HighPriority)

	agentMetrics, err := svc.Metrics(context.Background(), agent())
	require.NoError(t, err)
	assert.Equal(t, 2, agentMetrics.Total, "metrics cover only the visible subset")
}
