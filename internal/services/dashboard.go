package services

import (
	"context"

	"github.com/cyberme/apiserver/types"
)

const (
	dashboardGreeting = "Welcome back, System Admin."
	recentTaskCount   = 3
)

// DashboardService composes the dashboard summary from task store reads.
// It holds no state of its own and never caches.
type DashboardService struct {
	tasks *TaskService
}

func NewDashboardService(tasks *TaskService) *DashboardService {
	return &DashboardService{tasks: tasks}
}

// Summarize re-queries the task store on every call. The two reads are
// not wrapped in a transaction; a write landing between them can leave
// the count and the list slightly out of step. Best-effort by contract.
func (s *DashboardService) Summarize(ctx context.Context) (types.DashboardSummary, error) {
	pending, err := s.tasks.CountPending(ctx)
	if err != nil {
		return types.DashboardSummary{}, err
	}

	recent, err := s.tasks.Recent(ctx, recentTaskCount)
	if err != nil {
		return types.DashboardSummary{}, err
	}

	return types.DashboardSummary{
		Greeting: dashboardGreeting,
		Widgets: types.WidgetData{
			Tasks: types.TaskSummary{
				PendingCount: pending,
				RecentTasks:  recent,
			},
		},
	}, nil
}
