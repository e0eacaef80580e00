package types

// DashboardSummary is the read-only composition returned by the dashboard
// endpoint. It has no persisted state of its own.
type DashboardSummary struct {
	Greeting string     `json:"greeting"`
	Widgets  WidgetData `json:"widgets"`
}

// WidgetData groups the per-widget payloads of the summary.
type WidgetData struct {
	Tasks TaskSummary `json:"tasks"`
}

// TaskSummary is the task widget: how many tasks are still pending and
// the few most recently created ones.
type TaskSummary struct {
	PendingCount int64      `json:"pending_count"`
	RecentTasks  []TaskItem `json:"recent_tasks"`
}
