package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/cyberme/apiserver/internal/services"
	"github.com/cyberme/apiserver/internal/store"
	"github.com/cyberme/apiserver/types"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories backing the full route table. They mirror the
// SQL repositories' contracts, including the sentinel errors.

type memUserRepo struct {
	users map[string]types.User
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (types.User, error) {
	user, ok := r.users[username]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (r *memUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	if _, ok := r.users[user.Username]; ok {
		return types.User{}, store.ErrDuplicate
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	r.users[user.Username] = user
	return user, nil
}

type memTaskRepo struct {
	tasks []types.TaskItem
	clock time.Time
}

func (r *memTaskRepo) Create(_ context.Context, title string, priority *string) (types.TaskItem, error) {
	r.clock = r.clock.Add(time.Second)
	task := types.TaskItem{
		ID:        uuid.New(),
		Title:     title,
		Priority:  priority,
		CreatedAt: r.clock,
	}
	r.tasks = append(r.tasks, task)
	return task, nil
}

func (r *memTaskRepo) Toggle(_ context.Context, id uuid.UUID) error {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i].IsDone = !r.tasks[i].IsDone
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *memTaskRepo) CountPending(_ context.Context) (int64, error) {
	var count int64
	for _, task := range r.tasks {
		if !task.IsDone {
			count++
		}
	}
	return count, nil
}

func (r *memTaskRepo) Recent(_ context.Context, limit int) ([]types.TaskItem, error) {
	ordered := make([]types.TaskItem, len(r.tasks))
	copy(ordered, r.tasks)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered, nil
}

type memJournalRepo struct {
	entries []types.JournalEntry
}

func (r *memJournalRepo) Create(_ context.Context, date time.Time, entryType string, mood *string, content string) (types.JournalEntry, error) {
	entry := types.JournalEntry{
		ID:        uuid.New(),
		Date:      date.Format("2006-01-02"),
		EntryType: entryType,
		Mood:      mood,
		Content:   content,
		CreatedAt: time.Now(),
	}
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *memJournalRepo) Recent(_ context.Context, limit int) ([]types.JournalEntry, error) {
	ordered := make([]types.JournalEntry, len(r.entries))
	copy(ordered, r.entries)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Date > ordered[j].Date
	})
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered, nil
}

func newTestRouter() *chi.Mux {
	authService := services.NewAuthService(&memUserRepo{users: make(map[string]types.User)})
	taskService := services.NewTaskService(&memTaskRepo{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	journalService := services.NewJournalService(&memJournalRepo{})
	dashboardService := services.NewDashboardService(taskService)

	return NewRouter(authService, taskService, journalService, dashboardService)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &value))
	return value
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CyberMe Systems Operational.", rec.Body.String())
}

func TestRegisterAndLogin(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/register", map[string]string{
		"username": "neo", "password": "trinity",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "User created", resp["message"])
	assert.Equal(t, "success", resp["status"])

	// Same username again must not overwrite.
	rec = doJSON(t, router, http.MethodPost, "/register", map[string]string{
		"username": "neo", "password": "other",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"username": "neo", "password": "trinity",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeBody[map[string]string](t, rec)
	assert.Equal(t, "Login successful", resp["message"])

	rec = doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"username": "neo", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Wrong password", decodeBody[map[string]string](t, rec)["error"])

	rec = doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"username": "smith", "password": "trinity",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Account not found", decodeBody[map[string]string](t, rec)["error"])
}

func TestRegisterMissingFields(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/register", map[string]string{"username": "neo"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAndToggleTask(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/tasks", map[string]string{
		"title": "Buy milk", "priority": "low",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	task := decodeBody[types.TaskItem](t, rec)
	assert.NotEqual(t, uuid.UUID{}, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.False(t, task.IsDone)
	require.NotNil(t, task.Priority)
	assert.Equal(t, "low", *task.Priority)

	rec = doJSON(t, router, http.MethodGet, "/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeBody[types.DashboardSummary](t, rec)
	assert.Equal(t, "Welcome back, System Admin.", summary.Greeting)
	assert.Equal(t, int64(1), summary.Widgets.Tasks.PendingCount)
	require.Len(t, summary.Widgets.Tasks.RecentTasks, 1)
	assert.Equal(t, task.ID, summary.Widgets.Tasks.RecentTasks[0].ID)

	rec = doJSON(t, router, http.MethodPost, "/tasks/"+task.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Task updated", decodeBody[string](t, rec))

	rec = doJSON(t, router, http.MethodGet, "/dashboard/summary", nil)
	summary = decodeBody[types.DashboardSummary](t, rec)
	assert.Zero(t, summary.Widgets.Tasks.PendingCount)

	// Toggling twice returns the task to pending.
	rec = doJSON(t, router, http.MethodPost, "/tasks/"+task.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/dashboard/summary", nil)
	summary = decodeBody[types.DashboardSummary](t, rec)
	assert.Equal(t, int64(1), summary.Widgets.Tasks.PendingCount)
	assert.False(t, summary.Widgets.Tasks.RecentTasks[0].IsDone)
}

func TestCreateTaskMissingTitle(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/tasks", map[string]string{"priority": "low"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleTaskBadID(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/tasks/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/tasks/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardRecentTasksCapped(t *testing.T) {
	router := newTestRouter()

	for _, title := range []string{"one", "two", "three", "four"} {
		rec := doJSON(t, router, http.MethodPost, "/tasks", map[string]string{"title": title})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/dashboard/summary", nil)
	summary := decodeBody[types.DashboardSummary](t, rec)
	assert.Equal(t, int64(4), summary.Widgets.Tasks.PendingCount)
	require.Len(t, summary.Widgets.Tasks.RecentTasks, 3)
	assert.Equal(t, "four", summary.Widgets.Tasks.RecentTasks[0].Title)
}

func TestCreateAndListLogs(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/logs", map[string]string{
		"date": "2024-01-01", "entry_type": "note", "content": "hello",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	entry := decodeBody[types.JournalEntry](t, rec)
	assert.Equal(t, "2024-01-01", entry.Date)
	assert.Equal(t, "note", entry.EntryType)
	assert.Nil(t, entry.Mood)
	assert.Equal(t, "hello", entry.Content)

	rec = doJSON(t, router, http.MethodGet, "/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeBody[[]types.JournalEntry](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
}

func TestCreateLogValidation(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/logs", map[string]string{
		"entry_type": "note", "content": "hello",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/logs", map[string]string{
		"date": "01/01/2024", "entry_type": "note", "content": "hello",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListLogsCappedAtTen(t *testing.T) {
	router := newTestRouter()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 12; day++ {
		rec := doJSON(t, router, http.MethodPost, "/logs", map[string]string{
			"date":       base.AddDate(0, 0, day).Format("2006-01-02"),
			"entry_type": "note",
			"content":    "entry",
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/logs", nil)
	entries := decodeBody[[]types.JournalEntry](t, rec)
	require.Len(t, entries, 10)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Date, entries[i].Date)
	}
}
