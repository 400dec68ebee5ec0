package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papyrus-labs/papyrusdb/internal/config"
	"github.com/papyrus-labs/papyrusdb/internal/logger"
	"github.com/papyrus-labs/papyrusdb/internal/service"
	"github.com/papyrus-labs/papyrusdb/internal/store"
	"github.com/papyrus-labs/papyrusdb/models"
)

const testServerKey = "test-server-key"

// ---- Helpers ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	entities, err := store.NewJSONFileStore(store.InMemory)
	require.NoError(t, err)
	require.NoError(t, store.Bootstrap(context.Background(), entities))

	cfg := &config.StructuredConfig{}
	cfg.App.ServerKey = testServerKey

	h := NewHandler(service.NewServices(entities, logger.Nop()), cfg, logger.Nop())
	return h.Init()
}

func doRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+testServerKey)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dst))
}

func fetchAll(t *testing.T, router http.Handler) models.FetchAllResponse {
	t.Helper()
	rr := doRequest(t, router, http.MethodGet, "/getAll", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.FetchAllResponse
	decodeBody(t, rr, &resp)
	return resp
}

// ---- Auth wiring ----

func TestRoutes_RejectWithoutKey(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/getAll", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRoutes_RejectWrongKey(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/getAll", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

// ---- Status ----

func TestRoutes_Status(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/status", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.StatusResponse
	decodeBody(t, rr, &resp)
	assert.True(t, resp.OK)
	assert.NotEmpty(t, resp.Message)
}

// ---- Fetch all ----

func TestRoutes_GetAll_EmptyStore(t *testing.T) {
	router := newTestRouter(t)

	resp := fetchAll(t, router)
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Notes)
	assert.Empty(t, resp.Categories)
	// empty collections must serialize as [], not null
	rr := doRequest(t, router, http.MethodGet, "/getAll", nil)
	assert.Contains(t, rr.Body.String(), `"notes":[]`)
	assert.Contains(t, rr.Body.String(), `"categories":[]`)
}

// ---- Notes ----

func TestRoutes_AddNote_MissingContent(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/addNote", map[string]any{"title": "no content"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp models.ErrorResponse
	decodeBody(t, rr, &resp)
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Error)
}

func TestRoutes_AddNote_InvalidJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/addNote", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Authorization", "Bearer "+testServerKey)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRoutes_AddNote_ThenUpdate(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/addNote", map[string]any{"content": "first version"})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.UpsertResponse
	decodeBody(t, rr, &created)
	require.True(t, created.OK)
	require.NotEmpty(t, created.ID)
	assert.Contains(t, created.Message, "added")

	rr = doRequest(t, router, http.MethodPost, "/addNote", map[string]any{
		"id":      created.ID,
		"content": "second version",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var updated models.UpsertResponse
	decodeBody(t, rr, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Contains(t, updated.Message, "updated")

	resp := fetchAll(t, router)
	require.Len(t, resp.Notes, 1)
	assert.Equal(t, "second version", resp.Notes[0].Content)
}

func TestRoutes_AddTask_Defaults(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/addTask", map[string]any{
		"content": "task body",
		"items":   []map[string]any{{"text": "step one", "checked": false}},
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	resp := fetchAll(t, router)
	require.Len(t, resp.Notes, 1)
	task := resp.Notes[0]
	assert.True(t, task.IsTask)
	assert.Equal(t, "Tasks", task.Category)
	assert.Equal(t, "bg-default", task.Bg)
	require.Len(t, task.Items, 1)
	assert.Equal(t, "step one", task.Items[0].Text)
}

func TestRoutes_DeleteNote_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodDelete, "/deleteNote/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoutes_AddAgainstTombstone_Conflict(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/addNote", map[string]any{"content": "soon deleted"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created models.UpsertResponse
	decodeBody(t, rr, &created)

	rr = doRequest(t, router, http.MethodDelete, "/deleteNote/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, http.MethodPost, "/addNote", map[string]any{
		"id":      created.ID,
		"content": "resurrection attempt",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)

	// the tombstone must be untouched
	resp := fetchAll(t, router)
	require.Len(t, resp.Notes, 1)
	assert.True(t, resp.Notes[0].IsDeleted)
	assert.Equal(t, "soon deleted", resp.Notes[0].Content)
}

// ---- Categories ----

func TestRoutes_AddCategory_NameRequired(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/addCategory", map[string]any{"icon": "ri-star-line"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRoutes_AddCategory_DuplicateActive(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/addCategory", map[string]any{"name": "Work"})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, router, http.MethodPost, "/addCategory", map[string]any{"name": "Work"})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRoutes_CategoryReactivation_PreservesID(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/addCategory", map[string]any{"name": "Work"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created models.UpsertResponse
	decodeBody(t, rr, &created)
	require.NotEmpty(t, created.ID)

	rr = doRequest(t, router, http.MethodDelete, "/deleteCategory/Work", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, http.MethodPost, "/addCategory", map[string]any{"name": "Work"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var revived models.UpsertResponse
	decodeBody(t, rr, &revived)
	assert.Equal(t, created.ID, revived.ID)
	assert.Contains(t, revived.Message, "reactivated")

	resp := fetchAll(t, router)
	require.Len(t, resp.Categories, 1)
	assert.False(t, resp.Categories[0].IsDeleted)
	assert.Nil(t, resp.Categories[0].DeleteSession)
}

func TestRoutes_RenameCategory_Cascade(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/addCategory", map[string]any{"name": "Work"})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, router, http.MethodPost, "/addNote", map[string]any{
		"content":  "meeting minutes",
		"category": "Work",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, router, http.MethodPut, "/updateCategory/Work", map[string]any{"newName": "Office"})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := fetchAll(t, router)
	require.Len(t, resp.Categories, 1)
	assert.Equal(t, "Office", resp.Categories[0].Name)
	require.Len(t, resp.Notes, 1)
	assert.Equal(t, "Office", resp.Notes[0].Category)
}

func TestRoutes_RenameCategory_Missing(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPut, "/updateCategory/Ghost", map[string]any{"newName": "Anything"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ---- Bulk wipe ----

func TestRoutes_DeleteAll_SessionRequired(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodDelete, "/deleteAll", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRoutes_DeleteAll_SkipsPasswordProtected(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/addNote", map[string]any{"content": "plain"})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, router, http.MethodPost, "/addNote", map[string]any{
		"content":   "secret",
		"protected": true,
		"password":  "encoded-by-client",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, router, http.MethodDelete, "/deleteAll?session=wipe-1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := fetchAll(t, router)
	require.Len(t, resp.Notes, 2)
	for _, n := range resp.Notes {
		if n.Password != nil {
			assert.False(t, n.IsDeleted, "password-carrying note must survive the wipe")
		} else {
			assert.True(t, n.IsDeleted)
			require.NotNil(t, n.DeleteSession)
			assert.Equal(t, "wipe-1", *n.DeleteSession)
		}
	}
}

// ---- Full multi-device scenario ----

// TestRoutes_MultiDeviceReconciliation walks the whole lifecycle: create,
// sync, soft-delete from one device, replay suppression on the same session,
// and final removal from another device.
func TestRoutes_MultiDeviceReconciliation(t *testing.T) {
	router := newTestRouter(t)

	// device 1 creates a category and a note
	rr := doRequest(t, router, http.MethodPost, "/addCategory", map[string]any{"name": "Work"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var cat models.UpsertResponse
	decodeBody(t, rr, &cat)
	require.NotEmpty(t, cat.ID)

	rr = doRequest(t, router, http.MethodPost, "/addNote", map[string]any{
		"content":  "Buy milk",
		"category": "Work",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	var note models.UpsertResponse
	decodeBody(t, rr, &note)
	require.NotEmpty(t, note.ID)

	// device 2 syncs and sees the note with a derived title
	resp := fetchAll(t, router)
	require.Len(t, resp.Notes, 1)
	assert.Equal(t, "Buy milk", resp.Notes[0].Title)
	assert.Equal(t, "Work", resp.Notes[0].Category)
	assert.False(t, resp.Notes[0].IsDeleted)

	// device 1 soft-deletes
	rr = doRequest(t, router, http.MethodDelete, "/deleteNote/"+note.ID+"?session=dev1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var del models.DeleteResponse
	decodeBody(t, rr, &del)
	assert.Equal(t, "soft", del.Deleted)

	// the tombstone is still visible to every device
	resp = fetchAll(t, router)
	require.Len(t, resp.Notes, 1)
	assert.True(t, resp.Notes[0].IsDeleted)
	require.NotNil(t, resp.Notes[0].DeleteSession)
	assert.Equal(t, "dev1", *resp.Notes[0].DeleteSession)

	// device 1 replays the delete as permanent: suppressed, store unchanged
	rr = doRequest(t, router, http.MethodDelete, "/deleteNote/"+note.ID+"?session=dev1&deleteforever=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var ignored models.DeleteResponse
	decodeBody(t, rr, &ignored)
	assert.True(t, ignored.OK)
	assert.True(t, ignored.Ignored)
	assert.NotEmpty(t, ignored.Reason)
	assert.Empty(t, ignored.Deleted)

	resp = fetchAll(t, router)
	require.Len(t, resp.Notes, 1)

	// device 2 permanently deletes with its own session: physically removed
	rr = doRequest(t, router, http.MethodDelete, "/deleteNote/"+note.ID+"?session=dev2&deleteforever=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var removed models.DeleteResponse
	decodeBody(t, rr, &removed)
	assert.Equal(t, "permanent", removed.Deleted)

	resp = fetchAll(t, router)
	assert.Empty(t, resp.Notes)
	// the category is untouched throughout
	require.Len(t, resp.Categories, 1)
	assert.Equal(t, "Work", resp.Categories[0].Name)
}
