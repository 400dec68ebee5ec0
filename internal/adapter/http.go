package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/papyrus-labs/papyrusdb/internal/logger"
	"github.com/papyrus-labs/papyrusdb/models"
)

type httpSyncClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPSyncClient constructs an HTTP implementation of [SyncClient].
// It normalises and validates the base URL, configures the underlying resty
// client with the resolved base URL and request timeout, and installs the
// shared server key as the bearer token of every request.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPSyncClient(address, serverKey string, timeout time.Duration, logger *logger.Logger) (SyncClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid sync server address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(serverKey)

	return &httpSyncClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSyncClient) Status(ctx context.Context) (models.StatusResponse, error) {
	var result models.StatusResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/status")
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	return result, nil
}

func (h *httpSyncClient) FetchAll(ctx context.Context) (models.FetchAllResponse, error) {
	var result models.FetchAllResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/getAll")
	if err != nil {
		return models.FetchAllResponse{}, fmt.Errorf("fetch all request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FetchAllResponse{}, err
	}

	return result, nil
}

func (h *httpSyncClient) AddNote(ctx context.Context, req models.NoteUpsert) (models.UpsertResponse, error) {
	return h.upsert(ctx, "/addNote", req)
}

func (h *httpSyncClient) AddTask(ctx context.Context, req models.NoteUpsert) (models.UpsertResponse, error) {
	return h.upsert(ctx, "/addTask", req)
}

func (h *httpSyncClient) AddCategory(ctx context.Context, req models.CategoryUpsert) (models.UpsertResponse, error) {
	return h.upsert(ctx, "/addCategory", req)
}

func (h *httpSyncClient) upsert(ctx context.Context, path string, body any) (models.UpsertResponse, error) {
	var result models.UpsertResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.UpsertResponse{}, fmt.Errorf("upsert request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpsertResponse{}, err
	}

	return result, nil
}

func (h *httpSyncClient) DeleteNote(ctx context.Context, id, session string, forever bool) (models.DeleteResponse, error) {
	return h.remove(ctx, "/deleteNote/"+url.PathEscape(id), session, forever)
}

func (h *httpSyncClient) DeleteTask(ctx context.Context, id, session string, forever bool) (models.DeleteResponse, error) {
	return h.remove(ctx, "/deleteTask/"+url.PathEscape(id), session, forever)
}

func (h *httpSyncClient) DeleteCategory(ctx context.Context, name, session string, forever bool) (models.DeleteResponse, error) {
	return h.remove(ctx, "/deleteCategory/"+url.PathEscape(name), session, forever)
}

func (h *httpSyncClient) remove(ctx context.Context, path, session string, forever bool) (models.DeleteResponse, error) {
	var result models.DeleteResponse

	request := h.client.R().
		SetContext(ctx).
		SetResult(&result)
	if session != "" {
		request.SetQueryParam("session", session)
	}
	if forever {
		request.SetQueryParam("deleteforever", strconv.FormatBool(forever))
	}

	resp, err := request.Delete(path)
	if err != nil {
		return models.DeleteResponse{}, fmt.Errorf("delete request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteResponse{}, err
	}

	return result, nil
}

func (h *httpSyncClient) RenameCategory(ctx context.Context, oldName, newName string) (models.MessageResponse, error) {
	var result models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RenameCategory{NewName: newName}).
		SetResult(&result).
		Put("/updateCategory/" + url.PathEscape(oldName))
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("rename category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return result, nil
}

func (h *httpSyncClient) DeleteAll(ctx context.Context, session string) (models.MessageResponse, error) {
	var result models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("session", session).
		SetResult(&result).
		Delete("/deleteAll")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("wipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return result, nil
}
