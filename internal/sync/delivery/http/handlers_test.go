package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"trello-sheets-sync/config"
	"trello-sheets-sync/internal/middleware"
	"trello-sheets-sync/internal/sync"
	pkgLog "trello-sheets-sync/pkg/log"
	"trello-sheets-sync/pkg/response"
	"trello-sheets-sync/pkg/trello"
)

type mockUseCase struct {
	calls     []string
	lastBoard sync.SyncBoardInput
	out       sync.SyncOutput
	err       error
}

func (m *mockUseCase) Sync(ctx context.Context) (sync.SyncOutput, error) {
	m.calls = append(m.calls, "sync")
	return m.out, m.err
}

func (m *mockUseCase) SyncAll(ctx context.Context) (sync.SyncOutput, error) {
	m.calls = append(m.calls, "all")
	return m.out, m.err
}

func (m *mockUseCase) SyncSummary(ctx context.Context) (sync.SyncOutput, error) {
	m.calls = append(m.calls, "summary")
	return m.out, m.err
}

func (m *mockUseCase) SyncBoard(ctx context.Context, input sync.SyncBoardInput) (sync.SyncOutput, error) {
	m.calls = append(m.calls, "board")
	m.lastBoard = input
	return m.out, m.err
}

func (m *mockUseCase) ResetAll(ctx context.Context) (sync.SyncOutput, error) {
	m.calls = append(m.calls, "reset")
	return m.out, m.err
}

func newTestRouter(uc sync.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(pkgLog.NewNop(), config.TriggerConfig{})
	RegisterRoutes(r.Group("/api/v1/sync"), New(pkgLog.NewNop(), uc), mw)
	return r
}

func post(r *gin.Engine, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, path, nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestRoutes(t *testing.T) {
	uc := &mockUseCase{out: sync.SyncOutput{RunID: "run-1", Mode: sync.ModeAll, Boards: 2, Lists: 3, Cards: 5}}
	r := newTestRouter(uc)

	for path, call := range map[string]string{
		"/api/v1/sync/summary": "summary",
		"/api/v1/sync/all":     "all",
		"/api/v1/sync/board":   "board",
		"/api/v1/sync/reset":   "reset",
	} {
		t.Run(call, func(t *testing.T) {
			uc.calls = nil
			w, resp := post(r, path, "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			if len(uc.calls) != 1 || uc.calls[0] != call {
				t.Errorf("expected %s to be called, got %v", call, uc.calls)
			}
			data, _ := resp.Data.(map[string]interface{})
			if data["run_id"] != "run-1" || data["cards"] != float64(5) {
				t.Errorf("unexpected payload %v", resp.Data)
			}
		})
	}
}

func TestSyncBoard(t *testing.T) {
	t.Run("Sheet name from body", func(t *testing.T) {
		uc := &mockUseCase{}
		w, _ := post(newTestRouter(uc), "/api/v1/sync/board", `{"sheet_name": " Proj "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastBoard.SheetName != "Proj" {
			t.Errorf("expected trimmed sheet name, got %q", uc.lastBoard.SheetName)
		}
	})

	t.Run("Empty body uses active sheet", func(t *testing.T) {
		uc := &mockUseCase{}
		post(newTestRouter(uc), "/api/v1/sync/board", "")
		if len(uc.calls) != 1 || uc.lastBoard.SheetName != "" {
			t.Errorf("expected call with empty sheet name, got %v %+v", uc.calls, uc.lastBoard)
		}
	})

	t.Run("Malformed body", func(t *testing.T) {
		uc := &mockUseCase{}
		w, _ := post(newTestRouter(uc), "/api/v1/sync/board", `{"sheet_name":`)
		if w.Code != http.StatusBadRequest || len(uc.calls) != 0 {
			t.Errorf("expected 400 without use case call, got %d %v", w.Code, uc.calls)
		}
	})

	t.Run("Summary sheet active", func(t *testing.T) {
		uc := &mockUseCase{err: sync.ErrSummarySheetActive}
		w, resp := post(newTestRouter(uc), "/api/v1/sync/board", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if resp.Message != "Select 'Update Main Sheet' option or activate correct board sheet" {
			t.Errorf("unexpected message %q", resp.Message)
		}
	})

	t.Run("Board not found", func(t *testing.T) {
		uc := &mockUseCase{err: fmt.Errorf("%w: %q", sync.ErrBoardNotFound, "Nope")}
		w, _ := post(newTestRouter(uc), "/api/v1/sync/board", `{"sheet_name":"Nope"}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"No sheet selected", sync.ErrNoSheetSelected, http.StatusBadRequest},
		{"Trello unauthorized", fmt.Errorf("list boards: %w", &trello.APIError{StatusCode: 401, Path: "/members/x/boards/"}), http.StatusBadGateway},
		{"Transport failure", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{err: tc.err}
			w, _ := post(newTestRouter(uc), "/api/v1/sync/summary", "")
			if w.Code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}

func TestRunTimestamps(t *testing.T) {
	started := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	uc := &mockUseCase{out: sync.SyncOutput{
		RunID:      "run-1",
		Mode:       sync.ModeSummary,
		StartedAt:  started,
		FinishedAt: started.Add(5 * time.Second),
	}}

	w, resp := post(newTestRouter(uc), "/api/v1/sync/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data, _ := resp.Data.(map[string]interface{})
	if data["started_at"] != "2024-01-01 10:00:00" {
		t.Errorf("unexpected started_at %v", data["started_at"])
	}
	if data["finished_at"] != "2024-01-01 10:00:05" {
		t.Errorf("unexpected finished_at %v", data["finished_at"])
	}
}
