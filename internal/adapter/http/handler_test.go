package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	metricsinmem "petverse/internal/adapter/metrics/inmemory"
	"petverse/internal/adapter/repo/memory"
	"petverse/internal/app/chat"
	"petverse/internal/app/companion"
	"petverse/internal/app/session"
	"petverse/internal/app/status"
	"petverse/internal/app/tasks"
	"petverse/internal/app/tick"
	"petverse/internal/domain/game"
	"petverse/internal/domain/rng"
	"petverse/internal/domain/task"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route/param"
)

var now = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func newTestHandler() Handler {
	store := memory.NewStore()
	sess := session.Store{
		TxManager: memory.NewTxManager(store),
		Snapshots: memory.NewSnapshotRepo(store),
	}
	n := 0
	engine := game.NewEngine(game.DefaultTuning(), rng.NewSequence(0.99), func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
	clock := func() time.Time { return now }
	kpi := metricsinmem.NewRecorder()
	return Handler{
		CompanionUC: companion.UseCase{Session: sess, Engine: engine, Now: clock},
		ChatUC:      chat.UseCase{Session: sess, Engine: engine, Now: clock},
		TasksUC:     tasks.UseCase{Session: sess, Engine: engine, Metrics: kpi, Now: clock},
		TickUC:      tick.UseCase{Session: sess, Engine: engine, Metrics: kpi, Now: clock},
		StatusUC:    status.UseCase{Session: sess, Engine: engine, Now: clock},
		KPI:         kpi,
	}
}

func newRequest(owner, body string, params ...param.Param) *app.RequestContext {
	ctx := &app.RequestContext{}
	if owner != "" {
		ctx.Request.Header.Set(ownerIDHeader, owner)
	}
	if body != "" {
		ctx.Request.SetBody([]byte(body))
	}
	ctx.Params = params
	return ctx
}

func decodeBody(t *testing.T, ctx *app.RequestContext, out any) {
	t.Helper()
	if err := json.Unmarshal(ctx.Response.Body(), out); err != nil {
		t.Fatalf("unmarshal response: %v (%s)", err, ctx.Response.Body())
	}
}

func errorCode(t *testing.T, ctx *app.RequestContext) string {
	t.Helper()
	var body map[string]map[string]any
	decodeBody(t, ctx, &body)
	code, _ := body["error"]["code"].(string)
	return code
}

func createCompanion(t *testing.T, h Handler) companion.CreateResponse {
	t.Helper()
	ctx := newRequest("owner-1", `{"name":"Mochi","description":"a sleepy cat","personality":"amiable"}`)
	h.createCompanion(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusCreated; got != want {
		t.Fatalf("create status mismatch: got=%d want=%d body=%s", got, want, ctx.Response.Body())
	}
	var resp companion.CreateResponse
	decodeBody(t, ctx, &resp)
	return resp
}

func TestRequireOwnerMissingHeader(t *testing.T) {
	h := newTestHandler()
	ctx := newRequest("", "")
	h.status(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "missing_owner_id"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestCreateThenStatus(t *testing.T) {
	h := newTestHandler()
	created := createCompanion(t, h)
	if created.Companion.Name != "Mochi" {
		t.Fatalf("unexpected companion %+v", created.Companion)
	}

	ctx := newRequest("owner-1", "")
	h.status(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var resp status.Response
	decodeBody(t, ctx, &resp)
	if resp.ActiveCompanionID != created.Companion.ID || resp.OpenTasks != 3 {
		t.Fatalf("unexpected status %+v", resp)
	}
}

func TestCreateRejectsInvalidJSON(t *testing.T) {
	h := newTestHandler()
	ctx := newRequest("owner-1", `{"name":`)
	h.createCompanion(context.Background(), ctx)
	if got, want := errorCode(t, ctx), "invalid_json"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestCompleteTaskRejectionCarriesReason(t *testing.T) {
	h := newTestHandler()
	createCompanion(t, h)

	list := newRequest("owner-1", "")
	h.listTasks(context.Background(), list)
	var tasksResp status.TasksResponse
	decodeBody(t, list, &tasksResp)
	var chatTask task.Task
	for _, tk := range tasksResp.Tasks {
		if tk.Strategy == task.StrategyConversational {
			chatTask = tk
		}
	}

	ctx := newRequest("owner-1", `{"text":"I like you"}`, param.Param{Key: "id", Value: chatTask.ID})
	h.completeTask(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body struct {
		Error struct {
			Code       string `json:"code"`
			ReasonCode string `json:"reason_code"`
			Details    struct {
				MissingKeywords []string `json:"missing_keywords"`
			} `json:"details"`
		} `json:"error"`
	}
	decodeBody(t, ctx, &body)
	if body.Error.Code != "task_rejected" || body.Error.ReasonCode != string(task.FailureMissingKeywords) {
		t.Fatalf("unexpected error body %+v", body.Error)
	}
	if len(body.Error.Details.MissingKeywords) != 1 || body.Error.Details.MissingKeywords[0] != "happy" {
		t.Fatalf("unexpected missing keywords %v", body.Error.Details.MissingKeywords)
	}

	ok := newRequest("owner-1", `{"text":"I like you and I am happy"}`, param.Param{Key: "id", Value: chatTask.ID})
	h.completeTask(context.Background(), ok)
	if got, want := ok.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d body=%s", got, want, ok.Response.Body())
	}
}

func TestCompleteUnknownTask(t *testing.T) {
	h := newTestHandler()
	createCompanion(t, h)
	ctx := newRequest("owner-1", "", param.Param{Key: "id", Value: "missing"})
	h.completeTask(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "task_not_found"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestSendMessageWithoutCompanion(t *testing.T) {
	h := newTestHandler()
	ctx := newRequest("owner-1", `{"text":"hello"}`)
	h.sendMessage(context.Background(), ctx)
	if got, want := errorCode(t, ctx), "no_active_companion"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestRemoveUnknownCompanion(t *testing.T) {
	h := newTestHandler()
	ctx := newRequest("owner-1", "", param.Param{Key: "id", Value: "ghost"})
	h.removeCompanion(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestTickAndKPI(t *testing.T) {
	h := newTestHandler()
	createCompanion(t, h)

	ctx := newRequest("owner-1", "")
	h.runTick(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var resp tick.Response
	decodeBody(t, ctx, &resp)
	if resp.Report.Companions != 1 {
		t.Fatalf("unexpected report %+v", resp.Report)
	}

	kpi := newRequest("", "")
	h.kpi(context.Background(), kpi)
	var snap metricsinmem.Snapshot
	decodeBody(t, kpi, &snap)
	if snap.Ticks != 1 {
		t.Fatalf("expected one tick recorded, got %d", snap.Ticks)
	}
}

func TestDeleteSession(t *testing.T) {
	h := newTestHandler()
	createCompanion(t, h)
	ctx := newRequest("owner-1", "")
	h.deleteSession(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusNoContent; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}

	st := newRequest("owner-1", "")
	h.status(context.Background(), st)
	var resp status.Response
	decodeBody(t, st, &resp)
	if len(resp.Companions) != 0 {
		t.Fatalf("expected empty session after delete, got %+v", resp.Companions)
	}
}

func TestKPINotConfigured(t *testing.T) {
	ctx := newRequest("", "")
	Handler{}.kpi(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestResponseJSONUsesSnakeCase(t *testing.T) {
	h := newTestHandler()
	createCompanion(t, h)
	ctx := newRequest("owner-1", "")
	h.status(context.Background(), ctx)

	var raw map[string]any
	decodeBody(t, ctx, &raw)
	for _, key := range []string{"active_companion_id", "unread_events", "open_tasks", "updated_at"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("expected key %q in %s", key, ctx.Response.Body())
		}
	}
}
