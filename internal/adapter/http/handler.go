package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"petverse/internal/app/chat"
	"petverse/internal/app/companion"
	"petverse/internal/app/ports"
	"petverse/internal/app/session"
	"petverse/internal/app/status"
	"petverse/internal/app/tasks"
	"petverse/internal/app/tick"
	"petverse/internal/domain/game"
	"petverse/internal/domain/pet"
	"petverse/internal/domain/task"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const ownerIDHeader = "X-Owner-ID"

var ErrMissingOwnerHeader = errors.New("missing x-owner-id header")

type Handler struct {
	CompanionUC companion.UseCase
	ChatUC      chat.UseCase
	TasksUC     tasks.UseCase
	TickUC      tick.UseCase
	StatusUC    status.UseCase
	KPI         kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.POST("/companions", h.createCompanion)
	api.POST("/companions/active", h.switchCompanion)
	api.DELETE("/companions/:id", h.removeCompanion)
	api.POST("/messages", h.sendMessage)
	api.POST("/tasks/reset", h.resetTasks)
	api.POST("/tasks/:id/start", h.startTask)
	api.POST("/tasks/:id/complete", h.completeTask)
	api.POST("/tick", h.runTick)
	api.POST("/events/:id/read", h.markEventRead)

	api.GET("/status", h.status)
	api.GET("/tasks", h.listTasks)
	api.GET("/conversations", h.listConversations)
	api.GET("/timers", h.listTimers)
	api.GET("/events", h.listEvents)
	api.GET("/logs", h.listLogs)
	api.DELETE("/session", h.deleteSession)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) createCompanion(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body companion.CreateRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.OwnerID = ownerID
	resp, err := h.CompanionUC.Create(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) switchCompanion(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body companion.SwitchRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.OwnerID = ownerID
	resp, err := h.CompanionUC.Switch(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) removeCompanion(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.CompanionUC.Remove(c, companion.RemoveRequest{OwnerID: ownerID, CompanionID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) sendMessage(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body chat.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.OwnerID = ownerID
	resp, err := h.ChatUC.Send(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type completeRequest struct {
	Confirmed bool   `json:"confirmed"`
	Text      string `json:"text"`
}

func (h Handler) startTask(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.TasksUC.Start(c, tasks.StartRequest{OwnerID: ownerID, TaskID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) completeTask(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body completeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.TasksUC.Complete(c, tasks.CompleteRequest{
		OwnerID:  ownerID,
		TaskID:   ctx.Param("id"),
		Evidence: task.Evidence{Confirmed: body.Confirmed, Text: body.Text},
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) resetTasks(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.TasksUC.ResetDaily(c, tasks.ResetRequest{OwnerID: ownerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) runTick(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.TickUC.Run(c, tick.Request{OwnerID: ownerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) markEventRead(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if err := h.StatusUC.MarkEventRead(c, status.MarkReadRequest{OwnerID: ownerID, EventID: ctx.Param("id")}); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"read": true})
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.StatusUC.Execute(c, status.Request{OwnerID: ownerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listTasks(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.StatusUC.Tasks(c, status.Request{OwnerID: ownerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listConversations(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.StatusUC.Conversations(c, status.Request{OwnerID: ownerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listTimers(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.StatusUC.Timers(c, status.Request{OwnerID: ownerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listEvents(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.StatusUC.Events(c, status.Request{OwnerID: ownerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listLogs(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.StatusUC.Logs(c, status.Request{OwnerID: ownerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) deleteSession(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if err := h.StatusUC.DeleteSession(c, status.Request{OwnerID: ownerID}); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(consts.StatusNoContent)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func requireOwner(ctx *app.RequestContext) (string, error) {
	ownerID := strings.TrimSpace(string(ctx.GetHeader(ownerIDHeader)))
	if ownerID == "" {
		return "", ErrMissingOwnerHeader
	}
	return ownerID, nil
}

func writeError(ctx *app.RequestContext, err error) {
	var rejected *tasks.CompletionRejectedError
	switch {
	case errors.As(err, &rejected):
		writeTaskRejected(ctx, rejected)
	case errors.Is(err, ErrMissingOwnerHeader), errors.Is(err, session.ErrInvalidOwner):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_owner_id", err.Error())
	case errors.Is(err, game.ErrCapacityExceeded):
		writeErrorBody(ctx, consts.StatusConflict, "capacity_exceeded", err.Error())
	case errors.Is(err, game.ErrNoActiveCompanion):
		writeErrorBody(ctx, consts.StatusConflict, "no_active_companion", err.Error())
	case errors.Is(err, pet.ErrCompanionDead):
		writeErrorBody(ctx, consts.StatusConflict, "companion_dead", err.Error())
	case errors.Is(err, game.ErrCompanionNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "companion_not_found", err.Error())
	case errors.Is(err, game.ErrEventNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "event_not_found", err.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "task_not_found", err.Error())
	case errors.Is(err, companion.ErrInvalidRequest),
		errors.Is(err, chat.ErrInvalidRequest),
		errors.Is(err, tasks.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, game.ErrInvalidInput):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeTaskRejected(ctx *app.RequestContext, err *tasks.CompletionRejectedError) {
	details := map[string]any{}
	reason := ""
	if f := err.Failure; f != nil {
		reason = string(f.Code)
		if len(f.MissingKeywords) > 0 {
			details["missing_keywords"] = f.MissingKeywords
		}
	}
	if len(details) == 0 {
		details = nil
	}
	ctx.JSON(consts.StatusConflict, map[string]any{
		"error": map[string]any{
			"code":        "task_rejected",
			"message":     err.Error(),
			"reason_code": reason,
			"details":     details,
		},
	})
}
