//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func TestRemoteAPI_MainEndpoints(t *testing.T) {
	baseURL := strings.TrimRight(envOr("E2E_BASE_URL", "http://localhost:8080"), "/")
	ownerID := envOr("E2E_OWNER_ID", "e2e-"+time.Now().UTC().Format("20060102150405"))
	client := &http.Client{Timeout: 20 * time.Second}

	t.Run("status requires owner header", func(t *testing.T) {
		status, body, err := doRequest(client, http.MethodGet, baseURL+"/api/status", "", nil)
		if err != nil {
			t.Fatalf("status request: %v", err)
		}
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", status, string(body))
		}
	})

	t.Run("companion chat tasks tick ops", func(t *testing.T) {
		status, createBody := mustJSON(t, client, http.MethodPost, baseURL+"/api/companions", ownerID, map[string]any{
			"name":        "Mochi",
			"description": "a small round cat plush",
		})
		if status != http.StatusCreated {
			t.Fatalf("create status=%d body=%s", status, string(createBody))
		}
		var created map[string]any
		if err := json.Unmarshal(createBody, &created); err != nil {
			t.Fatalf("unmarshal create: %v body=%s", err, string(createBody))
		}
		if asMap(created["companion"])["id"] == "" {
			t.Fatalf("expected companion id, got=%v", created)
		}

		status, chatBody := mustJSON(t, client, http.MethodPost, baseURL+"/api/messages", ownerID, map[string]any{"text": "hello, want a snack?"})
		if status != http.StatusOK {
			t.Fatalf("message status=%d body=%s", status, string(chatBody))
		}
		var chat map[string]any
		if err := json.Unmarshal(chatBody, &chat); err != nil {
			t.Fatalf("unmarshal message: %v body=%s", err, string(chatBody))
		}
		if strings.TrimSpace(asString(asMap(chat["reply"])["content"])) == "" {
			t.Fatalf("expected reply text, got=%v", chat["reply"])
		}

		status, resetBody := mustJSON(t, client, http.MethodPost, baseURL+"/api/tasks/reset", ownerID, map[string]any{})
		if status != http.StatusOK {
			t.Fatalf("reset status=%d body=%s", status, string(resetBody))
		}
		var reset map[string]any
		if err := json.Unmarshal(resetBody, &reset); err != nil {
			t.Fatalf("unmarshal reset: %v body=%s", err, string(resetBody))
		}
		if len(asSlice(reset["created"])) == 0 {
			t.Fatalf("expected daily tasks, got=%v", reset)
		}

		status, tickBody := mustJSON(t, client, http.MethodPost, baseURL+"/api/tick", ownerID, map[string]any{})
		if status != http.StatusOK {
			t.Fatalf("tick status=%d body=%s", status, string(tickBody))
		}

		status, statusBody, err := doRequest(client, http.MethodGet, baseURL+"/api/status", ownerID, nil)
		if err != nil {
			t.Fatalf("status request: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("status endpoint status=%d body=%s", status, string(statusBody))
		}
		var st map[string]any
		if err := json.Unmarshal(statusBody, &st); err != nil {
			t.Fatalf("unmarshal status response: %v body=%s", err, string(statusBody))
		}
		if len(asSlice(st["companions"])) != 1 {
			t.Fatalf("expected one companion in status, got=%v", st)
		}

		status, kpiBody, err := doRequest(client, http.MethodGet, baseURL+"/ops/kpi", "", nil)
		if err != nil {
			t.Fatalf("kpi request: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("kpi status=%d body=%s", status, string(kpiBody))
		}
		var kpi map[string]any
		if err := json.Unmarshal(kpiBody, &kpi); err != nil {
			t.Fatalf("unmarshal kpi: %v body=%s", err, string(kpiBody))
		}
		if _, ok := kpi["ticks"]; !ok {
			t.Fatalf("expected ticks in kpi response")
		}

		status, delBody, err := doRequest(client, http.MethodDelete, baseURL+"/api/session", ownerID, nil)
		if err != nil {
			t.Fatalf("delete session request: %v", err)
		}
		if status != http.StatusNoContent {
			t.Fatalf("delete session status=%d body=%s", status, string(delBody))
		}
	})
}

func mustJSON(t *testing.T, client *http.Client, method, url, ownerID string, body map[string]any) (int, []byte) {
	t.Helper()
	status, respBody, err := doRequest(client, method, url, ownerID, body)
	if err != nil {
		t.Fatalf("%s %s request failed: %v", method, url, err)
	}
	return status, respBody
}

func doRequest(client *http.Client, method, url, ownerID string, body map[string]any) (int, []byte, error) {
	var payloadBytes []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		payloadBytes = b
	}

	var lastStatus int
	var lastBody []byte
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		var payload io.Reader
		if len(payloadBytes) > 0 {
			payload = bytes.NewReader(payloadBytes)
		}
		req, err := http.NewRequest(method, url, payload)
		if err != nil {
			return 0, nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if strings.TrimSpace(ownerID) != "" {
			req.Header.Set("X-Owner-ID", ownerID)
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		lastStatus, lastBody, lastErr = resp.StatusCode, respBody, nil
		if resp.StatusCode >= 500 {
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		return resp.StatusCode, respBody, nil
	}
	if lastErr != nil {
		return 0, nil, lastErr
	}
	return lastStatus, lastBody, nil
}

func envOr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}
