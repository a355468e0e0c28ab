package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"sahayak/app/pkg/types"
)

func TestMessageRoundTrip(t *testing.T) {
	c := NewHTTPChannel(0)
	c.handler = func(msg types.Message) {
		reply := types.Message{
			Content:   "Task added: buy milk. Would you like a reminder?",
			Role:      types.MessageRoleAssistant,
			RequestID: msg.RequestID,
			Tasks:     []types.Task{{ID: "t1", Description: "buy milk"}},
		}
		if err := c.Send(context.Background(), reply); err != nil {
			t.Errorf("send failed: %v", err)
		}
	}

	body := bytes.NewBufferString(`{"message":"add task: buy milk","user_id":"u1"}`)
	req := httptest.NewRequest("POST", "/api/message", body)
	rec := httptest.NewRecorder()
	c.handleMessage(rec, req)

	if rec.Code != 200 {
		t.Fatalf("unexpected status: %d %s", rec.Code, rec.Body.String())
	}
	var resp outgoingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Sender != "ai" {
		t.Fatalf("unexpected sender: %s", resp.Sender)
	}
	if len(resp.Tasks) != 1 || resp.Tasks[0].Description != "buy milk" {
		t.Fatalf("task snapshot missing from response: %+v", resp.Tasks)
	}
}

func TestMessageDefaultsIdentity(t *testing.T) {
	c := NewHTTPChannel(0)
	var captured types.Message
	c.handler = func(msg types.Message) {
		captured = msg
		c.Send(context.Background(), types.Message{Content: "ok", RequestID: msg.RequestID})
	}

	body := bytes.NewBufferString(`{"message":"hello"}`)
	req := httptest.NewRequest("POST", "/api/message", body)
	rec := httptest.NewRecorder()
	c.handleMessage(rec, req)

	if captured.UserID != "http-user" {
		t.Fatalf("missing user id should get a default: %s", captured.UserID)
	}
	if captured.SessionID != "http:http-user" {
		t.Fatalf("missing session id should derive from user: %s", captured.SessionID)
	}
	if captured.Language != types.LanguageEnglish {
		t.Fatalf("language should default to english: %s", captured.Language)
	}
}

func TestMessageRequiresText(t *testing.T) {
	c := NewHTTPChannel(0)
	c.handler = func(types.Message) {}

	body := bytes.NewBufferString(`{"message":"   "}`)
	req := httptest.NewRequest("POST", "/api/message", body)
	rec := httptest.NewRecorder()
	c.handleMessage(rec, req)

	if rec.Code != 400 {
		t.Fatalf("expected 400 for blank message, got %d", rec.Code)
	}
}

func TestMessageRejectsInvalidJSON(t *testing.T) {
	c := NewHTTPChannel(0)
	c.handler = func(types.Message) {}

	body := bytes.NewBufferString(`{"message":`)
	req := httptest.NewRequest("POST", "/api/message", body)
	rec := httptest.NewRecorder()
	c.handleMessage(rec, req)

	if rec.Code != 400 {
		t.Fatalf("expected 400 for invalid json, got %d", rec.Code)
	}
}

func TestMessageTimesOutWithoutReply(t *testing.T) {
	c := NewHTTPChannel(0)
	c.SetResponseTimeout(50 * time.Millisecond)
	c.handler = func(types.Message) {}

	body := bytes.NewBufferString(`{"message":"hello"}`)
	req := httptest.NewRequest("POST", "/api/message", body)
	rec := httptest.NewRecorder()
	c.handleMessage(rec, req)

	if rec.Code != 504 {
		t.Fatalf("expected 504 on timeout, got %d", rec.Code)
	}
}

func TestSendRejectsUnsolicitedMessage(t *testing.T) {
	c := NewHTTPChannel(0)
	err := c.Send(context.Background(), types.Message{Content: "Reminder: buy milk"})
	if err == nil {
		t.Fatal("a message with no request id has no waiting client; Send must report that")
	}
}

func TestSendWithoutPendingRequestIsDropped(t *testing.T) {
	c := NewHTTPChannel(0)
	if err := c.Send(context.Background(), types.Message{Content: "late", RequestID: "gone"}); err != nil {
		t.Fatalf("late reply should be dropped without error: %v", err)
	}
}

func TestStatusEndpoint(t *testing.T) {
	c := NewHTTPChannel(0)
	c.startedUnix.Store(time.Now().Add(-2 * time.Second).Unix())
	c.SetStatusProvider(func(context.Context) map[string]interface{} {
		return map[string]interface{}{"agent": "Sahayak"}
	})

	req := httptest.NewRequest("GET", "/api/status", nil)
	rec := httptest.NewRecorder()
	c.handleStatus(rec, req)

	if rec.Code != 200 {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var resp statusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ChannelID != "http" {
		t.Fatalf("unexpected channel id: %s", resp.ChannelID)
	}
	if resp.UptimeSec < 1 {
		t.Fatalf("uptime should be positive: %d", resp.UptimeSec)
	}
	if resp.Runtime["agent"] != "Sahayak" {
		t.Fatalf("runtime status missing: %+v", resp.Runtime)
	}
}
