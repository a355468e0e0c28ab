package ws

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"sahayak/app/pkg/types"
)

func TestDecodeInboundDefaults(t *testing.T) {
	msg, err := decodeInbound([]byte(`{"message":"hello"}`), "sess_abc")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if msg.Content != "hello" {
		t.Fatalf("unexpected content: %s", msg.Content)
	}
	if msg.Language != types.LanguageEnglish {
		t.Fatalf("language should default to english: %s", msg.Language)
	}
	if msg.InterviewMode {
		t.Fatal("interview mode should default to off")
	}
	if msg.SessionID != "sess_abc" || msg.UserID != "sess_abc" {
		t.Fatalf("message should carry the session identity: %+v", msg)
	}
	if msg.Role != types.MessageRoleUser {
		t.Fatalf("unexpected role: %s", msg.Role)
	}
	if !strings.HasPrefix(msg.ID, "msg-") {
		t.Fatalf("unexpected message id: %s", msg.ID)
	}
}

func TestDecodeInboundFullFrame(t *testing.T) {
	frame := `{"message":"कार्य जोड़ें: दूध","language":"hindi","interviewMode":true,"requestId":"r-1"}`
	msg, err := decodeInbound([]byte(frame), "sess_abc")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if msg.Language != types.LanguageHindi {
		t.Fatalf("unexpected language: %s", msg.Language)
	}
	if !msg.InterviewMode {
		t.Fatal("interview mode flag lost")
	}
	if msg.RequestID != "r-1" {
		t.Fatalf("unexpected request id: %s", msg.RequestID)
	}
}

func TestDecodeInboundRejectsMalformedFrame(t *testing.T) {
	if _, err := decodeInbound([]byte(`{"message":`), "sess_abc"); err == nil {
		t.Fatal("expected error for malformed frame")
	}
}

func TestDecodeInboundUnknownLanguageFallsBack(t *testing.T) {
	msg, err := decodeInbound([]byte(`{"message":"hi","language":"klingon"}`), "sess_abc")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if msg.Language != types.LanguageEnglish {
		t.Fatalf("unknown language should fall back to english: %s", msg.Language)
	}
}

func TestEncodeReplyAlwaysCarriesTasksArray(t *testing.T) {
	frame, err := encodeReply(types.Message{Content: "done"})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	parsed := gjson.ParseBytes(frame)
	if parsed.Get("sender").String() != "ai" {
		t.Fatalf("unexpected sender: %s", parsed.Get("sender").String())
	}
	if !parsed.Get("tasks").IsArray() {
		t.Fatalf("tasks must be an array even when empty: %s", frame)
	}
	if parsed.Get("text").String() != "done" {
		t.Fatalf("unexpected text: %s", parsed.Get("text").String())
	}
}

func TestEncodeReplyIncludesTaskFields(t *testing.T) {
	frame, err := encodeReply(types.Message{
		Content: "Your tasks:\n1. buy milk (pending)",
		Tasks:   []types.Task{{ID: "t1", Description: "buy milk"}},
	})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	parsed := gjson.ParseBytes(frame)
	if parsed.Get("tasks.0.description").String() != "buy milk" {
		t.Fatalf("task description missing: %s", frame)
	}
	if parsed.Get("tasks.0.completed").Bool() {
		t.Fatal("new task should be pending")
	}
}

func TestTypingFrames(t *testing.T) {
	on := gjson.ParseBytes(typingFrame(true))
	if on.Get("type").String() != "typing" || !on.Get("active").Bool() {
		t.Fatalf("unexpected typing-on frame: %s", typingFrame(true))
	}
	off := gjson.ParseBytes(typingFrame(false))
	if off.Get("active").Bool() {
		t.Fatalf("unexpected typing-off frame: %s", typingFrame(false))
	}
}

func TestErrorFrame(t *testing.T) {
	parsed := gjson.ParseBytes(errorFrame("invalid message frame"))
	if parsed.Get("type").String() != "error" {
		t.Fatalf("unexpected frame type: %s", parsed.Get("type").String())
	}
	if parsed.Get("message").String() != "invalid message frame" {
		t.Fatalf("unexpected error message: %s", parsed.Get("message").String())
	}
}
