package task

import (
	"strings"
	"testing"

	"sahayak/app/pkg/types"
)

func TestAddListCompleteScenario(t *testing.T) {
	s := NewStore()

	res := s.ParseCommand("add task: buy milk", types.LanguageEnglish)
	if !res.IsCommand {
		t.Fatal("expected add phrase to be a command")
	}
	if !strings.Contains(res.Reply, "buy milk") {
		t.Fatalf("acknowledgement should echo the description: %s", res.Reply)
	}

	res = s.ParseCommand("list my tasks", types.LanguageEnglish)
	if !res.IsCommand || !strings.Contains(res.Reply, "1. buy milk (pending)") {
		t.Fatalf("unexpected list reply: %s", res.Reply)
	}

	res = s.ParseCommand("complete task 1", types.LanguageEnglish)
	if !res.IsCommand || !strings.Contains(res.Reply, "marked as complete") {
		t.Fatalf("unexpected complete reply: %s", res.Reply)
	}

	res = s.ParseCommand("list my tasks", types.LanguageEnglish)
	if !strings.Contains(res.Reply, "1. buy milk (completed)") {
		t.Fatalf("list should show completion: %s", res.Reply)
	}
}

func TestParseCommandIsCaseInsensitive(t *testing.T) {
	s := NewStore()
	res := s.ParseCommand("ASSIGN TASK: Ship the release", types.LanguageEnglish)
	if !res.IsCommand {
		t.Fatal("expected uppercase phrase to match")
	}
	tasks := s.List()
	if len(tasks) != 1 || tasks[0].Description != "Ship the release" {
		t.Fatalf("description should keep original casing: %+v", tasks)
	}
}

func TestCompleteWithoutNumberYieldsInvalidNumberMessage(t *testing.T) {
	s := NewStore()
	s.Add("only task")

	for _, text := range []string{
		"complete task",
		"complete task zero",
		"complete task 0",
		"complete task 5",
	} {
		res := s.ParseCommand(text, types.LanguageEnglish)
		if !res.IsCommand {
			t.Fatalf("%q should still be a command", text)
		}
		if res.Reply != "Please provide a valid task number." {
			t.Fatalf("%q: unexpected reply %s", text, res.Reply)
		}
	}
}

func TestAddWithEmptyDescriptionYieldsCorrectiveMessage(t *testing.T) {
	s := NewStore()
	res := s.ParseCommand("add task:   ", types.LanguageEnglish)
	if !res.IsCommand {
		t.Fatal("expected command")
	}
	if res.Reply != "Please provide a task description." {
		t.Fatalf("unexpected reply: %s", res.Reply)
	}
	if s.Len() != 0 {
		t.Fatal("no task should be stored")
	}
}

func TestListWhenEmpty(t *testing.T) {
	s := NewStore()
	res := s.ParseCommand("show my tasks", types.LanguageEnglish)
	if !res.IsCommand || !strings.Contains(res.Reply, "You have no tasks") {
		t.Fatalf("unexpected empty-list reply: %s", res.Reply)
	}
}

func TestDeleteTaskByIndex(t *testing.T) {
	s := NewStore()
	s.Add("first")
	s.Add("second")

	res := s.ParseCommand("delete task 1", types.LanguageEnglish)
	if !res.IsCommand || !strings.Contains(res.Reply, `"first" deleted`) {
		t.Fatalf("unexpected delete reply: %s", res.Reply)
	}
	tasks := s.List()
	if len(tasks) != 1 || tasks[0].Description != "second" {
		t.Fatalf("unexpected tasks after delete: %+v", tasks)
	}
}

func TestNonCommandTextPassesThrough(t *testing.T) {
	s := NewStore()
	res := s.ParseCommand("tell me about the weather", types.LanguageEnglish)
	if res.IsCommand {
		t.Fatal("plain text must not be treated as a command")
	}
}
