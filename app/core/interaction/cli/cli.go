package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"sahayak/app/pkg/types"
)

// CLIChannel is a local terminal session, mostly for development. The
// whole terminal run is one session.
type CLIChannel struct {
	id        string
	userID    string
	sessionID string

	language      types.Language
	interviewMode bool
}

func NewCLIChannel(userID string) *CLIChannel {
	if strings.TrimSpace(userID) == "" {
		userID = "local_user"
	}
	return &CLIChannel{
		id:        "cli",
		userID:    userID,
		sessionID: fmt.Sprintf("cli-%d", time.Now().UnixNano()),
		language:  types.LanguageEnglish,
	}
}

func (c *CLIChannel) ID() string {
	return c.id
}

func (c *CLIChannel) Start(ctx context.Context, handler func(types.Message)) error {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(">> Sahayak CLI started. Type 'exit' to quit.")
	fmt.Println(">> Toggles: /hindi /english /interview")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			fmt.Print("> ")
			if !scanner.Scan() {
				return nil
			}
			text := strings.TrimSpace(scanner.Text())
			if text == "exit" || text == "quit" {
				fmt.Println("Exiting CLI loop...")
				return nil
			}
			if c.handleToggle(text) {
				continue
			}

			msgID := fmt.Sprintf("cli-%d", time.Now().UnixNano())
			handler(types.Message{
				ID:            msgID,
				Content:       text,
				Role:          types.MessageRoleUser,
				ChannelID:     c.id,
				UserID:        c.userID,
				SessionID:     c.sessionID,
				RequestID:     msgID,
				Language:      c.language,
				InterviewMode: c.interviewMode,
			})
		}
	}
}

func (c *CLIChannel) handleToggle(text string) bool {
	switch text {
	case "/hindi":
		c.language = types.LanguageHindi
		fmt.Println(">> Language set to hindi")
	case "/english":
		c.language = types.LanguageEnglish
		fmt.Println(">> Language set to english")
	case "/interview":
		c.interviewMode = !c.interviewMode
		fmt.Printf(">> Interview mode: %v\n", c.interviewMode)
	default:
		return false
	}
	return true
}

func (c *CLIChannel) Send(ctx context.Context, msg types.Message) error {
	fmt.Printf("[Sahayak]: %s\n", msg.Content)
	if len(msg.Tasks) > 0 {
		fmt.Printf("           (%d task(s) on file)\n", len(msg.Tasks))
	}
	return nil
}
