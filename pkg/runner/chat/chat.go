package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/assistant"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/dailyctx"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/ids"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/printers"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/session"
)

// Chat talks to the assistant with the daily context attached. With Message
// set it is a single exchange; without, an interactive prompt that keeps the
// conversation history for the session. History lives in memory only.
type Chat struct {
	Message string
	Date    string

	Session *session.Session
	In      io.Reader // defaults to stdin
}

const prompt = "you> "

func (c *Chat) Do(ctx context.Context) error {
	client := c.Session.Assistant()
	pp := printers.PrettyPrint{}

	if !client.Available(ctx) {
		pp.AssistantProblem("the assistant service is not reachable right now; check that the server is running and try again")
		return nil
	}

	dctx := dailyctx.Collect(c.Session.Data(), c.Date)
	history := []assistant.ChatMessage{}

	if c.Message != "" {
		_, err := c.exchange(ctx, client, &history, dctx, c.Message)
		return err
	}

	in := c.In
	if in == nil {
		in = os.Stdin
	}
	reader := bufio.NewReader(in)

	fmt.Printf("chatting about %s, type 'bye' to exit\n", dctx.Date)
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "bye" {
			return nil
		}
		if _, err := c.exchange(ctx, client, &history, dctx, line); err != nil {
			return err
		}
	}
}

// exchange appends the user message, performs one call and prints the
// outcome. Failures are rendered as chat messages; the user decides whether
// to retry. The failed user message is dropped from history so a retry does
// not double it.
func (c *Chat) exchange(ctx context.Context, client *assistant.Client, history *[]assistant.ChatMessage, dctx dailyctx.Context, text string) (*assistant.ChatResponse, error) {
	pp := printers.PrettyPrint{}

	*history = append(*history, assistant.ChatMessage{
		ID:        ids.New("msg"),
		Role:      "user",
		Content:   text,
		Timestamp: ids.NowISO(),
	})

	resp, err := client.Chat(ctx, *history, dctx)
	if err != nil {
		*history = (*history)[:len(*history)-1]
		pp.AssistantProblem(describe(err))
		return nil, nil
	}

	*history = append(*history, assistant.ChatMessage{
		ID:        ids.New("msg"),
		Role:      "assistant",
		Content:   resp.Response,
		Timestamp: resp.Timestamp,
	})
	pp.AssistantReply(resp.Response)
	return resp, nil
}

// describe maps a failure to the probable cause shown in the chat.
func describe(err error) string {
	var apiErr *assistant.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusServiceUnavailable:
			return fmt.Sprintf("the model is not loaded: %s", apiErr.Detail)
		case http.StatusUnprocessableEntity:
			return fmt.Sprintf("the request was rejected: %s", apiErr.Detail)
		default:
			return apiErr.Error()
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
		return "the request timed out; the model may be busy, try again"
	}
	return fmt.Sprintf("the assistant server looks down: %v", err)
}
