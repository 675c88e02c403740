// Non-interactive smoke test: connect, set a name, add a language, send one
// message, and wait for the translated echo to come back.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	name := flag.String("name", "smoke-tester", "display name to set")
	language := flag.String("lang", "es", "language to add before sending")
	text := flag.String("text", "hello from smoke test", "message text to send")
	timeout := flag.Duration("timeout", 10*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(line string) error {
		if err := conn.Write(ctx, websocket.MessageText, []byte(line)); err != nil {
			return fmt.Errorf("send %q: %w", line, err)
		}
		return nil
	}

	if err := send("/name " + *name); err != nil {
		return err
	}
	if err := send("/add-lang " + *language); err != nil {
		return err
	}
	if err := send(*text); err != nil {
		return err
	}

	for {
		var frame map[string]json.RawMessage
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			return fmt.Errorf("read: %w", err)
		}

		if raw, ok := frame["error"]; ok {
			var msg string
			_ = json.Unmarshal(raw, &msg)
			return fmt.Errorf("server error: %s", msg)
		}

		var frameType string
		if raw, ok := frame["type"]; ok {
			_ = json.Unmarshal(raw, &frameType)
		}
		fmt.Printf("Received frame: type=%s\n", frameType)

		if frameType != "chat" {
			continue
		}

		var chat struct {
			Sender       string            `json:"sender"`
			Original     string            `json:"original"`
			Translations map[string]string `json:"translations"`
			MessageID    string            `json:"message_id"`
		}
		raw, err := json.Marshal(frame)
		if err != nil {
			return fmt.Errorf("marshal frame: %w", err)
		}
		if err := json.Unmarshal(raw, &chat); err != nil {
			return fmt.Errorf("unmarshal chat: %w", err)
		}

		fmt.Printf("Chat: sender=%s text=%q id=%s\n", chat.Sender, chat.Original, chat.MessageID)
		for code, out := range chat.Translations {
			fmt.Printf("    %s: %s\n", code, out)
		}
		return nil
	}
}
