// Interactive terminal client for manual testing: dial the chat endpoint,
// send stdin lines as raw frames, and pretty-print what comes back.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// frame covers every outbound shape the server emits.
type frame struct {
	Type         string            `json:"type"`
	Info         string            `json:"info"`
	Error        string            `json:"error"`
	Languages    []string          `json:"languages"`
	Users        []userEntry       `json:"users"`
	Sender       string            `json:"sender"`
	Original     string            `json:"original"`
	Translations map[string]string `json:"translations"`
	Timestamp    string            `json:"timestamp"`
}

type userEntry struct {
	Username string `json:"username"`
	Color    string `json:"color"`
}

func main() {
	if err := run(); err != nil {
		log.Printf("ws_chat: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	token := flag.String("token", "", "JWT token for an authenticated session")
	name := flag.String("name", "", "display name to set on connect")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	target := *addr
	if *token != "" {
		target += "?token=" + url.QueryEscape(*token)
	}

	conn, _, err := websocket.Dial(ctx, target, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	if *name != "" {
		if err := conn.Write(ctx, websocket.MessageText, []byte("/name "+*name)); err != nil {
			return fmt.Errorf("set name: %w", err)
		}
	}

	fmt.Printf("Connected to %s\n", *addr)
	fmt.Println("Type messages or commands (/name, /add-lang, ...) and press Enter. Ctrl+C to exit.")

	go func() {
		defer cancel()
		readLoop(ctx, conn)
	}()

	writeLoop(ctx, conn)

	stop()
	cancel()
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	return nil
}

func readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var f frame
		if err := wsjson.Read(ctx, conn, &f); err != nil {
			// Treat expected shutdowns quietly.
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			log.Printf("read error: %v", err)
			return
		}

		switch {
		case f.Info != "":
			fmt.Printf("* %s\n", f.Info)
		case f.Error != "":
			fmt.Printf("! %s\n", f.Error)
		case f.Type == "language_update":
			fmt.Printf("* languages: %s\n", strings.Join(f.Languages, ", "))
		case f.Type == "users_update":
			names := make([]string, 0, len(f.Users))
			for _, u := range f.Users {
				names = append(names, u.Username)
			}
			fmt.Printf("* users: %s\n", strings.Join(names, ", "))
		case f.Type == "chat":
			fmt.Printf("[%s] %s: %s\n", f.Timestamp, f.Sender, f.Original)
			codes := make([]string, 0, len(f.Translations))
			for code := range f.Translations {
				codes = append(codes, code)
			}
			sort.Strings(codes)
			for _, code := range codes {
				fmt.Printf("    %s: %s\n", code, f.Translations[code])
			}
		default:
			fmt.Printf("unhandled frame: %+v\n", f)
		}
	}
}

func writeLoop(ctx context.Context, conn *websocket.Conn) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}
			if err := conn.Write(ctx, websocket.MessageText, []byte(text)); err != nil {
				log.Printf("send error: %v", err)
				return
			}
		}
	}
}
