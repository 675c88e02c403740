package core

import "strings"

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandChat broadcasts a translated chat message.
	CommandChat CommandKind = iota
	// CommandName sets the connection's display name.
	CommandName
	// CommandAddLang adds a language to the global language set.
	CommandAddLang
	// CommandRemoveLang removes a language from the global language set.
	CommandRemoveLang
	// CommandBlock blocks a display name for the authenticated user.
	CommandBlock
	// CommandUnblock removes a block for the authenticated user.
	CommandUnblock
	// CommandReport files a report against a display name.
	CommandReport
)

// Command is one inbound line, parsed exactly once. Arg holds the single
// argument of most commands; Reason is only set for CommandReport; Text is
// the raw chat text for CommandChat.
type Command struct {
	Kind   CommandKind
	Arg    string
	Reason string
	Text   string
}

// usage strings keyed by command kind, sent back on bad arity.
var usageByKind = map[CommandKind]string{
	CommandName:       "Usage: /name <your-name>",
	CommandAddLang:    "Usage: /add-lang <code-or-name>",
	CommandRemoveLang: "Usage: /remove-lang <code-or-name>",
	CommandBlock:      "Usage: /block <name>",
	CommandUnblock:    "Usage: /unblock <name>",
	CommandReport:     "Usage: /report <name> <reason>",
}

// ParseCommand classifies an inbound line. Command prefixes are matched
// case-insensitively; anything else, including unknown slash prefixes, is a
// chat message carrying the line verbatim.
func ParseCommand(line string) Command {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "/") {
		return Command{Kind: CommandChat, Text: line}
	}

	verb := trimmed
	rest := ""
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		verb = trimmed[:i]
		rest = strings.TrimSpace(trimmed[i+1:])
	}

	switch strings.ToLower(verb) {
	case "/name":
		return Command{Kind: CommandName, Arg: rest}
	case "/add-lang":
		return Command{Kind: CommandAddLang, Arg: rest}
	case "/remove-lang":
		return Command{Kind: CommandRemoveLang, Arg: rest}
	case "/block":
		return Command{Kind: CommandBlock, Arg: rest}
	case "/unblock":
		return Command{Kind: CommandUnblock, Arg: rest}
	case "/report":
		target, reason := splitArg(rest)
		return Command{Kind: CommandReport, Arg: target, Reason: reason}
	default:
		return Command{Kind: CommandChat, Text: line}
	}
}

// splitArg cuts the first whitespace-separated token off s.
func splitArg(s string) (string, string) {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}
