package http

import (
	"time"

	"github.com/babelchat/babelchat-server/internal/core"
	"github.com/babelchat/babelchat-server/internal/proto"
)

// outboundFromEvent maps a core event to its wire payload.
func outboundFromEvent(ev *core.Event) any {
	switch ev.Kind {
	case core.EventLanguages:
		languages := ev.Languages
		if languages == nil {
			languages = []string{}
		}
		return proto.LanguageUpdate{Type: proto.TypeLanguageUpdate, Languages: languages}

	case core.EventUsers:
		users := make([]proto.UserEntry, 0, len(ev.Users))
		for _, u := range ev.Users {
			users = append(users, proto.UserEntry{Username: u.Username, Color: u.Color})
		}
		return proto.UsersUpdate{Type: proto.TypeUsersUpdate, Users: users}

	case core.EventChat:
		chat := ev.Chat
		return proto.ChatMessage{
			Type:         proto.TypeChat,
			Sender:       chat.Sender,
			SenderID:     chat.SenderID,
			Color:        chat.Color,
			Original:     chat.Original,
			Translations: chat.Translations,
			Timestamp:    chat.Timestamp.Format(time.RFC3339),
			MessageID:    chat.MessageID,
		}

	case core.EventInfo:
		return proto.Notice{Info: ev.Text}

	case core.EventError:
		return proto.ErrorNotice{Error: ev.Error.Message}

	default:
		return proto.ErrorNotice{Error: "unknown event"}
	}
}
