package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"nhooyr.io/websocket"

	"manhunt/internal/board"
	"manhunt/internal/game"
	"manhunt/internal/session"
)

type wsJoinPayload struct {
	PlayerID string `json:"playerId"`
}

type wsMovePayload struct {
	To     int         `json:"to"`
	Ticket game.Ticket `json:"ticket"`
}

type wsErrorPayload struct {
	Message string `json:"message"`
}

// handleWebSocket upgrades the connection, expects a join envelope, then
// pushes per-viewer state after every committed mutation and accepts move,
// start, and reset actions inline.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // allow any origin for dev
	})
	if err != nil {
		log.Warn().Err(err).Msg("websocket accept")
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := r.Context()

	// First message must be a join
	_, data, err := conn.Read(ctx)
	if err != nil {
		return
	}
	var msg session.Message
	if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "join" {
		sendWSError(ctx, conn, "first message must be a join")
		return
	}
	var join wsJoinPayload
	if err := json.Unmarshal(msg.Payload, &join); err != nil || join.PlayerID == "" {
		sendWSError(ctx, conn, "invalid join payload")
		return
	}

	sub, err := s.manager.Subscribe(gameID, join.PlayerID)
	if err != nil {
		sendWSError(ctx, conn, err.Error())
		return
	}
	defer s.manager.Unsubscribe(gameID, sub)

	// Push the current committed state before any mutation arrives.
	if view, err := s.manager.Game(gameID, join.PlayerID); err == nil {
		conn.Write(ctx, websocket.MessageText, session.EncodeMessage("state", view))
	}

	// Writer goroutine: drain the subscription into the websocket
	go func() {
		for msg := range sub.Send {
			if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}()

	// Reader loop: handle incoming actions
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			break
		}
		var msg session.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			sendSubError(sub, "invalid message")
			continue
		}
		s.handleWSMessage(gameID, join.PlayerID, sub, msg)
	}

	log.Debug().Str("game", gameID).Str("player", join.PlayerID).Msg("websocket disconnected")
}

func (s *Server) handleWSMessage(gameID, playerID string, sub *session.Subscriber, msg session.Message) {
	var err error
	switch msg.Type {
	case "move":
		var mv wsMovePayload
		if jsonErr := json.Unmarshal(msg.Payload, &mv); jsonErr != nil {
			err = jsonErr
			break
		}
		err = s.manager.ApplyMove(gameID, playerID, board.NodeID(mv.To), mv.Ticket)
	case "start":
		err = s.manager.StartGame(gameID, playerID)
	case "reset":
		err = s.manager.Reset(gameID, playerID)
	default:
		sendSubError(sub, "unknown message type: "+msg.Type)
		return
	}
	if err != nil {
		sendSubError(sub, err.Error())
	}
}

func sendSubError(sub *session.Subscriber, message string) {
	sub.Push(session.EncodeMessage("error", wsErrorPayload{Message: message}))
}

func sendWSError(ctx context.Context, conn *websocket.Conn, message string) {
	conn.Write(ctx, websocket.MessageText, session.EncodeMessage("error", wsErrorPayload{Message: message}))
}
