package server

import (
	"bytes"
	"context"
	"encoding/json"
	mrand "math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nhooyr.io/websocket"

	"manhunt/internal/board"
	"manhunt/internal/game"
	"manhunt/internal/session"
	"manhunt/internal/storage"
)

// --- Test environment ---

type testEnv struct {
	ts  *httptest.Server
	mgr *session.Manager
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := storage.New(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	maps := board.NewRegistry()
	maps.Register(board.Riverton())
	mgr := session.NewManager(store, maps, session.Config{
		Retries: 4,
		Rand:    mrand.New(mrand.NewSource(7)),
	})

	ts := httptest.NewServer(New(mgr))
	t.Cleanup(ts.Close)

	return &testEnv{ts: ts, mgr: mgr}
}

// --- REST API helpers ---

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func createGameViaAPI(t *testing.T, ts *httptest.Server, playerID, name string) string {
	t.Helper()
	resp := postJSON(t, ts.URL+"/api/games", createGameRequest{PlayerID: playerID, Name: name})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var result createGameResponse
	decodeBody(t, resp, &result)
	return result.GameID
}

// startedGameViaAPI creates a two-player game and starts it, returning the
// game id plus the fugitive and tracker player ids (the fugitive always
// holds seat 0).
func startedGameViaAPI(t *testing.T, env *testEnv) (gameID, fugitiveID, trackerID string) {
	t.Helper()
	gameID = createGameViaAPI(t, env.ts, "alice", "Alice")

	resp := postJSON(t, env.ts.URL+"/api/games/"+gameID+"/join", joinRequest{PlayerID: "bob", Name: "Bob"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("join: expected 200, got %d", resp.StatusCode)
	}

	resp = postJSON(t, env.ts.URL+"/api/games/"+gameID+"/start", playerRequest{PlayerID: "alice"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("start: expected 200, got %d", resp.StatusCode)
	}

	view, err := env.mgr.Game(gameID, "")
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	return gameID, view.Players[0].ID, view.Players[1].ID
}

// safeFugitiveMove picks a fugitive hop that cannot capture, so a test move
// never ends the game.
func safeFugitiveMove(t *testing.T, env *testEnv, gameID, fugitiveID string) game.Move {
	t.Helper()
	view, err := env.mgr.Game(gameID, fugitiveID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	from := view.Players[0].Node
	trackerNode := view.Players[1].Node
	for _, hop := range board.Riverton().Graph.EdgesFrom(from) {
		if hop.To != trackerNode {
			return game.Move{To: hop.To, Ticket: game.TicketFor(hop.Via)}
		}
	}
	t.Fatal("no safe fugitive move available")
	return game.Move{}
}

// --- WebSocket helpers ---

func timeoutCtx(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func wsURL(ts *httptest.Server, gameID string) string {
	return strings.Replace(ts.URL, "http://", "ws://", 1) + "/api/games/" + gameID + "/ws"
}

func wsDial(ctx context.Context, t *testing.T, ts *httptest.Server, gameID string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.Dial(ctx, wsURL(ts, gameID), nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	return conn
}

func wsSend(ctx context.Context, t *testing.T, conn *websocket.Conn, msgType string, payload any) {
	t.Helper()
	p, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	data, err := json.Marshal(session.Message{Type: msgType, Payload: p})
	if err != nil {
		t.Fatalf("marshal ws message: %v", err)
	}
	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		t.Fatalf("ws write: %v", err)
	}
}

func wsRead(ctx context.Context, t *testing.T, conn *websocket.Conn) session.Message {
	t.Helper()
	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("ws read: %v", err)
	}
	var msg session.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal ws message: %v", err)
	}
	return msg
}

// readState reads one message and expects a per-viewer state push.
func readState(ctx context.Context, t *testing.T, conn *websocket.Conn) game.View {
	t.Helper()
	msg := wsRead(ctx, t, conn)
	if msg.Type != "state" {
		t.Fatalf("expected state message, got %q: %s", msg.Type, string(msg.Payload))
	}
	var view game.View
	if err := json.Unmarshal(msg.Payload, &view); err != nil {
		t.Fatalf("unmarshal state payload: %v", err)
	}
	return view
}

// readWSError reads one message and expects an error envelope.
func readWSError(ctx context.Context, t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	msg := wsRead(ctx, t, conn)
	if msg.Type != "error" {
		t.Fatalf("expected error message, got %q: %s", msg.Type, string(msg.Payload))
	}
	var ep wsErrorPayload
	if err := json.Unmarshal(msg.Payload, &ep); err != nil {
		t.Fatalf("unmarshal error payload: %v", err)
	}
	return ep.Message
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	defer resp.Body.Close()
	if resp.StatusCode != want {
		t.Fatalf("expected %d, got %d", want, resp.StatusCode)
	}
}
