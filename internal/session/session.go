package session

import (
	"encoding/json"
	"sync"
	"time"
)

// Message is the JSON envelope pushed to subscribers and accepted from them
// over the websocket.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// EncodeMessage wraps a payload in the envelope. Marshal failures are
// impossible for the view types we send, so the result is always valid.
func EncodeMessage(msgType string, payload any) []byte {
	p, _ := json.Marshal(payload)
	msg, _ := json.Marshal(Message{Type: msgType, Payload: p})
	return msg
}

// Subscriber is one connected client of a game. Send is drained by the
// websocket writer; slow consumers drop messages rather than block commits.
type Subscriber struct {
	PlayerID string
	Send     chan []byte

	mu     sync.Mutex
	closed bool
}

// Push queues a message for the subscriber. Messages are dropped when the
// buffer is full or the subscriber has been closed; a disconnect racing a
// commit fanout must never panic the sender.
func (s *Subscriber) Push(msg []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.Send <- msg:
	default:
		// drop message if buffer full
	}
}

// close closes Send exactly once, under the same lock Push holds.
func (s *Subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.Send)
	}
}

// Session is the live, in-memory side of one game: its subscribers and the
// turn timer. All durable state lives in storage; a session can be rebuilt
// from nothing at any time.
type Session struct {
	mu     sync.Mutex
	gameID string
	subs   map[*Subscriber]struct{}
	timer  *time.Timer
}

func newSession(gameID string) *Session {
	return &Session{
		gameID: gameID,
		subs:   make(map[*Subscriber]struct{}),
	}
}

func (s *Session) subscribe(playerID string) *Subscriber {
	sub := &Subscriber{
		PlayerID: playerID,
		Send:     make(chan []byte, 64),
	}
	s.mu.Lock()
	s.subs[sub] = struct{}{}
	s.mu.Unlock()
	return sub
}

func (s *Session) unsubscribe(sub *Subscriber) {
	s.mu.Lock()
	if _, ok := s.subs[sub]; ok {
		delete(s.subs, sub)
		sub.close()
	}
	s.mu.Unlock()
}

// forEachSubscriber invokes fn for every subscriber outside the lock held
// long enough to snapshot the set.
func (s *Session) forEachSubscriber(fn func(*Subscriber)) {
	s.mu.Lock()
	subs := make([]*Subscriber, 0, len(s.subs))
	for sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()
	for _, sub := range subs {
		fn(sub)
	}
}

// rearmTimer replaces the turn timer. A nil fire function stops the timer
// without starting a new one.
func (s *Session) rearmTimer(d time.Duration, fire func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if fire != nil {
		s.timer = time.AfterFunc(d, fire)
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	for sub := range s.subs {
		delete(s.subs, sub)
		sub.close()
	}
}
