package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	mrand "math/rand"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"manhunt/internal/board"
	"manhunt/internal/game"
	"manhunt/internal/storage"
)

// ErrRetriesExhausted is returned when a mutation keeps losing the
// compare-and-swap race and the retry budget runs out.
var ErrRetriesExhausted = errors.New("too many concurrent writes, giving up")

// ErrNotCreator is returned when a non-creator tries to start a game.
var ErrNotCreator = errors.New("only the game creator can start")

// ErrUnknownMap is returned when a game references a map the registry does
// not hold.
var ErrUnknownMap = errors.New("unknown map")

// Config holds the manager's tunables. Rand must be supplied so tests can
// seed deterministic role and start-node assignment.
type Config struct {
	TurnTimeout time.Duration // 0 disables the automatic fallback move
	Retries     int
	Rand        *mrand.Rand
}

// Manager owns every mutating entry point. Each mutation is an atomic
// read-decode-transform-encode-commit against the store: the engine
// transform runs on a freshly decoded copy per attempt, the commit is a
// compare-and-swap on the document version, and a lost race retries the
// whole sequence from a new read. No two commits are ever based on the same
// stale read.
type Manager struct {
	mu      sync.RWMutex
	live    map[string]*Session
	store   *storage.Store
	maps    *board.Registry
	retries int
	timeout time.Duration

	rngMu sync.Mutex
	rng   *mrand.Rand
}

// NewManager creates a manager.
func NewManager(store *storage.Store, maps *board.Registry, cfg Config) *Manager {
	retries := cfg.Retries
	if retries <= 0 {
		retries = 8
	}
	return &Manager{
		live:    make(map[string]*Session),
		store:   store,
		maps:    maps,
		retries: retries,
		timeout: cfg.TurnTimeout,
		rng:     cfg.Rand,
	}
}

// session returns the live session for a game, creating it on demand.
func (m *Manager) session(gameID string) *Session {
	m.mu.RLock()
	s, ok := m.live[gameID]
	m.mu.RUnlock()
	if ok {
		return s
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok = m.live[gameID]; ok {
		return s
	}
	s = newSession(gameID)
	m.live[gameID] = s
	return s
}

func (m *Manager) boardMap(mapID string) (*board.Map, error) {
	bm, ok := m.maps.Get(mapID)
	if !ok {
		return nil, fmt.Errorf("%q: %w", mapID, ErrUnknownMap)
	}
	return bm, nil
}

// mutate runs one engine transform under optimistic concurrency control.
// The transform must be a pure function of the state it receives; it may be
// invoked several times when commits race.
func (m *Manager) mutate(gameID string, fn func(*game.State) error) (*game.State, error) {
	for attempt := 0; attempt < m.retries; attempt++ {
		row, err := m.store.Get(gameID)
		if err != nil {
			return nil, err
		}
		var st game.State
		if err := json.Unmarshal([]byte(row.StateJSON), &st); err != nil {
			return nil, fmt.Errorf("decode game %s: %w", gameID, err)
		}
		if err := fn(&st); err != nil {
			return nil, err
		}
		data, err := json.Marshal(&st)
		if err != nil {
			return nil, fmt.Errorf("encode game %s: %w", gameID, err)
		}
		err = m.store.Update(gameID, string(data), row.Version)
		if errors.Is(err, storage.ErrVersionConflict) {
			log.Debug().Str("game", gameID).Int("attempt", attempt+1).
				Msg("commit lost concurrent write race, retrying")
			continue
		}
		if err != nil {
			return nil, err
		}
		m.afterCommit(&st)
		return &st, nil
	}
	return nil, ErrRetriesExhausted
}

// afterCommit fans the committed state out to subscribers and rearms the
// turn timer for the new acting seat.
func (m *Manager) afterCommit(st *game.State) {
	s := m.session(st.ID)
	s.forEachSubscriber(func(sub *Subscriber) {
		sub.Push(EncodeMessage("state", st.View(sub.PlayerID)))
	})

	actor := st.ActingPlayer()
	if m.timeout <= 0 || actor == nil {
		s.rearmTimer(0, nil)
		return
	}
	gameID, playerID := st.ID, actor.ID
	s.rearmTimer(m.timeout, func() {
		if _, err := m.ApplyRandomMove(gameID, playerID); err != nil {
			// The player usually just beat the timer; the CAS already
			// rejected the duplicate turn.
			log.Debug().Err(err).Str("game", gameID).Str("player", playerID).
				Msg("timeout fallback move not applied")
		} else {
			log.Info().Str("game", gameID).Str("player", playerID).
				Msg("turn timed out, random move applied")
		}
	})
}

// CreateGame initializes a lobby-phase game with one player and returns its id.
func (m *Manager) CreateGame(mapID, creatorID, creatorName string) (string, error) {
	if _, err := m.boardMap(mapID); err != nil {
		return "", err
	}
	gameID := generateCode()
	st := game.New(gameID, mapID, creatorID, creatorName)
	data, err := json.Marshal(st)
	if err != nil {
		return "", fmt.Errorf("encode game: %w", err)
	}
	if err := m.store.Create(gameID, string(data)); err != nil {
		return "", fmt.Errorf("persist game: %w", err)
	}
	log.Info().Str("game", gameID).Str("player", creatorID).Msg("game created")
	return gameID, nil
}

// Game returns the committed state projected for one viewer.
func (m *Manager) Game(gameID, viewerID string) (game.View, error) {
	row, err := m.store.Get(gameID)
	if err != nil {
		return game.View{}, err
	}
	var st game.State
	if err := json.Unmarshal([]byte(row.StateJSON), &st); err != nil {
		return game.View{}, fmt.Errorf("decode game %s: %w", gameID, err)
	}
	return st.View(viewerID), nil
}

// Join adds a player to a lobby.
func (m *Manager) Join(gameID, playerID, name string) error {
	_, err := m.mutate(gameID, func(st *game.State) error {
		return st.Join(playerID, name)
	})
	return err
}

// Leave removes a player from a lobby, deleting the game when the roster
// empties.
func (m *Manager) Leave(gameID, playerID string) error {
	var empty bool
	_, err := m.mutate(gameID, func(st *game.State) error {
		var leaveErr error
		empty, leaveErr = st.Leave(playerID)
		return leaveErr
	})
	if err != nil {
		return err
	}
	if empty {
		m.Remove(gameID)
	}
	return nil
}

// StartGame transitions a lobby to play. Only the creator may start.
func (m *Manager) StartGame(gameID, initiatorID string) error {
	_, err := m.mutate(gameID, func(st *game.State) error {
		p := st.PlayerByID(initiatorID)
		if p == nil {
			return game.ErrPlayerNotFound
		}
		if !p.Creator {
			return ErrNotCreator
		}
		bm, err := m.boardMap(st.MapID)
		if err != nil {
			return err
		}
		m.rngMu.Lock()
		defer m.rngMu.Unlock()
		return st.Start(bm, m.rng)
	})
	if err == nil {
		log.Info().Str("game", gameID).Msg("game started")
	}
	return err
}

// ApplyMove applies one move for the given player.
func (m *Manager) ApplyMove(gameID, playerID string, to board.NodeID, t game.Ticket) error {
	_, err := m.mutate(gameID, func(st *game.State) error {
		bm, err := m.boardMap(st.MapID)
		if err != nil {
			return err
		}
		return st.ApplyMove(bm, playerID, to, t)
	})
	return err
}

// ApplyRandomMove chooses a uniformly random legal move for the player and
// applies it through the normal move path. It exists for the turn-timeout
// fallback; the engine does not know or care why a move was requested.
func (m *Manager) ApplyRandomMove(gameID, playerID string) (game.Move, error) {
	var chosen game.Move
	_, err := m.mutate(gameID, func(st *game.State) error {
		bm, err := m.boardMap(st.MapID)
		if err != nil {
			return err
		}
		m.rngMu.Lock()
		mv, ok := st.RandomMove(bm.Graph, m.rng, playerID)
		m.rngMu.Unlock()
		if !ok {
			return game.ErrInert
		}
		chosen = mv
		return st.ApplyMove(bm, playerID, mv.To, mv.Ticket)
	})
	return chosen, err
}

// Reset returns a finished game to the lobby.
func (m *Manager) Reset(gameID, initiatorID string) error {
	_, err := m.mutate(gameID, func(st *game.State) error {
		return st.Reset(initiatorID)
	})
	return err
}

// Subscribe registers a client for state pushes. The caller owns the
// subscriber and must Unsubscribe when the connection closes.
func (m *Manager) Subscribe(gameID, playerID string) (*Subscriber, error) {
	if _, err := m.store.Get(gameID); err != nil {
		return nil, err
	}
	return m.session(gameID).subscribe(playerID), nil
}

// Unsubscribe removes a subscriber.
func (m *Manager) Unsubscribe(gameID string, sub *Subscriber) {
	m.mu.RLock()
	s, ok := m.live[gameID]
	m.mu.RUnlock()
	if ok {
		s.unsubscribe(sub)
	}
}

// GameInfo is a lobby-listing row.
type GameInfo struct {
	ID         string `json:"id"`
	Phase      string `json:"phase"`
	MapID      string `json:"mapId"`
	Players    int    `json:"players"`
	CreatedAgo string `json:"createdAgo"`
}

// List returns summaries of all games, newest first.
func (m *Manager) List() ([]GameInfo, error) {
	rows, err := m.store.List()
	if err != nil {
		return nil, err
	}
	infos := make([]GameInfo, 0, len(rows))
	for _, row := range rows {
		var st game.State
		if err := json.Unmarshal([]byte(row.StateJSON), &st); err != nil {
			log.Warn().Err(err).Str("game", row.ID).Msg("skipping undecodable game")
			continue
		}
		infos = append(infos, GameInfo{
			ID:         st.ID,
			Phase:      string(st.Phase),
			MapID:      st.MapID,
			Players:    len(st.Players),
			CreatedAgo: humanize.Time(row.CreatedAt),
		})
	}
	return infos, nil
}

// Remove deletes a game from storage and tears down its live session.
func (m *Manager) Remove(gameID string) {
	if err := m.store.Delete(gameID); err != nil {
		log.Warn().Err(err).Str("game", gameID).Msg("delete game")
	}
	m.mu.Lock()
	s, ok := m.live[gameID]
	delete(m.live, gameID)
	m.mu.Unlock()
	if ok {
		s.close()
	}
	log.Info().Str("game", gameID).Msg("game removed")
}

// CleanupLoop removes stale games periodically: finished games past maxAge
// and any game untouched for that long.
func (m *Manager) CleanupLoop(interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		m.cleanup(maxAge)
	}
}

func (m *Manager) cleanup(maxAge time.Duration) {
	rows, err := m.store.List()
	if err != nil {
		log.Warn().Err(err).Msg("cleanup: list games")
		return
	}
	now := time.Now()
	for _, row := range rows {
		if now.Sub(row.UpdatedAt) < maxAge {
			continue
		}
		var st game.State
		stale := json.Unmarshal([]byte(row.StateJSON), &st) != nil ||
			st.Phase == game.PhaseFinished ||
			now.Sub(row.UpdatedAt) >= 2*maxAge
		if stale {
			log.Info().Str("game", row.ID).Msg("cleaning up stale game")
			m.Remove(row.ID)
		}
	}
}

func generateCode() string {
	b := make([]byte, 3) // 6 hex chars
	rand.Read(b)
	return hex.EncodeToString(b)
}
