package pipeline

import (
	"sync"
	"sync/atomic"

	"landing_ai_server/internal/ai"
	"landing_ai_server/internal/types"
)

// Session holds the in-memory state behind /page/current and /chat: the most
// recently generated document and the chat history. There is no persistence;
// the HTML string is the only durable artifact.
//
// Requests carry a monotonically increasing id. A result is installed only
// if no newer request has been issued in the meantime, so overlapping
// generations resolve to the most recently initiated one.
type Session struct {
	counter atomic.Uint64

	mu      sync.RWMutex
	content *types.BusinessContent
	html    string
	history []ai.ChatTurn
}

func NewSession() *Session {
	return &Session{}
}

// NextRequestID reserves an id for a new generation request.
func (s *Session) NextRequestID() uint64 {
	return s.counter.Add(1)
}

// Install makes the result current unless a newer request already installed
// its own. Returns false when the result was discarded as stale.
func (s *Session) Install(requestID uint64, content types.BusinessContent, html string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if requestID < s.counter.Load() {
		// a newer generation was initiated while this one ran
		return false
	}
	s.content = &content
	s.html = html
	s.history = nil
	return true
}

// Current returns the current document, or ok=false when nothing has been
// generated or imported this session.
func (s *Session) Current() (types.BusinessContent, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.content == nil {
		return types.BusinessContent{}, "", false
	}
	return *s.content, s.html, true
}

// History returns a copy of the chat turns exchanged so far.
func (s *Session) History() []ai.ChatTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ai.ChatTurn, len(s.history))
	copy(out, s.history)
	return out
}

// AppendTurns records a user/bot exchange.
func (s *Session) AppendTurns(turns ...ai.ChatTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, turns...)
}
