package calendar

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const provider = "google"

// placeholderAuthURL stands in until a real OAuth flow is wired up
const placeholderAuthURL = "https://accounts.google.com/o/oauth2/auth?client_id=pending&scope=calendar.readonly"

// StatusResponse reports the integration state for a user
type StatusResponse struct {
	Connected  bool       `json:"connected"`
	Provider   string     `json:"provider,omitempty"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
}

// ConnectResponse returns the OAuth URL to redirect the user to
type ConnectResponse struct {
	AuthURL  string `json:"auth_url"`
	Provider string `json:"provider"`
}

// SyncRequest optionally narrows the sync window
type SyncRequest struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// SyncResponse records one sync run
type SyncResponse struct {
	EventsSynced int       `json:"events_synced"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	SyncedAt     time.Time `json:"synced_at"`
}

type connectionState struct {
	connected  bool
	lastSyncAt *time.Time
}

// Service is a stub calendar integration. It tracks per-user connection
// state in memory and performs no external calls; sync runs always report
// zero imported events.
type Service struct {
	mu    sync.RWMutex
	state map[uuid.UUID]*connectionState
}

// NewService creates a new calendar stub service
func NewService() *Service {
	return &Service{state: make(map[uuid.UUID]*connectionState)}
}

// Status reports the current integration state
func (s *Service) Status(_ context.Context, userID uuid.UUID) *StatusResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.state[userID]
	if !ok || !st.connected {
		return &StatusResponse{Connected: false}
	}
	return &StatusResponse{Connected: true, Provider: provider, LastSyncAt: st.lastSyncAt}
}

// Connect returns the placeholder OAuth URL and marks the user connected
func (s *Service) Connect(_ context.Context, userID uuid.UUID) *ConnectResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.state[userID]
	if !ok {
		st = &connectionState{}
		s.state[userID] = st
	}
	st.connected = true

	return &ConnectResponse{AuthURL: placeholderAuthURL, Provider: provider}
}

// Disconnect drops the stored state
func (s *Service) Disconnect(_ context.Context, userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state, userID)
}

// Sync records a stub sync over the requested window, defaulting to the
// next seven days
func (s *Service) Sync(_ context.Context, userID uuid.UUID, req SyncRequest) *SyncResponse {
	now := time.Now()
	from := now
	if req.From != nil {
		from = *req.From
	}
	to := from.AddDate(0, 0, 7)
	if req.To != nil {
		to = *req.To
	}

	s.mu.Lock()
	st, ok := s.state[userID]
	if !ok {
		st = &connectionState{}
		s.state[userID] = st
	}
	st.connected = true
	st.lastSyncAt = &now
	s.mu.Unlock()

	return &SyncResponse{EventsSynced: 0, From: from, To: to, SyncedAt: now}
}
