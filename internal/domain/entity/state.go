package entity

// MaxSentDeals caps a user's sent-deal history; older hashes age out first.
const MaxSentDeals = 500

// User is one approved subscriber: display name, sparse setting overrides
// and the hashes of deals already delivered to them.
type User struct {
	Name      string           `json:"name" bson:"name"`
	Settings  SettingsOverride `json:"settings" bson:"settings"`
	SentDeals []string         `json:"sent_deals" bson:"sentDeals"`
}

// RememberDeals appends delivered deal hashes and trims the history to the
// most recent MaxSentDeals entries.
func (u *User) RememberDeals(hashes []string) {
	u.SentDeals = append(u.SentDeals, hashes...)
	if len(u.SentDeals) > MaxSentDeals {
		u.SentDeals = u.SentDeals[len(u.SentDeals)-MaxSentDeals:]
	}
}

// SeenDeals returns the sent-deal history as a lookup set.
func (u *User) SeenDeals() map[string]struct{} {
	seen := make(map[string]struct{}, len(u.SentDeals))
	for _, h := range u.SentDeals {
		seen[h] = struct{}{}
	}
	return seen
}

// PendingUser is a registration request awaiting admin approval.
type PendingUser struct {
	Name     string `json:"name" bson:"name"`
	Username string `json:"username" bson:"username"`
}

// State is the whole persisted bot state: who is subscribed, who is waiting
// for approval, and the last Telegram update already processed.
type State struct {
	Users        map[string]*User        `json:"users" bson:"users"`
	Pending      map[string]*PendingUser `json:"pending" bson:"pending"`
	LastUpdateID int64                   `json:"last_update_id" bson:"lastUpdateId"`
}

// NewState returns an empty, usable state.
func NewState() *State {
	return &State{
		Users:   make(map[string]*User),
		Pending: make(map[string]*PendingUser),
	}
}

// Normalize makes nil maps usable after decoding from storage.
func (s *State) Normalize() {
	if s.Users == nil {
		s.Users = make(map[string]*User)
	}
	if s.Pending == nil {
		s.Pending = make(map[string]*PendingUser)
	}
}

// EnsureUser returns the user for chatID, registering them first if needed.
func (s *State) EnsureUser(chatID, name string) *User {
	s.Normalize()
	if u, ok := s.Users[chatID]; ok {
		return u
	}
	u := &User{Name: name}
	s.Users[chatID] = u
	return u
}

// Approve moves a pending registration into the user set. It reports false
// when chatID has no pending request.
func (s *State) Approve(chatID string) (*PendingUser, bool) {
	s.Normalize()
	p, ok := s.Pending[chatID]
	if !ok {
		return nil, false
	}
	delete(s.Pending, chatID)
	s.Users[chatID] = &User{Name: p.Name}
	return p, true
}

// Reject discards a pending registration. It reports false when chatID has
// no pending request.
func (s *State) Reject(chatID string) (*PendingUser, bool) {
	s.Normalize()
	p, ok := s.Pending[chatID]
	if !ok {
		return nil, false
	}
	delete(s.Pending, chatID)
	return p, true
}
