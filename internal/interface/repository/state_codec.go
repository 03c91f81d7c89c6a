package repository

import (
	"encoding/json"

	"farewatch-service/internal/domain/entity"
)

// stateDocument is the on-disk/gist JSON shape. The legacy single-user layout
// kept settings and sent_deals at the top level; those fields survive here so
// old documents can be migrated on load.
type stateDocument struct {
	Users        map[string]*entity.User        `json:"users,omitempty"`
	Pending      map[string]*entity.PendingUser `json:"pending,omitempty"`
	LastUpdateID int64                          `json:"last_update_id"`

	LegacySettings  *entity.SettingsOverride `json:"settings,omitempty"`
	LegacySentDeals []string                 `json:"sent_deals,omitempty"`
}

// decodeState parses a persisted state document, migrating the legacy
// single-user layout into the multi-user one. The single user becomes the
// admin; without an admin chat id their history cannot be attached anywhere
// and is dropped, matching the original migration.
func decodeState(data []byte, adminChatID string) (*entity.State, error) {
	var doc stateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Users != nil && doc.Pending != nil {
		state := &entity.State{
			Users:        doc.Users,
			Pending:      doc.Pending,
			LastUpdateID: doc.LastUpdateID,
		}
		state.Normalize()
		// A half-migrated document may still carry top-level leftovers;
		// they belong to the admin.
		if adminChatID != "" {
			if _, ok := state.Users[adminChatID]; !ok {
				admin := &entity.User{Name: "Admin", SentDeals: doc.LegacySentDeals}
				if doc.LegacySettings != nil {
					admin.Settings = *doc.LegacySettings
				}
				state.Users[adminChatID] = admin
			}
		}
		return state, nil
	}

	state := entity.NewState()
	state.LastUpdateID = doc.LastUpdateID
	if adminChatID != "" {
		admin := &entity.User{Name: "Admin", SentDeals: doc.LegacySentDeals}
		if doc.LegacySettings != nil {
			admin.Settings = *doc.LegacySettings
		}
		state.Users[adminChatID] = admin
	}
	return state, nil
}

// encodeState renders state as indented JSON, the format both the file and
// gist backends store.
func encodeState(state *entity.State) ([]byte, error) {
	return json.MarshalIndent(state, "", "  ")
}
