package usecase

import (
	"context"

	"farewatch-service/internal/domain/entity"
)

// fakeFlightRepo serves canned offers keyed by departure date and can be
// told to fail for specific origins.
type fakeFlightRepo struct {
	offers      map[string][]entity.Offer
	errByOrigin map[string]error
	calls       []flightCall
}

type flightCall struct {
	date     string
	settings entity.SearchSettings
}

func (f *fakeFlightRepo) SearchDepartures(ctx context.Context, departureDate string, settings entity.SearchSettings) ([]entity.Offer, error) {
	f.calls = append(f.calls, flightCall{date: departureDate, settings: settings})
	if err := f.errByOrigin[settings.Origin]; err != nil {
		return nil, err
	}
	return f.offers[departureDate], nil
}

// fakeMessenger records outbound messages and serves canned updates.
type fakeMessenger struct {
	sent     []sentMessage
	updates  []entity.Update
	sendErr  error
	fetchErr error
}

type sentMessage struct {
	chatID string
	text   string
}

func (f *fakeMessenger) SendMessage(ctx context.Context, chatID, text string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func (f *fakeMessenger) GetUpdates(ctx context.Context, offset int64) ([]entity.Update, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]entity.Update, 0, len(f.updates))
	for _, u := range f.updates {
		if u.ID > offset {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeMessenger) sentTo(chatID string) []string {
	var texts []string
	for _, m := range f.sent {
		if m.chatID == chatID {
			texts = append(texts, m.text)
		}
	}
	return texts
}
