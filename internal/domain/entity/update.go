package entity

// Update is one incoming Telegram bot update relevant to this service: the
// update sequence number plus the message essentials, already flattened out
// of the wire envelope.
type Update struct {
	ID       int64
	ChatID   string
	Text     string
	FromName string
	Username string
}

// IncomingCommand is a slash command parsed from an Update, annotated with
// the sender's standing so handlers need no extra lookups.
type IncomingCommand struct {
	ChatID   string
	Command  string
	Args     string
	FromName string
	Username string
	IsAdmin  bool
	Approved bool
}
