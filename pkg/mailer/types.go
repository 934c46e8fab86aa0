package mailer

// Email is a single outbound message. It is built per request and discarded
// once the provider call completes.
type Email struct {
	From    string // Sender address
	To      string // Recipient address
	Subject string // Subject line
	HTML    string // HTML body content
}

// Receipt is the provider's confirmation of an accepted message.
type Receipt struct {
	ID      string // Provider message ID (may be empty)
	Message string // Confirmation text, returned to the caller verbatim
}
