package client

// Recipient is a user resolved through the identity provider. Email is empty
// when the account has no address on file.
type Recipient struct {
	UID   string
	Email string
}

// Mail is one outbound message for the SMTP relay.
type Mail struct {
	To      string
	Subject string
	Text    string
	HTML    string
}
