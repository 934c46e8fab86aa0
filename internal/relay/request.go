package relay

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/dmitrymomot/mailrelay/internal"
	"github.com/dmitrymomot/mailrelay/pkg/mailer"
)

// sendEmailRequest is the inbound JSON body of POST /email.
// Validation tags are only enforced in strict mode.
type sendEmailRequest struct {
	From    string `json:"from" validate:"required"`
	To      string `json:"to" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	HTML    string `json:"html" validate:"required"`
}

// email maps the request onto the provider message field by field.
func (req *sendEmailRequest) email() *mailer.Email {
	return &mailer.Email{
		From:    req.From,
		To:      req.To,
		Subject: req.Subject,
		HTML:    req.HTML,
	}
}

// decodeRequest parses a JSON body. Bodies that are empty or not sent as
// application/json decode to an empty request. A body must hold exactly one
// JSON object or array.
func decodeRequest(r *http.Request) (*sendEmailRequest, error) {
	var req sendEmailRequest
	if r.Body == nil || !isJSON(r.Header.Get("Content-Type")) {
		return &req, nil
	}

	dec := json.NewDecoder(r.Body)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return &req, nil
		}
		return nil, decodeError(err)
	}

	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return nil, internal.ErrBadRequest("invalid JSON body", errNotObject)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return nil, decodeError(err)
	}

	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, internal.ErrBadRequest("invalid JSON body", err)
	}
	return &req, nil
}

var (
	errNotObject    = errors.New("body is not a JSON object")
	errTrailingData = errors.New("unexpected data after JSON body")
)

func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return internal.ErrRequestTooLarge("request body too large", err)
	}
	return internal.ErrBadRequest("invalid JSON body", err)
}

// isJSON reports whether the content type is application/json.
func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}
