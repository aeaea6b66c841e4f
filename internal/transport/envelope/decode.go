// Package envelope extracts lifecycle event messages from SNS, SQS and mixed Lambda batches.
package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// ErrMalformedBatch is returned when the payload is not an object with a Records array.
var ErrMalformedBatch = errors.New("malformed batch")

// ErrEmptyRecord is returned for a record that carries neither Sns.Message nor body.
var ErrEmptyRecord = errors.New("record carries neither Sns.Message nor body")

// Source names where a record came from.
type Source string

// Record sources.
const (
	SourceSNS     Source = "sns"
	SourceSQS     Source = "sqs"
	SourceUnknown Source = "unknown"
)

// Message is the event payload of one record. Err is set when the record could not be read.
type Message struct {
	ID     string
	Source Source
	Body   string
	Err    error
}

type batch struct {
	Records json.RawMessage `json:"Records"`
}

type record struct {
	Sns       *events.SNSEntity `json:"Sns"`
	Body      *string           `json:"body"`
	MessageID string            `json:"messageId"`
}

type snsNotification struct {
	Type    string `json:"Type"`
	Message string `json:"Message"`
}

// Decode splits a batch into per-record messages. Only a batch-level problem is returned as an error;
// per-record problems are carried in Message.Err so the remaining records are still relayed.
func Decode(payload []byte) ([]Message, error) {
	var b batch
	if err := json.Unmarshal(payload, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBatch, err)
	}
	if len(b.Records) == 0 || bytes.Equal(bytes.TrimSpace(b.Records), []byte("null")) {
		return nil, fmt.Errorf("%w: Records missing", ErrMalformedBatch)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(b.Records, &raws); err != nil {
		return nil, fmt.Errorf("%w: Records is not an array: %v", ErrMalformedBatch, err)
	}

	out := make([]Message, 0, len(raws))
	for _, raw := range raws {
		out = append(out, decodeRecord(raw))
	}
	return out, nil
}

func decodeRecord(raw json.RawMessage) Message {
	var r record
	if err := json.Unmarshal(raw, &r); err != nil {
		return Message{Source: SourceUnknown, Err: fmt.Errorf("decode record: %w", err)}
	}

	switch {
	case r.Sns != nil:
		if r.Sns.Message == "" {
			return Message{ID: r.Sns.MessageID, Source: SourceSNS, Err: ErrEmptyRecord}
		}
		return Message{ID: r.Sns.MessageID, Source: SourceSNS, Body: r.Sns.Message}
	case r.Body != nil:
		return Message{ID: r.MessageID, Source: SourceSQS, Body: Unwrap(*r.Body)}
	default:
		return Message{Source: SourceUnknown, Err: ErrEmptyRecord}
	}
}

// Unwrap returns the inner Message of an SNS notification delivered through an SQS subscription,
// or body unchanged when it is not one.
func Unwrap(body string) string {
	var n snsNotification
	if err := json.Unmarshal([]byte(body), &n); err != nil {
		return body
	}
	if n.Type == "Notification" && n.Message != "" {
		return n.Message
	}
	return body
}
