package kv

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// SchemaVersion tags every persisted record. Decoding refuses payloads written
// by a different version instead of guessing at compatibility; the caller
// treats that the same as an absent record.
const SchemaVersion = 1

var ErrUndecodable = errors.New("payload cannot be decoded")

type envelope struct {
	SchemaVersion int    `json:"schema_version"`
	Payload       string `json:"payload"`
}

// Codec wraps records in a versioned envelope with a base64-obfuscated body.
// Encode and Decode are inverses for every marshalable value; Decode degrades
// to ErrUndecodable on anything it did not write.
type Codec struct{}

func NewCodec() Codec {
	return Codec{}
}

func (Codec) Encode(v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	env := envelope{
		SchemaVersion: SchemaVersion,
		Payload:       base64.StdEncoding.EncodeToString(body),
	}
	return json.Marshal(env)
}

func (Codec) Decode(data []byte, target any) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ErrUndecodable
	}
	if env.SchemaVersion != SchemaVersion {
		return ErrUndecodable
	}
	body, err := base64.StdEncoding.DecodeString(env.Payload)
	if err != nil {
		return ErrUndecodable
	}
	if err := json.Unmarshal(body, target); err != nil {
		return ErrUndecodable
	}
	return nil
}
