package message

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownType indicates a message whose type has no payload mapping.
var ErrUnknownType = errors.New("unknown message type")

type envelope struct {
	Type        Type            `json:"type"`
	ID          string          `json:"id"`
	AppID       string          `json:"appId,omitempty"`
	Transaction string          `json:"transaction,omitempty"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

// Encode marshals m to JSON.
func Encode(m Message) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s message: %w", m.Type, err)
	}
	return data, nil
}

// Decode unmarshals a JSON message, decoding the payload into the struct
// matching its type. Payload values are stored by value, so callers can
// type-switch on e.g. SavePayload.
func Decode(data []byte) (Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Message{}, fmt.Errorf("failed to decode message: %w", err)
	}

	m := Message{Type: env.Type, ID: env.ID, AppID: env.AppID, Transaction: env.Transaction}

	var err error
	switch env.Type {
	case TypeSelectElement:
		m.Payload, err = decodePayload[SelectElementPayload](env.Payload)
	case TypeHighlightElement:
		m.Payload, err = decodePayload[HighlightElementPayload](env.Payload)
	case TypeSave:
		m.Payload, err = decodePayload[SavePayload](env.Payload)
	case TypeSaveResult:
		m.Payload, err = decodePayload[SaveResultPayload](env.Payload)
	case TypeShowError:
		m.Payload, err = decodePayload[ShowErrorPayload](env.Payload)
	case TypeUpdateProject:
		m.Payload, err = decodePayload[UpdateProjectPayload](env.Payload)
	case TypeOpenExternalURL:
		m.Payload, err = decodePayload[OpenExternalURLPayload](env.Payload)
	case TypeElementClick, TypeElementMouseOver, TypeHighlightedElementRemove:
		m.Payload, err = decodePayload[PointerPayload](env.Payload)
	case TypeOutsideClick:
		// no payload
	case TypeKeyboardChange:
		m.Payload, err = decodePayload[KeyboardChangePayload](env.Payload)
	case TypeScrollChange:
		m.Payload, err = decodePayload[ScrollChangePayload](env.Payload)
	case TypeActivatePage:
		m.Payload, err = decodePayload[ActivatePagePayload](env.Payload)
	default:
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
	if err != nil {
		return Message{}, fmt.Errorf("failed to decode %s payload: %w", env.Type, err)
	}

	return m, nil
}

func decodePayload[T any](raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 || string(raw) == "null" {
		return v, nil
	}
	err := json.Unmarshal(raw, &v)
	return v, err
}
