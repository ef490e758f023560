package usecases

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedPayload is returned when decrypted callback content is not the
// JSON object shape the gateway documents.
var ErrMalformedPayload = errors.New("malformed callback payload")

// CallbackPayload is the decrypted processor callback. It is hostile input:
// every field is optional and typed coercion happens here, before any
// interpretation logic sees it.
type CallbackPayload struct {
	MerchantTransactionID uint
	ResultCode            *int
	ResultMessage         string
	TransactionID         string
}

// ParseCallbackPayload decodes decrypted token bytes into a typed payload.
// The gateway serializes numbers inconsistently (sometimes as JSON numbers,
// sometimes as decimal strings), so both forms are accepted for the integer
// fields. Anything that is not a JSON object, or a field of an uncoercible
// type, is rejected.
func ParseCallbackPayload(data []byte) (*CallbackPayload, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	payload := &CallbackPayload{}

	if v, ok := raw["merchantTransactionId"]; ok {
		id, err := coerceInt(v)
		if err != nil {
			return nil, fmt.Errorf("%w: merchantTransactionId: %v", ErrMalformedPayload, err)
		}
		if id < 0 {
			return nil, fmt.Errorf("%w: merchantTransactionId is negative", ErrMalformedPayload)
		}
		payload.MerchantTransactionID = uint(id)
	}

	if v, ok := raw["resultCode"]; ok && v != nil {
		code, err := coerceInt(v)
		if err != nil {
			return nil, fmt.Errorf("%w: resultCode: %v", ErrMalformedPayload, err)
		}
		payload.ResultCode = &code
	}

	if v, ok := raw["resultMessage"]; ok {
		s, err := coerceString(v)
		if err != nil {
			return nil, fmt.Errorf("%w: resultMessage: %v", ErrMalformedPayload, err)
		}
		payload.ResultMessage = s
	}

	if v, ok := raw["transactionId"]; ok {
		s, err := coerceString(v)
		if err != nil {
			return nil, fmt.Errorf("%w: transactionId: %v", ErrMalformedPayload, err)
		}
		payload.TransactionID = s
	}

	return payload, nil
}

func coerceInt(v interface{}) (int, error) {
	switch value := v.(type) {
	case json.Number:
		n, err := strconv.Atoi(value.String())
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", value.String())
		}
		return n, nil
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", value)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}

func coerceString(v interface{}) (string, error) {
	switch value := v.(type) {
	case string:
		return value, nil
	case json.Number:
		return value.String(), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("unexpected type %T", v)
	}
}
