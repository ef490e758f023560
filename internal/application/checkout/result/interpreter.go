// Package result maps MMG checkout result codes to payment outcomes.
package result

import "fmt"

// Status is the terminal classification of a callback.
type Status string

const (
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Outcome is the interpreted result of a payment callback.
type Outcome struct {
	Status  Status
	Message string
}

func (o Outcome) IsSuccess() bool {
	return o.Status == StatusSuccess
}

// CodeSuccess is the only result code that indicates a completed payment.
const CodeSuccess = 0

// Known failure and cancellation codes returned by the gateway.
var knownOutcomes = map[int]Outcome{
	1: {Status: StatusFailed, Message: "Agent Not Registered."},
	2: {Status: StatusFailed, Message: "Payment Failed."},
	3: {Status: StatusFailed, Message: "Invalid Secret Key."},
	4: {Status: StatusFailed, Message: "Merchant ID Mismatch."},
	5: {Status: StatusFailed, Message: "Token Decryption Failed."},
	6: {Status: StatusCancelled, Message: "Payment cancelled by user."},
	7: {Status: StatusFailed, Message: "Request Timed Out."},
}

// Interpret classifies a result code. A nil code means the gateway omitted
// resultCode entirely; there is no success without an explicit zero, so it
// falls through to the generic failure branch. resultMessage is only echoed
// for codes outside the fixed table.
func Interpret(code *int, resultMessage string) Outcome {
	if code == nil {
		return Outcome{
			Status:  StatusFailed,
			Message: fmt.Sprintf("Result Code: <missing>, Message: %s", resultMessage),
		}
	}

	if *code == CodeSuccess {
		return Outcome{Status: StatusSuccess, Message: "Payment completed."}
	}

	if outcome, ok := knownOutcomes[*code]; ok {
		return outcome
	}

	return Outcome{
		Status:  StatusFailed,
		Message: fmt.Sprintf("Result Code: %d, Message: %s", *code, resultMessage),
	}
}
