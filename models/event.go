package models

// Topics and event names used on the notification channel.
const (
	TopicCases       = "cases"
	EventCaseCreated = "caseCreated"
)

// Event is the frame sent to socket subscribers.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// CaseCreatedPayload is the data of a caseCreated event.
type CaseCreatedPayload struct {
	Message string `json:"message"`
	Case    Case   `json:"case"`
}
