package utils

// Shared user-facing messages.
const (
	MsgInvalidInput  = "Please provide a valid legal question or situation."
	MsgAPIError      = "Sorry, we encountered an error processing your request. Please try again."
	MsgDisclaimer    = "This is general legal information, not legal advice. Consult with a qualified attorney for specific legal matters."
	MsgGenericSource = "Legal information assistant"
)
