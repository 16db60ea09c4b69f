package models

// Frame interface limits imposed by the embedding client.
const (
	FrameMaxButtons     = 4
	FrameMaxInputLength = 256
	FrameAspectRatio    = "1.91:1"
)

// CastID identifies the cast a frame interaction originated from.
type CastID struct {
	FID  int64  `json:"fid"`
	Hash string `json:"hash"`
}

// FrameUntrustedData is the client-reported interaction payload.
type FrameUntrustedData struct {
	FID         int64   `json:"fid"`
	URL         string  `json:"url"`
	MessageHash string  `json:"messageHash"`
	Timestamp   int64   `json:"timestamp"`
	Network     int     `json:"network"`
	ButtonIndex int     `json:"buttonIndex"`
	InputText   string  `json:"inputText,omitempty"`
	CastID      *CastID `json:"castId,omitempty"`
}

// FrameTrustedData carries the signed message bytes.
type FrameTrustedData struct {
	MessageBytes string `json:"messageBytes"`
}

// FrameRequest is a webhook POST from the frame client.
type FrameRequest struct {
	UntrustedData FrameUntrustedData `json:"untrustedData"`
	TrustedData   FrameTrustedData   `json:"trustedData"`
}

// FrameButton is one of up to four actions rendered under the frame image.
type FrameButton struct {
	Label  string `json:"label"`
	Action string `json:"action,omitempty"`
	Target string `json:"target,omitempty"`
}

// FrameResponse describes the next frame to render.
type FrameResponse struct {
	Type        string        `json:"type"`
	FrameURL    string        `json:"frameUrl"`
	Image       string        `json:"image"`
	AspectRatio string        `json:"aspectRatio,omitempty"`
	Buttons     []FrameButton `json:"buttons,omitempty"`
	InputText   string        `json:"inputText,omitempty"`
	PostURL     string        `json:"postUrl,omitempty"`
}
