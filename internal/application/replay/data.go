package replay

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	P bool `json:"p,omitempty"` // Pause toggled
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      uint64       `json:"seed"`
	Lives     int          `json:"lives"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
