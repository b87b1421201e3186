package domain

type CounterRequest struct {
	Target     string `json:"target"`
	Frames     int    `json:"frames"`
	DurationMs int    `json:"durationMs"`
}

type CounterPreview struct {
	Target string   `json:"target"`
	Kind   string   `json:"kind"`
	Frames []string `json:"frames"`
}
