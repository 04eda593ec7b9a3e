package events

// SpinStatePayload captures the controller state exposed to the UI layer
type SpinStatePayload struct {
	Running     bool // True while spinning or decelerating
	StopEnabled bool // True while a stop request would still take effect
}

// WinnerPayload carries the settled entry of one run
type WinnerPayload struct {
	Name   string
	Weight float64
}

// EntriesChangedPayload carries the size of the replacement entry list
type EntriesChangedPayload struct {
	Count int
}
