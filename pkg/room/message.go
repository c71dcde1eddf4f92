package room

// PayloadIn is the format we expect from the web client
type PayloadIn struct {
	// Action is one of startRound, action, exchange, resolveDraw, state
	Action string `json:"action"`

	// Value carries the action's argument, e.g. "raise 50" or "split"
	Value string `json:"value"`

	// Cards carries the hand slots for an exchange
	Cards []int `json:"cards"`

	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// Response is a message sent to the web client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
