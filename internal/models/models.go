package models

const (
	TypeLaunchRequest       = "LaunchRequest"
	TypeIntentRequest       = "IntentRequest"
	TypeSessionEndedRequest = "SessionEndedRequest"
)

const (
	IntentChat   = "ChatIntent"
	IntentHelp   = "AMAZON.HelpIntent"
	IntentCancel = "AMAZON.CancelIntent"
	IntentStop   = "AMAZON.StopIntent"
)

// SlotQuery is the slot carrying the free-text query of ChatIntent.
const SlotQuery = "query"

// Request describes an incoming Alexa request envelope.
// https://developer.amazon.com/en-US/docs/alexa/custom-skills/request-and-response-json-reference.html
type Request struct {
	Version string      `json:"version"`
	Session Session     `json:"session"`
	Request RequestBody `json:"request"`
}

type Session struct {
	New  bool `json:"new"`
	User User `json:"user"`
}

type User struct {
	UserID string `json:"userId"`
}

type RequestBody struct {
	Type   string `json:"type"`
	Intent Intent `json:"intent"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SlotValue returns the value of the named slot, or "" when the slot
// or the whole slots mapping is absent.
func (i Intent) SlotValue(name string) string {
	if i.Slots == nil {
		return ""
	}
	return i.Slots[name].Value
}

// Response describes the answer the skill sends back to Alexa.
type Response struct {
	Version  string          `json:"version"`
	Response ResponsePayload `json:"response"`
}

// ResponsePayload keeps every field optional so that the session-ended
// answer serializes as an empty object.
type ResponsePayload struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech,omitempty"`
}

const outputSpeechPlainText = "PlainText"

// NewSpeechResponse builds the common speech-shaped answer.
func NewSpeechResponse(text string, endSession bool) Response {
	return Response{
		Version: "1.0",
		Response: ResponsePayload{
			OutputSpeech: &OutputSpeech{
				Type: outputSpeechPlainText,
				Text: text,
			},
			ShouldEndSession: &endSession,
		},
	}
}

// WithReprompt attaches a reprompt speech to the response.
func (r Response) WithReprompt(text string) Response {
	r.Response.Reprompt = &Reprompt{
		OutputSpeech: &OutputSpeech{
			Type: outputSpeechPlainText,
			Text: text,
		},
	}
	return r
}

// NewEmptyResponse builds the bodyless answer used for SessionEndedRequest.
func NewEmptyResponse() Response {
	return Response{Version: "1.0"}
}
