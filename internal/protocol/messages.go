package protocol

// Op identifies the purpose of a message.
type Op string

const (
	// Client -> bridge requests
	OpGet    Op = "get"
	OpSet    Op = "set"
	OpToggle Op = "toggle"
	OpMeta   Op = "meta"

	// Bridge -> client responses
	OpReply  Op = "reply"
	OpError  Op = "error"
	OpUpdate Op = "update"
)

// Message is the JSON envelope for all bridge traffic.
type Message struct {
	Op   Op     `json:"op"`
	Seq  uint64 `json:"seq,omitempty"`
	Addr string `json:"addr,omitempty"`

	// Value is present on set requests, get/toggle replies and updates.
	Value *WireValue `json:"value,omitempty"`

	// Meta is present on meta replies.
	Meta *WireMeta `json:"meta,omitempty"`

	// Error carries the bridge-side failure reason on error frames.
	Error string `json:"error,omitempty"`

	// NotFound and NotWritable classify an error frame so the client can
	// map it to a typed error without string matching.
	NotFound    bool `json:"notFound,omitempty"`
	NotWritable bool `json:"notWritable,omitempty"`
}

// WireValue is the serialized form of a datapoint value. The type field
// selects which payload pointer is set.
type WireValue struct {
	Type    string   `json:"type"`
	Bool    *bool    `json:"bool,omitempty"`
	Number  *float64 `json:"number,omitempty"`
	Text    *string  `json:"text,omitempty"`
	Quality string   `json:"quality"`
}

// WireMeta is the serialized form of datapoint metadata.
type WireMeta struct {
	Writable bool              `json:"writable"`
	Type     string            `json:"type"`
	Min      *float64          `json:"min,omitempty"`
	Max      *float64          `json:"max,omitempty"`
	Unit     string            `json:"unit,omitempty"`
	States   map[string]string `json:"states,omitempty"`
}
