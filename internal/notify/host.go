package notify

import (
	"encoding/json"
	"io"
	"sync"
)

// logNotification is the JSON-RPC frame of an MCP notifications/message.
type logNotification struct {
	JSONRPC string             `json:"jsonrpc"`
	Method  string             `json:"method"`
	Params  notificationParams `json:"params"`
}

type notificationParams struct {
	Level  string `json:"level"`
	Logger string `json:"logger,omitempty"`
	Data   string `json:"data"`
}

// StdioHost frames notifications as MCP notifications/message objects,
// one JSON object per line. A writer mutex keeps frames whole when the
// stream is shared with protocol responses.
type StdioHost struct {
	name string

	writeMu sync.Mutex
	enc     *json.Encoder
}

var _ Host = (*StdioHost)(nil)

// NewStdioHost wraps w, usually the process stdout facing the MCP host.
// loggerName fills the optional params.logger field; empty omits it.
func NewStdioHost(w io.Writer, loggerName string) *StdioHost {
	return &StdioHost{
		name: loggerName,
		enc:  json.NewEncoder(w),
	}
}

func (h *StdioHost) Notify(level Level, message string) error {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	// json.Encoder terminates every frame with \n.
	return h.enc.Encode(logNotification{
		JSONRPC: "2.0",
		Method:  "notifications/message",
		Params: notificationParams{
			Level:  string(level),
			Logger: h.name,
			Data:   message,
		},
	})
}
