package messages

import (
	"github.com/gamemon/gamemon/internal/status"
)

// ShowServerMsg is sent when the user wants the detail view for one server
type ShowServerMsg struct {
	Key    string
	Record status.Record
}
