package websockets

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/oseuis57/web-ecovision/internal/model"
)

// Event types pushed to dashboard subscribers.
const (
	EventReportCreated       = "report.created"
	EventReportStatusChanged = "report.status_changed"
	EventTeamAssigned        = "report.team_assigned"
)

// Event is one live-feed message. Report is present for report events;
// Message carries the acknowledgement text for team assignments.
type Event struct {
	Type      string        `json:"type"`
	ReportID  string        `json:"report_id,omitempty"`
	Report    *model.Report `json:"report,omitempty"`
	Message   string        `json:"message,omitempty"`
	Timestamp string        `json:"timestamp"`
}

// Client is one connected dashboard.
type Client struct {
	Conn *websocket.Conn
}

type WebSocketManager struct {
	mu         sync.Mutex
	clients    map[*websocket.Conn]*Client
	broadcast  chan []byte
	register   chan *Client
	unregister chan *websocket.Conn
}
