package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ChicagoDave/spacedc/pkg/engine"
	"github.com/ChicagoDave/spacedc/pkg/validation"
)

const liveWriteWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 16384,
}

// liveMessage is one server reply on the live channel.
type liveMessage struct {
	Comparison *engine.Comparison `json:"comparison,omitempty"`
	Report     *validation.Report `json:"report,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// handleLive upgrades to a WebSocket. Each client text message is a
// computeRequest; the server answers each with a liveMessage.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("live upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxBodyBytes)

	s.metrics.LiveSessions.Inc()
	defer s.metrics.LiveSessions.Dec()

	ip := clientIP(r, s.trustProxy)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("live session closed", "error", err)
			}
			return
		}

		reply := s.liveReply(data, s.limiter.get(ip).Allow())
		if err := s.writeLive(conn, reply); err != nil {
			s.logger.Debug("live write failed", "error", err)
			return
		}
	}
}

func (s *Server) liveReply(data []byte, allowed bool) liveMessage {
	if !allowed {
		s.metrics.RateLimited.Inc()
		return liveMessage{Error: "rate limit exceeded"}
	}
	var req computeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return liveMessage{Error: "decoding message: " + err.Error()}
	}
	p, err := s.resolve(req)
	if err != nil {
		return liveMessage{Error: err.Error()}
	}
	cmp, report := s.compare(p)
	return liveMessage{Comparison: cmp, Report: report}
}

func (s *Server) writeLive(conn *websocket.Conn, msg liveMessage) error {
	data, err := marshal(msg)
	if errors.Is(err, errNonFinite) {
		data, err = marshal(liveMessage{Report: msg.Report, Error: err.Error()})
	}
	if err != nil {
		return err
	}
	conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	return conn.WriteMessage(websocket.TextMessage, data)
}
