package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"quadsolve/internal/response"
)

const (
	wsIdleTimeout = 5 * time.Minute
	wsWriteWait   = 10 * time.Second
)

func (a *API) checkOrigin(r *http.Request) bool {
	allowed := a.allowOrigin()
	if allowed == "*" {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || origin == allowed
}

// Live serves GET /ws. Every text message is handled like the body of a
// POST /calculate?quadratic and answered with one response message, in
// order. The connection closes after wsIdleTimeout without a message.
func (a *API) Live(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     a.checkOrigin,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		a.log(r.Context()).Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	conn.SetReadLimit(maxBodyBytes)
	a.log(ctx).Info("websocket_event", "event", "client_connected")

	for {
		_ = conn.SetReadDeadline(time.Now().Add(wsIdleTimeout))
		mt, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				a.log(ctx).Warn("websocket read failed", "error", err)
			}
			a.log(ctx).Info("websocket_event", "event", "client_disconnected")
			return
		}

		var out []byte
		if mt != websocket.TextMessage {
			out = response.EncodeError("invalid request: text messages only")
		} else {
			_, out = a.solve(ctx, msg)
		}

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
			a.log(ctx).Warn("websocket write failed", "error", err)
			return
		}
	}
}
