// SPDX-License-Identifier: MIT

package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/dsaviz/engine"
)

// ws streams one run to a WebSocket client and applies its control frames.
func (h *Handler) ws(w http.ResponseWriter, r *http.Request) {
	run, ok := h.rn.Get(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, Notice{Error: engine.ErrRunNotFound.Error()})
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("stream: ws upgrade failed", "run", run.ID(), "err", err)
		return
	}
	defer conn.Close()

	log := h.logger.With("run", run.ID(), "remote", r.RemoteAddr)
	log.Debug("stream: client attached")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notices := make(chan Notice, 8)
	readerDone := make(chan struct{})

	// Reader: keepalive deadline and control frames.
	go func() {
		defer close(readerDone)
		conn.SetReadLimit(maxControlSize)
		_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(h.pongWait))
		})
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var c Control
			if err := json.Unmarshal(data, &c); err == nil {
				err = apply(run, c)
			}
			if err != nil {
				log.Debug("stream: control rejected", "err", err)
				select {
				case notices <- Notice{Error: err.Error()}:
				default:
				}
				continue
			}
			log.Debug("stream: control applied", "op", c.Op)
		}
	}()

	ticker := time.NewTicker(h.pingPeriod)
	defer ticker.Stop()

	steps := run.Subscribe(ctx)
	for {
		select {
		case <-readerDone:
			log.Debug("stream: client detached")
			return

		case s, ok := <-steps:
			if !ok {
				if err := h.write(conn, final(run)); err != nil {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(h.writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, run.Status().String()))
				log.Debug("stream: run delivered", "steps", run.Len(), "status", run.Status().String())
				// Wait for the peer to answer the close frame.
				select {
				case <-readerDone:
				case <-time.After(h.writeWait):
				}
				return
			}
			if err := h.write(conn, s); err != nil {
				log.Debug("stream: write failed", "err", err)
				return
			}

		case n := <-notices:
			if err := h.write(conn, n); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(h.writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) write(conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(h.writeWait))

	return conn.WriteMessage(websocket.TextMessage, data)
}
