package server

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/catalog-console/internal/config"
	"github.com/nguyentranbao-ct/catalog-console/internal/usecase"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
	"go.uber.org/zap"
)

const (
	socketWriteTimeout = 10 * time.Second
	socketPingInterval = 30 * time.Second
)

// SocketHandler streams display snapshots to browsers.
type SocketHandler struct {
	log      *zap.SugaredLogger
	display  usecase.DisplayUsecase
	upgrader websocket.Upgrader
}

func NewSocketHandler(conf *config.Config, display usecase.DisplayUsecase) (*SocketHandler, error) {
	origins, err := regexp.Compile(conf.Server.CORSOrigin)
	if err != nil {
		return nil, err
	}

	return &SocketHandler{
		log:     logger.MustNamed("socket"),
		display: display,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins.MatchString(origin)
			},
		},
	}, nil
}

// ServeDisplay sends the current snapshot, then one message per committed refresh.
func (h *SocketHandler) ServeDisplay(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader has already answered the request
		h.log.Debugw("websocket upgrade failed", "error", err)
		return nil
	}
	defer conn.Close()

	updates, unsubscribe := h.display.Subscribe()
	defer unsubscribe()

	h.log.Debugw("display socket connected", "remote", conn.RemoteAddr().String())
	if err := h.write(conn, h.display.Snapshot()); err != nil {
		return nil
	}

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(socketPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			h.log.Debugw("display socket disconnected", "remote", conn.RemoteAddr().String())
			return nil
		case snap := <-updates:
			if err := h.write(conn, snap); err != nil {
				return nil
			}
		case <-ping.C:
			deadline := time.Now().Add(socketWriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return nil
			}
		}
	}
}

func (h *SocketHandler) write(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(socketWriteTimeout))
	if err := conn.WriteJSON(v); err != nil {
		h.log.Debugw("display socket write failed", "error", err)
		return err
	}
	return nil
}
