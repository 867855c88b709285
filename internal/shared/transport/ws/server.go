package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"KingdomsMap/modules/kit/logx"
)

// Server 把 HTTP 请求升级为 websocket，并把连接登记到 Hub。
type Server struct {
	router   *Router
	hub      *Hub
	upgrader websocket.Upgrader
	log      logx.Logger
}

func NewServer(r *Router, hub *Hub, l logx.Logger) *Server {
	if l == nil {
		l = logx.Nop()
	}
	return &Server{
		router: r,
		hub:    hub,
		upgrader: websocket.Upgrader{
			// 允许所有CORS跨域请求
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		log: l,
	}
}

func (s *Server) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	wsConn, err := s.upgrader.Upgrade(resp, req, nil)
	if err != nil {
		s.log.Warn("websocket upgrade error", zap.Error(err))
		return
	}

	wsServer := NewWsServer(wsConn, s.log)
	wsServer.Router(s.router)
	wsServer.Run()
	if s.hub != nil {
		s.hub.Add(wsServer)
	}
	s.log.Debug("websocket connected", zap.String("addr", wsServer.Addr()))
}
