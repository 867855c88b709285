package interfaces

import (
	"github.com/gin-gonic/gin"

	transporthttp "KingdomsMap/internal/shared/transport/http"
	"KingdomsMap/internal/shared/transport/ws"
	"KingdomsMap/internal/world/interfaces/handler/http"
	ws2 "KingdomsMap/internal/world/interfaces/handler/ws"
)

type Module struct {
	wsHandler   *ws2.WsHandler
	httpHandler *http.HttpHandler
}

func New(d http.Deps) *Module {
	return &Module{
		wsHandler:   ws2.NewWsHandler(d.Worlds, d.Log),
		httpHandler: http.NewHttpHandler(d),
	}
}

func (m *Module) WsRegister(r *ws.Router) {
	m.wsHandler.RegisterRoutes(r)
}

func (m *Module) HttpRegister(g *gin.RouterGroup) {
	m.httpHandler.RegisterRoutes(g)
}

var _ ws.Registrar = (*Module)(nil)
var _ transporthttp.Registrar = (*Module)(nil)
