package ws

type Registrar interface {
	WsRegister(r *Router)
}
