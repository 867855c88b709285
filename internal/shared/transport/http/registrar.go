package http

import "github.com/gin-gonic/gin"

// Registrar 由各业务模块实现，把自己的路由挂到 HTTP 服务上。
type Registrar interface {
	HttpRegister(g *gin.RouterGroup)
}
