package user

import (
	"github.com/ecodeclub/jobreview/internal/user/internal/domain"
	"github.com/ecodeclub/jobreview/internal/user/internal/service"
	"github.com/ecodeclub/jobreview/internal/user/internal/web"
)

// Handler 暴露出去给 ioc 使用
type Handler = web.Handler
type User = domain.User

// UserService 方便测试
type UserService = service.UserService

type Module struct {
	Hdl *Handler
	Svc UserService
}
