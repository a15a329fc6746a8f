package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobreview/internal/user/internal/domain"
	"github.com/ecodeclub/jobreview/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/signup", ginx.B[SignUpReq](h.SignUp))
	users.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
	users.POST("/logout", ginx.S(h.Logout))
}

func (h *Handler) SignUp(ctx *ginx.Context, req SignUpReq) (ginx.Result, error) {
	if req.Username == "" || req.Password == "" {
		return systemErrorResult, errors.New("用户名或者密码为空")
	}
	if req.Password != req.ConfirmPassword {
		return systemErrorResult, errors.New("两次输入的密码不一致")
	}
	user, err := h.userSvc.SignUp(ctx, req.Username, req.Password)
	if errors.Is(err, service.ErrUserDuplicate) {
		return userDuplicateResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	// 注册完直接建立会话，跟登录一个效果
	_, err = session.NewSessionBuilder(ctx, user.Id).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(user),
	}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	user, err := h.userSvc.Login(ctx, req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidUserOrPassword) {
		return invalidUserOrPasswordResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, user.Id).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(user),
	}, nil
}

func (h *Handler) Logout(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	// token 本身有过期时间，服务端不维护黑名单，
	// 前端丢弃 token 即视为退出登录
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

// Edit 用户编辑信息
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:       uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func newProfile(u domain.User) Profile {
	return Profile{
		SN:       u.SN,
		Username: u.Username,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	}
}
