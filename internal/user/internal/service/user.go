package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/jobreview/internal/user/internal/domain"
	"github.com/ecodeclub/jobreview/internal/user/internal/event"
	"github.com/ecodeclub/jobreview/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserDuplicate = repository.ErrUserDuplicate
	// ErrInvalidUserOrPassword 对外不区分是用户名不存在还是密码错了
	ErrInvalidUserOrPassword = errors.New("用户名或者密码不正确")
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	// SignUp 注册成功后直接算登录成功
	SignUp(ctx context.Context, username, password string) (domain.User, error)
	Login(ctx context.Context, username, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// UpdateNonSensitiveInfo 更新非敏感数据
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
	// FindByIds 给论坛之类的模块批量装配作者信息用
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	Total(ctx context.Context) (int64, error)
}

type userService struct {
	repo     repository.UserRepository
	producer event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, p event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) SignUp(ctx context.Context, username, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	sn := shortuuid.New()
	id, err := svc.repo.Create(ctx, domain.User{
		SN:       sn,
		Username: username,
		Password: string(hash),
		Nickname: username,
	})
	if err != nil {
		return domain.User{}, err
	}

	// 发送注册成功消息
	evt := event.RegistrationEvent{Uid: id}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}

	return domain.User{
		Id:       id,
		SN:       sn,
		Username: username,
		Nickname: username,
	}, nil
}

func (svc *userService) Login(ctx context.Context, username, password string) (domain.User, error) {
	u, err := svc.repo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Profile(ctx context.Context,
	id int64) (domain.User, error) {
	// 在系统内部，基本上都是用 ID 的
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 不让修改序列号和用户名
	user.SN = ""
	user.Username = ""
	return svc.repo.Update(ctx, user)
}

func (svc *userService) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	return svc.repo.FindByIds(ctx, ids)
}

func (svc *userService) Total(ctx context.Context) (int64, error) {
	return svc.repo.Total(ctx)
}
