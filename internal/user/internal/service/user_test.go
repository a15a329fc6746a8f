package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/jobreview/internal/user/internal/domain"
	"github.com/ecodeclub/jobreview/internal/user/internal/event"
	"github.com/ecodeclub/jobreview/internal/user/internal/repository"
	repomocks "github.com/ecodeclub/jobreview/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type fakeProducer struct {
	evts []event.RegistrationEvent
	err  error
}

func (f *fakeProducer) Produce(_ context.Context, evt event.RegistrationEvent) error {
	f.evts = append(f.evts, evt)
	return f.err
}

func TestUserService_SignUp(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		producer *fakeProducer

		username string
		password string

		wantErr  error
		wantEvts int
	}{
		{
			name: "注册成功",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
						assert.Equal(t, "alice", u.Username)
						assert.NotEmpty(t, u.SN)
						// 存进去的一定是加密后的密码
						assert.NoError(t, bcrypt.CompareHashAndPassword(
							[]byte(u.Password), []byte("hello#world123")))
						return int64(123), nil
					})
				return repo
			},
			producer: &fakeProducer{},
			username: "alice",
			password: "hello#world123",
			wantEvts: 1,
		},
		{
			name: "用户名冲突",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrUserDuplicate)
				return repo
			},
			producer: &fakeProducer{},
			username: "alice",
			password: "hello#world123",
			wantErr:  ErrUserDuplicate,
		},
		{
			name: "发送注册消息失败不影响注册",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(124), nil)
				return repo
			},
			producer: &fakeProducer{err: errors.New("mq 崩了")},
			username: "bob",
			password: "hello#world123",
			wantEvts: 1,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl), tc.producer)
			u, err := svc.SignUp(context.Background(), tc.username, tc.password)
			assert.Equal(t, tc.wantErr, err)
			assert.Len(t, tc.producer.evts, tc.wantEvts)
			if err == nil {
				assert.Equal(t, tc.username, u.Username)
				assert.Empty(t, u.Password)
			}
		})
	}
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()
	hash, err := bcrypt.GenerateFromPassword([]byte("hello#world123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) repository.UserRepository

		username string
		password string

		wantUser domain.User
		wantErr  error
	}{
		{
			name: "登录成功",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByUsername(gomock.Any(), "alice").
					Return(domain.User{
						Id:       123,
						SN:       "SN123",
						Username: "alice",
						Password: string(hash),
						Nickname: "alice",
					}, nil)
				return repo
			},
			username: "alice",
			password: "hello#world123",
			wantUser: domain.User{
				Id:       123,
				SN:       "SN123",
				Username: "alice",
				Nickname: "alice",
			},
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByUsername(gomock.Any(), "nobody").
					Return(domain.User{}, repository.ErrUserNotFound)
				return repo
			},
			username: "nobody",
			password: "hello#world123",
			wantErr:  ErrInvalidUserOrPassword,
		},
		{
			name: "密码错误",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByUsername(gomock.Any(), "alice").
					Return(domain.User{
						Id:       123,
						Username: "alice",
						Password: string(hash),
					}, nil)
				return repo
			},
			username: "alice",
			password: "wrong-password",
			wantErr:  ErrInvalidUserOrPassword,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByUsername(gomock.Any(), "alice").
					Return(domain.User{}, errors.New("db 崩了"))
				return repo
			},
			username: "alice",
			password: "hello#world123",
			wantErr:  errors.New("db 崩了"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl), &fakeProducer{})
			u, err := svc.Login(context.Background(), tc.username, tc.password)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

func TestUserService_UpdateNonSensitiveInfo(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockUserRepository(ctrl)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u domain.User) error {
			// 序列号和用户名不允许改
			assert.Empty(t, u.SN)
			assert.Empty(t, u.Username)
			assert.Equal(t, "新昵称", u.Nickname)
			return nil
		})
	svc := NewUserService(repo, &fakeProducer{})
	err := svc.UpdateNonSensitiveInfo(context.Background(), domain.User{
		Id:       123,
		SN:       "SN123",
		Username: "alice",
		Nickname: "新昵称",
	})
	require.NoError(t, err)
}
