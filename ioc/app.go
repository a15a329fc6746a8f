package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

type App struct {
	Web   *egin.Component
	Crons []ecron.Ecron
	// Consumers 这里只管关闭，启动在各自模块装配的时候已经完成了
	Consumers []Consumer
}

type Consumer interface {
	Stop(ctx context.Context) error
}
