package ioc

import (
	"github.com/ecodeclub/jobreview/internal/interactive"
	"github.com/ecodeclub/jobreview/internal/search"
)

// initConsumers 各模块装配的时候消费者已经启动了，
// 收拢到 App 上是为了退出的时候统一 Stop。
func initConsumers(intrModule *interactive.Module, searchModule *search.Module) []Consumer {
	return []Consumer{
		intrModule.Consumer,
		searchModule.Consumer,
	}
}
