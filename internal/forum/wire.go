//go:build wireinject

package forum

import (
	"github.com/ecodeclub/jobreview/internal/forum/internal/repository"
	"github.com/ecodeclub/jobreview/internal/forum/internal/repository/dao"
	"github.com/ecodeclub/jobreview/internal/forum/internal/service"
	"github.com/ecodeclub/jobreview/internal/forum/internal/web"
	"github.com/ecodeclub/jobreview/internal/interactive"
	"github.com/ecodeclub/jobreview/internal/pkg/snowflake"
	"github.com/ecodeclub/jobreview/internal/user"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, idgen snowflake.Generator,
	userModule *user.Module, intrModule *interactive.Module) (*Module, error) {
	wire.Build(
		initDAOs,
		repository.NewTopicRepository,
		repository.NewCommentRepository,
		service.NewForumService,
		web.NewHandler,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*interactive.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initDAOs(db *egorm.Component) (dao.TopicDAO, dao.CommentDAO) {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMTopicDAO(db), dao.NewCommentGORMDAO(db)
}
