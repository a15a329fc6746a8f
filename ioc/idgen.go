package ioc

import (
	"github.com/ecodeclub/jobreview/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/econf"
)

func InitIDGenerator() snowflake.Generator {
	nodeID := econf.GetInt64("snowflake.nodeId")
	idgen, err := snowflake.NewGenerator(nodeID)
	if err != nil {
		panic(err)
	}
	return idgen
}
