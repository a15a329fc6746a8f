package snowflake

import (
	"github.com/bwmarrin/snowflake"
)

// Generator 生成分布式唯一 ID。
// 论坛的主题和评论都不走数据库自增主键，
// 方便以后做分库分表的时候不用迁移主键。
type Generator interface {
	NextID() int64
}

type generator struct {
	node *snowflake.Node
}

// NewGenerator nodeID 取值 [0, 1023]，单实例部署直接用 0
func NewGenerator(nodeID int64) (Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &generator{node: node}, nil
}

func (g *generator) NextID() int64 {
	return g.node.Generate().Int64()
}
