//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/jobreview/internal/search"
	"github.com/ecodeclub/jobreview/internal/search/internal/repository/dao"
	"github.com/ecodeclub/jobreview/internal/search/internal/event"
	"github.com/ecodeclub/jobreview/internal/search/internal/web"
	"github.com/ecodeclub/jobreview/internal/test"
	testioc "github.com/ecodeclub/jobreview/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestSearchModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	server   *egin.Component
	es       *elastic.Client
	producer mq.Producer
}

func (s *ModuleTestSuite) SetupSuite() {
	s.es = testioc.InitES()
	q := testioc.InitMQ()
	module, err := search.InitModule(s.es, q)
	require.NoError(s.T(), err)
	s.producer, err = q.Producer(event.SyncTopic)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	s.server = server
}

func (s *ModuleTestSuite) TearDownSuite() {
	_, err := s.es.DeleteByQuery(dao.ReviewIndexName).
		Query(elastic.NewTermQuery("uid", 70001)).
		Refresh("true").
		Do(context.Background())
	require.NoError(s.T(), err)
}

// 消费同步事件之后文档要能搜出来
func (s *ModuleTestSuite) TestSyncThenSearch() {
	t := s.T()
	rating := int64(4)
	doc := dao.Review{
		Id:      9001,
		Uid:     70001,
		Title:   "资深后端开发",
		Company: "Acme",
		Content: "技术氛围很好",
		Rating:  &rating,
		Utime:   time.Now().UnixMilli(),
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	evt := event.SyncEvent{Biz: "review", BizID: doc.Id, Data: string(data)}
	val, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = s.producer.Produce(context.Background(), &mq.Message{Value: val})
	require.NoError(t, err)

	// 消费加 ES 刷新都是异步的，轮询等结果
	require.Eventually(t, func() bool {
		req, err := http.NewRequest(http.MethodPost,
			"/search/review", iox.NewJSONReader(web.SearchReq{
				Keywords: "资深后端开发",
				Limit:    10,
			}))
		if err != nil {
			return false
		}
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.SearchResp]()
		s.server.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusOK {
			return false
		}
		resp := recorder.MustScan()
		for _, r := range resp.Data.Reviews {
			if r.Id == doc.Id && r.Company == "Acme" {
				return true
			}
		}
		return false
	}, 10*time.Second, 500*time.Millisecond)
}
