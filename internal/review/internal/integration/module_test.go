//go:build e2e

package integration

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobreview/internal/interactive"
	"github.com/ecodeclub/jobreview/internal/review"
	"github.com/ecodeclub/jobreview/internal/review/internal/errs"
	"github.com/ecodeclub/jobreview/internal/review/internal/repository/dao"
	"github.com/ecodeclub/jobreview/internal/review/internal/web"
	"github.com/ecodeclub/jobreview/internal/test"
	testioc "github.com/ecodeclub/jobreview/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 1235678

func TestReviewModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.ReviewDAO
}

func (s *ModuleTestSuite) SetupSuite() {
	db := testioc.InitDB()
	q := testioc.InitMQ()
	intrModule, err := interactive.InitModule(db, q)
	require.NoError(s.T(), err)
	module, err := review.InitModule(db, testioc.InitCache(), q, intrModule)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PublicRoutes(server.Engine)
	module.Hdl.PrivateRoutes(server.Engine)

	s.server = server
	s.db = db
	s.dao = dao.NewGORMReviewDAO(db)
}

func (s *ModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `reviews`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `reviews`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TestSave() {
	rating := int64(4)
	rec := int64(8)
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      web.SaveReq
		wantCode int
	}{
		{
			name:   "新建点评",
			before: func(t *testing.T) {},
			after: func(t *testing.T) {
				var rows []dao.Review
				err := s.db.Where("uid = ?", uid).Find(&rows).Error
				require.NoError(t, err)
				require.Len(t, rows, 1)
				r := rows[0]
				assert.True(t, r.Id > 0)
				assert.NotEmpty(t, r.SN)
				assert.True(t, r.Ctime > 0)
				assert.True(t, r.Utime > 0)
				assert.Equal(t, "后端开发|Acme|上海", r.Jkey)
				assert.Equal(t, "加班不少", r.Content)
				require.True(t, r.Rating.Valid)
				assert.Equal(t, int64(4), r.Rating.Int64)
				require.True(t, r.Recommendation.Valid)
				assert.Equal(t, int64(8), r.Recommendation.Int64)
			},
			req: web.SaveReq{
				Review: web.Review{
					Title:          "后端开发",
					Company:        "Acme",
					Locations:      []string{"上海"},
					Department:     "平台部",
					Description:    "写 Go",
					HourlyPay:      300,
					Benefits:       "下午茶",
					Content:        "加班不少",
					Rating:         &rating,
					Recommendation: &rec,
				},
			},
			wantCode: http.StatusOK,
		},
		{
			name: "同一职位重复点评是覆盖",
			before: func(t *testing.T) {
				req, err := http.NewRequest(http.MethodPost,
					"/review/save", iox.NewJSONReader(web.SaveReq{
						Review: web.Review{
							Title:     "后端开发",
							Company:   "Acme",
							Locations: []string{"上海"},
							Content:   "第一版点评",
						},
					}))
				require.NoError(t, err)
				req.Header.Set("content-type", "application/json")
				recorder := test.NewJSONResponseRecorder[int64]()
				s.server.ServeHTTP(recorder, req)
				require.Equal(t, http.StatusOK, recorder.Code)
			},
			after: func(t *testing.T) {
				var rows []dao.Review
				err := s.db.Where("uid = ?", uid).Find(&rows).Error
				require.NoError(t, err)
				// 覆盖而不是新增
				require.Len(t, rows, 1)
				assert.Equal(t, "改了主意，推荐", rows[0].Content)
			},
			req: web.SaveReq{
				Review: web.Review{
					Title:     "后端开发",
					Company:   "Acme",
					Locations: []string{"上海"},
					Content:   "改了主意，推荐",
				},
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/review/save", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			resp := recorder.MustScan()
			assert.Equal(t, 0, resp.Code)
			tc.after(t)
			// 清掉这个子用例的数据
			require.NoError(t, s.db.Exec("TRUNCATE TABLE `reviews`").Error)
		})
	}
}

func (s *ModuleTestSuite) TestDetail() {
	t := s.T()
	id, err := s.dao.Save(context.Background(), dao.Review{
		SN:      "sn-detail",
		Uid:     uid,
		Jkey:    "测试开发|Beta|北京",
		Title:   "测试开发",
		Company: "Beta",
		Content: "氛围不错",
		Rating:  sql.NullInt64{Int64: 5, Valid: true},
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/review/detail", iox.NewJSONReader(web.DetailReq{Rid: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Review]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	got := recorder.MustScan().Data
	assert.Equal(t, id, got.Id)
	assert.Equal(t, "测试开发", got.Title)
	assert.Equal(t, "Beta", got.Company)
	assert.Equal(t, "氛围不错", got.Content)
	require.NotNil(t, got.Rating)
	assert.Equal(t, int64(5), *got.Rating)
	// 没有互动数据就是零值
	assert.Equal(t, web.Interactive{}, got.Interactive)
	// 浏览计数事件是异步的，给消费者一点时间
	time.Sleep(time.Second)
}

func (s *ModuleTestSuite) TestDelete() {
	t := s.T()
	mine, err := s.dao.Save(context.Background(), dao.Review{
		SN: "sn-mine", Uid: uid, Jkey: "前端开发|Acme|上海",
		Title: "前端开发", Company: "Acme", Content: "还行",
	})
	require.NoError(t, err)
	others, err := s.dao.Save(context.Background(), dao.Review{
		SN: "sn-others", Uid: uid + 1, Jkey: "前端开发|Beta|上海",
		Title: "前端开发", Company: "Beta", Content: "还行",
	})
	require.NoError(t, err)

	// 删别人的不行
	req, err := http.NewRequest(http.MethodPost,
		"/review/delete", iox.NewJSONReader(web.DeleteReq{Rid: others}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, errs.NotReviewOwner.Code, recorder.MustScan().Code)

	// 删自己的可以
	req, err = http.NewRequest(http.MethodPost,
		"/review/delete", iox.NewJSONReader(web.DeleteReq{Rid: mine}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	_, err = s.dao.FindById(context.Background(), mine)
	assert.ErrorIs(t, err, dao.ErrRecordNotFound)
}
