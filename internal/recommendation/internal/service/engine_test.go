package service

import (
	"testing"

	"github.com/ecodeclub/jobreview/internal/recommendation/internal/domain"
	"github.com/ecodeclub/jobreview/internal/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rated(job string, author, rating, rec int64) domain.RatedReview {
	return domain.RatedReview{
		JobID:          domain.ObservationOf(job),
		Author:         domain.ObservationOf(author),
		Rating:         domain.ObservationOf(rating),
		Recommendation: domain.ObservationOf(rec),
		Source: review.Review{
			Uid:            author,
			Title:          job,
			Rating:         &rating,
			Recommendation: &rec,
		},
	}
}

// 三个用户、四个职位的小语料，手算好预测分：
// u1 给 A=0.8 B=0.95，u2 给 A=0.65 C=0.7，u3 给 B=0.85 C=1.0 D=0.6。
// u1 的候选是 C 和 D，预测分 C ≈ 0.852 > D = 0.6。
func corpus() []domain.RatedReview {
	return []domain.RatedReview{
		rated("A", 1, 4, 8),
		rated("B", 1, 5, 9),
		rated("A", 2, 3, 7),
		rated("C", 2, 4, 6),
		rated("B", 3, 4, 9),
		rated("C", 3, 5, 10),
		rated("D", 3, 3, 6),
	}
}

func jobIDs(reviews []review.Review) []string {
	res := make([]string, 0, len(reviews))
	for _, r := range reviews {
		res = append(res, r.Title)
	}
	return res
}

func TestRecommend(t *testing.T) {
	t.Parallel()
	res, err := Recommend(corpus(), 1, 2)
	require.NoError(t, err)
	// C 的邻居加权分更高，排在 D 前面
	assert.Equal(t, []string{"C", "D"}, jobIDs(res))
	// 带回的是原始点评记录
	assert.Equal(t, int64(2), res[0].Uid)
	assert.Equal(t, int64(3), res[1].Uid)
}

func TestRecommend_boundedByTopN(t *testing.T) {
	t.Parallel()
	for _, topN := range []int{0, 1, 2, 5} {
		res, err := Recommend(corpus(), 1, topN)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(res), topN)
	}
	// topN 比候选少时取预测分最高的
	res, err := Recommend(corpus(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, jobIDs(res))
}

func TestRecommend_neverRecommendsRatedJobs(t *testing.T) {
	t.Parallel()
	res, err := Recommend(corpus(), 1, 10)
	require.NoError(t, err)
	// u1 自己打过分的 A 和 B 不会出现
	assert.NotContains(t, jobIDs(res), "A")
	assert.NotContains(t, jobIDs(res), "B")
}

func TestRecommend_emptyCorpus(t *testing.T) {
	t.Parallel()
	res, err := Recommend(nil, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestRecommend_negativeTopN(t *testing.T) {
	t.Parallel()
	_, err := Recommend(corpus(), 1, -1)
	assert.ErrorIs(t, err, ErrInvalidTopN)
}

func TestRecommend_fullCoverage(t *testing.T) {
	t.Parallel()
	// u1 打遍了所有职位，没有候选可推
	res, err := Recommend([]domain.RatedReview{
		rated("A", 1, 5, 10),
		rated("B", 1, 4, 8),
		rated("A", 2, 3, 6),
		rated("B", 2, 4, 7),
	}, 1, 3)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestRecommend_unknownUser(t *testing.T) {
	t.Parallel()
	// 没有打分历史的新用户拿到空结果，不报错
	res, err := Recommend(corpus(), 999, 10)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestRecommend_singleAuthor(t *testing.T) {
	t.Parallel()
	// 只有目标用户自己的点评，没有邻居可借力
	res, err := Recommend([]domain.RatedReview{
		rated("1", 10, 5, 10),
		rated("2", 10, 4, 8),
	}, 10, 3)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestRecommend_missingField(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		record domain.RatedReview
	}{
		{
			name: "缺 id",
			record: domain.RatedReview{
				Author:         domain.ObservationOf[int64](1),
				Rating:         domain.ObservationOf[int64](4),
				Recommendation: domain.ObservationOf[int64](8),
			},
		},
		{
			name: "缺 author",
			record: domain.RatedReview{
				JobID:          domain.ObservationOf("A"),
				Rating:         domain.ObservationOf[int64](4),
				Recommendation: domain.ObservationOf[int64](8),
			},
		},
		{
			name: "缺 rating",
			record: domain.RatedReview{
				JobID:          domain.ObservationOf("A"),
				Author:         domain.ObservationOf[int64](1),
				Recommendation: domain.ObservationOf[int64](8),
			},
		},
		{
			name: "缺 recommendation",
			record: domain.RatedReview{
				JobID:  domain.ObservationOf("A"),
				Author: domain.ObservationOf[int64](1),
				Rating: domain.ObservationOf[int64](4),
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			input := append(corpus(), tc.record)
			_, err := Recommend(input, 1, 10)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestRecommend_nullRatingFiltered(t *testing.T) {
	t.Parallel()
	// 字段在但值是 null 的记录被过滤，不算结构错误
	input := append(corpus(), domain.RatedReview{
		JobID:          domain.ObservationOf("E"),
		Author:         domain.ObservationOf[int64](2),
		Rating:         domain.NullObservation[int64](),
		Recommendation: domain.ObservationOf[int64](9),
	})
	res, err := Recommend(input, 1, 10)
	require.NoError(t, err)
	// E 没有任何有效打分，不会进矩阵，也就不会被推荐
	assert.NotContains(t, jobIDs(res), "E")
	assert.Equal(t, []string{"C", "D"}, jobIDs(res))
}

func TestRecommend_deterministic(t *testing.T) {
	t.Parallel()
	first, err := Recommend(corpus(), 1, 10)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Recommend(corpus(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCosine_symmetry(t *testing.T) {
	t.Parallel()
	a := map[string]float64{"A": 0.8, "B": 0.95}
	b := map[string]float64{"A": 0.65, "C": 0.7}
	assert.Equal(t, cosine(a, b), cosine(b, a))
	// 自己和自己的相似度是 1
	assert.InDelta(t, 1.0, cosine(a, a), 1e-9)
	// 零向量和谁都是 0
	assert.Zero(t, cosine(a, map[string]float64{}))
	assert.Zero(t, cosine(map[string]float64{}, a))
}
