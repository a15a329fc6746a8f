package dao

import (
	"context"
	"encoding/json"

	"github.com/olivere/elastic/v7"
)

const ReviewIndexName = "review_index"

type Review struct {
	Id             int64    `json:"id"`
	Uid            int64    `json:"uid"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Locations      []string `json:"locations"`
	Department     string   `json:"department"`
	Description    string   `json:"description"`
	HourlyPay      float64  `json:"hourly_pay"`
	Benefits       string   `json:"benefits"`
	Content        string   `json:"content"`
	Rating         *int64   `json:"rating"`
	Recommendation *int64   `json:"recommendation"`
	Utime          int64    `json:"utime"`

	EsHighlights map[string][]string `json:"-"`
}

type ReviewElasticDAO struct {
	client *elastic.Client
	index  string
}

func NewReviewElasticDAO(client *elastic.Client) ReviewDAO {
	return &ReviewElasticDAO{
		client: client,
		index:  ReviewIndexName,
	}
}

func (d *ReviewElasticDAO) SearchReview(ctx context.Context, offset, limit int, keywords string) ([]Review, error) {
	// 职位名最重要，公司次之，其他字段兜底
	query := elastic.NewBoolQuery().Must(
		elastic.NewBoolQuery().Should(
			elastic.NewMatchQuery("title", keywords).Boost(3),
			elastic.NewMatchQuery("company", keywords).Boost(2),
			elastic.NewMatchQuery("department", keywords),
			elastic.NewMatchQuery("locations", keywords),
			elastic.NewMatchQuery("description", keywords),
			elastic.NewMatchQuery("content", keywords),
		))
	resp, err := d.client.Search(d.index).
		From(offset).
		Size(limit).
		Query(query).
		Highlight(elastic.NewHighlight().Fields(
			elastic.NewHighlighterField("title"),
			elastic.NewHighlighterField("content"),
		)).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Review, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele Review
		err = json.Unmarshal(hit.Source, &ele)
		if err != nil {
			return nil, err
		}
		ele.EsHighlights = getEsHighlights(hit.Highlight)
		res = append(res, ele)
	}
	return res, nil
}

func getEsHighlights(field elastic.SearchHitHighlight) map[string][]string {
	highlights := make(map[string][]string)
	if field != nil {
		highlights = field
	}
	return highlights
}
