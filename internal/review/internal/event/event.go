package event

import (
	"encoding/json"

	"github.com/ecodeclub/jobreview/internal/review/internal/domain"
)

// ReviewEvent 点评变更事件，搜索模块消费之后更新索引
type ReviewEvent struct {
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`
	Data  string `json:"data"`
}

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
}

func NewReviewEvent(r domain.Review) ReviewEvent {
	data, _ := json.Marshal(newReview(r))
	return ReviewEvent{
		Biz:   "review",
		BizID: r.Id,
		Data:  string(data),
	}
}

func newReview(r domain.Review) Review {
	return Review{
		Id:             r.Id,
		Uid:            r.Uid,
		Title:          r.Title,
		Company:        r.Company,
		Locations:      r.Locations,
		Department:     r.Department,
		Description:    r.Description,
		HourlyPay:      r.HourlyPay,
		Benefits:       r.Benefits,
		Content:        r.Content,
		Rating:         r.Rating,
		Recommendation: r.Recommendation,
		Utime:          r.Utime.UnixMilli(),
	}
}
