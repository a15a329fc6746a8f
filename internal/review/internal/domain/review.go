package domain

import "time"

// Review 一条任职点评。一个 (Title, Company, Locations) 组合
// 对应一个职位，同一个职位可以有很多人点评。
type Review struct {
	Id int64
	// 对外暴露的序列号
	SN string
	// 作者
	Uid int64
	// 职位名
	Title   string
	Company string
	// 工作地点，可能有多个
	Locations []string
	// 部门
	Department string
	// 职位描述
	Description string
	// 时薪
	HourlyPay float64
	// 福利待遇
	Benefits string
	// 点评正文
	Content string
	// Rating 1-5 打分，Recommendation 1-10 推荐度。
	// 都允许不填，nil 代表没填，推荐引擎会把没填的过滤掉
	Rating         *int64
	Recommendation *int64
	Ctime          time.Time
	Utime          time.Time
}

// JobKey 职位的自然键，同一个职位的多条点评共享这个键
func (r Review) JobKey() string {
	key := r.Title + "|" + r.Company
	for _, loc := range r.Locations {
		key += "|" + loc
	}
	return key
}
