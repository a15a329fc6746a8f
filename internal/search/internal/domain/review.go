package domain

import "time"

// Review 搜索视角的点评，比 review 模块的领域对象多了命中高亮
type Review struct {
	Id             int64
	Uid            int64
	Title          string
	Company        string
	Locations      []string
	Department     string
	Description    string
	HourlyPay      float64
	Benefits       string
	Content        string
	Rating         *int64
	Recommendation *int64
	Utime          time.Time
	// Highlights 字段名 -> 命中片段
	Highlights map[string][]string
}
