package domain

// Dashboard 首页仪表盘的聚合数据，给前端图表用
type Dashboard struct {
	TotalUsers   int64
	TotalReviews int64
	// 各地点的点评数
	Locations []Bucket
	// 各公司的点评数
	Companies []Bucket
	// 各地点的平均时薪
	AvgPayByLocation []PayBucket
	// 打分分布，1-5 各多少条
	Ratings []RatingBucket
}

type Bucket struct {
	Name string
	Cnt  int64
}

type PayBucket struct {
	Location string
	AvgPay   float64
}

type RatingBucket struct {
	Rating int64
	Cnt    int64
}
