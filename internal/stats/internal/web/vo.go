package web

type Dashboard struct {
	TotalUsers       int64          `json:"totalUsers"`
	TotalReviews     int64          `json:"totalReviews"`
	Locations        []Bucket       `json:"locations"`
	Companies        []Bucket       `json:"companies"`
	AvgPayByLocation []PayBucket    `json:"avgPayByLocation"`
	Ratings          []RatingBucket `json:"ratings"`
}

type Bucket struct {
	Name string `json:"name"`
	Cnt  int64  `json:"cnt"`
}

type PayBucket struct {
	Location string  `json:"location"`
	AvgPay   float64 `json:"avgPay"`
}

type RatingBucket struct {
	Rating int64 `json:"rating"`
	Cnt    int64 `json:"cnt"`
}
