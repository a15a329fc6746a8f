package web

type ListReq struct {
	// TopN 不传就是默认 10 条
	TopN int `json:"topN"`
}

type Review struct {
	Id             int64    `json:"id"`
	SN             string   `json:"sn"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Locations      []string `json:"locations"`
	Department     string   `json:"department"`
	Description    string   `json:"description"`
	HourlyPay      float64  `json:"hourlyPay"`
	Benefits       string   `json:"benefits"`
	Content        string   `json:"content"`
	Rating         *int64   `json:"rating"`
	Recommendation *int64   `json:"recommendation"`
	Utime          int64    `json:"utime"`
}

type ListResp struct {
	Reviews []Review `json:"reviews"`
}
