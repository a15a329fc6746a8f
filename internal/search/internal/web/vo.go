package web

type SearchReq struct {
	Keywords string `json:"keywords"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

type Review struct {
	Id             int64    `json:"id"`
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
	// Highlights 命中片段，前端标红用
	Highlights map[string][]string `json:"highlights"`
}

type SearchResp struct {
	Reviews []Review `json:"reviews"`
}
