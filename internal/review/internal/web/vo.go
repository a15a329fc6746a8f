package web

type SaveReq struct {
	Review Review `json:"review"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	// 筛选条件，空字符串表示不筛选
	Department string `json:"department"`
	Company    string `json:"company"`
	Location   string `json:"location"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type DetailReq struct {
	Rid int64 `json:"rid"`
}

type DeleteReq struct {
	Rid int64 `json:"rid"`
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

	Interactive Interactive `json:"interactive"`
}

type Interactive struct {
	ViewCnt    int  `json:"viewCnt"`
	LikeCnt    int  `json:"likeCnt"`
	CollectCnt int  `json:"collectCnt"`
	Liked      bool `json:"liked"`
	Collected  bool `json:"collected"`
}

type ReviewList struct {
	Total   int64    `json:"total"`
	Reviews []Review `json:"reviews"`
}

type FiltersResp struct {
	Departments []string `json:"departments"`
	Companies   []string `json:"companies"`
	Locations   []string `json:"locations"`
}
