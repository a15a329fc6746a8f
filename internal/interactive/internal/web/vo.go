package web

type LikeReq struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"bizId"`
}

type CollectReq struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"bizId"`
}

type GetCntReq struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"bizId"`
}

type GetCntResp struct {
	CollectCnt int `json:"collectCnt"`
	LikeCnt    int `json:"likeCnt"`
	ViewCnt    int `json:"viewCnt"`
	// 是否收藏过
	Collected bool `json:"collected"`
	// 是否点赞过
	Liked bool `json:"liked"`
}

type BatchGetCntReq struct {
	Biz    string  `json:"biz"`
	BizIds []int64 `json:"bizIds"`
}

type Interactive struct {
	ID         int64 `json:"id"`
	CollectCnt int   `json:"collectCnt"`
	LikeCnt    int   `json:"likeCnt"`
	ViewCnt    int   `json:"viewCnt"`
	Liked      bool  `json:"liked"`
	Collected  bool  `json:"collected"`
}

type BatchGetCntResp struct {
	InteractiveMap map[int64]Interactive `json:"interactiveMap"`
}
