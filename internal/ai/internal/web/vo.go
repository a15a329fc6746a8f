package web

type FeedbackReq struct {
	Question string `json:"question"`
}

type FeedbackResp struct {
	Answer string `json:"answer"`
}
