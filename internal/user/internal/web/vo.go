package web

type SignUpReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	// ConfirmPassword 前端也会校验，这里再兜底校验一次
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type EditReq struct {
	Avatar   string `json:"avatar"`
	Nickname string `json:"nickname"`
}

type Profile struct {
	SN       string `json:"sn,omitempty"`
	Username string `json:"username,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}
