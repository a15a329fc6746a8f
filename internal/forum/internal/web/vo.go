package web

type SaveTopicReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type TopicDetailReq struct {
	Tid int64 `json:"tid"`
}

type Topic struct {
	Id          int64       `json:"id,string"`
	Author      User        `json:"author"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	Utime       int64       `json:"utime"`
	Interactive Interactive `json:"interactive"`
}

type User struct {
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

type Interactive struct {
	ViewCnt    int  `json:"viewCnt"`
	LikeCnt    int  `json:"likeCnt"`
	CollectCnt int  `json:"collectCnt"`
	Liked      bool `json:"liked"`
	Collected  bool `json:"collected"`
}

type TopicList struct {
	Total  int64   `json:"total"`
	Topics []Topic `json:"topics"`
}

type SaveCommentReq struct {
	// 帖子 ID
	Tid int64 `json:"tid,string"`
	// 回复的评论 ID，0 表示直接评论帖子
	Pid     int64  `json:"pid,string"`
	Content string `json:"content"`
}

type ListCommentsReq struct {
	Tid int64 `json:"tid,string"`
	// 上一页最小的评论 ID，0 表示第一页
	MinID int64 `json:"minId,string"`
	Limit int   `json:"limit"`
}

type RepliesReq struct {
	// 根评论 ID
	Cid int64 `json:"cid,string"`
	// 上一页最大的回复 ID，0 表示第一页
	MaxID int64 `json:"maxId,string"`
	Limit int   `json:"limit"`
}

type DeleteCommentReq struct {
	Cid int64 `json:"cid,string"`
}

type Comment struct {
	Id       int64     `json:"id,string"`
	User     User      `json:"user"`
	ParentID int64     `json:"parentId,string"`
	Content  string    `json:"content"`
	Utime    int64     `json:"utime"`
	Replies  []Comment `json:"replies,omitempty"`
}

type CommentList struct {
	Total    int64     `json:"total"`
	Comments []Comment `json:"comments"`
}
