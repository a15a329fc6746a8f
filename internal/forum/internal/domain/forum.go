package domain

type User struct {
	ID       int64
	Nickname string
	Avatar   string
}

type Topic struct {
	Id int64
	// 发帖人
	Author  User
	Title   string
	Content string
	Ctime   int64
	Utime   int64
}

type Comment struct {
	ID int64
	// 评论的人
	User User
	// 评论的对象，论坛里就是帖子
	Biz   string
	BizID int64
	// 要回复的父评论 ID，0 表示直接评论帖子
	ParentID int64
	Content  string
	// 评论不允许修改，这个就是评论时间
	Utime int64
	// 只在查询始祖评论的时候带上部分子回复
	Replies []Comment
}
