package domain

type User struct {
	Id int64
	// SN 对外暴露的唯一标识，外部系统不要依赖自增 Id
	SN       string
	Username string
	// Password 是加密后的密码，只在登录校验的链路上有值
	Password string
	Nickname string
	Avatar   string
	Ctime    int64
	Utime    int64
}
