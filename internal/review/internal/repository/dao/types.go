package dao

import (
	"database/sql"

	"github.com/ecodeclub/ekit/sqlx"
)

type Review struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
	SN string `gorm:"type:varchar(64);uniqueIndex"`
	// 作者
	Uid int64 `gorm:"uniqueIndex:uid_jkey"`
	// Jkey 职位自然键，title + company + locations 拼出来的。
	// 同一个作者对同一个职位只保留一条点评
	Jkey      string                    `gorm:"type:varchar(512);uniqueIndex:uid_jkey"`
	Title     string                    `gorm:"type:varchar(512)"`
	Company   string                    `gorm:"type:varchar(256);index"`
	Locations sqlx.JsonColumn[[]string] `gorm:"type:varchar(512)"`
	// 部门
	Department string `gorm:"type:varchar(256);index"`
	// 职位描述
	Description string
	HourlyPay   float64
	Benefits    string
	// 点评正文
	Content string
	// 两个打分都允许为 NULL，NULL 表示作者没打分
	Rating         sql.NullInt64
	Recommendation sql.NullInt64
	Ctime          int64
	Utime          int64 `gorm:"index"`
}

func (Review) TableName() string {
	return "reviews"
}
