package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// Topic 帖子。ID 用雪花算法生成，不用自增主键
type Topic struct {
	Id      int64  `gorm:"primaryKey"`
	Uid     int64  `gorm:"index"`
	Title   string `gorm:"type:varchar(512)"`
	Content string `gorm:"type:text"`
	Ctime   int64
	Utime   int64 `gorm:"index"`
}

func (Topic) TableName() string {
	return "topics"
}

type TopicDAO interface {
	Create(ctx context.Context, t Topic) (int64, error)
	FindById(ctx context.Context, id int64) (Topic, error)
	List(ctx context.Context, offset, limit int) ([]Topic, error)
	Count(ctx context.Context) (int64, error)
}

type GORMTopicDAO struct {
	db *egorm.Component
}

func NewGORMTopicDAO(db *egorm.Component) TopicDAO {
	return &GORMTopicDAO{db: db}
}

func (d *GORMTopicDAO) Create(ctx context.Context, t Topic) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := d.db.WithContext(ctx).Create(&t).Error
	return t.Id, err
}

func (d *GORMTopicDAO) FindById(ctx context.Context, id int64) (Topic, error) {
	var t Topic
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	return t, err
}

func (d *GORMTopicDAO) List(ctx context.Context, offset, limit int) ([]Topic, error) {
	var topics []Topic
	err := d.db.WithContext(ctx).
		Order("ctime desc").
		Offset(offset).
		Limit(limit).
		Find(&topics).Error
	return topics, err
}

func (d *GORMTopicDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Topic{}).Select("COUNT(id)").Count(&res).Error
	return res, err
}
