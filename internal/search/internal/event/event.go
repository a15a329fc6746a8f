package event

// SyncTopic 点评模块保存成功之后往这里发全量数据
const SyncTopic = "review_sync_events"

type SyncEvent struct {
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`
	// Data 完整的文档 JSON，直接灌进索引
	Data string `json:"data"`
}
