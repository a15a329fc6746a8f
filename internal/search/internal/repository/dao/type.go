package dao

import "context"

type ReviewDAO interface {
	SearchReview(ctx context.Context, offset, limit int, keywords string) ([]Review, error)
}

// AnyDAO 同步链路往任意索引灌文档
type AnyDAO interface {
	Input(ctx context.Context, index, docID, data string) error
}
