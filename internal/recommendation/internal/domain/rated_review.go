package domain

import "github.com/ecodeclub/jobreview/internal/review"

// Observation 语料记录里一个字段的观测值，三种状态：
// 字段缺失（Present 为 false）、显式为 null（Value 为 nil）、有值。
// 数据库里的 NULL 只会映射成 null，缺失只可能来自坏掉的语料记录。
type Observation[T any] struct {
	Present bool
	Value   *T
}

func ObservationOf[T any](v T) Observation[T] {
	return Observation[T]{Present: true, Value: &v}
}

// NullObservation 字段存在但是值为 null
func NullObservation[T any]() Observation[T] {
	return Observation[T]{Present: true}
}

// Observed 把 dao 层的可空字段直接包成观测值
func Observed[T any](v *T) Observation[T] {
	return Observation[T]{Present: true, Value: v}
}

func (o Observation[T]) Null() bool {
	return o.Present && o.Value == nil
}

// Val 有值时返回值本身
func (o Observation[T]) Val() (T, bool) {
	if !o.Present || o.Value == nil {
		var zero T
		return zero, false
	}
	return *o.Value, true
}

// RatedReview 推荐引擎的输入记录。
// JobID 是职位的自然键，同一个职位不同作者的点评共享这个键。
// JobID/Author/Rating/Recommendation 参与打分矩阵的计算，
// Source 是原始点评，选中之后原样带回给调用方。
type RatedReview struct {
	JobID          Observation[string]
	Author         Observation[int64]
	Rating         Observation[int64]
	Recommendation Observation[int64]
	Source         review.Review
}
