package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/ecodeclub/jobreview/internal/recommendation/internal/domain"
	"github.com/ecodeclub/jobreview/internal/review"
	"github.com/pkg/errors"
)

var (
	ErrInvalidTopN  = errors.New("top_n 不允许为负数")
	ErrMissingField = errors.New("点评记录缺少必要字段")
)

// Recommend 基于用户的协同过滤。把语料透视成 作者 x 职位 的稀疏打分矩阵，
// 用余弦相似度找目标用户的邻居，再用邻居的打分加权平均预测目标用户
// 没打过分的职位，按预测分从高到低取前 topN 条。
// 纯函数，没有任何副作用，可以放心并发调用。
func Recommend(corpus []domain.RatedReview, targetUID int64, topN int) ([]review.Review, error) {
	if topN < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTopN, topN)
	}
	var (
		// 作者 -> 职位 -> 归一化打分。显式稀疏表示，没出现过的格子就是没打分，
		// 但按原有语义 0 分和没打分都算候选，不做区分。
		matrix     = make(map[int64]map[string]float64)
		jobSet     = make(map[string]struct{})
		firstByJob = make(map[string]review.Review)
	)
	for _, r := range corpus {
		if err := checkFields(r); err != nil {
			return nil, err
		}
		jobID, _ := r.JobID.Val()
		author, _ := r.Author.Val()
		if _, seen := firstByJob[jobID]; !seen {
			firstByJob[jobID] = r.Source
		}
		rating, ok := r.Rating.Val()
		rec, ok2 := r.Recommendation.Val()
		if !ok || !ok2 {
			// 打分或推荐度是 null，不参与矩阵
			continue
		}
		// 5 分制和 10 分制各占一半权重，归一化到 [0,1]
		score := 0.5*float64(rating)/5 + 0.5*float64(rec)/10
		row := matrix[author]
		if row == nil {
			row = make(map[string]float64)
			matrix[author] = row
		}
		row[jobID] = score
		jobSet[jobID] = struct{}{}
	}

	targetRow, ok := matrix[targetUID]
	if !ok {
		// 新用户没有打分历史，给空结果而不是报错
		return nil, nil
	}

	type neighbor struct {
		uid int64
		sim float64
	}
	neighbors := make([]neighbor, 0, len(matrix)-1)
	for author, row := range matrix {
		if author == targetUID {
			continue
		}
		neighbors = append(neighbors, neighbor{uid: author, sim: cosine(targetRow, row)})
	}
	// 相似度相同按 uid 定序，保证结果可复现
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].sim != neighbors[j].sim {
			return neighbors[i].sim > neighbors[j].sim
		}
		return neighbors[i].uid < neighbors[j].uid
	})

	type scoredJob struct {
		jobID     string
		predicted float64
	}
	candidates := make([]scoredJob, 0, len(jobSet))
	for jobID := range jobSet {
		if targetRow[jobID] != 0 {
			// 打过分的不再推荐
			continue
		}
		var weighted, simSum float64
		for _, n := range neighbors {
			s := matrix[n.uid][jobID]
			if s <= 0 {
				continue
			}
			weighted += n.sim * s
			simSum += n.sim
		}
		if simSum == 0 {
			// 没有邻居给这个职位打过分，预测不出来，直接跳过
			continue
		}
		candidates = append(candidates, scoredJob{jobID: jobID, predicted: weighted / simSum})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].predicted != candidates[j].predicted {
			return candidates[i].predicted > candidates[j].predicted
		}
		return candidates[i].jobID < candidates[j].jobID
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	res := make([]review.Review, 0, len(candidates))
	for _, c := range candidates {
		res = append(res, firstByJob[c.jobID])
	}
	return res, nil
}

func checkFields(r domain.RatedReview) error {
	switch {
	case !r.JobID.Present || r.JobID.Null():
		return fmt.Errorf("%w: id", ErrMissingField)
	case !r.Author.Present || r.Author.Null():
		return fmt.Errorf("%w: author", ErrMissingField)
	case !r.Rating.Present:
		return fmt.Errorf("%w: rating", ErrMissingField)
	case !r.Recommendation.Present:
		return fmt.Errorf("%w: recommendation", ErrMissingField)
	}
	return nil
}

// cosine 两个稀疏行向量的余弦相似度，任何一边是零向量就是 0
func cosine(a, b map[string]float64) float64 {
	var dot, na, nb float64
	for k, av := range a {
		na += av * av
		if bv, ok := b[k]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		nb += bv * bv
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
