package analyzer

import (
	"fmt"
	"strconv"

	hderrors "github.com/hashdist/hashdist/internal/errors"
	"github.com/hashdist/hashdist/pkg/hashfn"
	"github.com/hashdist/hashdist/pkg/hdlog"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Range 一段连续的桶区间 [Start, End)
type Range struct {
	Start int
	End   int
	Label string
	Count int
}

type Result struct {
	Name         string      // 哈希函数名
	Words        int         // 单词数量
	Buckets      int         // 桶数量
	Step         int         // 区间宽度
	Indices      []int       // 每个单词落入的桶，与单词顺序一致
	BucketCounts map[int]int // 每个桶内的单词数量
	Collisions   int         // 落在多词桶里的单词数量
	Histogram    []Range
}

var log = hdlog.NewHDLog("analyzer")

// Analyze 计算每个单词所在的桶，统计冲突数，并按 step 把桶下标分段计数。
// 冲突按单词计：一个桶里有 3 个单词，冲突数加 3。
func Analyze(words []string, name string, fn hashfn.Func, buckets, step int) (*Result, error) {
	if buckets <= 0 {
		return nil, errors.Wrapf(hderrors.ErrInvalidBuckets, "buckets=%d", buckets)
	}
	if step <= 0 {
		return nil, errors.Wrapf(hderrors.ErrInvalidStep, "step=%d", step)
	}

	r := &Result{
		Name:         name,
		Words:        len(words),
		Buckets:      buckets,
		Step:         step,
		Indices:      make([]int, len(words)),
		BucketCounts: make(map[int]int),
	}
	for i, word := range words {
		idx := Bucket(fn(word), buckets)
		r.Indices[i] = idx
		r.BucketCounts[idx]++
	}
	for _, idx := range r.Indices {
		if r.BucketCounts[idx] > 1 {
			r.Collisions++
		}
	}
	r.Histogram = histogram(r.Indices, buckets, step)

	log.Debug("analyze done",
		zap.String("hash", name),
		zap.Int("words", r.Words),
		zap.Int("buckets", buckets),
		zap.Int("step", step),
		zap.Int("collisions", r.Collisions),
		zap.Int("usedBuckets", len(r.BucketCounts)))
	return r, nil
}

// Bucket 取 Euclidean 模，负数哈希值同样落在 [0, buckets)
func Bucket(hash int64, buckets int) int {
	m := hash % int64(buckets)
	if m < 0 {
		m += int64(buckets)
	}
	return int(m)
}

// 最后一段的上界按 step 对齐，可能大于 buckets，例如 buckets=26 step=5 时为 "25-30"
func histogram(indices []int, buckets, step int) []Range {
	n := (buckets + step - 1) / step
	ranges := make([]Range, n)
	for i := range ranges {
		start := i * step
		end := start + step
		ranges[i] = Range{
			Start: start,
			End:   end,
			Label: strconv.Itoa(start) + "-" + strconv.Itoa(end),
		}
	}
	for _, idx := range indices {
		ranges[idx/step].Count++
	}
	return ranges
}

// Total 所有区间计数之和，等于单词数量
func (r *Result) Total() int {
	total := 0
	for _, rg := range r.Histogram {
		total += rg.Count
	}
	return total
}

// UsedBuckets 至少有一个单词的桶数量
func (r *Result) UsedBuckets() int {
	return len(r.BucketCounts)
}

// MaxBucketLoad 单个桶内最多的单词数量
func (r *Result) MaxBucketLoad() int {
	max := 0
	for _, c := range r.BucketCounts {
		if c > max {
			max = c
		}
	}
	return max
}

func (r *Result) Title() string {
	return fmt.Sprintf("%d words against %s hash function | buckets=%d -- step=%d", r.Words, r.Name, r.Buckets, r.Step)
}
