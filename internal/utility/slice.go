package utility

import "sort"

// Counted là một cặp (key, count) dùng cho bảng top-N.
type Counted struct {
	Key   string
	Count int64
}

// TopN sắp xếp giảm dần theo count (giữ thứ tự gốc khi bằng nhau) và cắt còn n phần tử.
// n <= 0 thì giữ tất cả.
func TopN(items []Counted, n int) []Counted {
	out := make([]Counted, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
