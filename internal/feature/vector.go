package feature

// FeatureVector 是按训练 schema 顺序排列的命名数值列。
// Columns 与 Values 等长且一一对应。
type FeatureVector struct {
	Columns []string
	Values  []float64
}

// Get 按列名查找数值，列不存在时第二个返回值为 false。
func (v FeatureVector) Get(col string) (float64, bool) {
	for i, c := range v.Columns {
		if c == col {
			return v.Values[i], true
		}
	}
	return 0, false
}

// Len 返回向量的列数。
func (v FeatureVector) Len() int {
	return len(v.Columns)
}
