package feature

// LabelEncoder 复刻训练期的标签编码器：类别编码等于其在 classes 中的下标。
// classes 的顺序由训练侧导出的工件决定，加载后不再变更。
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

// NewLabelEncoder 根据有序的类别列表创建一个 LabelEncoder。
func NewLabelEncoder(classes []string) *LabelEncoder {
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	return &LabelEncoder{classes: classes, index: index}
}

// Transform 把类别值映射为整数编码，词表外的取值返回 EncodingError。
func (e *LabelEncoder) Transform(field, value string) (int, error) {
	code, ok := e.index[value]
	if !ok {
		return 0, &EncodingError{Field: field, Value: value}
	}
	return code, nil
}

// Classes 返回编码器已知的类别列表（训练顺序）。
func (e *LabelEncoder) Classes() []string {
	return e.classes
}
