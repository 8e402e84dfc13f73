// Package feature 负责把问卷答案装配成训练 schema 约定的特征行。
package feature

import "fmt"

// ValidationError 表示用户可自行纠正的输入问题，错误文案会原样返回给调用方。
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// EncodingError 表示某个类别取值不在标签编码器的训练词表内。
// 具体取值只进服务端日志，对外报告为通用处理失败。
type EncodingError struct {
	Field string
	Value string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("value %q of field %q is outside the encoder vocabulary", e.Value, e.Field)
}
