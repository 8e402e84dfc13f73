// Package model 定义了问卷请求、风险评估结果等核心结构体。
package model

import (
	"encoding/json"
	"strings"
)

// 职业身份取值，与训练数据集保持一致。
const (
	StatusStudent = "Student"
	StatusWorking = "Working Professional"
)

// Ordinal 表示一个量表答案。
// 前端既可能提交纯数字（JSON number），也可能提交下拉框的完整文案（如 "3 = High"），
// 两种形式统一保存为字符串，由 feature 包按量表词典解析。
type Ordinal string

// UnmarshalJSON 实现了 json.Unmarshaler 接口，同时接受 JSON 字符串和数字。
func (o *Ordinal) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "\"") {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = Ordinal(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*o = Ordinal(n.String())
	return nil
}

// IsEmpty 判断该量表项是否未作答。
func (o Ordinal) IsEmpty() bool {
	return strings.TrimSpace(string(o)) == ""
}

// SurveyAnswers 是一次风险筛查请求的完整答卷。
// Name 和 Phone 仅为表单附带信息，绝不进入特征行，也不写入日志。
type SurveyAnswers struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`

	Gender string `json:"gender" binding:"required"`
	Age    int    `json:"age" binding:"required,gte=18,lte=65"`
	Status string `json:"status" binding:"required,oneof=Student 'Working Professional'"`

	// Profession 仅在 Working Professional 身份下必填
	Profession string `json:"profession"`

	// 学生侧量表，Working Professional 身份下会被强制归零
	AcademicPressure  Ordinal  `json:"academicPressure"`
	CGPA              *float64 `json:"cgpa"`
	StudySatisfaction Ordinal  `json:"studySatisfaction"`

	// 职场侧量表，Student 身份下会被强制归零
	WorkPressure    Ordinal `json:"workPressure"`
	JobSatisfaction Ordinal `json:"jobSatisfaction"`

	SleepDuration    string  `json:"sleepDuration" binding:"required"`
	DietaryHabits    string  `json:"dietaryHabits" binding:"required"`
	SuicidalThoughts *bool   `json:"suicidalThoughts" binding:"required"`
	WorkStudyHours   int     `json:"workStudyHours" binding:"gte=0,lte=15"`
	FinancialStress  Ordinal `json:"financialStress" binding:"required"`
	FamilyHistory    *bool   `json:"familyHistory" binding:"required"`
}
