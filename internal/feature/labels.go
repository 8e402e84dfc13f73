package feature

import (
	"fmt"
	"strconv"
	"strings"

	"mind-screen-go/internal/model"
)

// 表单下拉选项的完整文案，与训练侧表单保持一字不差。
var (
	PressureLabels = []string{
		"0 = No pressure", "1 = Little", "2 = Average",
		"3 = High", "4 = Very high", "5 = Very very high",
	}

	SatisfactionLabels = []string{
		"0 = Very Dissatisfied", "1 = Dissatisfied", "2 = Neutral",
		"3 = Satisfied", "4 = Very Satisfied", "5 = Extremely Satisfied",
	}

	FinancialStressLabels = []string{
		"1 = No Stress", "2 = Low", "3 = Moderate", "4 = High", "5 = Extreme",
	}

	SleepDurationOptions = []string{
		"Less than 5 hours", "5-6 hours", "7-8 hours", "More than 8 hours",
	}

	DietaryHabitsOptions = []string{"Healthy", "Moderate", "Unhealthy"}

	GenderOptions = []string{"Male", "Female"}

	StatusOptions = []string{model.StatusStudent, model.StatusWorking}

	YesNoOptions = []string{"No", "Yes"}
)

// ordinalScale 把一组 "N = 文案" 形式的选项解析为文案到数值的词典。
type ordinalScale struct {
	values map[string]int
	min    int
	max    int
}

func newOrdinalScale(labels []string) ordinalScale {
	values := make(map[string]int, len(labels))
	min, max := 0, 0
	for i, label := range labels {
		n, err := strconv.Atoi(strings.TrimSpace(strings.SplitN(label, "=", 2)[0]))
		if err != nil {
			panic(fmt.Errorf("非法量表选项 %q: %w", label, err))
		}
		values[label] = n
		if i == 0 {
			min, max = n, n
			continue
		}
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	return ordinalScale{values: values, min: min, max: max}
}

var (
	pressureScale        = newOrdinalScale(PressureLabels)
	satisfactionScale    = newOrdinalScale(SatisfactionLabels)
	financialStressScale = newOrdinalScale(FinancialStressLabels)
)

// parse 把量表答案解析为数值。
// 既接受下拉框的完整文案，也接受裸数字；无法识别或越界的取值一律报
// ValidationError，而不是静默当作 0 处理。
func (s ordinalScale) parse(field string, raw model.Ordinal) (int, error) {
	text := strings.TrimSpace(string(raw))
	if n, ok := s.values[text]; ok {
		return n, nil
	}

	n, err := strconv.Atoi(text)
	if err != nil || n < s.min || n > s.max {
		return 0, newValidationError(field,
			fmt.Sprintf("Unrecognized %s level %q. Please choose one of the listed options.", field, text))
	}
	return n, nil
}
