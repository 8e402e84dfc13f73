package feature

import (
	"fmt"
	"strings"

	"mind-screen-go/internal/model"
)

// 训练数据集的原始列名。独热展开出来的指示列以 "{列名}_{取值}" 命名。
const (
	colGender          = "Gender"
	colAge             = "Age"
	colStatus          = "Working Professional or Student"
	colProfession      = "Profession"
	colAcademic        = "Academic Pressure"
	colWorkPressure    = "Work Pressure"
	colCGPA            = "CGPA"
	colStudySat        = "Study Satisfaction"
	colJobSat          = "Job Satisfaction"
	colSleep           = "Sleep Duration"
	colDiet            = "Dietary Habits"
	colSuicidal        = "Have you ever had suicidal thoughts ?"
	colHours           = "Work/Study Hours"
	colFinancialStress = "Financial Stress"
	colFamilyHistory   = "Family History of Mental Illness"
)

// EncodedFields 列出走标签编码（而非独热展开）的三个列。
// 装配器要求为每个列都提供编码器。
var EncodedFields = []string{colGender, colSuicidal, colFamilyHistory}

var yesNoText = map[bool]string{true: "Yes", false: "No"}

const requiredFieldsMessage = "Please fill in all required fields before submitting."

// Assembler 把一份问卷答案装配成固定 schema 的特征行。
// schema 与 encoders 在进程启动时由工件加载器提供，此后只读。
type Assembler struct {
	schema   []string
	encoders map[string]*LabelEncoder
}

// NewAssembler 创建装配器，并校验三个标签编码列的编码器齐备。
func NewAssembler(schema []string, encoders map[string]*LabelEncoder) (*Assembler, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("特征 schema 为空")
	}
	for _, field := range EncodedFields {
		if encoders[field] == nil {
			return nil, fmt.Errorf("缺少列 %q 的标签编码器", field)
		}
	}
	return &Assembler{schema: schema, encoders: encoders}, nil
}

// Schema 返回装配器输出的列顺序。
func (a *Assembler) Schema() []string {
	return a.schema
}

// Assemble 校验答卷并生成与训练 schema 完全对齐的特征行。
// 输入问题返回 *ValidationError，词表外的类别取值返回 *EncodingError。
func (a *Assembler) Assemble(answers *model.SurveyAnswers) (FeatureVector, error) {
	if err := a.validate(answers); err != nil {
		return FeatureVector{}, err
	}

	isStudent := answers.Status == model.StatusStudent

	// 身份无关的量表强制归零，避免另一分支的取值泄漏给模型。
	var academic, studySat, workPressure, jobSat int
	var cgpa float64
	var err error
	if isStudent {
		if academic, err = parseOptionalScale(pressureScale, "Academic Pressure", answers.AcademicPressure); err != nil {
			return FeatureVector{}, err
		}
		if studySat, err = parseOptionalScale(satisfactionScale, "Study Satisfaction", answers.StudySatisfaction); err != nil {
			return FeatureVector{}, err
		}
		cgpa = *answers.CGPA
	} else {
		if workPressure, err = parseOptionalScale(pressureScale, "Work Pressure", answers.WorkPressure); err != nil {
			return FeatureVector{}, err
		}
		if jobSat, err = parseOptionalScale(satisfactionScale, "Job Satisfaction", answers.JobSatisfaction); err != nil {
			return FeatureVector{}, err
		}
	}

	financialStress, err := financialStressScale.parse("Financial Stress", answers.FinancialStress)
	if err != nil {
		return FeatureVector{}, err
	}

	profession := model.StatusStudent
	if !isStudent {
		profession = strings.TrimSpace(answers.Profession)
	}

	// 数值列与标签编码列
	row := map[string]float64{
		colAge:             float64(answers.Age),
		colAcademic:        float64(academic),
		colWorkPressure:    float64(workPressure),
		colCGPA:            cgpa,
		colStudySat:        float64(studySat),
		colJobSat:          float64(jobSat),
		colHours:           float64(answers.WorkStudyHours),
		colFinancialStress: float64(financialStress),
	}

	encodedValues := map[string]string{
		colGender:        answers.Gender,
		colSuicidal:      yesNoText[*answers.SuicidalThoughts],
		colFamilyHistory: yesNoText[*answers.FamilyHistory],
	}
	for _, field := range EncodedFields {
		code, err := a.encoders[field].Transform(field, encodedValues[field])
		if err != nil {
			return FeatureVector{}, err
		}
		row[field] = float64(code)
	}

	// 其余类别列独热展开成指示列
	row[colStatus+"_"+answers.Status] = 1
	row[colProfession+"_"+profession] = 1
	row[colSleep+"_"+answers.SleepDuration] = 1
	row[colDiet+"_"+answers.DietaryHabits] = 1

	// 按 schema 顺序对齐：缺失列补 0，多余列丢弃
	values := make([]float64, len(a.schema))
	for i, col := range a.schema {
		values[i] = row[col]
	}
	return FeatureVector{Columns: a.schema, Values: values}, nil
}

// validate 在任何编码发生之前检查必填项与身份相关的约束。
func (a *Assembler) validate(answers *model.SurveyAnswers) error {
	switch {
	case strings.TrimSpace(answers.Gender) == "":
		return newValidationError("Gender", requiredFieldsMessage)
	case strings.TrimSpace(answers.Status) == "":
		return newValidationError("Status", requiredFieldsMessage)
	case strings.TrimSpace(answers.SleepDuration) == "":
		return newValidationError("Sleep Duration", requiredFieldsMessage)
	case strings.TrimSpace(answers.DietaryHabits) == "":
		return newValidationError("Dietary Habits", requiredFieldsMessage)
	case answers.SuicidalThoughts == nil:
		return newValidationError("Suicidal Thoughts", requiredFieldsMessage)
	case answers.FamilyHistory == nil:
		return newValidationError("Family History", requiredFieldsMessage)
	case answers.FinancialStress.IsEmpty():
		return newValidationError("Financial Stress", requiredFieldsMessage)
	}

	switch answers.Status {
	case model.StatusStudent:
		if answers.CGPA == nil || *answers.CGPA < 0 {
			return newValidationError("CGPA", "Please provide a valid CGPA for Student status.")
		}
	case model.StatusWorking:
		if len(strings.TrimSpace(answers.Profession)) < 2 {
			return newValidationError("Profession", "Please specify your Profession.")
		}
	default:
		return newValidationError("Status",
			fmt.Sprintf("Unrecognized status %q. Please choose one of the listed options.", answers.Status))
	}

	return nil
}

// parseOptionalScale 解析身份相关的可选量表项：未作答按 0 处理，
// 作答了但无法识别的文案仍然报错。
func parseOptionalScale(scale ordinalScale, field string, raw model.Ordinal) (int, error) {
	if raw.IsEmpty() {
		return 0, nil
	}
	return scale.parse(field, raw)
}
