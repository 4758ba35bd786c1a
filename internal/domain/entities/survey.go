package entities

import (
	"time"
)

// Dimension é uma das cinco categorias fixas de prontidão
type Dimension string

const (
	DimensionSponsorship Dimension = "Sponsorship & Leadership"
	DimensionValueCase   Dimension = "Value Case & Scope"
	DimensionCapacity    Dimension = "Capacity & Roles"
	DimensionProcess     Dimension = "Process & Governance"
	DimensionDataTooling Dimension = "Data & Tooling Readiness"
)

// TrafficLight classifica uma pontuação de 0 a 100
type TrafficLight string

const (
	TrafficLightRed    TrafficLight = "red"
	TrafficLightOrange TrafficLight = "orange"
	TrafficLightGreen  TrafficLight = "green"
)

// Question representa uma pergunta do questionário
type Question struct {
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	Dimension Dimension `json:"dimension" yaml:"dimension"`
	IsGating  bool      `json:"isGating" yaml:"isGating"`
}

// Answers mapeia o ID da pergunta para a nota de 1 a 5
type Answers map[string]int

// ResponseRecord representa uma instância da pesquisa
type ResponseRecord struct {
	ID              string    `json:"id" yaml:"id" gorm:"primaryKey;column:id;type:varchar(36)"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at" gorm:"column:created_at;not null"`
	CompanyName     string    `json:"company_name" yaml:"company_name" gorm:"column:company_name;not null"`
	ProjectName     string    `json:"project_name" yaml:"project_name" gorm:"column:project_name;not null"`
	GoLiveDate      *string   `json:"go_live_date" yaml:"go_live_date" gorm:"column:go_live_date"`
	RespondentRole  *string   `json:"respondent_role" yaml:"respondent_role" gorm:"column:respondent_role"`
	RespondentEmail *string   `json:"respondent_email" yaml:"respondent_email" gorm:"column:respondent_email"`

	// Conjunto de respostas serializado; o repositório não interpreta o conteúdo
	AnswersJSON *string `json:"answers_json" yaml:"answers_json" gorm:"column:answers_json;type:text"`
}

// TableName define o nome da tabela no banco
func (ResponseRecord) TableName() string {
	return "responses"
}

// DimensionScore é o resultado de uma dimensão
type DimensionScore struct {
	Dimension    Dimension    `json:"dimension" yaml:"dimension"`
	Score        int          `json:"score" yaml:"score"`
	Avg          float64      `json:"avg" yaml:"avg"`
	TrafficLight TrafficLight `json:"trafficLight" yaml:"trafficLight"`
}

// SurveyResults é derivado das respostas a cada leitura, nunca persistido
type SurveyResults struct {
	Overall             int              `json:"overall" yaml:"overall"`
	OverallTrafficLight TrafficLight     `json:"overallTrafficLight" yaml:"overallTrafficLight"`
	Dimensions          []DimensionScore `json:"dimensions" yaml:"dimensions"`
	Risks               []string         `json:"risks" yaml:"risks"`
	Recommendations     []string         `json:"recommendations" yaml:"recommendations"`
	GatingWarnings      []string         `json:"gatingWarnings" yaml:"gatingWarnings"`
}
