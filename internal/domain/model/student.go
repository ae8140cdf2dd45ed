package model

const (
	GradeMin = 0
	GradeMax = 100

	// Students at or above this grade appear in GET /students/top.
	TopGradeThreshold = 80
)

type Student struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Grade  int    `json:"grade"`
	Course string `json:"course"`
}
