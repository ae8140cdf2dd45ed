package model

type Expense struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	OwnerID  string  `json:"-"`
}

// ExpenseSummary is the aggregate served by GET /summary.
type ExpenseSummary struct {
	TotalSpent float64            `json:"total_spent"`
	ByCategory map[string]float64 `json:"by_category"`
}
