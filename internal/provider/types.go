package provider

// AccountsResponse is the aggregator's accounts payload.
type AccountsResponse struct {
	Score    int          `json:"score"`
	Accounts []RawAccount `json:"accounts"`
}

// RawAccount is one revolving account as reported by the aggregator.
type RawAccount struct {
	AccountID      string   `json:"account_id"`
	DisplayName    string   `json:"display_name"`
	Balance        float64  `json:"balance"`
	CreditLimit    float64  `json:"credit_limit"`
	MinimumPayment *float64 `json:"minimum_payment,omitempty"`
	NextDueDate    string   `json:"next_due_date,omitempty"`
	OpenedMonths   *int     `json:"opened_months,omitempty"`
}
