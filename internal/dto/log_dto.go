package dto

// ProductLogResponse is one row of the audit trail rendered in the product
// history modal.
type ProductLogResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
}
