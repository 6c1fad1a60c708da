package domain

// Response is a stored survey answer as seen by operators.
type Response struct {
	ID           string
	UserID       *string
	DisplayName  *string
	Age          string
	Gender       string
	Frequency    string
	Satisfaction string
	Feedback     *string
	Timestamp    string
	CreatedAt    string
}
