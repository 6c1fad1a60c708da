package surveyclient

// Submission is the body of POST /survey/submit.
type Submission struct {
	Age          string `json:"age"`
	Gender       string `json:"gender"`
	Frequency    string `json:"frequency"`
	Satisfaction string `json:"satisfaction"`
	Feedback     string `json:"feedback,omitempty"`
	UserID       string `json:"userId,omitempty"`
	DisplayName  string `json:"displayName,omitempty"`
}

// Response is a stored survey response.
type Response struct {
	ID           string  `json:"id"`
	UserID       *string `json:"userId"`
	DisplayName  *string `json:"displayName"`
	Age          string  `json:"age"`
	Gender       string  `json:"gender"`
	Frequency    string  `json:"frequency"`
	Satisfaction string  `json:"satisfaction"`
	Feedback     *string `json:"feedback"`
	Timestamp    string  `json:"timestamp"`
	CreatedAt    string  `json:"createdAt"`
}

// UserStatus summarises a user's history.
type UserStatus struct {
	UserID           string `json:"userId"`
	HasResponse      bool   `json:"hasResponse"`
	LastResponseID   string `json:"lastResponseId,omitempty"`
	LastResponseDate string `json:"lastResponseDate,omitempty"`
	ResponseCount    int    `json:"responseCount"`
}

// Statistics covers one results page.
type Statistics struct {
	TotalResponses           int            `json:"total_responses"`
	AgeDistribution          map[string]int `json:"age_distribution"`
	GenderDistribution       map[string]int `json:"gender_distribution"`
	FrequencyDistribution    map[string]int `json:"frequency_distribution"`
	SatisfactionDistribution map[string]int `json:"satisfaction_distribution"`
	AverageSatisfaction      float64        `json:"average_satisfaction"`
	ResponsesByDate          map[string]int `json:"responses_by_date"`
}

// Pagination echoes the effective paging.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// Results is the data of GET /survey/results.
type Results struct {
	Responses  []Response `json:"responses"`
	Statistics Statistics `json:"statistics"`
	Pagination Pagination `json:"pagination"`
}

// Health is the data of GET /health.
type Health struct {
	Status             string `json:"status"`
	Timestamp          string `json:"timestamp"`
	FirestoreAvailable bool   `json:"firestore_available"`
	Store              string `json:"store"`
}
