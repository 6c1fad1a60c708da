package domain

// UserStatus summarises a LINE user's answer history.
type UserStatus struct {
	UserID           string
	HasResponse      bool
	LastResponseID   string
	LastResponseDate string
	ResponseCount    int
}

// LatestResponse は createdAt が最大のアンケート回答を返す。
// createdAt が同値の場合は ID が大きい方を採用し、解釈できない createdAt は最も古いものとして扱う。
func LatestResponse(responses []SurveyResponse) (SurveyResponse, bool) {
	if len(responses) == 0 {
		return SurveyResponse{}, false
	}
	latest := responses[0]
	for _, candidate := range responses[1:] {
		if newerThan(candidate, latest) {
			latest = candidate
		}
	}
	return latest, true
}

// ResolveUserStatus builds the status from every response tagged with userID.
func ResolveUserStatus(userID string, responses []SurveyResponse) UserStatus {
	status := UserStatus{UserID: userID}
	latest, ok := LatestResponse(responses)
	if !ok {
		return status
	}
	status.HasResponse = true
	status.LastResponseID = latest.ID
	status.LastResponseDate = latest.CreatedAt
	status.ResponseCount = len(responses)
	return status
}

func newerThan(a, b SurveyResponse) bool {
	ta, okA := ParseTimestamp(a.CreatedAt)
	tb, okB := ParseTimestamp(b.CreatedAt)
	if okA != okB {
		return okA
	}
	if okA && !ta.Equal(tb) {
		return ta.After(tb)
	}
	return a.ID > b.ID
}
