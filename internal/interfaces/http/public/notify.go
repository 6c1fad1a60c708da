package public

import (
	"context"
	"fmt"
	"strings"

	"github.com/sngm3741/liff-survey/api/internal/public/domain"
)

var (
	genderLabels = map[string]string{
		"male":   "男性",
		"female": "女性",
		"other":  "その他",
	}
	frequencyLabels = map[string]string{
		"daily":   "毎日",
		"weekly":  "週に数回",
		"monthly": "月に数回",
		"rarely":  "ほとんど利用しない",
	}
)

// dispatchReceipt はリクエストのキャンセルに巻き込まれないよう切り離したコンテキストで送る。
func (h *Handler) dispatchReceipt(ctx context.Context, response domain.SurveyResponse) {
	if h.notifier == nil {
		return
	}
	userID := strings.TrimSpace(domain.StringValue(response.UserID))
	if userID == "" {
		return
	}
	message := buildReceiptMessage(response)
	go h.notifier.NotifyReceipt(context.WithoutCancel(ctx), userID, message)
}

func buildReceiptMessage(response domain.SurveyResponse) string {
	sections := [][]string{}

	addSection := func(title, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		sections = append(sections, []string{
			fmt.Sprintf("■%s", title),
			value,
		})
	}

	addSection("年齢", response.Age)
	addSection("性別", labelOf(genderLabels, response.Gender))
	addSection("利用頻度", labelOf(frequencyLabels, response.Frequency))
	if response.Satisfaction != "" {
		addSection("満足度", fmt.Sprintf("%s / 5", response.Satisfaction))
	}
	addSection("ご意見", domain.StringValue(response.Feedback))

	var builder strings.Builder
	if name := strings.TrimSpace(domain.StringValue(response.DisplayName)); name != "" {
		builder.WriteString(fmt.Sprintf("%s さん\n", name))
	}
	builder.WriteString("アンケートのご協力ありがとうございます！\n")
	for _, section := range sections {
		builder.WriteString(section[0])
		builder.WriteString("\n")
		builder.WriteString(section[1])
		builder.WriteString("\n")
	}
	return builder.String()
}

func labelOf(labels map[string]string, value string) string {
	if label, ok := labels[value]; ok {
		return label
	}
	return value
}
