// Package analyzer produces a short Arabic study-load summary of one
// trainee schedule via the Gemini generateContent API. The call is
// best-effort: any failure (missing key, transport error, unparseable
// reply) degrades to a fixed fallback instead of surfacing an error.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"jadwal/internal/model"
)

// Analysis the summary returned to the presentation layer.
type Analysis struct {
	Summary    string   `json:"summary"`
	Tips       []string `json:"tips"`
	HardestDay string   `json:"hardestDay"`
}

// Analyzer resolves a schedule to a human-readable summary.
type Analyzer interface {
	Analyze(ctx context.Context, schedule *model.TraineeSchedule) *Analysis
}

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

// Gemini calls the generateContent REST endpoint.
type Gemini struct {
	APIKey   string
	Model    string
	Endpoint string
	Client   *http.Client
}

// NewGemini creates an analyzer for the given API key and model id.
func NewGemini(apiKey, model string) *Gemini {
	return &Gemini{
		APIKey:   apiKey,
		Model:    model,
		Endpoint: defaultEndpoint,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Fallback the fixed reply used whenever the AI call cannot be made or
// its answer cannot be parsed.
func Fallback() *Analysis {
	return &Analysis{
		Summary:    "لم نتمكن من تحليل الجدول حالياً (تأكد من مفتاح API).",
		Tips:       []string{"حاول تنظيم وقتك جيداً.", "راجع المرشد الأكاديمي عند الحاجة."},
		HardestDay: "غير محدد",
	}
}

// Analyze asks Gemini for a JSON report over the schedule. Never
// returns nil; failures come back as Fallback().
func (g *Gemini) Analyze(ctx context.Context, schedule *model.TraineeSchedule) *Analysis {
	if g.APIKey == "" {
		return Fallback()
	}

	scheduleJSON, err := json.Marshal(schedule)
	if err != nil {
		return Fallback()
	}

	prompt := fmt.Sprintf(`أنت مساعد أكاديمي ذكي للكلية التقنية بالطائف.
لديك جدول المتدرب التالي بصيغة JSON:
%s

المطلوب منك تحليل هذا الجدول وتقديم تقرير مختصر جداً باللغة العربية يحتوي على:
1. ملخص عام لضغط الجدول (سهل، متوسط، صعب).
2. نصائح للمتدرب (مثلاً: لديك يوم طويل يوم الخميس، انتبه للفطور).
3. تحديد أصعب يوم دراسي.

الرد يجب أن يكون بنسق JSON فقط كالتالي ولا تضيف اي تنسيق markdown:
{
  "summary": "...",
  "tips": ["...", "..."],
  "hardestDay": "..."
}`, scheduleJSON)

	body, err := json.Marshal(map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]string{
			"responseMimeType": "application/json",
		},
	})
	if err != nil {
		return Fallback()
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.Endpoint, g.Model, g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Fallback()
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		logrus.WithError(err).Warn("schedule analysis request failed")
		return Fallback()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.WithField("status", resp.StatusCode).Warn("schedule analysis rejected")
		return Fallback()
	}

	var reply struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return Fallback()
	}
	if len(reply.Candidates) == 0 || len(reply.Candidates[0].Content.Parts) == 0 {
		return Fallback()
	}

	text := strings.TrimSpace(reply.Candidates[0].Content.Parts[0].Text)
	var analysis Analysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		logrus.WithError(err).Warn("schedule analysis reply not valid JSON")
		return Fallback()
	}
	return &analysis
}
