// Package summarizer gọi chat-completion API để rút gọn các summary tích cực/tiêu cực
// thành danh sách Pros/Cons.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sentiment_dashboard/config"
	"sentiment_dashboard/core/common"
	"sentiment_dashboard/core/logger"
	"sentiment_dashboard/internal/metrics"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// Item là một dòng Pros hoặc Cons. Count luôn là 1, dashboard dùng làm trọng số.
type Item struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// ProsCons là kết quả đã parse từ reply của model.
type ProsCons struct {
	Pros []Item `json:"pros"`
	Cons []Item `json:"cons"`
}

// Settings cấu hình Client.
type Settings struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// SettingsFromConfig đọc Settings từ cấu hình ứng dụng.
func SettingsFromConfig(cfg *config.Configuration) Settings {
	return Settings{
		APIKey:      cfg.OpenAIAPIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		Model:       cfg.OpenAIModel,
		Temperature: cfg.OpenAITemperature,
		MaxTokens:   cfg.OpenAIMaxTokens,
		Timeout:     cfg.OpenAITimeout,
	}
}

// Client tóm tắt pros/cons qua OpenAI-compatible API. Safe for concurrent use.
type Client struct {
	api      *openai.Client
	settings Settings
	breaker  *gobreaker.CircuitBreaker
}

// New tạo Client. Khi API key rỗng, Summarize luôn trả ErrSummarizerDisabled
// và server vẫn khởi động được.
func New(s Settings) *Client {
	if s.Model == "" {
		s.Model = openai.GPT4o
	}
	if s.MaxTokens <= 0 {
		s.MaxTokens = 200
	}
	if s.Timeout <= 0 {
		s.Timeout = 30 * time.Second
	}

	c := &Client{settings: s}
	if s.APIKey != "" {
		apiCfg := openai.DefaultConfig(s.APIKey)
		if s.BaseURL != "" {
			apiCfg.BaseURL = s.BaseURL
		}
		c.api = openai.NewClientWithConfig(apiCfg)
	}

	log := logger.WithModule("summarizer")
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "summarizer",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state change")
		},
	})
	return c
}

// Enabled cho biết client có API key hay không.
func (c *Client) Enabled() bool {
	return c != nil && c.api != nil
}

// Summarize gửi prompt và parse reply. Không retry, lỗi gọi API trả về UPS_001.
func (c *Client) Summarize(ctx context.Context, pros, cons []string) (*ProsCons, error) {
	if !c.Enabled() {
		metrics.SummarizerCalls.WithLabelValues("disabled").Inc()
		return nil, common.ErrSummarizerDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, c.settings.Timeout)
	defer cancel()

	reply, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.settings.Model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(pros, cons)},
			},
			Temperature: c.settings.Temperature,
			MaxTokens:   c.settings.MaxTokens,
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 {
			return nil, errors.New("empty completion")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		outcome := "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "open"
		}
		metrics.SummarizerCalls.WithLabelValues(outcome).Inc()
		logger.WithModule("summarizer").WithError(err).Error("Summarization failed")
		return nil, common.WithDetails(common.ErrSummarizerFailure, fmt.Sprintf("%v", err))
	}

	metrics.SummarizerCalls.WithLabelValues("ok").Inc()
	return ParseReply(reply.(string)), nil
}

// BuildPrompt ghép các summary thành prompt "Pros:/Cons:".
func BuildPrompt(pros, cons []string) string {
	return fmt.Sprintf(
		"Here are the top positive points:\n%s\n\n"+
			"And here are the top negative points:\n%s\n\n"+
			"Please summarize them in the format:\n\n"+
			"Pros:\n- <pro1>\n- <pro2>\n\nCons:\n- <con1>\n- <con2>\n"+
			"No extra text, just a clear list of pros and cons with dashes.",
		joinNonEmpty(pros), joinNonEmpty(cons),
	)
}

func joinNonEmpty(items []string) string {
	kept := make([]string, 0, len(items))
	for _, s := range items {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " ; ")
}

// ParseReply đọc reply dạng:
//
//	Pros:
//	- a
//	Cons:
//	- b
//
// Bỏ qua các dòng trước header đầu tiên và dòng không bắt đầu bằng "-".
func ParseReply(reply string) *ProsCons {
	out := &ProsCons{Pros: []Item{}, Cons: []Item{}}
	var section *[]Item

	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "pros:"):
			section = &out.Pros
			continue
		case strings.HasPrefix(lower, "cons:"):
			section = &out.Cons
			continue
		}
		if section == nil || !strings.HasPrefix(line, "-") {
			continue
		}
		if text := strings.TrimSpace(strings.TrimLeft(line, "-")); text != "" {
			*section = append(*section, Item{Text: text, Count: 1})
		}
	}
	return out
}
