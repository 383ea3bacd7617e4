package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pdca-planner/internal/goal"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"Title label", "标题：健身", "健身", true},
		{"My goal is before goal", "我的目标是：学会弹琴", "学会弹琴", true},
		{"Goal label", "目标: 每天喝水", "每天喝水", true},
		{"I want", "我想要学会做饭。", "学会做饭", true},
		{"Plan label", "计划：周末徒步", "周末徒步", true},
		{"English my goal is", "My goal is to learn Go.", "learn Go", true},
		{"English goal label", "Goals: ship the beta", "ship the beta", true},
		{"English plan without colon is prose", "The plan was fine", "", false},
		{"Blank capture falls through", "标题： 。计划：读书", "读书", true},
		{"Colon label beats earlier bare label", "这个标题不错\n标题：学习编程", "学习编程", true},
		{"Bare label does not cross a newline", "标题\n读书计划", "", false},
		{"Fallback sentence", "Drink more water today. ok", "Drink more water today", true},
		{"Fallback sentence too long", "This opening sentence is far too long to be treated as a title at all.", "", false},
		{"Nothing", "hmm", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractTitle(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"Labeled", "详情：每天晚上复习当天的笔记内容", "每天晚上复习当天的笔记内容", true},
		{"Labeled too short", "描述：跑步", "", false},
		{"English labeled", "Description: practice scales for twenty minutes", "practice scales for twenty minutes", true},
		{
			name:   "Paragraph fallback",
			text:   "Title: Guitar\nThis plan focuses on building consistent practice habits over time",
			want:   "This plan focuses on building consistent practice habits over time",
			wantOK: true,
		},
		{
			name:   "Paragraph with full-width title marker skipped",
			text:   "This is a long paragraph with title：Foo bar inside of it ok",
			want:   "",
			wantOK: false,
		},
		{
			name:   "Paragraph with title marker skipped",
			text:   "Goal: become a much better guitar player this year",
			want:   "",
			wantOK: false,
		},
		{"Short paragraphs only", "short line\nanother short one", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractDescription(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractLevel(t *testing.T) {
	tests := []struct {
		text string
		want goal.Level
	}{
		{"我的长期愿景", goal.LevelVision},
		{"未来3-5年", goal.LevelVision},
		{"my long-term vision", goal.LevelVision},
		{"今年完成", goal.LevelYearly},
		{"an annual target", goal.LevelYearly},
		{"下季度上线", goal.LevelQuarterly},
		{"within three months", goal.LevelQuarterly},
		{"本月读两本书", goal.LevelMonthly},
		{"a monthly review", goal.LevelMonthly},
		{"Over the next 2 months, review it every week.", goal.LevelMonthly},
		{"每周三次", goal.LevelWeekly},
		{"twice a week", goal.LevelWeekly},
		{"一年内，每周跑步", goal.LevelYearly},
		{"no cue here", goal.LevelMonthly},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, extractLevel(tt.text))
		})
	}
}

func TestExtractPriority(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"优先级：3", 3},
		{"优先级 9", 9},
		{"优先级：高", 8},
		{"优先级：中", 5},
		{"重要性：低", 2},
		{"重要度 7", 7},
		{"Priority: high", 8},
		{"priority: Medium", 5},
		{"importance: low", 2},
		{"priority 42", 10},
		{"nothing here", goal.DefaultPriority},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPriority(tt.text))
		})
	}
}

func TestClampPriority(t *testing.T) {
	assert.Equal(t, 1, clampPriority("0"))
	assert.Equal(t, 1, clampPriority("1"))
	assert.Equal(t, 10, clampPriority("10"))
	assert.Equal(t, 10, clampPriority("11"))
	assert.Equal(t, 10, clampPriority("123456789012345678901234567890"))
}

func TestExtractMetrics(t *testing.T) {
	t.Run("Labeled and bullets", func(t *testing.T) {
		got := extractMetrics("成功标准：体脂率低于20%\n• 每月完成两次体测\n* 早睡早起")
		assert.Equal(t, []goal.Metric{
			{Description: "体脂率低于20%"},
			{Description: "每月完成两次体测"},
		}, got)
	})

	t.Run("English", func(t *testing.T) {
		got := extractMetrics("KPIs: 100 signups\n- achieve 5 paying users")
		assert.Equal(t, []goal.Metric{
			{Description: "100 signups"},
			{Description: "achieve 5 paying users"},
		}, got)
	})

	t.Run("None", func(t *testing.T) {
		got := extractMetrics("nothing to measure here")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFillRange(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	p := New(WithClock(func() time.Time { return now }))

	tests := []struct {
		name      string
		start     string
		end       string
		level     goal.Level
		wantStart string
		wantEnd   string
	}{
		{
			name:      "Both missing",
			level:     goal.LevelWeekly,
			wantStart: "2025-03-10T00:00:00.000Z",
			wantEnd:   "2025-03-17T00:00:00.000Z",
		},
		{
			name:      "Only start",
			start:     "2025-04-01T00:00:00.000Z",
			level:     goal.LevelWeekly,
			wantStart: "2025-04-01T00:00:00.000Z",
			wantEnd:   "2025-04-08T00:00:00.000Z",
		},
		{
			name:      "Only start unparseable",
			start:     "next spring",
			level:     goal.LevelMonthly,
			wantStart: "next spring",
			wantEnd:   "2025-04-09T00:00:00.000Z",
		},
		{
			name:      "Only end",
			end:       "2025-12-31T00:00:00.000Z",
			level:     goal.LevelYearly,
			wantStart: "2025-03-10T00:00:00.000Z",
			wantEnd:   "2025-12-31T00:00:00.000Z",
		},
		{
			name:      "Both present",
			start:     "2025-01-01T00:00:00.000Z",
			end:       "2025-02-01T00:00:00.000Z",
			level:     goal.LevelVision,
			wantStart: "2025-01-01T00:00:00.000Z",
			wantEnd:   "2025-02-01T00:00:00.000Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := p.fillRange(tt.start, tt.end, tt.level)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
