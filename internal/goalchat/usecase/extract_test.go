package usecase

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdca-planner/internal/goal"
	"pdca-planner/internal/goalchat"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		extractor *stubExtractor
		wantFound bool
		result    string
	}{
		{
			name:      "Found",
			extractor: &stubExtractor{ok: true, goal: goal.StructuredGoal{Title: "学习编程"}},
			wantFound: true,
			result:    "found",
		},
		{
			name:      "None",
			extractor: &stubExtractor{ok: false},
			wantFound: false,
			result:    "none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockProvider{}
			uc, metrics := newTestUseCase(provider, tt.extractor, Config{})

			out, err := uc.Extract(context.Background(), goalchat.ExtractInput{UserInput: "a", AssistantReply: "b"})
			require.NoError(t, err)

			assert.Equal(t, tt.wantFound, out.Found)
			if tt.wantFound {
				require.NotNil(t, out.Goal)
				assert.Equal(t, "学习编程", out.Goal.Title)
			} else {
				assert.Nil(t, out.Goal)
			}
			assert.Equal(t, "a", tt.extractor.gotUser)
			assert.Equal(t, "b", tt.extractor.gotText)
			assert.Nil(t, provider.request(), "extract must not call the model")
			assert.Equal(t, 1.0, testutil.ToFloat64(metrics.extractions.WithLabelValues(sourceExtract, tt.result)))
		})
	}
}

func TestExtract_CancelledContext(t *testing.T) {
	uc, _ := newTestUseCase(&mockProvider{}, &stubExtractor{ok: true}, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Extract(ctx, goalchat.ExtractInput{})
	assert.ErrorIs(t, err, context.Canceled)
}
