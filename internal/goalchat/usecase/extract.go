package usecase

import (
	"context"

	"pdca-planner/internal/goalchat"
)

// Extract runs goal extraction without calling the model.
func (uc *implUseCase) Extract(ctx context.Context, input goalchat.ExtractInput) (goalchat.ExtractOutput, error) {
	if err := ctx.Err(); err != nil {
		return goalchat.ExtractOutput{}, err
	}

	g, ok := uc.extractor.Extract(input.UserInput, input.AssistantReply)
	uc.metrics.observeExtraction(sourceExtract, ok)
	if !ok {
		uc.l.Debugf(ctx, "Extract: no goal found")
		return goalchat.ExtractOutput{}, nil
	}

	return goalchat.ExtractOutput{Found: true, Goal: &g}, nil
}
