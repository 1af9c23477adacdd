package service

import (
	"context"

	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// fakeProcessor hands every action to perform, standing in for the operator.
type fakeProcessor struct {
	perform func(action actions.IAction) error
	calls   []actions.IAction
}

func (p *fakeProcessor) Process(_ context.Context, action actions.IAction) error {
	p.calls = append(p.calls, action)
	if p.perform == nil {
		return nil
	}
	return p.perform(action)
}
