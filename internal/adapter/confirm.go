package adapter

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotInteractive is returned by a Confirmer that cannot ask anyone.
var ErrNotInteractive = errors.New("no interactive terminal for confirmation")

// Prompt describes the action awaiting confirmation.
type Prompt struct {
	Operation string
	Target    string
}

// String renders the prompt text.
func (p Prompt) String() string {
	if p.Target == "" {
		return fmt.Sprintf("Performing the operation %q.", p.Operation)
	}
	return fmt.Sprintf("Performing the operation %q on target %q.", p.Operation, p.Target)
}

// Confirmer asks the user to approve a destructive operation.
type Confirmer interface {
	Confirm(ctx context.Context, prompt Prompt) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt Prompt) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt Prompt) (bool, error) {
	return f(ctx, prompt)
}

func (r *Runner) confirm(ctx context.Context, info *Info, inv *Invocation) error {
	if !info.Destructive || inv.Settings().Force {
		return nil
	}

	prompt := Prompt{Operation: info.Name, Target: target(info, inv)}
	if r.confirmer == nil {
		return confirmationRequired(info.Name, prompt.Target)
	}

	ok, err := r.confirmer.Confirm(ctx, prompt)
	switch {
	case errors.Is(err, ErrNotInteractive):
		return confirmationRequired(info.Name, prompt.Target)
	case err != nil:
		return fmt.Errorf("confirmation failed: %w", err)
	case !ok:
		return confirmationDeclined(info.Name, prompt.Target)
	}
	return nil
}

func target(info *Info, inv *Invocation) string {
	if info.Target == "" {
		return ""
	}
	v, ok := inv.Lookup(info.Target)
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}
