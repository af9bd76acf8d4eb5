package domain

// StepKind identifies which reply a suspended multi-step command is waiting for
type StepKind int

const (
	// StepAwaitingImage waits for the photo of a new WAT (carries the name)
	StepAwaitingImage StepKind = iota + 1
	// StepAwaitingRemovalChoice waits for the name of the WAT to delete
	StepAwaitingRemovalChoice
	// StepAwaitingExpressionChoice waits for the name of the WAT to edit
	StepAwaitingExpressionChoice
	// StepAwaitingExpressions waits for the new expression list (carries the name)
	StepAwaitingExpressions
)

// Step is the pending continuation of a chat's multi-step command.
// It is a tagged value rather than a captured closure so the state
// machine can be inspected and tested directly.
type Step struct {
	Kind StepKind

	// WatName is the name captured by the step that registered the
	// continuation, for kinds that operate on a specific WAT.
	WatName string
}
