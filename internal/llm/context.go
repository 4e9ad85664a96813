package llm

import "context"

type purposeKey struct{}

// WithPurpose tags ctx with the tutor feature making the call: "explain"
// for checklist topics, "analyze" for case-study grading and "deep-dive"
// for quiz follow-ups. The label is stored with each request event and
// groups the output of `safetypro llm stats`.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown" when the
// caller did not tag the context.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unknown"
}
