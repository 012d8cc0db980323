// Package export renders assessments and their results as portable
// markdown documents. Formatting is pure string construction: given the
// same input it always produces the same output.
package export

import (
	"fmt"
	"strings"
	"time"

	"assay/internal/assessment"
	"assay/internal/result"
)

const (
	dateLayout = "Monday, January 2, 2006"
	timeLayout = "03:04 PM"
)

// FormatResult renders a single submission.
func FormatResult(a assessment.Assessment, r result.Result) string {
	var b strings.Builder

	t := time.UnixMilli(r.Timestamp)
	fmt.Fprintf(&b, "# %s\n\n", a.Title)
	fmt.Fprintf(&b, "**Date:** %s at %s\n\n", t.Format(dateLayout), t.Format(timeLayout))

	if a.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", a.Description)
	}

	b.WriteString("---\n\n")
	writeAnswers(&b, a, r)

	return b.String()
}

// FormatResults renders every result for an assessment, newest first.
// Each result is numbered counting down so the oldest is Result 1.
func FormatResults(a assessment.Assessment, results []result.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", a.Title)
	if a.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", a.Description)
	}
	fmt.Fprintf(&b, "**Total Results:** %d\n\n", len(results))
	b.WriteString("---\n\n")

	sorted := result.SortedNewestFirst(results)
	for i, r := range sorted {
		t := time.UnixMilli(r.Timestamp)
		fmt.Fprintf(&b, "## Result %d: %s at %s\n\n",
			len(sorted)-i, t.Format(dateLayout), t.Format(timeLayout))
		writeAnswers(&b, a, r)
		b.WriteString("---\n\n")
	}

	return b.String()
}

// writeAnswers emits one block per question, in assessment question
// order, with the answer formatted by question type.
func writeAnswers(b *strings.Builder, a assessment.Assessment, r result.Result) {
	for i, q := range a.Questions {
		fmt.Fprintf(b, "#### %d. %s\n\n", i+1, q.Text)

		resp, ok := r.ResponseTo(q.ID)
		if !ok {
			b.WriteString("*No response*\n\n")
			continue
		}

		switch q.Type {
		case assessment.TypeScale:
			_, max := q.Bounds()
			fmt.Fprintf(b, "**%s** out of %d\n\n", resp.Value, max)
		case assessment.TypeYesNo:
			fmt.Fprintf(b, "**%s**\n\n", YesNoLabel(resp.Value))
		case assessment.TypeText:
			fmt.Fprintf(b, "%s\n\n", resp.Value)
		default:
			fmt.Fprintf(b, "%s\n\n", resp.Value)
		}
	}
}

// YesNoLabel maps a yes-no answer value to its display label. Only the
// literal "yes" reads as Yes; anything else is No.
func YesNoLabel(v result.Value) string {
	if v.String() == "yes" {
		return "Yes"
	}
	return "No"
}
