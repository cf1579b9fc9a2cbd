package report

import "strings"

const reportSystemPrompt = `You are a helpful senior data manager writing a performance report for a job candidate's Excel mock interview. You synthesize the interview transcript into a high-level, human-readable report.`

func buildReportUserMessage(transcriptJSON string) string {
	var b strings.Builder

	b.WriteString("Candidate interview transcript (JSON):\n")
	b.WriteString(transcriptJSON)

	b.WriteString(`

Instructions:
Structure the report with these Markdown sections:

## Overall Performance Summary
## Key Strengths
## Areas for Improvement
## Final Recommendation

Ground every observation in the transcript — which topics and difficulty
levels the candidate handled, where scores dropped, and how the answers
compared to the feedback given. Keep the tone professional and
constructive. Write the complete report, nothing else.`)

	return b.String()
}
