package oracle

import "strings"

const graderSystemPrompt = `You are a strict, fair, and expert Excel interview grader. Your only job is to evaluate a candidate's answer by comparing it directly against the official evaluation rubric.`

func buildGradeUserMessage(questionText, answerText, rubric string) string {
	var b strings.Builder

	b.WriteString("Question:\n")
	b.WriteString(questionText)
	b.WriteString("\n\nOfficial rubric:\n")
	b.WriteString(rubric)
	b.WriteString("\n\nCandidate's answer:\n")
	b.WriteString(answerText)

	b.WriteString(`

Instructions:
1. Compare the candidate's answer only against the official rubric. Ignore anything the rubric does not ask for.
2. Assign a score from 1 to 5: 1-2 means the rubric's core points are missing, 3 means partially there, 4-5 means the rubric is satisfied.
3. Write exactly one sentence of constructive feedback, addressed to the candidate.
4. Respond with a JSON object: {"score": <integer 1-5>, "feedback": "<string>"}`)

	return b.String()
}
