package tutor

import (
	"bytes"
	"text/template"
)

const instructorSystemPrompt = `You are an expert Safety Instructor for warehouse workers (storekeepers, known in Brazil as almoxarifes). Answer in the language of the material you are given. Be simple, clear and practical.`

var explainTemplate = template.Must(template.New("explain").Parse(
	`Explain the following workplace safety topic simply and clearly in 2-3 sentences.
Focus on why it matters for a storekeeper/almoxarife.
Topic: "{{.Topic}}"`))

var analyzeTemplate = template.Must(template.New("analyze").Parse(
	`Task: Evaluate a student's answer to a safety scenario.

Scenario: "{{.Scenario}}"

Student Answer: "{{.Answer}}"

Ideal Answer (Reference): "{{.Ideal}}"

Instructions:
1. Rate the answer as "Correct", "Partially Correct", or "Incorrect".
2. Provide constructive feedback. If they missed something from the ideal answer, explain it gently.
3. Keep the feedback under 100 words.`))

var deepDiveTemplate = template.Must(template.New("deep-dive").Parse(
	`Explain why the answer "{{.Answer}}" is correct for the question: "{{.Question}}". Provide a real-world warehouse example if applicable.`))

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
