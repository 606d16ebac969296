package questions

import (
	"fmt"
	"strings"
)

const (
	maxTokens   = 2048
	temperature = 0.7
)

// stopSequences cut generation at the model's reasoning delimiters.
var stopSequences = []string{"<think>", "</think>"}

const promptTemplate = `자기소개서 내용:
---
%s
---
위 자기소개서 내용을 기반으로, 웹 프로그래머 신입 면접 질문 3개를 만들어줘.
- 반드시 한국어로 답변해줘.
- 심층적인 답변이 필요한 질문이어야 해.
- 질문 외에 다른 설명이나 번호는 붙이지 말고, 각 질문은 줄바꿈으로만 구분해줘.`

// BuildPrompt embeds the trimmed résumé text into the fixed instruction.
func BuildPrompt(resumeText string) string {
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(resumeText))
}
