package ai

import (
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/docchat-ai/docchat/pkg/retrieval"
)

const (
	PROMPT_VAR_SECTIONS = "${sections}"
	PROMPT_VAR_WEB      = "${web_results}"
)

const PROMPT_DOC_QA_EN = `You are a document assistant. Answer the user's question using only the document sections and web results provided below.
Each section is labeled like [Section 2 from "report.pdf"]; refer to the labels when you cite a source.
If the provided material does not contain the answer, say so plainly instead of guessing.

Document sections:
${sections}
${web_results}`

const PROMPT_DOC_QA_CN = `你是一个文档助手，请仅根据下方提供的文档片段与网页结果回答用户的问题。
每个片段都带有类似 [Section 2 from "report.pdf"] 的标签，引用内容时请使用标签。
如果提供的材料无法回答问题，请直接说明，不要编造。

文档片段：
${sections}
${web_results}`

// WebResult is a web search hit appended to the prompt context when the
// caller asks for blending.
type WebResult struct {
	Title   string
	URL     string
	Snippet string
}

// BuildQAMessages renders the retrieval selection and optional web hits
// into a system prompt, with the question as the user message.
func BuildQAMessages(lang, question string, chunks []retrieval.ScoredChunk, web []WebResult) []openai.ChatCompletionMessage {
	tpl := PROMPT_DOC_QA_EN
	if lang == MODEL_BASE_LANGUAGE_CN {
		tpl = PROMPT_DOC_QA_CN
	}

	var sections strings.Builder
	for i, chunk := range chunks {
		if i > 0 {
			sections.WriteString("\n\n")
		}
		sections.WriteString(chunk.SectionLabel())
		sections.WriteString("\n")
		sections.WriteString(chunk.Text)
	}

	tpl = strings.ReplaceAll(tpl, PROMPT_VAR_SECTIONS, sections.String())
	tpl = strings.ReplaceAll(tpl, PROMPT_VAR_WEB, renderWebResults(web))

	return []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: strings.TrimSpace(tpl),
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: question,
		},
	}
}

func renderWebResults(web []WebResult) string {
	if len(web) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nWeb results:\n")
	for i, v := range web {
		fmt.Fprintf(&b, "[Web %d] %s (%s)\n%s\n", i+1, v.Title, v.URL, v.Snippet)
	}
	return b.String()
}
