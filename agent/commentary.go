package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const commentaryPrompt = `You are a professional financial analyst. Based on
the following financial metrics, give an objective, concise commentary
(about 3-4 paragraphs) on the financial situation of the company. Focus the
assessment on growth rates, changes in asset composition, and current-ratio
liquidity. Answer in %s.

Raw data and metrics:
%s`

// Commentary performs the one-shot automated analysis: a single stateless
// request embedding the metrics summary.
//
// This path always terminates a synchronous user action, so failures come
// back as a human-readable string rather than an error: the caller prints
// whatever it gets.
func Commentary(ctx context.Context, client *genai.Client, model, lang, summary string) string {
	if client == nil {
		return "AI commentary unavailable: no API key configured."
	}
	if model == "" {
		model = DefaultModel
	}
	if lang == "" {
		lang = "English"
	}
	prompt := fmt.Sprintf(commentaryPrompt, lang, summary)
	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return fmt.Sprintf("AI commentary failed: %v. Check the API key and usage quota.", err)
	}
	text := resp.Text()
	if text == "" {
		return "AI commentary failed: empty response from the model."
	}
	return text
}
