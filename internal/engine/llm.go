package engine

import (
	"context"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"
)

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt using the configured client and returns the raw
// response text with outer fences stripped. A non-2xx or transport failure
// surfaces as *ProviderError — there is nothing to degrade into without a
// response.
func CallLLM(ctx context.Context, prompt, credential string) (string, error) {
	IncrLLMCalls()
	client := cfg.LLMClient
	if credential != "" {
		// Per-request provider credential overrides the process-wide key.
		client = llm.NewClient(cfg.LLMAPIBase, credential, cfg.LLMModel,
			llm.WithMaxTokens(cfg.LLMMaxTokens),
			llm.WithTemperature(cfg.LLMTemperature),
			llm.WithHTTPClient(cfg.HTTPClient),
		)
	}
	resp, err := client.Complete(ctx, "", prompt)
	if err != nil {
		IncrLLMErrors()
		return "", &ProviderError{Err: err}
	}
	return stripFences(resp), nil
}
