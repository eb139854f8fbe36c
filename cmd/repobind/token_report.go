package main

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// buildTokenReport counts the tokens of the exported document under the
// given model's encoding.
func buildTokenReport(text string, model string) (string, error) {
	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return "", fmt.Errorf("failed to get tokenizer for model %q: %w", model, err)
	}
	tokens := tkm.Encode(text, nil, nil)
	return fmt.Sprintf("%d tokens (%s)\n", len(tokens), model), nil
}
