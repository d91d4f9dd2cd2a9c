package hints

import "github.com/listen2bea/listen2bea/internal/llm"

// HintSchema defines the JSON schema for sentence explanations.
var HintSchema = &llm.Schema{
	Name:        "sentence-hint",
	Description: "A quick explanation of a sentence for a language learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"literal": map[string]any{
				"type":        "string",
				"description": "Literal, word-order-preserving translation",
			},
			"vocabulary": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "Word or phrase as it appears in the sentence",
						},
						"meaning": map[string]any{
							"type":        "string",
							"description": "Short gloss, dictionary form if different",
						},
					},
					"required":             []any{"word", "meaning"},
					"additionalProperties": false,
				},
				"description": "3-6 glossed words or phrases",
			},
			"grammar_note": map[string]any{
				"type":        "string",
				"description": "One short note about the most notable construction",
			},
		},
		"required":             []any{"literal", "vocabulary", "grammar_note"},
		"additionalProperties": false,
	},
}
