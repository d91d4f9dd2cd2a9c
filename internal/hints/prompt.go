package hints

import (
	"fmt"
	"strings"
)

const hintSystemPrompt = `You are a friendly language tutor. A learner practicing listening comprehension wants a quick explanation of a sentence they just heard.`

func buildHintUserMessage(input HintInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Sentence (%s): %s\n", input.FromLang, input.Sentence.Text))
	if tr, ok := input.Sentence.FirstTranslation(); ok {
		b.WriteString(fmt.Sprintf("Known translation (%s): %s\n", tr.Lang, tr.Text))
	}
	b.WriteString(fmt.Sprintf("Explain in: %s\n", input.ToLang))

	b.WriteString(`
Instructions:
1. Give a literal, word-order-preserving translation of the sentence so the learner can map sounds to meaning.
2. Gloss the 3-6 most useful words or phrases. Pick the ones a learner is least likely to know. Give the dictionary form where it differs.
3. Add one short grammar note about the most notable construction in the sentence (1-2 sentences). Skip trivia.
Keep everything brief. The learner is mid-session and will only glance at this.`)

	return b.String()
}
