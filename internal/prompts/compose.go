package prompts

import (
	"fmt"
	"strings"
)

// Compose builds a full prompt for a generative stage by combining its
// instructions, its response specification, and any additional context
// sections (grounding data, the user question) in order.
func Compose(stage Stage, sections ...string) (string, error) {
	instructions, err := Instructions(stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := Spec(stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)

	for _, section := range sections {
		if section == "" {
			continue
		}
		sb.WriteString("\n\n")
		sb.WriteString(section)
	}

	return sb.String(), nil
}
