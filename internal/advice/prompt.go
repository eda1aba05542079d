package advice

import (
	"encoding/json"
	"fmt"
)

const systemPrompt = "You are a helpful NRL Fantasy expert."

const userPromptTemplate = `
You are an expert in NRL Fantasy. Your task is to optimise the user's team for this round by:
- Setting the best possible starting 13
- Selecting a bench for looping and AE (auto emergency) exploitation
- Noting which players are unavailable or risky
Here is the team data:
%s
Please return a structured lineup suggestion, with bench usage notes and reasoning.
`

// BuildPrompt embeds teamData, pretty-printed, into the lineup prompt.
func BuildPrompt(teamData json.RawMessage) (string, error) {
	var decoded any
	if len(teamData) > 0 {
		if err := json.Unmarshal(teamData, &decoded); err != nil {
			return "", fmt.Errorf("team data: %w", err)
		}
	}
	pretty, err := json.MarshalIndent(decoded, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(userPromptTemplate, pretty), nil
}
