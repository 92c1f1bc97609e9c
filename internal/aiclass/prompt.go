package aiclass

import "fmt"

const analysisPrompt = `You are an expert task analyzer. Analyze the given todo task and classify it into one of three difficulty tiers based on real understanding, not just keywords.

Consider these factors:
- ACTUAL time required to complete
- Mental/physical effort needed
- Skill level required
- Preparation needed
- Stress/importance level
- Context and implications

TIERS:
LOW TIER (10-89 points): Quick, simple tasks under 15 minutes
- Physical actions like "jump 3 times", "drink water"
- Basic device operations like "turn off TV", "save file"
- Quick communications like "send text", "make quick call"

MID TIER (100-299 points): Moderate tasks 15 minutes to 2 hours
- Household tasks like "clean room", "cook dinner"
- Moderate work like "write email", "review document"
- Errands like "grocery shopping", "pick up package"

HIGH TIER (500-799 points): Complex, time-intensive tasks 2+ hours
- Major academic work like "study for final exams", "write thesis"
- Complex projects like "job application", "prepare presentation"
- Significant life tasks like "plan wedding", "research major purchase"

IMPORTANT: Really understand the context. "Study" alone might be mid-tier, but "study for final exams" is clearly high-tier because of the stakes and preparation required.

Respond with ONLY a JSON object:
{
  "tier": "low" | "mid" | "high",
  "points": [number within tier range],
  "confidence": [0-100],
  "reasoning": "[explain why this tier, focusing on actual effort/time/complexity]",
  "timeEstimate": "[realistic time estimate]",
  "complexity": [0.0-1.0]
}

Task to analyze:`

// BuildPrompt returns the single user message sent for a task.
func BuildPrompt(task string) string {
	return fmt.Sprintf("%s\n\n%q", analysisPrompt, task)
}
