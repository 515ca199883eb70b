// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mantrix/entities"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

const systemPrompt = `You are an expert curriculum designer. Given the user input, generate 2 to 3 structured learning roadmaps.

Each roadmap should include:
- A title
- A list of 2 to 4 branches
- Each branch should contain 2 to 3 video modules, each with:
  - Title
  - Duration in seconds (between 300 and 1800)
  - is_core: true for essential videos, false for optional/advanced videos

Mark foundational and prerequisite videos as core=true. Advanced, specialized, or optional content should be core=false.

Return valid JSON only, shaped {"roadmaps":[{"title":"...","branches":[{"title":"...","videos":[{"title":"...","duration":900,"is_core":true}]}]}]}. No explanations or extra text.`

type genVideo struct {
	Title    string `json:"title"`
	Duration int    `json:"duration"`
	IsCore   bool   `json:"is_core"`
}

type genBranch struct {
	Title  string     `json:"title"`
	Videos []genVideo `json:"videos"`
}

type genRoadmap struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Branches    []genBranch `json:"branches"`
}

func (c *openAI) GenerateRoadmaps(userInput string) ([]entities.Roadmap, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": "Generate learning roadmaps for: " + userInput},
		},
		"temperature": 0.7,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 45 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("no choices")
	}

	drafts, err := parseRoadmapJSON(out.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	if len(drafts) < 2 {
		return nil, fmt.Errorf("model returned %d roadmaps, need at least 2", len(drafts))
	}
	return toEntities(drafts), nil
}

// parseRoadmapJSON tolerates fenced output and both the wrapped object and
// a bare array.
func parseRoadmapJSON(content string) ([]genRoadmap, error) {
	s := strings.TrimSpace(content)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var payload struct {
		Roadmaps []genRoadmap `json:"roadmaps"`
	}
	if err := json.Unmarshal([]byte(s), &payload); err == nil && len(payload.Roadmaps) > 0 {
		return payload.Roadmaps, nil
	}
	var arr []genRoadmap
	if err := json.Unmarshal([]byte(s), &arr); err != nil {
		return nil, fmt.Errorf("parse roadmaps: %v / raw: %.200s", err, s)
	}
	return arr, nil
}

func toEntities(drafts []genRoadmap) []entities.Roadmap {
	out := make([]entities.Roadmap, 0, len(drafts))
	for _, d := range drafts {
		r := entities.Roadmap{Title: strings.TrimSpace(d.Title), Description: strings.TrimSpace(d.Description)}
		for _, gb := range d.Branches {
			b := entities.Branch{Title: strings.TrimSpace(gb.Title)}
			for _, gv := range gb.Videos {
				b.Videos = append(b.Videos, entities.VideoModule{
					Title:    strings.TrimSpace(gv.Title),
					Duration: gv.Duration,
					IsCore:   gv.IsCore,
				})
			}
			r.Branches = append(r.Branches, b)
		}
		r.RecomputeDurations()
		out = append(out, r)
	}
	return out
}
