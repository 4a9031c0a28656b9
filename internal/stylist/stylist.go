package stylist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tirona-thrift/internal/logger"
	"tirona-thrift/internal/product"
)

const (
	VibeNotFound = "SYSTEM ERROR. VIBE NOT FOUND."
	NoMatches    = "NO MATCHES FOUND. TRY AGAIN."
	SystemBusy   = "DM me on insta, system busy."
)

const vibeInstruction = `You are "TIRONA_OS", an AI stylist for an underground Albanian thrift store called Tirona Thrift.
Your aesthetic is Y3K, Opium Label, Yeat, Matrix, dark techno, industrial.
You speak in short, punchy, lower-case sentences. Use slang like "hard", "gas", "clean", "vamp".
When a user describes a vibe, you recommend 3 items from the provided inventory list by their ID.
Return ONLY valid JSON in this format: { "recommendedIds": ["1", "2", "3"], "commentary": "your short edgy commentary" }
Do not use markdown blocks.`

const resellerInstruction = "You are the edgy owner of Tirona Thrift. Reply in plain text, lower case."

var recommendationSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"recommendedIds": map[string]any{
			"type":  "ARRAY",
			"items": map[string]any{"type": "STRING"},
		},
		"commentary": map[string]any{"type": "STRING"},
	},
}

type Recommendation struct {
	RecommendedIDs []string `json:"recommendedIds"`
	Commentary     string   `json:"commentary"`
}

// Stylist answers shoppers. It never fails: any model error becomes a fixed apology.
type Stylist struct {
	gen Generator
}

func New(gen Generator) *Stylist {
	return &Stylist{gen: gen}
}

// Recommend picks items from inventory that match the described vibe.
func (s *Stylist) Recommend(ctx context.Context, vibe string, inventory []product.Product) Recommendation {
	log := logger.FromCtx(ctx).With(zap.String("layer", "stylist"))

	text, err := s.gen.Generate(ctx, GenerateRequest{
		SystemInstruction: vibeInstruction,
		Prompt:            vibePrompt(vibe, inventory),
		JSON:              true,
		Schema:            recommendationSchema,
	})
	if err != nil {
		log.Warn("vibe check failed", zap.Error(err))
		return Recommendation{RecommendedIDs: []string{}, Commentary: VibeNotFound}
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(stripFences(text)), &rec); err != nil {
		log.Warn("vibe check returned malformed json", zap.Error(err))
		return Recommendation{RecommendedIDs: []string{}, Commentary: VibeNotFound}
	}
	if rec.RecommendedIDs == nil {
		rec.RecommendedIDs = []string{}
	}
	if strings.TrimSpace(rec.Commentary) == "" {
		rec.Commentary = NoMatches
	}
	return rec
}

// Ask lets the shopper question the shop owner about one piece.
func (s *Stylist) Ask(ctx context.Context, p product.Product, question string) string {
	text, err := s.gen.Generate(ctx, GenerateRequest{
		SystemInstruction: resellerInstruction,
		Prompt:            resellerPrompt(p, question),
	})
	if err != nil {
		logger.FromCtx(ctx).Warn("reseller chat failed",
			zap.String("layer", "stylist"),
			zap.String("product_id", p.ID),
			zap.Error(err),
		)
		return SystemBusy
	}
	return strings.TrimSpace(text)
}

func vibePrompt(vibe string, inventory []product.Product) string {
	lines := make([]string, 0, len(inventory))
	for _, p := range inventory {
		lines = append(lines, fmt.Sprintf("%s: %s (%s)", p.ID, p.Name, strings.Join(p.Tags, ", ")))
	}
	return fmt.Sprintf("Inventory:\n%s\n\nUser Vibe: %s\n\nSelect 3 items that match this vibe.",
		strings.Join(lines, "\n"), vibe)
}

func resellerPrompt(p product.Product, question string) string {
	return fmt.Sprintf(`Product: %s (%s). Price: %d. Description: %s. Tags: %s.

Customer Question: %s

You are the "Plug", the owner of Tirona Thrift. Reply to the customer.
Tone: Cool, slightly arrogant but helpful, underground, use Tirana/Gen-Z slang (e.g., "shqipe", "flaka", "no cap").
Keep it short (max 20 words).`,
		p.Name, p.Category, p.Price, p.Description, strings.Join(p.Tags, ", "), question)
}

// stripFences drops a ```json fence some model versions wrap around JSON output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
