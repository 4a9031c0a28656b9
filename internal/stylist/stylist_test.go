package stylist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tirona-thrift/internal/product"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

var inventory = []product.Product{
	{ID: "1", Name: "Leather Jacket", Tags: []string{"y2k", "leather"}},
	{ID: "2", Name: "Cargo Pants", Tags: []string{"techwear"}},
}

func TestStylist_Recommend(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		reply string
		err   error
		want  Recommendation
	}{
		{
			name:  "Success",
			reply: `{"recommendedIds":["1","2"],"commentary":"gas fit"}`,
			want:  Recommendation{RecommendedIDs: []string{"1", "2"}, Commentary: "gas fit"},
		},
		{
			name:  "Fenced",
			reply: "```json\n{\"recommendedIds\":[\"2\"],\"commentary\":\"clean\"}\n```",
			want:  Recommendation{RecommendedIDs: []string{"2"}, Commentary: "clean"},
		},
		{
			name:  "EmptyCommentary",
			reply: `{}`,
			want:  Recommendation{RecommendedIDs: []string{}, Commentary: NoMatches},
		},
		{
			name:  "Malformed",
			reply: `not json`,
			want:  Recommendation{RecommendedIDs: []string{}, Commentary: VibeNotFound},
		},
		{
			name: "GeneratorError",
			err:  errors.New("quota"),
			want: Recommendation{RecommendedIDs: []string{}, Commentary: VibeNotFound},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(MockGenerator)
			gen.On("Generate", ctx, mock.MatchedBy(func(req GenerateRequest) bool {
				return req.JSON && req.SystemInstruction == vibeInstruction
			})).Return(tt.reply, tt.err)

			got := New(gen).Recommend(ctx, "dark techno", inventory)
			assert.Equal(t, tt.want, got)
			gen.AssertExpectations(t)
		})
	}
}

func TestStylist_Ask(t *testing.T) {
	ctx := context.Background()
	p := product.Product{ID: "1", Name: "Leather Jacket", Category: "Outerwear", Price: 8500, Tags: []string{"y2k"}}

	t.Run("Success", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("Generate", ctx, mock.MatchedBy(func(req GenerateRequest) bool {
			return !req.JSON && req.SystemInstruction == resellerInstruction
		})).Return("  fits true to size, no cap \n", nil)

		assert.Equal(t, "fits true to size, no cap", New(gen).Ask(ctx, p, "does it run small?"))
	})

	t.Run("Failure", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("Generate", ctx, mock.Anything).Return("", errors.New("offline"))

		assert.Equal(t, SystemBusy, New(gen).Ask(ctx, p, "still available?"))
	})
}

func TestPrompts(t *testing.T) {
	prompt := vibePrompt("matrix", inventory)
	assert.Contains(t, prompt, "1: Leather Jacket (y2k, leather)\n2: Cargo Pants (techwear)")
	assert.Contains(t, prompt, "User Vibe: matrix")

	p := product.Product{Name: "Boots", Category: "Shoes", Price: 4200, Description: "Chunky", Tags: []string{"goth", "platform"}}
	chat := resellerPrompt(p, "size?")
	assert.Contains(t, chat, "Product: Boots (Shoes). Price: 4200. Description: Chunky. Tags: goth, platform.")
	assert.Contains(t, chat, "Customer Question: size?")
}
