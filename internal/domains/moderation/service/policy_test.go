package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-catalog/internal/domains/moderation/model"
)

func TestClassifyText(t *testing.T) {
	t.Run("blocked keyword is inappropriate at 0.9", func(t *testing.T) {
		v := ClassifyText("selling nude photo prints")
		assert.False(t, v.IsAppropriate)
		assert.Equal(t, model.CategoryInappropriate, v.Category)
		assert.Equal(t, 0.9, v.Confidence)
		require.NotEmpty(t, v.Reasons)
		assert.Contains(t, v.Reasons[0], "nude")
	})

	t.Run("multiple blocked keywords all reported", func(t *testing.T) {
		v := ClassifyText("gun and knife lot")
		assert.False(t, v.IsAppropriate)
		assert.Contains(t, v.Reasons[0], "gun")
		assert.Contains(t, v.Reasons[0], "knife")
	})

	t.Run("three safe keywords raise confidence to 0.8", func(t *testing.T) {
		v := ClassifyText("jeep tire winch")
		assert.True(t, v.IsAppropriate)
		assert.Equal(t, model.CategorySafe, v.Category)
		assert.Equal(t, 0.8, v.Confidence)
	})

	t.Run("two safe keywords stay at the default", func(t *testing.T) {
		v := ClassifyText("jeep tire")
		assert.True(t, v.IsAppropriate)
		assert.Equal(t, 0.6, v.Confidence)
	})

	t.Run("ambiguous text gets benefit of the doubt", func(t *testing.T) {
		v := ClassifyText("miscellaneous stuff for sale")
		assert.True(t, v.IsAppropriate)
		assert.Equal(t, 0.6, v.Confidence)
	})

	t.Run("blocked keyword wins over safe keywords", func(t *testing.T) {
		v := ClassifyText("jeep tire winch nude")
		assert.False(t, v.IsAppropriate)
		assert.Equal(t, 0.9, v.Confidence)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		v := ClassifyText("NSFW content")
		assert.False(t, v.IsAppropriate)
	})
}

func TestIsTrustedDomain(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://images.unsplash.com/photo-1?w=400", true},
		{"https://picsum.photos/200", true},
		{"https://evil.example.com/pic.jpg", false},
		{"not a url", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTrustedDomain(tt.url))
		})
	}
}
