package profile_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/HPainhas/DevConnector/internal/domain/profile"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"whitespace only stays empty", "   ", ""},
		{"http becomes https", "http://example.com", "https://example.com"},
		{"https untouched", "https://example.com", "https://example.com"},
		{"bare host gets scheme", "example.com", "https://example.com"},
		{"host lowercased", "HTTP://Example.COM/Path", "https://example.com/Path"},
		{"trailing slash trimmed", "https://example.com/blog/", "https://example.com/blog"},
		{"query preserved", "example.com/a?b=c", "https://example.com/a?b=c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, profile.NormalizeURL(tt.in))
		})
	}
}

func TestNormalizeSocial(t *testing.T) {
	s := profile.NormalizeSocial(profile.Social{
		Youtube: "youtube.com/c/someone",
		Twitter: "http://twitter.com/someone",
	})

	assert.Equal(t, "https://youtube.com/c/someone", s.Youtube)
	assert.Equal(t, "https://twitter.com/someone", s.Twitter)
	assert.Empty(t, s.Instagram)
	assert.Empty(t, s.Linkedin)
	assert.Empty(t, s.Facebook)
}

func TestSkillListUnmarshal(t *testing.T) {
	t.Run("array kept as-is", func(t *testing.T) {
		var s profile.SkillList
		err := json.Unmarshal([]byte(`["go","rust"]`), &s)
		assert.NoError(t, err)
		assert.Equal(t, profile.SkillList{"go", "rust"}, s)
	})

	t.Run("csv split and trimmed", func(t *testing.T) {
		var s profile.SkillList
		err := json.Unmarshal([]byte(`"a, b , c"`), &s)
		assert.NoError(t, err)
		assert.Equal(t, profile.SkillList{"a", "b", "c"}, s)
	})

	t.Run("empty elements dropped", func(t *testing.T) {
		var s profile.SkillList
		err := json.Unmarshal([]byte(`"go,, ,rust"`), &s)
		assert.NoError(t, err)
		assert.Equal(t, profile.SkillList{"go", "rust"}, s)
	})

	t.Run("rejects other types", func(t *testing.T) {
		var s profile.SkillList
		assert.Error(t, json.Unmarshal([]byte(`42`), &s))
	})
}

func TestPrependAndRemove(t *testing.T) {
	p := &profile.Profile{}

	first := profile.Experience{Title: "junior"}
	second := profile.Experience{Title: "senior"}
	p.PrependExperience(first)
	p.PrependExperience(second)

	assert.Equal(t, "senior", p.Experience[0].Title)
	assert.Equal(t, "junior", p.Experience[1].Title)

	p.RemoveExperience(uuid.New()) // unknown id is a no-op
	assert.Len(t, p.Experience, 2)

	keep := uuid.New()
	drop := uuid.New()
	p.Education = []profile.Education{{ID: keep}, {ID: drop}}
	p.RemoveEducation(drop)
	assert.Len(t, p.Education, 1)
	assert.Equal(t, keep, p.Education[0].ID)
}
