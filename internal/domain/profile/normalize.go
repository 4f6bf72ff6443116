package profile

import (
	"encoding/json"
	"net/url"
	"strings"
)

// NormalizeURL canonicalizes a user-supplied URL: the scheme is forced to
// https (and added when missing), the host is lowercased and a trailing
// slash is trimmed. Empty input stays empty.
func NormalizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		// Not parseable as a URL; store what the caller sent.
		return s
	}

	u.Scheme = "https"
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimSuffix(u.Path, "/")

	return u.String()
}

// NormalizeSocial returns a copy of s with every non-empty link normalized.
func NormalizeSocial(s Social) Social {
	return Social{
		Youtube:   NormalizeURL(s.Youtube),
		Twitter:   NormalizeURL(s.Twitter),
		Instagram: NormalizeURL(s.Instagram),
		Linkedin:  NormalizeURL(s.Linkedin),
		Facebook:  NormalizeURL(s.Facebook),
	}
}

// SkillList accepts either a JSON array of strings or a single
// comma-separated string and always unmarshals to a trimmed list.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*s = asList
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	*s = SplitSkills(asString)
	return nil
}

// SplitSkills converts "a, b , c" into ["a","b","c"]. Empty elements are
// dropped.
func SplitSkills(csv string) []string {
	parts := strings.Split(csv, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
