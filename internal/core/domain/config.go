package domain

import "strings"

// GlobalConfig is the site-wide configuration read once at process start.
type GlobalConfig struct {
	// Values holds every upper-case entry of app_config.yaml, as exposed to templates.
	Values map[string]any

	S3BaseURL        string
	TumblrName       string
	ProjectSlug      string
	PostPath         string
	DeploymentTarget DeploymentTarget
	Debug            bool
}

// PostConfig is the configuration document of a single post.
type PostConfig struct {
	// Values holds every upper-case entry of post_config.yaml, as exposed to templates.
	Values map[string]any

	// TargetIDs maps a deployment target to the CMS post identifier. A nil entry means
	// no post exists on that target yet.
	TargetIDs   map[DeploymentTarget]*string
	IsPublished map[DeploymentTarget]bool
	DeploySlug  string
	CopyDocURL  string
}

// TargetID returns the CMS identifier configured for t. The identifier is present only
// when the entry exists, is non-null and non-empty; "0" is a valid identifier.
func (c *PostConfig) TargetID(t DeploymentTarget) (string, bool) {
	if c == nil {
		return "", false
	}
	id, ok := c.TargetIDs[t]
	if !ok || id == nil || *id == "" {
		return "", false
	}
	return *id, true
}

// Published reports whether the post is flagged as published on t.
func (c *PostConfig) Published(t DeploymentTarget) bool {
	if c == nil {
		return false
	}
	return c.IsPublished[t]
}

// IsConstantName reports whether key is an all-caps configuration constant.
// Lower-case helper entries are never exposed to templates.
func IsConstantName(key string) bool {
	return key != "" && strings.ToUpper(key) == key
}

// ConstantEntries returns the all-caps entries of values.
func ConstantEntries(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if IsConstantName(k) {
			out[k] = v
		}
	}
	return out
}
