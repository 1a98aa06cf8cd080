package domain

// Keys set on a RenderContext in addition to configuration constants.
const (
	KeySlug      = "slug"
	KeyFeatured  = "featured"
	KeyJS        = "JS"
	KeyCSS       = "CSS"
	KeyPostID    = "postId"
	KeyEmbedName = "embedName"
)

// RenderContext is the data handed to a post template.
// Later layers override earlier ones: global config, then post config, then
// request-scoped values.
type RenderContext map[string]any

// Merge copies every entry of values into c, overriding existing keys.
func (c RenderContext) Merge(values map[string]any) {
	for k, v := range values {
		c[k] = v
	}
}

// PostID returns the gated CMS identifier and whether the key is present.
func (c RenderContext) PostID() (string, bool) {
	v, ok := c[KeyPostID]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// EmbedName returns the gated embed name and whether the key is present.
func (c RenderContext) EmbedName() (string, bool) {
	v, ok := c[KeyEmbedName]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
