package config

// AppConfigDTO holds the typed entries of app_config.yaml. Every other upper-case entry
// is kept verbatim for templates.
type AppConfigDTO struct {
	S3BaseURL        string `yaml:"S3_BASE_URL"`
	TumblrName       string `yaml:"TUMBLR_NAME"`
	ProjectSlug      string `yaml:"PROJECT_SLUG"`
	PostPath         string `yaml:"POST_PATH"`
	DeploymentTarget string `yaml:"DEPLOYMENT_TARGET"`
	Debug            bool   `yaml:"DEBUG"`
}

// PostConfigDTO holds the typed entries of post_config.yaml.
// Target identifiers are scalars of any YAML type; null means no post exists yet.
type PostConfigDTO struct {
	TargetIDs   map[string]any  `yaml:"TARGET_IDS"`
	IsPublished map[string]bool `yaml:"IS_PUBLISHED"`
	DeploySlug  string          `yaml:"DEPLOY_SLUG"`
	CopyDocURL  string          `yaml:"COPY_GOOGLE_DOC_URL"`
}
