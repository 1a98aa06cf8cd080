package server

import "embed"

// pages holds the wrapper pages served around posts.
//
//go:embed pages/*.html
var pages embed.FS

const (
	postListPage = "pages/post_list.html"
	parentPage   = "pages/parent.html"
)
