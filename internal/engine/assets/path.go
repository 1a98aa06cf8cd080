// Package assets collects the scripts and stylesheets a post template asks for and turns
// them into markup, either one tag per source or one compiled bundle per kind.
package assets

import "strings"

// SegmentCount returns the number of fields produced by splitting a request path on "/".
// "/posts/slug/" has four.
func SegmentCount(requestPath string) int {
	return len(strings.Split(requestPath, "/"))
}

// Relativize prefixes assetPath with enough "../" to reach the asset root from
// requestPath. assetDepth is how many levels below the site root the asset root sits.
func Relativize(assetPath, requestPath string, assetDepth int) string {
	depth := SegmentCount(requestPath) - (2 + assetDepth)
	if depth <= 0 {
		return assetPath
	}
	return strings.Repeat("../", depth) + assetPath
}

// Absolutize returns the fully qualified CDN URL of assetPath.
func Absolutize(assetPath, staticPath, cdnBase string) string {
	return cdnBase + "/" + staticPath + "/" + assetPath
}
