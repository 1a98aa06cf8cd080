package assets

import (
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/postpub/internal/core/domain"
)

const lessExt = ".less"

// tempPattern names the scratch files written before an atomic rename.
const tempPattern = ".postpub-*.tmp"

// generatedName matches compiled bundle versions and scratch files.
var generatedName = regexp.MustCompile(`(\.[0-9]{9,}(\.[A-Za-z0-9]+)?|^\.postpub-[0-9]+\.tmp)$`)

// splitBundleName separates a bundle name into the part before the timestamp and the
// extension written after it. LESS bundles keep ".less" in the front and are written
// as CSS.
func splitBundleName(name string) (front, ext string) {
	ext = path.Ext(name)
	switch ext {
	case lessExt:
		return name, ".css"
	case "":
		return name, ""
	default:
		return strings.TrimSuffix(name, ext), ext
	}
}

// TimestampedName inserts ts before the extension of a bundle name:
// "js/app.min.js" becomes "js/app.min.1700000000.js" and "css/card.less" becomes
// "css/card.less.1700000000.css".
func TimestampedName(name string, ts int64) string {
	front, ext := splitBundleName(name)
	return front + "." + strconv.FormatInt(ts, 10) + ext
}

// SourcePath returns the file read for a pushed asset. Stylesheets pushed as ".less" are
// read from the sibling compiled by lessc, "name.less.css". Only the trailing extension
// is considered.
func SourcePath(kind domain.AssetKind, src string) string {
	if kind == domain.KindCSS && path.Ext(src) == lessExt {
		return src + ".css"
	}
	return src
}

// versionMatcher matches the file names of every compiled version of a bundle.
func versionMatcher(name string) *regexp.Regexp {
	front, ext := splitBundleName(name)
	return regexp.MustCompile(`^` + regexp.QuoteMeta(path.Base(front)) + `\.[0-9]+` + regexp.QuoteMeta(ext) + `$`)
}

// IsGenerated reports whether the file name was written by a bundler rather than an
// author. Watchers use it to avoid reacting to their own output.
func IsGenerated(name string) bool {
	return generatedName.MatchString(path.Base(filepath.ToSlash(name)))
}
