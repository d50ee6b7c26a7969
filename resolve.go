package compinject

import "strings"

// Sentinel marks an asset path as relative to the base URL.
const Sentinel = "$"

// DefaultLoaderName is the file name of the loader script whose directory
// serves as the base URL.
const DefaultLoaderName = "components-init.js"

// AssetKind classifies an asset by file extension.
type AssetKind int

const (
	KindUnknown AssetKind = iota
	KindScript
	KindStylesheet
)

// String returns the lower-case kind name.
func (k AssetKind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindStylesheet:
		return "stylesheet"
	default:
		return "unknown"
	}
}

// ResolvePath returns the URL to inject for an asset path.
//
// Paths starting with the sentinel, or containing no "/", are relative:
// the sentinel is dropped and base is prepended. Other paths are returned
// unchanged. base is used verbatim, so it normally ends with "/".
func ResolvePath(base, p string) string {
	if rest, ok := strings.CutPrefix(p, Sentinel); ok {
		return base + rest
	}
	if !strings.Contains(p, "/") {
		return base + p
	}
	return p
}

// FileName returns the last "/"-separated segment of src.
func FileName(src string) string {
	return src[strings.LastIndex(src, "/")+1:]
}

// KindOf returns the asset kind from the extension after the last ".",
// compared case-insensitively. Paths without a "." are KindUnknown.
func KindOf(p string) AssetKind {
	idx := strings.LastIndex(p, ".")
	if idx == -1 {
		return KindUnknown
	}
	switch strings.ToLower(p[idx+1:]) {
	case "js":
		return KindScript
	case "css":
		return KindStylesheet
	default:
		return KindUnknown
	}
}

// BaseFromLoaderURL strips a trailing loaderName from loaderURL and returns
// the remaining prefix. Returns "" when loaderURL does not end with
// loaderName. An empty loaderName means DefaultLoaderName.
func BaseFromLoaderURL(loaderURL, loaderName string) string {
	if loaderName == "" {
		loaderName = DefaultLoaderName
	}
	base, ok := strings.CutSuffix(loaderURL, loaderName)
	if !ok {
		return ""
	}
	return base
}
