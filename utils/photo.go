package utils

import "strings"

// NormalizePhotoPath turns a stored upload path such as "public/123-a.jpg"
// into the reference kept on a listing ("123-a.jpg"). The upload root is
// stripped for as long as it leads the path, so the result never starts with
// it and normalizing twice gives the same value as normalizing once.
func NormalizePhotoPath(path, uploadRoot string) string {
	if uploadRoot == "" {
		return path
	}
	for strings.HasPrefix(path, uploadRoot) {
		path = strings.TrimPrefix(path, uploadRoot)
	}
	return path
}

func NormalizePhotoPaths(paths []string, uploadRoot string) []string {
	refs := make([]string, 0, len(paths))
	for _, p := range paths {
		refs = append(refs, NormalizePhotoPath(p, uploadRoot))
	}
	return refs
}

// PhotoURL resolves a stored photo reference against the public base URL.
func PhotoURL(baseURL, ref string) string {
	if baseURL == "" {
		return ref
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(ref, "/")
}
