package scenario

import "regexp"

// scenePathRe picks the scene segment that follows a /scenario.../ prefix,
// e.g. /rest/scenario/scenario/scene_evt180101_cp1_q1_s10/1 yields
// scene_evt180101_cp1_q1_s10.
var scenePathRe = regexp.MustCompile(`/scenario.*?/(scene[^/]+)/?`)

// ResolveScenario extracts the scenario identifier from a request path.
// It returns false for paths that do not carry one.
func ResolveScenario(pathname string) (string, bool) {
	m := scenePathRe.FindStringSubmatch(pathname)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}
