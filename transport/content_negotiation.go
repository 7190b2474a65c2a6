package transport

import (
	"strings"

	"github.com/tandem-a2a/tandem/a2a"
)

// MatchesOutputMode reports whether a supported output mode satisfies one
// accepted pattern. Patterns follow RFC 9110 media ranges: "*" and "*/*"
// match anything, "type/*" matches every subtype of type, anything else is
// an exact comparison. The supported side is never treated as a pattern.
func MatchesOutputMode(accepted, supported string) bool {
	switch {
	case accepted == "*" || accepted == "*/*":
		return true
	case strings.HasSuffix(accepted, "/*"):
		wantType := strings.TrimSuffix(accepted, "/*")
		gotType, _, _ := strings.Cut(supported, "/")
		return wantType == gotType
	default:
		return accepted == supported
	}
}

// FindCompatibleOutputModes intersects the client's accepted output modes
// with what the agent supports, preserving the agent's ordering. An empty
// accepted list means the client takes anything. When nothing overlaps it
// returns a ContentTypeNotSupported JSON-RPC error carrying both sides.
func FindCompatibleOutputModes(acceptedModes, supportedModes []string) ([]string, error) {
	if len(acceptedModes) == 0 {
		acceptedModes = []string{"*/*"}
	}

	var compatible []string
	for _, supported := range supportedModes {
		for _, accepted := range acceptedModes {
			if MatchesOutputMode(accepted, supported) {
				compatible = append(compatible, supported)
				break
			}
		}
	}

	if len(compatible) == 0 {
		return nil, a2a.NewJSONRPCError(a2a.ErrorCodeContentTypeNotSupported, map[string]any{
			"acceptedModes":  acceptedModes,
			"supportedModes": supportedModes,
		})
	}
	return compatible, nil
}
