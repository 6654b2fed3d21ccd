package gassets

import (
	"embed"

	"clickchess/ui/gui/gbase/gos"
)

//go:embed assets/**
var embeddedAssets embed.FS

// ReadAsset prefers a file next to the binary so translations can be
// overridden without a rebuild.
func ReadAsset(path string) ([]byte, error) {
	if gos.Exists(path) {
		return gos.ReadFile(path)
	}
	return embeddedAssets.ReadFile(path)
}
