package assets

import (
	"fmt"
	"regexp"
)

// assetNamePattern allows letters, digits, hyphens, and underscores.
// No path separators or dots, which blocks traversal out of the asset dirs.
var assetNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxAssetNameLength bounds asset names to a reasonable size.
const MaxAssetNameLength = 64

// ValidateAssetName checks that a style or template name is safe to
// resolve against an asset directory.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAssetName)
	}
	if len(name) > MaxAssetNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAssetName, MaxAssetNameLength)
	}
	if !assetNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q (use letters, digits, hyphens, underscores)", ErrInvalidAssetName, name)
	}
	return nil
}
