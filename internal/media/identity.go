package media

import "fmt"

// AssetRef is the {kind, id} pair that keys signed-URL caching and
// issuance requests.
type AssetRef struct {
	Kind Kind
	ID   string
}

// Identify derives the AssetRef of a record from its asset variant.
// The variant set is closed; a record carrying anything else was built
// incorrectly and is rejected here rather than handled as a fallback.
func Identify(r Record) (AssetRef, error) {
	switch a := r.Asset.(type) {
	case Image:
		return AssetRef{Kind: KindImage, ID: a.ImageID}, nil
	case Video:
		return AssetRef{Kind: KindVideo, ID: a.VideoUID}, nil
	default:
		return AssetRef{}, fmt.Errorf("media %q: unknown asset variant %T", r.ID, r.Asset)
	}
}
