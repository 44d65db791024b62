package media

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentifyImage(t *testing.T) {
	r := Record{ID: "m1", Asset: Image{ImageID: "img_a", Width: 640, Height: 480}}

	ref, err := Identify(r)
	require.NoError(t, err)
	require.Equal(t, AssetRef{Kind: KindImage, ID: "img_a"}, ref)
}

func TestIdentifyVideo(t *testing.T) {
	r := Record{ID: "m2", Asset: Video{VideoUID: "vid_c", DurationSecs: 12.5}}

	ref, err := Identify(r)
	require.NoError(t, err)
	require.Equal(t, AssetRef{Kind: KindVideo, ID: "vid_c"}, ref)
}

func TestIdentifyRejectsUnknownVariant(t *testing.T) {
	_, err := Identify(Record{ID: "m3"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown asset variant")
}
