package upload

import (
	"fmt"

	"github.com/dmitrijs2005/albumkeeper/internal/media"
)

// Rules is a threshold-driven Validator. Thresholds come from client
// configuration; a zero threshold means unlimited.
type Rules struct {
	MaxImageBytes   int64
	MaxVideoBytes   int64
	MaxDurationSecs float64
}

func (r Rules) ValidateAssets(picks []Pick) (valid []Pick, invalid []RejectedPick) {
	for _, p := range picks {
		if reason := r.check(p); reason != "" {
			invalid = append(invalid, RejectedPick{Pick: p, Reason: reason})
			continue
		}
		valid = append(valid, p)
	}
	return valid, invalid
}

func (r Rules) check(p Pick) string {
	switch p.Kind {
	case media.KindImage:
		if r.MaxImageBytes > 0 && p.SizeBytes > r.MaxImageBytes {
			return fmt.Sprintf("image exceeds %d bytes", r.MaxImageBytes)
		}
	case media.KindVideo:
		if r.MaxVideoBytes > 0 && p.SizeBytes > r.MaxVideoBytes {
			return fmt.Sprintf("video exceeds %d bytes", r.MaxVideoBytes)
		}
		if r.MaxDurationSecs > 0 && p.DurationSecs > r.MaxDurationSecs {
			return fmt.Sprintf("video exceeds %.0f seconds", r.MaxDurationSecs)
		}
	default:
		return fmt.Sprintf("unsupported asset kind %q", p.Kind)
	}
	return ""
}
