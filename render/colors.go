package render

import (
	"github.com/lixenwraith/vi-cloth/parameter"
)

// RGB color definitions for the cloth view
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background

	RgbLinkRelaxed = RGB{122, 162, 247} // Soft blue at or below rest length
	RgbLinkHot     = RGB{247, 118, 142} // Red at StrainColorMax
	RgbNode        = RGB{192, 202, 245}
	RgbNodeFixed   = RGB{224, 175, 104} // Amber for pinned nodes
	RgbNodeAnchor  = RGB{158, 206, 106} // Green for held anchors
	RgbNodeHover   = RGB{125, 207, 255} // Cyan under the pointer
	RgbCutTrail    = RGB{255, 80, 80}
	RgbPointer     = RGB{255, 255, 255}

	RgbStatusBg      = RGB{36, 40, 59}
	RgbStatusText    = RGB{0, 0, 0}
	RgbStatusInfo    = RGB{169, 177, 214}
	RgbModeRunBg     = RGB{144, 238, 144} // Light grass green
	RgbModePausedBg  = RGB{255, 165, 0}   // Orange
	RgbAudioMuted    = RGB{255, 0, 0}
	RgbAudioUnmuted  = RGB{0, 255, 0}
	RgbAnchorHeldBg  = RgbNodeAnchor
	RgbAnchorEmptyBg = RGB{65, 72, 104}
)

// StrainColor maps a link's length/rest ratio to its display color
// Compressed and rest-length links use the relaxed color
func StrainColor(strain float64) RGB {
	if strain <= 1 {
		return RgbLinkRelaxed
	}
	t := (strain - 1) / (parameter.StrainColorMax - 1)
	return RgbLinkRelaxed.Blend(RgbLinkHot, t)
}
