package spread

// Theme holds the default aesthetics of the layers of a spread diagram.
type Theme struct {
	PointStyle    AesMapping // the scatter of observed against modelled
	IdentityStyle AesMapping // the y = x reference line
	FitStyle      AesMapping // the regression line
	PanelStyle    AesMapping // fill, color, size (border width) and fontsize of the annotation
}

var DefaultTheme = Theme{
	PointStyle: AesMapping{
		"size":  "2.5",
		"shape": "solid-circle",
		"color": "#222222",
		"alpha": "1",
	},
	IdentityStyle: AesMapping{
		"size":     "0.5",
		"linetype": "dashed",
		"color":    "black",
		"alpha":    "1",
	},
	FitStyle: AesMapping{
		"size":     "0.5",
		"linetype": "solid",
		"color":    "gray",
		"alpha":    "1",
	},
	PanelStyle: AesMapping{
		"fill":     "white",
		"color":    "black",
		"size":     "0.5",
		"fontsize": "12",
	},
}

// merged returns t with all unset aesthetics taken from DefaultTheme.
func (t Theme) merged() Theme {
	return Theme{
		PointStyle:    MergeAes(t.PointStyle, DefaultTheme.PointStyle),
		IdentityStyle: MergeAes(t.IdentityStyle, DefaultTheme.IdentityStyle),
		FitStyle:      MergeAes(t.FitStyle, DefaultTheme.FitStyle),
		PanelStyle:    MergeAes(t.PanelStyle, DefaultTheme.PanelStyle),
	}
}
